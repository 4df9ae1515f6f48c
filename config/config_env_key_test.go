package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"path": "biudzetas.db",
		},
		"secretKey": map[string]any{
			"session": "",
			"reset":   "",
		},
		"auth": map[string]any{
			"resetTokenTtl": "30m",
			"adminEmails":   []any{},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_PATH", want: "database.path"},
		{envKey: "SECRETKEY_RESET", want: "secretKey.reset"},
		{envKey: "AUTH_RESETTOKENTTL", want: "auth.resetTokenTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
