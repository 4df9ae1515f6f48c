package auth

import (
	"strings"
	"testing"
	"time"

	"biudzetas/config"
	domainerrors "biudzetas/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetServiceConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{ResetTokenTTL: ttl}

	return cfg
}

func TestResetTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewResetTokenService(resetServiceConfig(30 * time.Minute))
	require.NoError(t, err)

	accountID := uuid.New()

	token, err := svc.Issue(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// An immediately verified token resolves to the same account identifier.
	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestResetTokenService_Expired(t *testing.T) {
	// A negative ttl makes every issued token already expired.
	svc, err := NewResetTokenService(resetServiceConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenSignature))
}

func TestResetTokenService_TamperedSignature(t *testing.T) {
	svc, err := NewResetTokenService(resetServiceConfig(30 * time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Flip one byte of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSignature))
}

func TestResetTokenService_RejectsForeignKeyAndType(t *testing.T) {
	svc, err := NewResetTokenService(resetServiceConfig(30 * time.Minute))
	require.NoError(t, err)

	// A token signed under a different key fails the signature check.
	otherCfg := resetServiceConfig(30 * time.Minute)
	otherCfg.SecretKey.Reset = "a_completely_different_secret_key"
	other, err := NewResetTokenService(otherCfg)
	require.NoError(t, err)

	foreign, err := other.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(foreign)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSignature))

	// A session token is never a valid reset token, even if the deployment
	// reuses one secret for both.
	sessionCfg := &config.Config{}
	sessionCfg.SecretKey.Session = "test_reset_secret_key_very_long_for_testing"
	sessions, err := NewSessionTokenService(sessionCfg)
	require.NoError(t, err)

	sessionToken, _, err := sessions.Issue(uuid.New(), false)
	require.NoError(t, err)

	_, err = svc.Verify(sessionToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSignature))
}

func TestResetTokenService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"

	svc, err := NewResetTokenService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1800*time.Second, svc.TTL())
}

func TestResetTokenService_EmptySecret(t *testing.T) {
	svc, err := NewResetTokenService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}
