package auth

import (
	"testing"
	"time"

	"biudzetas/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionServiceConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{
		SessionTTL:  time.Hour,
		RememberTTL: 24 * time.Hour,
	}

	return cfg
}

func TestSessionTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewSessionTokenService(sessionServiceConfig())
	require.NoError(t, err)

	accountID := uuid.New()

	token, ttl, err := svc.Issue(accountID, false)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, time.Hour, ttl)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.False(t, claims.Remember)
}

func TestSessionTokenService_RememberMeTTL(t *testing.T) {
	svc, err := NewSessionTokenService(sessionServiceConfig())
	require.NoError(t, err)

	token, ttl, err := svc.Issue(uuid.New(), true)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.True(t, claims.Remember)
}

func TestSessionTokenService_InvalidToken(t *testing.T) {
	svc, err := NewSessionTokenService(sessionServiceConfig())
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestSessionTokenService_WrongKey(t *testing.T) {
	svc, err := NewSessionTokenService(sessionServiceConfig())
	require.NoError(t, err)

	otherCfg := sessionServiceConfig()
	otherCfg.SecretKey.Session = "another_session_secret_entirely"
	other, err := NewSessionTokenService(otherCfg)
	require.NoError(t, err)

	token, _, err := other.Issue(uuid.New(), false)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestSessionTokenService_EmptySecret(t *testing.T) {
	svc, err := NewSessionTokenService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}
