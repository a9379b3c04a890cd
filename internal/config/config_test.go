package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("LANDING_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("LANDING_TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("LANDING_TEST_MISSING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("LANDING_TEST_INT", "42")
	t.Setenv("LANDING_TEST_BAD", "abc")
	assert.Equal(t, 42, GetEnvInt("LANDING_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("LANDING_TEST_BAD", 1))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("LANDING_TEST_TTL", "90s")
	t.Setenv("LANDING_TEST_NEG", "-5m")
	assert.Equal(t, 90*time.Second, GetEnvDuration("LANDING_TEST_TTL", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("LANDING_TEST_NEG", time.Minute))
	assert.Equal(t, time.Minute, GetEnvDuration("LANDING_TEST_UNSET", time.Minute))
}

func TestMySQLDSN(t *testing.T) {
	t.Setenv("DB_NAME", "")
	assert.Empty(t, MySQLDSN())

	t.Setenv("DB_NAME", "landing")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")

	dsn := MySQLDSN()
	assert.Contains(t, dsn, "app:secret@tcp(db:3307)/landing")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(7, "Admin", "admin@remitabeg.test", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "one")
	token, err := GenerateToken(1, "Admin", "a@b.c", "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "two")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_NoSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateToken(1, "Admin", "a@b.c", "admin")
	assert.Error(t, err)
}
