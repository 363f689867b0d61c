package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	pair, err := Issue(1, "john@example.com", "John Smith", "room-checkin", "secret", time.Minute, time.Hour)
	assert.NoError(t, err)

	claims, err := Parse(pair.AccessToken, "secret", "room-checkin")
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "John Smith", claims.Name)
	assert.Equal(t, "1", claims.Subject)
}

func TestParseRejectsWrongKey(t *testing.T) {
	pair, err := Issue(1, "john@example.com", "John Smith", "room-checkin", "secret", time.Minute, time.Hour)
	assert.NoError(t, err)

	_, err = Parse(pair.AccessToken, "other-secret", "room-checkin")
	assert.Error(t, err)
}

func TestParseRejectsIssuerMismatch(t *testing.T) {
	pair, err := Issue(1, "john@example.com", "John Smith", "other-service", "secret", time.Minute, time.Hour)
	assert.NoError(t, err)

	_, err = Parse(pair.AccessToken, "secret", "room-checkin")
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	pair, err := Issue(1, "john@example.com", "John Smith", "room-checkin", "secret", -time.Minute, time.Hour)
	assert.NoError(t, err)

	_, err = Parse(pair.AccessToken, "secret", "room-checkin")
	assert.Error(t, err)
}
