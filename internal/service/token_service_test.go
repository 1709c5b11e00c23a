package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "ticket-store-ledger")

	token, expiresAt, err := svc.Generate(customer)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, customer, claims.Caller)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "ticket-store-ledger")
	other := NewJWTTokenService("other-secret", time.Hour, "ticket-store-ledger")

	token, _, err := svc.Generate(customer)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService("test-secret", -time.Minute, "ticket-store-ledger")

	token, _, err := svc.Generate(customer)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "ticket-store-ledger")

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}
