package identity

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromClaims(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	id, err := FromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Principal)
	assert.Equal(t, now, id.IssuedAt.Truncate(time.Second))
	assert.Equal(t, now.Add(time.Hour), id.ExpiresAt.Truncate(time.Second))
}

func TestFromClaimsWithoutTimestamps(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "bob"}

	id, err := FromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "bob", id.Principal)
	assert.True(t, id.IssuedAt.IsZero())
	assert.True(t, id.ExpiresAt.IsZero())
}

func TestIdentity_WithRemoteIP(t *testing.T) {
	id := &Identity{Principal: "alice"}

	ip := net.ParseIP("192.168.1.100")
	id.WithRemoteIP(ip)

	assert.Equal(t, ip, id.RemoteIP)
}

func TestContextGetSet(t *testing.T) {
	ctx := context.Background()

	// Initially no identity
	id, ok := Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, id)

	// Set identity
	expected := &Identity{Principal: "alice"}
	ctx = Set(ctx, expected)

	// Get identity
	id, ok = Get(ctx)
	assert.True(t, ok)
	require.NotNil(t, id)
	assert.Equal(t, expected.Principal, id.Principal)
}
