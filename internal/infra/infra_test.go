package infra

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", "console")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1))

	_, err = NewLogger("loud", "json")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), RedisConfig{Addr: srv.Addr()})
	require.NoError(t, err)
	defer client.Close()

	srv.Close()
	_, err = NewRedisClient(context.Background(), RedisConfig{Addr: srv.Addr()})
	assert.Error(t, err)
}
