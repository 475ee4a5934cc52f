package redis_test

import (
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknest/config"
	"tasknest/infras/redis"
)

func TestNew(t *testing.T) {
	server := miniredis.RunT(t)

	host, port, err := net.SplitHostPort(server.Addr())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = host
	cfg.Cache.Redis.Primary.Port = port

	client, cleanup, err := redis.New(cfg)
	require.NoError(t, err)
	require.NotNil(t, client)

	cleanup()
}

func TestNewUnreachable(t *testing.T) {
	server := miniredis.RunT(t)

	host, port, err := net.SplitHostPort(server.Addr())
	require.NoError(t, err)

	server.Close()

	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = host
	cfg.Cache.Redis.Primary.Port = port

	client, cleanup, err := redis.New(cfg)

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Nil(t, cleanup)
}
