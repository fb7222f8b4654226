package config

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnectRedisSkippedInTestEnv(t *testing.T) {
	t.Setenv("APPENV", "test")
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
	assert.Nil(t, GetRedisClient())
}

func TestSetRedisClientForTest(t *testing.T) {
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)

	client, _ := redismock.NewClientMock()
	SetRedisClientForTest(client)
	assert.Same(t, client, GetRedisClient())

	ResetRedisClientForTest()
	assert.Nil(t, GetRedisClient())
}
