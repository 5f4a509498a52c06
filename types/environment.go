package types

import (
	"github.com/redis/go-redis/v9"
)

// Environment holds process-wide clients handed to services. RedisClient is
// nil when Redis is not configured; dependents must degrade to no-ops.
type Environment struct {
	RedisClient *redis.Client
}

func NewEnvironment(redisClient *redis.Client) *Environment {
	return &Environment{
		RedisClient: redisClient,
	}
}
