package helpers

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes the redis client used for sessions and
// rate limiting.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// SessionKey is the redis hash key holding a user's active session.
func SessionKey(userID string) string {
	return "session:user:" + userID
}
