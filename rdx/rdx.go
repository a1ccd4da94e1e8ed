package rdx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// Connect wires the shared Redis client used for the token denylist and the
// recipe event channel. Callers may run without Redis (Client stays nil);
// consumers treat a nil client as "feature off".
func Connect(ctx context.Context, addr string) error {
	c := redis.NewClient(&redis.Options{Addr: addr})
	if err := c.Ping(ctx).Err(); err != nil {
		return err
	}
	Client = c
	return nil
}
