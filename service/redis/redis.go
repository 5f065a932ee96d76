package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/openmarket/goapi/base/ctx"
)

// Forever disables the expire of a key
const Forever = time.Duration(-1)

var (
	// ErrNotFound will throw if the requested key is not exists
	ErrNotFound = redis.ErrNil
	// ErrNotStored will throw if SetNX hits an existing key
	ErrNotStored = errors.New("key already exists")
)

// Service wraps the redis commands the api depends on
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets the key only when it does not exist yet, returns
	// ErrNotStored otherwise
	SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	// TTL returns remaining time to live of a key in seconds
	TTL(c ctx.Ctx, key string) (int, error)
	Incrby(c ctx.Ctx, key string, val int) (int64, error)
}
