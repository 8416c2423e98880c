package rdx

import (
	"fmt"
	"os"
	"time"

	"wayfare/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxSetTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHget(hash, field string) (string, error) {
	val, err := Conn.HGet(globals.Ctx, hash, field).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func RdxHdel(hash, field string) error {
	return Conn.HDel(globals.Ctx, hash, field).Err()
}

// GeoCache is the explicit "already looked up" cache sitting in front of
// place lookups. Entries expire via Redis TTL; nothing here is ambient
// module state — handlers receive the cache they should consult.
type GeoCache struct {
	conn *redis.Client
	ttl  time.Duration
}

func NewGeoCache(ttl time.Duration) *GeoCache {
	return &GeoCache{conn: Conn, ttl: ttl}
}

func (c *GeoCache) key(query string) string {
	return fmt.Sprintf("geo:lookup:%s", query)
}

func (c *GeoCache) Get(query string) (string, bool) {
	val, err := c.conn.Get(globals.Ctx, c.key(query)).Result()
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}

func (c *GeoCache) Put(query, payload string) {
	c.conn.Set(globals.Ctx, c.key(query), payload, c.ttl)
}
