package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var (
	Ctx   = context.Background()
	Redis *redis.Client
)

// InitRedis connects to REDIS_ADDR. Returns false when Redis is not
// configured; callers fall back to in-process stores.
func InitRedis() bool {
	addr := GetEnv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("[config] REDIS_ADDR kosong, pakai memory store")
		return false
	}

	db := GetEnvInt("REDIS_DB", 0)

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       db,
	})

	if err := Redis.Ping(Ctx).Err(); err != nil {
		log.Fatal("[config] Redis tidak nyambung:", err)
	}

	log.Println("[config] Redis connected (DB", db, ")")
	return true
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}
