package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis opens the connection backing the durable profile store (carts,
// wishlists, session prefs) and the rate limiter.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	// Profile data can live in its own logical DB
	if dbStr := os.Getenv("PROFILE_STORE_DB"); dbStr != "" {
		if db, convErr := strconv.Atoi(dbStr); convErr == nil {
			opt.DB = db
		}
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		panic(fmt.Sprintf("❌ failed to connect to Redis: %v", err))
	}
	log.Println("✅ Connected to Redis")
}
