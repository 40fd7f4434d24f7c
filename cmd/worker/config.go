package main

import (
	"strconv"

	"scribverse-backend/internal/shared/utils"
)

// Config holds worker-specific settings. Everything else comes from the
// shared container.
type Config struct {
	RedisAddr     string
	RedisPassword string
	Concurrency   int
}

func loadConfig() *Config {
	concurrency, err := strconv.Atoi(utils.GetEnvVariable("WORKER_CONCURRENCY", "10"))
	if err != nil || concurrency <= 0 {
		concurrency = 10
	}

	return &Config{
		RedisAddr:     utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		RedisPassword: utils.GetEnvVariable("REDIS_PASSWORD", ""),
		Concurrency:   concurrency,
	}
}
