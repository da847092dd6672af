package redis

import (
	"context"
	"fmt"

	"github.com/clubshub/clubshub/internal/adapters/database/redis/clubs"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	Clubs *clubs.Cache
}

type Options struct {
	Host     string
	Port     string
	Password string
}

func New(opts Options) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Client{
		Clubs: clubs.NewCache(rdb),
	}, nil
}
