package clubs

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

const (
	listingKey = "clubs:approved"
	listingTTL = 5 * time.Minute
)

// Cache holds the public approved-club listing. The listing changes only
// on admin actions, so a short TTL plus explicit invalidation keeps it
// honest.
type Cache struct {
	redis *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{
		redis: rdb,
	}
}

// Get returns the cached listing, or ok=false on a miss.
func (c *Cache) Get(ctx context.Context) ([]entity.Club, bool, error) {
	raw, err := c.redis.Get(ctx, listingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var listing []entity.Club
	if err = json.Unmarshal(raw, &listing); err != nil {
		return nil, false, err
	}
	return listing, true, nil
}

func (c *Cache) Set(ctx context.Context, listing []entity.Club) error {
	raw, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, listingKey, raw, listingTTL).Err()
}

func (c *Cache) Invalidate(ctx context.Context) error {
	return c.redis.Del(ctx, listingKey).Err()
}
