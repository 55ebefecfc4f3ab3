package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

// BasketStore implements usecase.BasketStore using a Redis list per
// session. Baskets expire after the configured TTL; an expired or unknown
// session reads back as an empty basket.
type BasketStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewBasketStore creates a new BasketStore.
func NewBasketStore(client *redis.Client, ttl time.Duration) *BasketStore {
	return &BasketStore{
		client: client,
		prefix: "basket:",
		ttl:    ttl,
	}
}

// Append pushes one unit price onto the session basket and refreshes its
// TTL.
func (s *BasketStore) Append(ctx context.Context, sessionID string, price int) error {
	key := s.prefix + sessionID

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, price)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append to basket: %w", err)
	}

	return nil
}

// Get reads the session basket in insertion order. Non-numeric entries
// indicate outside tampering and fail the read.
func (s *BasketStore) Get(ctx context.Context, sessionID string) (domain.Basket, error) {
	values, err := s.client.LRange(ctx, s.prefix+sessionID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read basket: %w", err)
	}

	basket := make(domain.Basket, 0, len(values))
	for _, v := range values {
		price, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("corrupt basket entry %q: %w", v, err)
		}
		basket = append(basket, price)
	}

	return basket, nil
}

// Clear deletes the session basket.
func (s *BasketStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.prefix+sessionID).Err(); err != nil {
		return fmt.Errorf("clear basket: %w", err)
	}
	return nil
}
