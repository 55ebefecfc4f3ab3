package redis

import (
	"context"
	"testing"
	"time"

	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

func TestBasketStoreAppendAndGet(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewBasketStore(client, time.Hour)
	ctx := context.Background()

	for _, price := range []int{300, 200, 300} {
		if err := store.Append(ctx, "s1", price); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	basket, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	want := domain.Basket{300, 200, 300}
	if len(basket) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(basket))
	}
	for i := range want {
		if basket[i] != want[i] {
			t.Fatalf("expected basket %v, got %v", want, basket)
		}
	}
}

func TestBasketStoreUnknownSessionIsEmpty(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewBasketStore(client, time.Hour)

	basket, err := store.Get(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !basket.IsEmpty() {
		t.Fatalf("expected empty basket, got %v", basket)
	}
}

func TestBasketStoreClear(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewBasketStore(client, time.Hour)
	ctx := context.Background()

	if err := store.Append(ctx, "s1", 300); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	basket, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !basket.IsEmpty() {
		t.Fatalf("expected basket cleared, got %v", basket)
	}
}

func TestBasketStoreSetsTTL(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewBasketStore(client, time.Minute)
	ctx := context.Background()

	if err := store.Append(ctx, "s1", 300); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if ttl := mr.TTL("basket:s1"); ttl != time.Minute {
		t.Fatalf("expected TTL of 1m, got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)

	basket, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !basket.IsEmpty() {
		t.Fatalf("expected expired basket to read empty, got %v", basket)
	}
}

func TestBasketStoreCorruptEntry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewBasketStore(client, time.Hour)

	mr.RPush("basket:s1", "not-a-number")

	if _, err := store.Get(context.Background(), "s1"); err == nil {
		t.Fatalf("expected error for corrupt basket entry")
	}
}
