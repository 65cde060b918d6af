package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel_records/internal/adapters/observability"
	"hotel_records/internal/domain"
)

const indexKey = "hotels"

func docKey(id string) string { return "hotel:" + id }

// Store keeps each hotel document under hotel:{id} and the set of known ids
// under "hotels" so List does not need KEYS/SCAN.
type Store struct{ c *redis.Client }

func New(addr, pass string, db int) *Store {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}))
}

func NewWithClient(c *redis.Client) *Store { return &Store{c: c} }

func (r *Store) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Store) Close() error { return r.c.Close() }

func (r *Store) Exists(ctx context.Context, id string) (ok bool, err error) {
	defer observe("exists", time.Now(), &err)
	n, err := r.c.Exists(ctx, docKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", id, err)
	}
	return n == 1, nil
}

func (r *Store) Get(ctx context.Context, id string) (h domain.Hotel, err error) {
	defer observe("get", time.Now(), &err)
	v, err := r.c.Get(ctx, docKey(id)).Bytes()
	if err == redis.Nil {
		return domain.Hotel{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("redis get %s: %w", id, err)
	}
	if err := json.Unmarshal(v, &h); err != nil {
		return domain.Hotel{}, fmt.Errorf("decode %s: %w", id, err)
	}
	return h, nil
}

func (r *Store) Put(ctx context.Context, h domain.Hotel) (err error) {
	defer observe("put", time.Now(), &err)
	b, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", h.ID, err)
	}
	_, err = r.c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, docKey(h.ID), b, 0)
		p.SAdd(ctx, indexKey, h.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put %s: %w", h.ID, err)
	}
	return nil
}

// List skips ids whose document has gone missing.
func (r *Store) List(ctx context.Context) (out []domain.Hotel, err error) {
	defer observe("list", time.Now(), &err)
	ids, err := r.c.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}
	out = make([]domain.Hotel, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(id)
	}
	vals, err := r.c.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var h domain.Hotel
		if err := json.Unmarshal([]byte(s), &h); err != nil {
			return nil, fmt.Errorf("decode %s: %w", ids[i], err)
		}
		out = append(out, h)
	}
	return out, nil
}

func observe(op string, start time.Time, err *error) {
	nf := errors.Is(*err, domain.ErrNotFound)
	observability.ObserveStore("redis", op, observability.ResultLabel(*err, nf), time.Since(start))
}
