package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"kidreel/types"
)

// Redis backs the content store with Redis so the API server and workers in
// separate processes see the same records. Record JSON lives under
// {prefix}:{id}, ids come from INCR on {prefix}:next_id, and the id set
// under {prefix}:ids supports listing.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedisFromEnv creates a Redis store using REDIS_ADDR, REDIS_PASS and
// REDIS_DB, with localhost defaults.
func NewRedisFromEnv() (*Redis, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if d := os.Getenv("REDIS_DB"); d != "" {
		if n, err := strconv.Atoi(d); err == nil {
			db = n
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &Redis{client: client, prefix: "content"}, nil
}

func (r *Redis) key(id int) string    { return fmt.Sprintf("%s:%d", r.prefix, id) }
func (r *Redis) idsKey() string       { return r.prefix + ":ids" }
func (r *Redis) nextIDKey() string    { return r.prefix + ":next_id" }
func (r *Redis) ctx() context.Context { return context.Background() }

func (r *Redis) Create(c types.Content) (types.Content, error) {
	id, err := r.client.Incr(r.ctx(), r.nextIDKey()).Result()
	if err != nil {
		return types.Content{}, fmt.Errorf("allocate content id: %w", err)
	}
	c.ID = int(id)
	if c.Status == "" {
		c.Status = types.StatusDraft
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if err := r.write(c); err != nil {
		return types.Content{}, err
	}
	if err := r.client.SAdd(r.ctx(), r.idsKey(), c.ID).Err(); err != nil {
		return types.Content{}, fmt.Errorf("index content %d: %w", c.ID, err)
	}
	return c, nil
}

func (r *Redis) Get(id int) (types.Content, error) {
	data, err := r.client.Get(r.ctx(), r.key(id)).Bytes()
	if err == redis.Nil {
		return types.Content{}, ErrNotFound
	}
	if err != nil {
		return types.Content{}, fmt.Errorf("get content %d: %w", id, err)
	}
	var c types.Content
	if err := json.Unmarshal(data, &c); err != nil {
		return types.Content{}, fmt.Errorf("decode content %d: %w", id, err)
	}
	return c, nil
}

func (r *Redis) List() ([]types.Content, error) {
	ids, err := r.client.SMembers(r.ctx(), r.idsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list content ids: %w", err)
	}
	out := make([]types.Content, 0, len(ids))
	for _, s := range ids {
		id, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		c, err := r.Get(id)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Redis) Update(c types.Content) error {
	exists, err := r.client.Exists(r.ctx(), r.key(c.ID)).Result()
	if err != nil {
		return fmt.Errorf("check content %d: %w", c.ID, err)
	}
	if exists == 0 {
		return ErrNotFound
	}
	return r.write(c)
}

func (r *Redis) Delete(id int) error {
	removed, err := r.client.Del(r.ctx(), r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("delete content %d: %w", id, err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return r.client.SRem(r.ctx(), r.idsKey(), id).Err()
}

func (r *Redis) write(c types.Content) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode content %d: %w", c.ID, err)
	}
	if err := r.client.Set(r.ctx(), r.key(c.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("store content %d: %w", c.ID, err)
	}
	return nil
}
