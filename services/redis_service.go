package services

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// PushToRedisList nối các giá trị vào cuối list và gia hạn TTL trong cùng một transaction
func PushToRedisList(ctx context.Context, rdb *redis.Client, key string, ttl time.Duration, values ...interface{}) error {
	if len(values) == 0 {
		return nil
	}
	encoded := make([]interface{}, 0, len(values))
	for _, v := range values {
		dataJSON, err := json.Marshal(v)
		if err != nil {
			return err
		}
		encoded = append(encoded, dataJSON)
	}
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, encoded...)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

// RangeFromRedisList lấy toàn bộ list từ Redis. A missing key yields an empty slice.
func RangeFromRedisList[T any](ctx context.Context, rdb *redis.Client, key string) ([]T, error) {
	raw, err := rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for _, item := range raw {
		var v T
		if err := json.Unmarshal([]byte(item), &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// DeleteFromRedis xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}
