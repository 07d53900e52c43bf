package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	errx "github.com/exclusive-store/server/internal/core/error"
	"github.com/exclusive-store/server/internal/model"
	logx "github.com/exclusive-store/server/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type RedisCartRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisCartRepository(rdb redis.Cmdable, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{rdb: rdb, ttl: ttl}
}

func cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s:products", cartID)
}

func (r *RedisCartRepository) AddProducts(ctx context.Context, cartID string, products ...model.Product) error {
	if len(products) == 0 {
		return nil
	}
	values := make([]any, 0, len(products))
	for _, prod := range products {
		b, err := json.Marshal(prod)
		if err != nil {
			logx.Error().Err(err).Str("cartID", cartID).Str("productID", prod.ID).Msg("failed to marshal product")
			return fmt.Errorf("marshal product: %w", err)
		}
		values = append(values, b)
	}
	key := cartKey(cartID)

	pipe := r.rdb.TxPipeline()
	pipe.RPush(ctx, key, values...)
	// extend TTL on touch
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push products to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisCartRepository) LoadProducts(ctx context.Context, cartID string) (model.ProductList, error) {
	key := cartKey(cartID)

	rows, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ProductList{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load cart from redis")
		return nil, errx.WrapRedis(err)
	}

	list := make(model.ProductList, 0, len(rows))
	for i, s := range rows {
		var prod model.Product
		if err := json.Unmarshal([]byte(s), &prod); err != nil {
			logx.Error().Err(err).Str("cartID", cartID).Int("index", i).Msg("failed to unmarshal product")
			return nil, fmt.Errorf("unmarshal product at index %d: %w", i, err)
		}
		list = append(list, prod)
	}
	return list, nil
}

func (r *RedisCartRepository) ClearCart(ctx context.Context, cartID string) error {
	key := cartKey(cartID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete cart from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisCartRepository) GetProductCount(ctx context.Context, cartID string) (int, error) {
	key := cartKey(cartID)
	n, err := r.rdb.LLen(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to get cart size from redis")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ model.CartRepository = (*RedisCartRepository)(nil)
