package cache

import (
	"context"
	"time"

	"classbook/internal/config"

	"github.com/redis/go-redis/v9"
)

// pingTimeout 啟動時連線檢查的上限，避免 Redis 失聯時卡住開機流程
const pingTimeout = 3 * time.Second

// redisClient 定義了 NewRedisClient 內部使用的必要方法，便於測試時替換。
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// redisNewClient 用來建立 redis client，測試可覆寫此變數。
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient 依設定建立 *redis.Client 並確認連線，直接實作 Cache。
// 列表快取與世代計數器都走這一條連線
func NewRedisClient(cfg *config.Config) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
