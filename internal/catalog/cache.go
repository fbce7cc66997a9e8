package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"healthcare-clinic/internal/cache"
	"healthcare-clinic/internal/model"

	"github.com/redis/go-redis/v9"
)

// MedicinesKey 是藥品列表在 Redis 的 key
const MedicinesKey = "medicines:all"

// DefaultTTL 未設定 MEDICINE_CACHE_TTL 時使用
const DefaultTTL = 5 * time.Minute

var (
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// Cache 快取 GET /api/medicines 的結果；backend 為 nil 時所有操作皆為 no-op
type Cache struct {
	backend cache.Cache
	ttl     time.Duration
	// gen 每次 Invalidate 加一，讀庫期間被失效的結果不寫回
	gen atomic.Uint64
}

func NewCache(backend cache.Cache, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{backend: backend, ttl: ttl}
}

func (k *Cache) enabled() bool {
	return k != nil && k.backend != nil
}

// Medicines 回傳快取中的列表；未命中或任何錯誤都回傳 false
func (k *Cache) Medicines(ctx context.Context) ([]model.Medicine, bool) {
	if !k.enabled() {
		return nil, false
	}
	raw, err := k.backend.Get(ctx, MedicinesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var meds []model.Medicine
	if err := jsonUnmarshal(raw, &meds); err != nil {
		return nil, false
	}
	return meds, true
}

// Generation 回傳目前的失效代數，nil 時為 0
func (k *Cache) Generation() uint64 {
	if k == nil {
		return 0
	}
	return k.gen.Load()
}

// StoreIf 只在代數仍等於 gen 時寫入；回傳是否寫入
func (k *Cache) StoreIf(ctx context.Context, gen uint64, meds []model.Medicine) (bool, error) {
	if !k.enabled() || k.gen.Load() != gen {
		return false, nil
	}
	if err := k.Store(ctx, meds); err != nil {
		return false, err
	}
	return true, nil
}

func (k *Cache) Store(ctx context.Context, meds []model.Medicine) error {
	if !k.enabled() {
		return nil
	}
	raw, err := jsonMarshal(meds)
	if err != nil {
		return fmt.Errorf("catalog.Store: %w", err)
	}
	if err := k.backend.Set(ctx, MedicinesKey, raw, k.ttl).Err(); err != nil {
		return fmt.Errorf("catalog.Store: %w", err)
	}
	return nil
}

// Invalidate 在藥品新增、修改、刪除或付款扣庫存後呼叫
func (k *Cache) Invalidate(ctx context.Context) error {
	if k == nil {
		return nil
	}
	k.gen.Add(1)
	if k.backend == nil {
		return nil
	}
	if err := k.backend.Del(ctx, MedicinesKey).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("catalog.Invalidate: %w", err)
	}
	return nil
}
