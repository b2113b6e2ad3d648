// Package cache 提供带过期时间和版本校验的键值缓存
// 所有读写都是尽力而为：失败一律按未命中处理，不向调用方返回错误
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// 常用过期时间
const (
	TTLShort    = 2 * time.Minute
	TTLMedium   = 5 * time.Minute
	TTLLong     = 15 * time.Minute
	TTLVeryLong = time.Hour
)

// 缓存键
const (
	KeyDashboard  = "dashboard"
	KeyCategories = "categories"
	KeyIncome     = "income"
	KeySavings    = "savings_goals"
	KeyDebts      = "debts"
)

// Cache 缓存接口
type Cache interface {
	// Get 读取缓存并解码到 dest，未命中、过期或版本不符时返回 false
	Get(ctx context.Context, key string, dest any) bool
	// Set 写入缓存
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	// Clear 删除单个键
	Clear(ctx context.Context, key string)
	// ClearAll 删除当前前缀下的所有键
	ClearAll(ctx context.Context)
}

// entry 缓存条目，时间单位为毫秒
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	Version   string          `json:"version"`
	TTL       int64           `json:"ttl"`
}

func encode(value any, ttl time.Duration, version string, now time.Time) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(entry{
		Data:      data,
		Timestamp: now.UnixMilli(),
		Version:   version,
		TTL:       ttl.Milliseconds(),
	})
}

// decode 返回 false 表示条目应被删除
func decode(raw []byte, version string, now time.Time, dest any) bool {
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return false
	}
	if now.UnixMilli()-e.Timestamp > e.TTL || e.Version != version {
		return false
	}
	return json.Unmarshal(e.Data, dest) == nil
}
