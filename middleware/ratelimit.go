package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// slidingWindow 按客户端 IP 记录窗口内的请求时间
type slidingWindow struct {
	mu     sync.Mutex
	window time.Duration
	limit  int
	hits   map[string][]time.Time
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	return &slidingWindow{window: window, limit: limit, hits: make(map[string][]time.Time)}
}

// prune 移除窗口外的记录，原地复用切片
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// allow 未超限时记录本次请求并返回 true
func (w *slidingWindow) allow(key string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	ts := prune(w.hits[key], now.Add(-w.window))
	if len(ts) >= w.limit {
		w.hits[key] = ts
		return false
	}
	w.hits[key] = append(ts, now)
	return true
}

func (w *slidingWindow) sweep(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	cutoff := now.Add(-w.window)
	for key, ts := range w.hits {
		if ts = prune(ts, cutoff); len(ts) == 0 {
			delete(w.hits, key)
		} else {
			w.hits[key] = ts
		}
	}
}

// RateLimit 限流中间件
// 每个 IP 在 window 内最多 maxAttempts 次请求，超过返回 429
func RateLimit(maxAttempts int, window time.Duration, message string) gin.HandlerFunc {
	sw := newSlidingWindow(maxAttempts, window)
	// 定期清理过期数据
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			sw.sweep(now)
		}
	}()

	return func(c *gin.Context) {
		if !sw.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": message,
			})
			return
		}
		c.Next()
	}
}
