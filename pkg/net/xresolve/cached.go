package xresolve

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/omeyang/xaddr/pkg/net/xsock"
)

const (
	// maxCacheSize 缓存最大条目数上限。
	maxCacheSize = 1 << 24
	// defaultLoadTimeout 合并后的下游解析的默认超时时间。
	defaultLoadTimeout = 10 * time.Second
)

type cacheKey struct {
	host string
	port uint16
}

type cacheEntry struct {
	addrs   []xsock.SocketAddr
	expires time.Time
}

// CacheOption 定义 [Cached] 的可选配置。
type CacheOption func(*Cached)

// WithTTL 设置条目存活时间。0 表示永不过期，负值被忽略。
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cached) {
		if ttl >= 0 {
			c.ttl = ttl
		}
	}
}

// WithLoadTimeout 设置合并后的下游解析超时时间。0 表示不设超时，负值被忽略。
func WithLoadTimeout(d time.Duration) CacheOption {
	return func(c *Cached) {
		if d >= 0 {
			c.loadTimeout = d
		}
	}
}

// WithClock 替换时间源，用于测试。
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cached) {
		if now != nil {
			c.now = now
		}
	}
}

// Cached 以 LRU 缓存解析结果，并合并同一 (host, port) 的并发未命中。
//
// 设计决策: 使用不带后台清理协程的 lru.Cache，过期在读取时惰性判断，
// 中间件不持有任何 goroutine，无需 Close。
// 失败结果不缓存。
// 合并后的下游解析运行在脱离取消链的 ctx 上（保留 ctx 中的值，受 loadTimeout 约束），
// 每个调用方只按自己的 ctx 放弃等待，不影响其他等待者。
type Cached struct {
	next        Resolver
	cache       *lru.Cache[cacheKey, cacheEntry]
	ttl         time.Duration
	loadTimeout time.Duration
	now         func() time.Time
	sf          singleflight.Group
}

// NewCached 创建缓存解析器。size 必须在 (0, 16777216] 范围内。
func NewCached(next Resolver, size int, opts ...CacheOption) (*Cached, error) {
	if size <= 0 || size > maxCacheSize {
		return nil, fmt.Errorf("%w: cache size %d out of range", ErrInvalidConfig, size)
	}
	cache, err := lru.New[cacheKey, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("xresolve: create cache failed: %w", err)
	}
	c := &Cached{
		next:        next,
		cache:       cache,
		loadTimeout: defaultLoadTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Resolve 优先返回未过期的缓存结果，未命中时调用下游解析器。
// 返回的迭代器只读共享缓存中的切片。
func (c *Cached) Resolve(ctx context.Context, host string, port uint16) (Iterator, error) {
	key := cacheKey{host: strings.ToLower(host), port: port}
	if addrs, ok := c.get(key); ok {
		return NewSliceIter(addrs), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := c.sf.DoChan(key.host+"|"+strconv.Itoa(int(port)), func() (any, error) {
		// 双重检查：等待期间其他调用可能已写入
		if addrs, ok := c.get(key); ok {
			return addrs, nil
		}
		loadCtx, cancel := c.loadContext(ctx)
		defer cancel()
		return c.load(loadCtx, key, host, port)
	})

	select {
	case <-ctx.Done():
		// 下游解析继续进行，结果供其他等待者使用并写入缓存
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		addrs, _ := res.Val.([]xsock.SocketAddr)
		return NewSliceIter(addrs), nil
	}
}

// loadContext 脱离 ctx 的取消链，并按 loadTimeout 设置独立超时。
func (c *Cached) loadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if c.loadTimeout == 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, c.loadTimeout)
}

func (c *Cached) load(ctx context.Context, key cacheKey, host string, port uint16) ([]xsock.SocketAddr, error) {
	it, err := c.next.Resolve(ctx, host, port)
	if err != nil {
		return nil, err
	}
	addrs := Collect(it)
	entry := cacheEntry{addrs: addrs}
	if c.ttl > 0 {
		entry.expires = c.now().Add(c.ttl)
	}
	c.cache.Add(key, entry)
	return addrs, nil
}

func (c *Cached) get(key cacheKey) ([]xsock.SocketAddr, bool) {
	entry, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	if !entry.expires.IsZero() && !c.now().Before(entry.expires) {
		c.cache.Remove(key)
		return nil, false
	}
	return entry.addrs, true
}

// Len 返回缓存条目数（含尚未淘汰的过期条目）。
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Purge 清空缓存。
func (c *Cached) Purge() {
	c.cache.Purge()
}
