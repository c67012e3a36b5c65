package xresolve

import (
	"context"
	"errors"
	"fmt"
)

// Middleware 包装一个解析器并返回新的解析器。
type Middleware func(Resolver) Resolver

// Chain 以 mws 依次包装 base。mws[0] 位于最外层，最先看到请求。
func Chain(base Resolver, mws ...Middleware) Resolver {
	r := base
	for i := len(mws) - 1; i >= 0; i-- {
		r = mws[i](r)
	}
	return r
}

// Fallback 按顺序尝试各解析器，仅在 [ErrHostNotFound] 时转向下一个。
// 其他错误立即返回。所有解析器都报告不存在时返回最后一个错误。
func Fallback(rs ...Resolver) Resolver {
	return ResolverFunc(func(ctx context.Context, host string, port uint16) (Iterator, error) {
		err := fmt.Errorf("%w: %s", ErrHostNotFound, host)
		for _, r := range rs {
			var it Iterator
			it, err = r.Resolve(ctx, host, port)
			if err == nil {
				return it, nil
			}
			if !errors.Is(err, ErrHostNotFound) {
				return nil, err
			}
		}
		return nil, err
	})
}
