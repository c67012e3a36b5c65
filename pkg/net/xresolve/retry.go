package xresolve

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v5"

	"github.com/omeyang/xaddr/pkg/net/xip"
)

// 默认重试参数。
const (
	defaultAttempts = 3
	defaultDelay    = 50 * time.Millisecond
	defaultMaxDelay = time.Second
)

// RetryOption 定义 [Retrying] 的可选配置。
type RetryOption func(*Retrying)

// WithAttempts 设置最大尝试次数（含首次）。0 被忽略。
func WithAttempts(n uint) RetryOption {
	return func(r *Retrying) {
		if n > 0 {
			r.attempts = n
		}
	}
}

// WithDelay 设置首次重试前的等待时间，之后按指数退避，上限 1s。
func WithDelay(d time.Duration) RetryOption {
	return func(r *Retrying) {
		if d >= 0 {
			r.delay = d
		}
	}
}

// WithOnRetry 设置每次重试前的回调，n 从 0 开始。
func WithOnRetry(fn func(n uint, err error)) RetryOption {
	return func(r *Retrying) {
		r.onRetry = fn
	}
}

// Retrying 对下游解析器的暂时性失败进行有限次重试。
type Retrying struct {
	next     Resolver
	attempts uint
	delay    time.Duration
	onRetry  func(n uint, err error)
}

// NewRetrying 创建重试解析器，默认最多尝试 3 次。
func NewRetrying(next Resolver, opts ...RetryOption) *Retrying {
	r := &Retrying{
		next:     next,
		attempts: defaultAttempts,
		delay:    defaultDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve 调用下游解析器，对可重试错误按指数退避重试。
// 返回最后一次尝试的错误；ctx 取消时停止等待。
func (r *Retrying) Resolve(ctx context.Context, host string, port uint16) (Iterator, error) {
	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.MaxDelay(defaultMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(Retryable),
	}
	if r.onRetry != nil {
		opts = append(opts, retry.OnRetry(r.onRetry))
	}
	return retry.NewWithData[Iterator](opts...).Do(func() (Iterator, error) {
		return r.next.Resolve(ctx, host, port)
	})
}

// Retryable 报告 err 是否值得重试。
// 主机不存在、输入解析失败、缺少解析器、熔断打开以及 ctx 结束均为确定性结果。
func Retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrHostNotFound),
		errors.Is(err, xip.ErrAddrParse),
		errors.Is(err, ErrNoResolver),
		errors.Is(err, ErrBreakerOpen),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return retry.IsRecoverable(err)
	}
}
