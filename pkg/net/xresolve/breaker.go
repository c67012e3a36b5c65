package xresolve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/omeyang/xaddr/pkg/net/xip"
)

// 默认熔断参数。
const (
	defaultBreakerName    = "xresolve"
	defaultFailures       = 5
	defaultOpenTimeout    = 30 * time.Second
	defaultHalfOpenProbes = 1
)

// BreakerOption 定义 [Breaker] 的可选配置。
type BreakerOption func(*breakerOptions)

type breakerOptions struct {
	name          string
	failures      uint32
	timeout       time.Duration
	onStateChange func(name string, from, to gobreaker.State)
}

// WithBreakerName 设置熔断器名称，出现在状态回调中。
func WithBreakerName(name string) BreakerOption {
	return func(o *breakerOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithFailureThreshold 设置触发熔断的连续失败次数。0 被忽略。
func WithFailureThreshold(n uint32) BreakerOption {
	return func(o *breakerOptions) {
		if n > 0 {
			o.failures = n
		}
	}
}

// WithOpenTimeout 设置打开状态持续时间，到期后进入半开状态。
func WithOpenTimeout(d time.Duration) BreakerOption {
	return func(o *breakerOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithStateChange 设置状态变化回调。
func WithStateChange(fn func(name string, from, to gobreaker.State)) BreakerOption {
	return func(o *breakerOptions) {
		o.onStateChange = fn
	}
}

// Breaker 在下游解析器连续失败后快速拒绝请求。
//
// 主机不存在与输入解析失败是确定性结果，不计为失败；
// 调用方取消也不计为失败，避免上游超时把健康的下游熔断。
type Breaker struct {
	next Resolver
	cb   *gobreaker.CircuitBreaker[Iterator]
}

// NewBreaker 创建熔断解析器，默认连续失败 5 次后打开 30s。
func NewBreaker(next Resolver, opts ...BreakerOption) *Breaker {
	o := &breakerOptions{
		name:     defaultBreakerName,
		failures: defaultFailures,
		timeout:  defaultOpenTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	failures := o.failures
	st := gobreaker.Settings{
		Name:        o.name,
		MaxRequests: defaultHalfOpenProbes,
		Timeout:     o.timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: countsAsSuccess,
	}
	if o.onStateChange != nil {
		st.OnStateChange = o.onStateChange
	}

	return &Breaker{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[Iterator](st),
	}
}

// Resolve 在熔断器允许时调用下游解析器。
// 熔断打开或半开探测已满时返回包装了 [ErrBreakerOpen] 的错误。
func (b *Breaker) Resolve(ctx context.Context, host string, port uint16) (Iterator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	it, err := b.cb.Execute(func() (Iterator, error) {
		return b.next.Resolve(ctx, host, port)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrBreakerOpen, err)
	}
	return it, err
}

// State 返回熔断器当前状态。
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

func countsAsSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, ErrHostNotFound) ||
		errors.Is(err, xip.ErrAddrParse) ||
		errors.Is(err, context.Canceled)
}
