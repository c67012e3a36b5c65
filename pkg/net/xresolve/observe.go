package xresolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/omeyang/xaddr/xresolve"

	metricLookupTotal    = "xresolve.lookup.total"
	metricLookupDuration = "xresolve.lookup.duration"
)

// 查询结果状态，作为日志字段与指标属性。
const (
	StatusOK          = "ok"
	StatusNotFound    = "not_found"
	StatusBreakerOpen = "breaker_open"
	StatusCanceled    = "canceled"
	StatusError       = "error"
)

type observeConfig struct {
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option 定义可观测性中间件与 [BuildResolver] 共用的配置选项。
type Option func(*observeConfig)

// WithLogger 设置日志记录器。
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *observeConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithTracerProvider 设置 TracerProvider。
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *observeConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// WithMeterProvider 设置 MeterProvider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *observeConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

func applyOptions(opts []Option) *observeConfig {
	cfg := &observeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Status 将解析错误归类为状态字符串。
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrHostNotFound):
		return StatusNotFound
	case errors.Is(err, ErrBreakerOpen):
		return StatusBreakerOpen
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	default:
		return StatusError
	}
}

// =============================================================================
// 日志
// =============================================================================

// Logged 为每次查询输出一条结构化日志：成功为 Debug，主机不存在为 Info，其余失败为 Warn。
type Logged struct {
	next   Resolver
	logger *slog.Logger
}

// NewLogged 创建日志解析器。未设置 [WithLogger] 时使用 slog.Default()。
func NewLogged(next Resolver, opts ...Option) *Logged {
	cfg := applyOptions(opts)
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Logged{next: next, logger: logger}
}

// Resolve 调用下游解析器并记录结果。
func (l *Logged) Resolve(ctx context.Context, host string, port uint16) (Iterator, error) {
	start := time.Now()
	it, err := l.next.Resolve(ctx, host, port)
	status := Status(err)

	attrs := []slog.Attr{
		slog.String("host", host),
		slog.Int("port", int(port)),
		slog.String("status", status),
		slog.Duration("elapsed", time.Since(start)),
	}
	switch status {
	case StatusOK:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "xresolve: resolved", attrs...)
	case StatusNotFound:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "xresolve: host not found", attrs...)
	default:
		attrs = append(attrs, slog.Any("error", err))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "xresolve: resolve failed", attrs...)
	}
	return it, err
}

// =============================================================================
// 指标与追踪
// =============================================================================

// Instrumented 为每次查询记录 OpenTelemetry 计数、耗时与 span。
// 指标携带 status 属性，取值见 [Status]。
type Instrumented struct {
	next     Resolver
	tracer   trace.Tracer
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewInstrumented 创建指标解析器。未设置 provider 时使用 otel 全局 provider。
func NewInstrumented(next Resolver, opts ...Option) (*Instrumented, error) {
	cfg := applyOptions(opts)
	tp := cfg.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	mp := cfg.meterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	meter := mp.Meter(instrumentationName)
	total, err := meter.Int64Counter(
		metricLookupTotal,
		metric.WithDescription("total resolver lookups"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xresolve: create counter failed: %w", err)
	}
	duration, err := meter.Float64Histogram(
		metricLookupDuration,
		metric.WithDescription("resolver lookup duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("xresolve: create histogram failed: %w", err)
	}

	return &Instrumented{
		next:     next,
		tracer:   tp.Tracer(instrumentationName),
		total:    total,
		duration: duration,
	}, nil
}

// Resolve 调用下游解析器并记录指标。
func (i *Instrumented) Resolve(ctx context.Context, host string, port uint16) (Iterator, error) {
	ctx, span := i.tracer.Start(ctx, "xresolve.Resolve",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("server.address", host),
			attribute.Int("server.port", int(port)),
		),
	)
	defer span.End()

	start := time.Now()
	it, err := i.next.Resolve(ctx, host, port)
	elapsed := time.Since(start)

	status := Status(err)
	attrs := metric.WithAttributes(attribute.String("status", status))
	i.total.Add(ctx, 1, attrs)
	i.duration.Record(ctx, elapsed.Seconds(), attrs)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
	}
	return it, err
}
