package xresolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 描述解析器链的组成。零值表示仅支持字面量（不构造解析器）。
//
// YAML 示例:
//
//	system: true
//	hosts:
//	  - name: db.internal
//	    addrs: ["10.0.0.5", "fd00::5"]
//	cache:
//	  size: 1024
//	  ttl: 30s
//	retry:
//	  attempts: 3
//	  delay: 50ms
//	breaker:
//	  failures: 5
//	  timeout: 30s
type Config struct {
	// System 为 true 时在静态主机表之后回退到平台解析器。
	System bool `koanf:"system"`

	// Hosts 静态主机表，优先于平台解析器。
	Hosts []HostEntry `koanf:"hosts"`

	Cache   CacheConfig   `koanf:"cache"`
	Retry   RetryConfig   `koanf:"retry"`
	Breaker BreakerConfig `koanf:"breaker"`
}

// HostEntry 是静态主机表的一项。
type HostEntry struct {
	Name  string   `koanf:"name"`
	Addrs []string `koanf:"addrs"`
}

// CacheConfig 缓存配置。Size 为 0 时不启用缓存。
type CacheConfig struct {
	Size int           `koanf:"size"`
	TTL  time.Duration `koanf:"ttl"`
}

// RetryConfig 重试配置。Attempts 不大于 1 时不启用重试。
type RetryConfig struct {
	Attempts uint          `koanf:"attempts"`
	Delay    time.Duration `koanf:"delay"`
}

// BreakerConfig 熔断配置。Failures 为 0 时不启用熔断。
type BreakerConfig struct {
	Failures uint32        `koanf:"failures"`
	Timeout  time.Duration `koanf:"timeout"`
}

// Validate 检查配置取值范围。
func (c Config) Validate() error {
	if c.Cache.Size < 0 || c.Cache.Size > maxCacheSize {
		return fmt.Errorf("%w: cache.size %d out of range", ErrInvalidConfig, c.Cache.Size)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl must not be negative", ErrInvalidConfig)
	}
	if c.Retry.Delay < 0 {
		return fmt.Errorf("%w: retry.delay must not be negative", ErrInvalidConfig)
	}
	if c.Breaker.Timeout < 0 {
		return fmt.Errorf("%w: breaker.timeout must not be negative", ErrInvalidConfig)
	}
	for i, h := range c.Hosts {
		if h.Name == "" {
			return fmt.Errorf("%w: hosts[%d].name is empty", ErrInvalidConfig, i)
		}
	}
	return nil
}

// LoadConfig 从字节数据加载配置。空数据得到零值配置。
func LoadConfig(data []byte, format Format) (Config, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return Config{}, fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, format)
	}

	var cfg Config
	if len(data) == 0 {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile 从文件加载配置，格式由扩展名决定（.yaml/.yml/.json）。
func LoadConfigFile(path string) (Config, error) {
	var format Format
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return Config{}, fmt.Errorf("%w: unknown extension %q", ErrInvalidConfig, ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("xresolve: read config: %w", err)
	}
	return LoadConfig(data, format)
}

// BuildResolver 按配置组装解析器链，从外到内依次为：
// 日志、指标、缓存、重试、熔断、基础解析器（静态主机表 → 平台解析器）。
//
// 日志层仅在设置 [WithLogger] 时启用，指标层仅在设置 [WithMeterProvider] 时启用。
// 配置中没有任何解析来源时返回 nil 解析器与 nil 错误，此时只能分派字面量。
func BuildResolver(cfg Config, opts ...Option) (Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var bases []Resolver
	if len(cfg.Hosts) > 0 {
		table := make(map[string][]string, len(cfg.Hosts))
		for _, h := range cfg.Hosts {
			table[h.Name] = append(table[h.Name], h.Addrs...)
		}
		static, err := ParseStatic(table)
		if err != nil {
			return nil, err
		}
		bases = append(bases, static)
	}
	if cfg.System {
		bases = append(bases, NewNetResolver(nil))
	}

	var r Resolver
	switch len(bases) {
	case 0:
		return nil, nil
	case 1:
		r = bases[0]
	default:
		r = Fallback(bases...)
	}

	if cfg.Breaker.Failures > 0 {
		r = NewBreaker(r,
			WithFailureThreshold(cfg.Breaker.Failures),
			WithOpenTimeout(cfg.Breaker.Timeout),
		)
	}
	if cfg.Retry.Attempts > 1 {
		retryOpts := []RetryOption{WithAttempts(cfg.Retry.Attempts)}
		if cfg.Retry.Delay > 0 {
			retryOpts = append(retryOpts, WithDelay(cfg.Retry.Delay))
		}
		r = NewRetrying(r, retryOpts...)
	}
	if cfg.Cache.Size > 0 {
		cached, err := NewCached(r, cfg.Cache.Size, WithTTL(cfg.Cache.TTL))
		if err != nil {
			return nil, err
		}
		r = cached
	}

	obs := applyOptions(opts)
	if obs.meterProvider != nil {
		inst, err := NewInstrumented(r, opts...)
		if err != nil {
			return nil, err
		}
		r = inst
	}
	if obs.logger != nil {
		r = NewLogged(r, opts...)
	}
	return r, nil
}
