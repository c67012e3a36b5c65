package xresolve

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xaddr/pkg/net/xip"
	"github.com/omeyang/xaddr/pkg/net/xsock"
)

const testYAML = `
system: false
hosts:
  - name: db.internal
    addrs: ["10.0.0.5", "fd00::5"]
  - name: cache
    addrs: ["192.168.1.9"]
cache:
  size: 128
  ttl: 30s
retry:
  attempts: 3
  delay: 5ms
breaker:
  failures: 4
  timeout: 10s
`

const testJSON = `{
  "hosts": [{"name": "db.internal", "addrs": ["10.0.0.5"]}],
  "cache": {"size": 8}
}`

func TestLoadConfig_YAML(t *testing.T) {
	cfg, err := LoadConfig([]byte(testYAML), FormatYAML)
	require.NoError(t, err)

	assert.False(t, cfg.System)
	require.Len(t, cfg.Hosts, 2)
	assert.Equal(t, HostEntry{Name: "db.internal", Addrs: []string{"10.0.0.5", "fd00::5"}}, cfg.Hosts[0])
	assert.Equal(t, CacheConfig{Size: 128, TTL: 30 * time.Second}, cfg.Cache)
	assert.Equal(t, RetryConfig{Attempts: 3, Delay: 5 * time.Millisecond}, cfg.Retry)
	assert.Equal(t, BreakerConfig{Failures: 4, Timeout: 10 * time.Second}, cfg.Breaker)
}

func TestLoadConfig_JSON(t *testing.T) {
	cfg, err := LoadConfig([]byte(testJSON), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []HostEntry{{Name: "db.internal", Addrs: []string{"10.0.0.5"}}}, cfg.Hosts)
	assert.Equal(t, 8, cfg.Cache.Size)
	assert.Zero(t, cfg.Retry)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"bad_format", testYAML, Format("toml")},
		{"bad_yaml", "hosts: [", FormatYAML},
		{"bad_json", "{", FormatJSON},
		{"negative_size", "cache:\n  size: -1\n", FormatYAML},
		{"negative_ttl", "cache:\n  ttl: -1s\n", FormatYAML},
		{"empty_host_name", "hosts:\n  - addrs: [\"10.0.0.1\"]\n", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.data), tt.format)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	cfg, err := LoadConfig(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolver.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Hosts, 2)

	_, err = LoadConfigFile(filepath.Join(dir, "resolver.toml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

// ============================================================================
// BuildResolver
// ============================================================================

func TestBuildResolver_Empty(t *testing.T) {
	r, err := BuildResolver(Config{})
	require.NoError(t, err)
	assert.Nil(t, r)

	// 没有解析器时只能分派字面量
	addrs, err := ToSocketAddrs(context.Background(), r, "127.0.0.1:80")
	require.NoError(t, err)
	assert.True(t, addrs.IsLiteral())
	_, err = ToSocketAddrs(context.Background(), r, "db.internal:80")
	assert.ErrorIs(t, err, ErrNoResolver)
}

func TestBuildResolver_FullChain(t *testing.T) {
	cfg, err := LoadConfig([]byte(testYAML), FormatYAML)
	require.NoError(t, err)

	var buf bytes.Buffer
	mp, _ := newTestMeterProvider()
	defer func() { _ = mp.Shutdown(context.Background()) }()

	r, err := BuildResolver(cfg, WithLogger(newBufferLogger(&buf)), WithMeterProvider(mp))
	require.NoError(t, err)

	logged, ok := r.(*Logged)
	require.True(t, ok, "日志层位于最外层")
	inst, ok := logged.next.(*Instrumented)
	require.True(t, ok)
	cached, ok := inst.next.(*Cached)
	require.True(t, ok)
	retrying, ok := cached.next.(*Retrying)
	require.True(t, ok)
	assert.Equal(t, uint(3), retrying.attempts)
	assert.Equal(t, 5*time.Millisecond, retrying.delay)
	breaker, ok := retrying.next.(*Breaker)
	require.True(t, ok)
	_, ok = breaker.next.(*Static)
	require.True(t, ok)

	ctx := context.Background()
	addrs, err := ToSocketAddrs(ctx, r, "DB.internal:5432")
	require.NoError(t, err)
	assert.Equal(t, []xsock.SocketAddr{
		xsock.MustParse("10.0.0.5:5432"),
		xsock.MustParse("[fd00::5]:5432"),
	}, Collect(&addrs))

	_, err = ToSocketAddrs(ctx, r, HostPort{Host: "nope", Port: 1})
	assert.ErrorIs(t, err, ErrHostNotFound)

	assert.Len(t, decodeLogLines(t, &buf), 2)
	assert.Equal(t, 1, cached.Len())
}

func TestBuildResolver_Minimal(t *testing.T) {
	r, err := BuildResolver(Config{Hosts: []HostEntry{{Name: "a", Addrs: []string{"10.0.0.1"}}}})
	require.NoError(t, err)
	_, ok := r.(*Static)
	assert.True(t, ok, "未启用中间件时直接返回基础解析器")

	r, err = BuildResolver(Config{System: true})
	require.NoError(t, err)
	_, ok = r.(*NetResolver)
	assert.True(t, ok)

	r, err = BuildResolver(Config{
		System: true,
		Hosts:  []HostEntry{{Name: "a", Addrs: []string{"10.0.0.1"}}},
	})
	require.NoError(t, err)
	it, err := r.Resolve(context.Background(), "a", 1)
	require.NoError(t, err)
	assert.Equal(t, []xsock.SocketAddr{xsock.New(xip.MustParseIP("10.0.0.1"), 1)}, Collect(it))
}

func TestBuildResolver_Invalid(t *testing.T) {
	_, err := BuildResolver(Config{Hosts: []HostEntry{{Name: "a", Addrs: []string{"not-an-ip"}}}})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, xip.ErrAddrParse)

	_, err = BuildResolver(Config{Cache: CacheConfig{Size: -1}})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
