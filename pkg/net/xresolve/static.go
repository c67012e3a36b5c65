package xresolve

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go4.org/netipx"

	"github.com/omeyang/xaddr/pkg/net/xip"
	"github.com/omeyang/xaddr/pkg/net/xsock"
)

// Static 是内存主机表解析器，主机名大小写不敏感。
// 构造后只读，可并发使用。
type Static struct {
	hosts map[string][]xip.IPAddr
}

// NewStatic 以主机表构造解析器。输入会被复制，主机名统一转为小写；
// 同名主机（忽略大小写）的地址按出现顺序合并。
func NewStatic(hosts map[string][]xip.IPAddr) *Static {
	s := &Static{hosts: make(map[string][]xip.IPAddr, len(hosts))}
	for _, name := range slices.Sorted(maps.Keys(hosts)) {
		key := strings.ToLower(name)
		s.hosts[key] = append(s.hosts[key], hosts[name]...)
	}
	return s
}

// ParseStatic 以文本主机表构造解析器，地址按严格语法解析。
func ParseStatic(table map[string][]string) (*Static, error) {
	hosts := make(map[string][]xip.IPAddr, len(table))
	for name, texts := range table {
		if name == "" {
			return nil, fmt.Errorf("%w: empty host name", ErrInvalidConfig)
		}
		ips := make([]xip.IPAddr, 0, len(texts))
		for _, text := range texts {
			ip, err := xip.ParseIP(text)
			if err != nil {
				return nil, fmt.Errorf("%w: host %q: %w", ErrInvalidConfig, name, err)
			}
			ips = append(ips, ip)
		}
		hosts[name] = ips
	}
	return NewStatic(hosts), nil
}

// Resolve 返回主机表中 host 的全部地址，端口统一为 port。
// 未登记或没有地址的主机返回 [ErrHostNotFound]。
func (s *Static) Resolve(ctx context.Context, host string, port uint16) (Iterator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ips := s.hosts[strings.ToLower(host)]
	if len(ips) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrHostNotFound, host)
	}
	out := make([]xsock.SocketAddr, len(ips))
	for i, ip := range ips {
		out[i] = xsock.New(ip, port)
	}
	return NewSliceIter(out), nil
}

// Hosts 返回已登记的主机名（小写，升序）。
func (s *Static) Hosts() []string {
	return slices.Sorted(maps.Keys(s.hosts))
}

// HostsIn 返回至少有一个地址落在 r 内的主机名（小写，升序）。
func (s *Static) HostsIn(r netipx.IPRange) []string {
	var out []string
	for _, name := range s.Hosts() {
		if slices.ContainsFunc(s.hosts[name], func(ip xip.IPAddr) bool {
			return xip.RangeContains(r, ip)
		}) {
			out = append(out, name)
		}
	}
	return out
}
