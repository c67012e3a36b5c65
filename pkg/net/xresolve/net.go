package xresolve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/omeyang/xaddr/pkg/net/xsock"
)

// NetResolver 通过 [net.Resolver] 使用平台解析能力。
type NetResolver struct {
	r *net.Resolver
}

// NewNetResolver 创建平台解析器。r 为 nil 时使用 [net.DefaultResolver]。
func NewNetResolver(r *net.Resolver) *NetResolver {
	if r == nil {
		r = net.DefaultResolver
	}
	return &NetResolver{r: r}
}

// Resolve 查询 host 的全部 IP 地址。
// 平台报告"不存在"时返回包装了 [ErrHostNotFound] 的错误。
// 非数字 zone 无法表示为 scope id，该地址以 scope id 0 返回。
func (n *NetResolver) Resolve(ctx context.Context, host string, port uint16) (Iterator, error) {
	ips, err := n.r.LookupNetIP(ctx, "ip", host)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return nil, fmt.Errorf("%w: %w", ErrHostNotFound, err)
		}
		return nil, fmt.Errorf("xresolve: lookup %s: %w", host, err)
	}
	out := make([]xsock.SocketAddr, 0, len(ips))
	for _, ip := range ips {
		// 平台可能以 ::ffff:a.b.c.d 形式返回 IPv4 结果
		ip = ip.Unmap()
		s, err := xsock.FromAddrPort(netip.AddrPortFrom(ip, port))
		if err != nil {
			s, err = xsock.FromAddrPort(netip.AddrPortFrom(ip.WithZone(""), port))
			if err != nil {
				continue
			}
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrHostNotFound, host)
	}
	return NewSliceIter(out), nil
}
