package xresolve

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/omeyang/xaddr/internal/addrparse"
	"github.com/omeyang/xaddr/pkg/net/xip"
	"github.com/omeyang/xaddr/pkg/net/xsock"
)

type targetKind uint8

const (
	kindSocket targetKind = iota
	kindString
	kindHostPort
)

// Target 是可转换为套接字地址的输入，按输入形态封闭分派。
//
// 零值表示字面量 0.0.0.0:0。*Target 与 Target 的分派结果完全一致。
type Target struct {
	kind targetKind
	addr xsock.SocketAddr
	host string
	port uint16
}

// FromSocketAddr 以套接字地址字面量构造 Target。
func FromSocketAddr(s xsock.SocketAddr) Target {
	return Target{kind: kindSocket, addr: s}
}

// FromSocketAddrV4 以 IPv4 套接字地址字面量构造 Target。
func FromSocketAddrV4(s xsock.SocketAddrV4) Target {
	return FromSocketAddr(xsock.FromV4(s))
}

// FromSocketAddrV6 以 IPv6 套接字地址字面量构造 Target。
func FromSocketAddrV6(s xsock.SocketAddrV6) Target {
	return FromSocketAddr(xsock.FromV6(s))
}

// FromIPPort 以 (地址, 端口) 对构造 Target。
func FromIPPort(ip xip.IPAddr, port uint16) Target {
	return FromSocketAddr(xsock.New(ip, port))
}

// FromIPv4Port 以 (IPv4 地址, 端口) 对构造 Target。
func FromIPv4Port(ip xip.IPv4Addr, port uint16) Target {
	return FromSocketAddr(xsock.FromV4(xsock.NewV4(ip, port)))
}

// FromIPv6Port 以 (IPv6 地址, 端口) 对构造 Target，flowinfo 与 scope id 为 0。
func FromIPv6Port(ip xip.IPv6Addr, port uint16) Target {
	return FromSocketAddr(xsock.FromV6(xsock.NewV6(ip, port, 0, 0)))
}

// FromString 以 "host:port" 文本构造 Target。文本在分派时才解析。
func FromString(s string) Target {
	return Target{kind: kindString, host: s}
}

// FromHostPort 以 (主机文本, 端口) 对构造 Target。
func FromHostPort(host string, port uint16) Target {
	return Target{kind: kindHostPort, host: host, port: port}
}

// IsLiteral 报告 Target 是否为已知地址的字面量形态。
// 文本形态只有在分派时才能确定是否需要解析器，因此总是返回 false。
func (t Target) IsLiteral() bool {
	return t.kind == kindSocket
}

// String 返回 Target 的文本表示，用于日志与诊断。
func (t Target) String() string {
	switch t.kind {
	case kindString:
		return t.host
	case kindHostPort:
		return net.JoinHostPort(t.host, strconv.Itoa(int(t.port)))
	default:
		return t.addr.String()
	}
}

// SocketAddrs 将 Target 转换为套接字地址序列。规则按顺序应用：
//
//  1. 字面量地址或 (地址, 端口) 对：直接得到该地址，不调用解析器
//  2. 文本整体可解析为套接字地址字面量：得到该地址
//  3. 文本按最后一个 ':' 拆分，后缀必须是合法端口，否则返回解析错误；
//     前缀与端口交给解析器
//  4. (主机文本, 端口) 对中主机文本是 IPv4 或 IPv6 字面量：得到该地址
//  5. 其余情况交给解析器
//
// 需要解析器而 r 为 nil 时返回 [ErrNoResolver]。
func (t Target) SocketAddrs(ctx context.Context, r Resolver) (Addrs, error) {
	switch t.kind {
	case kindString:
		return dispatchString(ctx, r, t.host)
	case kindHostPort:
		return dispatchHostPort(ctx, r, t.host, t.port)
	default:
		return One(t.addr), nil
	}
}

func dispatchString(ctx context.Context, r Resolver, text string) (Addrs, error) {
	if s, err := xsock.Parse(text); err == nil {
		return One(s), nil
	}
	i := strings.LastIndexByte(text, ':')
	if i < 0 {
		return Addrs{}, xip.NewParseError(xip.KindSocket, text)
	}
	port, err := xsock.ParsePort(text[i+1:])
	if err != nil {
		return Addrs{}, err
	}
	return lookup(ctx, r, text[:i], port)
}

func dispatchHostPort(ctx context.Context, r Resolver, host string, port uint16) (Addrs, error) {
	if b, ok := addrparse.IPv4(host); ok {
		return One(xsock.FromV4(xsock.NewV4(xip.IPv4Addr(b), port))), nil
	}
	if b, ok := addrparse.IPv6(host); ok {
		return One(xsock.FromV6(xsock.NewV6(xip.IPv6Addr(b), port, 0, 0))), nil
	}
	return lookup(ctx, r, host, port)
}

func lookup(ctx context.Context, r Resolver, host string, port uint16) (Addrs, error) {
	if r == nil {
		return Addrs{}, fmt.Errorf("%w: %q", ErrNoResolver, host)
	}
	it, err := r.Resolve(ctx, host, port)
	if err != nil {
		return Addrs{}, err
	}
	return Many(it), nil
}
