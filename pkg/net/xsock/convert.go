package xsock

import (
	"fmt"
	"math"
	"net"
	"net/netip"
	"strconv"

	"github.com/omeyang/xaddr/internal/addrparse"
	"github.com/omeyang/xaddr/pkg/net/xip"
)

const maxScopeIDDigits = 10

// FromAddrPort 从 [netip.AddrPort] 转换。
// Is4 地址得到 IPv4 变体，其余得到 IPv6 变体；十进制 zone 转为 scope id，
// 非数字 zone 返回 [xip.ErrZone]。无效的零值返回 [xip.ErrAddrParse]。
func FromAddrPort(ap netip.AddrPort) (SocketAddr, error) {
	addr := ap.Addr()
	ip, ok := xip.FromNetip(addr)
	if !ok {
		return SocketAddr{}, xip.NewParseError(xip.KindSocket, ap.String())
	}
	if ip.IsIPv4() {
		return New(ip, ap.Port()), nil
	}
	scopeID, err := zoneToScopeID(addr.Zone())
	if err != nil {
		return SocketAddr{}, err
	}
	v6, _ := ip.As6()
	return FromV6(NewV6(v6, ap.Port(), 0, scopeID)), nil
}

// AddrPort 返回对应的 [netip.AddrPort]；非零 scope id 以十进制 zone 表示。
// flowinfo 没有对应字段，被丢弃。
func (s SocketAddr) AddrPort() netip.AddrPort {
	addr := s.IP().Netip()
	if s.is6 && s.v6.scopeID != 0 {
		addr = addr.WithZone(strconv.FormatUint(uint64(s.v6.scopeID), 10))
	}
	return netip.AddrPortFrom(addr, s.Port())
}

// FromUDPAddr 从 [*net.UDPAddr] 转换，规则同 [FromAddrPort]。
// 16 字节形式的 IPv4 地址得到 IPv4 变体。
func FromUDPAddr(a *net.UDPAddr) (SocketAddr, error) {
	if a == nil {
		return SocketAddr{}, fmt.Errorf("%w: nil *net.UDPAddr", xip.ErrAddrParse)
	}
	return fromStd(a.IP, a.Port, a.Zone)
}

// FromTCPAddr 从 [*net.TCPAddr] 转换，规则同 [FromUDPAddr]。
func FromTCPAddr(a *net.TCPAddr) (SocketAddr, error) {
	if a == nil {
		return SocketAddr{}, fmt.Errorf("%w: nil *net.TCPAddr", xip.ErrAddrParse)
	}
	return fromStd(a.IP, a.Port, a.Zone)
}

func fromStd(stdIP net.IP, port int, zone string) (SocketAddr, error) {
	ip, ok := xip.FromStdIP(stdIP)
	if !ok {
		return SocketAddr{}, fmt.Errorf("%w: invalid IP length %d", xip.ErrAddrParse, len(stdIP))
	}
	if port < 0 || port > math.MaxUint16 {
		return SocketAddr{}, fmt.Errorf("%w: port %d out of range", xip.ErrAddrParse, port)
	}
	if ip.IsIPv4() {
		return New(ip, uint16(port)), nil
	}
	scopeID, err := zoneToScopeID(zone)
	if err != nil {
		return SocketAddr{}, err
	}
	v6, _ := ip.As6()
	return FromV6(NewV6(v6, uint16(port), 0, scopeID)), nil
}

// UDPAddr 返回新分配的 [*net.UDPAddr]。
func (s SocketAddr) UDPAddr() *net.UDPAddr {
	return &net.UDPAddr{IP: s.IP().StdIP(), Port: int(s.Port()), Zone: s.zone()}
}

// TCPAddr 返回新分配的 [*net.TCPAddr]。
func (s SocketAddr) TCPAddr() *net.TCPAddr {
	return &net.TCPAddr{IP: s.IP().StdIP(), Port: int(s.Port()), Zone: s.zone()}
}

func (s SocketAddr) zone() string {
	if !s.is6 || s.v6.scopeID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(s.v6.scopeID), 10)
}

func zoneToScopeID(zone string) (uint32, error) {
	if zone == "" {
		return 0, nil
	}
	v, ok := addrparse.Decimal(zone, maxScopeIDDigits, math.MaxUint32)
	if !ok {
		return 0, fmt.Errorf("%w: %q", xip.ErrZone, zone)
	}
	return uint32(v), nil
}
