package xsock

import (
	"cmp"

	"github.com/omeyang/xaddr/pkg/net/xip"
)

// SocketAddrV4 是 IPv4 套接字地址。
type SocketAddrV4 struct {
	ip   xip.IPv4Addr
	port uint16
}

// NewV4 构造 IPv4 套接字地址。
func NewV4(ip xip.IPv4Addr, port uint16) SocketAddrV4 {
	return SocketAddrV4{ip: ip, port: port}
}

// IP 返回地址部分。
func (s SocketAddrV4) IP() xip.IPv4Addr { return s.ip }

// SetIP 替换地址部分。
func (s *SocketAddrV4) SetIP(ip xip.IPv4Addr) { s.ip = ip }

// Port 返回端口。
func (s SocketAddrV4) Port() uint16 { return s.port }

// SetPort 替换端口。
func (s *SocketAddrV4) SetPort(port uint16) { s.port = port }

// Compare 先比较地址再比较端口。
func (s SocketAddrV4) Compare(other SocketAddrV4) int {
	if c := s.ip.Compare(other.ip); c != 0 {
		return c
	}
	return cmp.Compare(s.port, other.port)
}

// SocketAddrV6 是 IPv6 套接字地址。
//
// flowinfo 与 scope id 对应 sockaddr_in6 的 sin6_flowinfo 与 sin6_scope_id。
type SocketAddrV6 struct {
	ip       xip.IPv6Addr
	port     uint16
	flowInfo uint32
	scopeID  uint32
}

// NewV6 构造 IPv6 套接字地址。
func NewV6(ip xip.IPv6Addr, port uint16, flowInfo, scopeID uint32) SocketAddrV6 {
	return SocketAddrV6{ip: ip, port: port, flowInfo: flowInfo, scopeID: scopeID}
}

// IP 返回地址部分。
func (s SocketAddrV6) IP() xip.IPv6Addr { return s.ip }

// SetIP 替换地址部分。
func (s *SocketAddrV6) SetIP(ip xip.IPv6Addr) { s.ip = ip }

// Port 返回端口。
func (s SocketAddrV6) Port() uint16 { return s.port }

// SetPort 替换端口。
func (s *SocketAddrV6) SetPort(port uint16) { s.port = port }

// FlowInfo 返回流标签信息。
func (s SocketAddrV6) FlowInfo() uint32 { return s.flowInfo }

// SetFlowInfo 替换流标签信息。
func (s *SocketAddrV6) SetFlowInfo(flowInfo uint32) { s.flowInfo = flowInfo }

// ScopeID 返回 scope id，0 表示未指定。
func (s SocketAddrV6) ScopeID() uint32 { return s.scopeID }

// SetScopeID 替换 scope id。
func (s *SocketAddrV6) SetScopeID(scopeID uint32) { s.scopeID = scopeID }

// Compare 依次比较地址、端口、flowinfo 与 scope id。
func (s SocketAddrV6) Compare(other SocketAddrV6) int {
	if c := s.ip.Compare(other.ip); c != 0 {
		return c
	}
	if c := cmp.Compare(s.port, other.port); c != 0 {
		return c
	}
	if c := cmp.Compare(s.flowInfo, other.flowInfo); c != 0 {
		return c
	}
	return cmp.Compare(s.scopeID, other.scopeID)
}

// SocketAddr 是 IPv4 或 IPv6 套接字地址。零值是 0.0.0.0:0。
type SocketAddr struct {
	v4  SocketAddrV4
	v6  SocketAddrV6
	is6 bool
}

// New 由 IP 地址与端口构造套接字地址；IPv6 的 flowinfo 与 scope id 为 0。
func New(ip xip.IPAddr, port uint16) SocketAddr {
	if v4, ok := ip.As4(); ok {
		return FromV4(NewV4(v4, port))
	}
	v6, _ := ip.As6()
	return FromV6(NewV6(v6, port, 0, 0))
}

// FromV4 包装 IPv4 套接字地址。
func FromV4(s SocketAddrV4) SocketAddr {
	return SocketAddr{v4: s}
}

// FromV6 包装 IPv6 套接字地址。
func FromV6(s SocketAddrV6) SocketAddr {
	return SocketAddr{v6: s, is6: true}
}

// IsIPv4 报告是否为 IPv4 套接字地址。
func (s SocketAddr) IsIPv4() bool { return !s.is6 }

// IsIPv6 报告是否为 IPv6 套接字地址。
func (s SocketAddr) IsIPv6() bool { return s.is6 }

// As4 返回 IPv4 变体。
func (s SocketAddr) As4() (SocketAddrV4, bool) {
	if s.is6 {
		return SocketAddrV4{}, false
	}
	return s.v4, true
}

// As6 返回 IPv6 变体。
func (s SocketAddr) As6() (SocketAddrV6, bool) {
	if !s.is6 {
		return SocketAddrV6{}, false
	}
	return s.v6, true
}

// IP 返回地址部分。
func (s SocketAddr) IP() xip.IPAddr {
	if s.is6 {
		return xip.FromIPv6(s.v6.ip)
	}
	return xip.FromIPv4(s.v4.ip)
}

// SetIP 替换地址部分。同族时只替换地址；族不同时按 New(ip, Port()) 重建，
// IPv6 的 flowinfo 与 scope id 随之清零。
func (s *SocketAddr) SetIP(ip xip.IPAddr) {
	switch {
	case !s.is6 && ip.IsIPv4():
		v4, _ := ip.As4()
		s.v4.SetIP(v4)
	case s.is6 && ip.IsIPv6():
		v6, _ := ip.As6()
		s.v6.SetIP(v6)
	default:
		*s = New(ip, s.Port())
	}
}

// Port 返回端口。
func (s SocketAddr) Port() uint16 {
	if s.is6 {
		return s.v6.port
	}
	return s.v4.port
}

// SetPort 替换端口。
func (s *SocketAddr) SetPort(port uint16) {
	if s.is6 {
		s.v6.port = port
		return
	}
	s.v4.port = port
}

// Compare 比较两个套接字地址：所有 IPv4 排在所有 IPv6 之前。
func (s SocketAddr) Compare(other SocketAddr) int {
	if s.is6 != other.is6 {
		if s.is6 {
			return 1
		}
		return -1
	}
	if s.is6 {
		return s.v6.Compare(other.v6)
	}
	return s.v4.Compare(other.v4)
}
