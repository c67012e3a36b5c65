package xsock

import (
	"github.com/omeyang/xaddr/internal/addrparse"
	"github.com/omeyang/xaddr/pkg/net/xip"
)

// ParseV4 解析 "<ipv4>:<port>"。
func ParseV4(s string) (SocketAddrV4, error) {
	ip, port, ok := addrparse.SocketV4(s)
	if !ok {
		return SocketAddrV4{}, xip.NewParseError(xip.KindSocketV4, s)
	}
	return NewV4(ip, port), nil
}

// ParseV6 解析 "[<ipv6>]:<port>" 或 "[<ipv6>%<scope>]:<port>"，scope 为十进制数。
func ParseV6(s string) (SocketAddrV6, error) {
	v, ok := addrparse.ParseSocketV6(s)
	if !ok {
		return SocketAddrV6{}, xip.NewParseError(xip.KindSocketV6, s)
	}
	return NewV6(v.IP, v.Port, 0, v.ScopeID), nil
}

// Parse 先按 IPv4 形式解析，失败再按 IPv6 形式解析。
func Parse(s string) (SocketAddr, error) {
	if ip, port, ok := addrparse.SocketV4(s); ok {
		return FromV4(NewV4(ip, port)), nil
	}
	if v, ok := addrparse.ParseSocketV6(s); ok {
		return FromV6(NewV6(v.IP, v.Port, 0, v.ScopeID)), nil
	}
	return SocketAddr{}, xip.NewParseError(xip.KindSocket, s)
}

// ParsePort 解析 1~5 位十进制端口号，取值不超过 65535。
func ParsePort(s string) (uint16, error) {
	port, ok := addrparse.Port(s)
	if !ok {
		return 0, xip.NewParseError(xip.KindPort, s)
	}
	return port, nil
}

// MustParse 同 [Parse]，失败时 panic。仅用于测试与常量初始化。
func MustParse(s string) SocketAddr {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustParseV4 同 [ParseV4]，失败时 panic。
func MustParseV4(s string) SocketAddrV4 {
	v, err := ParseV4(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustParseV6 同 [ParseV6]，失败时 panic。
func MustParseV6(s string) SocketAddrV6 {
	v, err := ParseV6(s)
	if err != nil {
		panic(err)
	}
	return v
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (s *SocketAddrV4) UnmarshalText(text []byte) error {
	v, err := ParseV4(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (s *SocketAddrV6) UnmarshalText(text []byte) error {
	v, err := ParseV6(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (s *SocketAddr) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
