package xip

import "github.com/omeyang/xaddr/internal/addrparse"

// ParseIPv4 解析点分十进制 IPv4 地址，如 "192.168.1.1"。
func ParseIPv4(s string) (IPv4Addr, error) {
	ip, ok := addrparse.IPv4(s)
	if !ok {
		return IPv4Addr{}, NewParseError(KindIPv4, s)
	}
	return ip, nil
}

// ParseIPv6 解析 IPv6 地址，支持 "::" 压缩与末尾内嵌 IPv4。
// 不接受 zone（"fe80::1%eth0"）。
func ParseIPv6(s string) (IPv6Addr, error) {
	ip, ok := addrparse.IPv6(s)
	if !ok {
		return IPv6Addr{}, NewParseError(KindIPv6, s)
	}
	return ip, nil
}

// ParseIP 先按 IPv4 解析，失败再按 IPv6 解析。
func ParseIP(s string) (IPAddr, error) {
	if ip, ok := addrparse.IPv4(s); ok {
		return FromIPv4(ip), nil
	}
	if ip, ok := addrparse.IPv6(s); ok {
		return FromIPv6(ip), nil
	}
	return IPAddr{}, NewParseError(KindIP, s)
}

// MustParseIPv4 同 [ParseIPv4]，失败时 panic。仅用于测试与常量初始化。
func MustParseIPv4(s string) IPv4Addr {
	ip, err := ParseIPv4(s)
	if err != nil {
		panic(err)
	}
	return ip
}

// MustParseIPv6 同 [ParseIPv6]，失败时 panic。仅用于测试与常量初始化。
func MustParseIPv6(s string) IPv6Addr {
	ip, err := ParseIPv6(s)
	if err != nil {
		panic(err)
	}
	return ip
}

// MustParseIP 同 [ParseIP]，失败时 panic。仅用于测试与常量初始化。
func MustParseIP(s string) IPAddr {
	ip, err := ParseIP(s)
	if err != nil {
		panic(err)
	}
	return ip
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (ip *IPv4Addr) UnmarshalText(text []byte) error {
	v, err := ParseIPv4(string(text))
	if err != nil {
		return err
	}
	*ip = v
	return nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (ip *IPv6Addr) UnmarshalText(text []byte) error {
	v, err := ParseIPv6(string(text))
	if err != nil {
		return err
	}
	*ip = v
	return nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (a *IPAddr) UnmarshalText(text []byte) error {
	v, err := ParseIP(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
