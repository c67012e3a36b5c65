package xip

import (
	"math/big"
	"net"
	"net/netip"
)

// FromNetip 从 [netip.Addr] 转换，保留地址族：Is4 得到 IPv4，
// 其余（包括 IPv4-mapped）得到 IPv6。zone 被丢弃。
// 无效的零值 netip.Addr 返回 false。
func FromNetip(addr netip.Addr) (IPAddr, bool) {
	switch {
	case addr.Is4():
		return FromIPv4(addr.As4()), true
	case addr.Is6():
		return FromIPv6(addr.As16()), true
	default:
		return IPAddr{}, false
	}
}

// Netip 返回对应的 [netip.Addr]。
func (a IPAddr) Netip() netip.Addr {
	if v4, ok := a.As4(); ok {
		return netip.AddrFrom4(v4)
	}
	v6, _ := a.As6()
	return netip.AddrFrom16(v6)
}

// Netip 返回对应的 [netip.Addr]。
func (ip IPv4Addr) Netip() netip.Addr {
	return netip.AddrFrom4(ip)
}

// Netip 返回对应的 [netip.Addr]。
func (ip IPv6Addr) Netip() netip.Addr {
	return netip.AddrFrom16(ip)
}

// FromStdIP 从 [net.IP] 转换。4 字节与 IPv4-mapped 的 16 字节形式都得到 IPv4，
// 这与 net 包自身对 IPv4 的存储方式一致。长度非法时返回 false。
func FromStdIP(ip net.IP) (IPAddr, bool) {
	if v4 := ip.To4(); v4 != nil {
		return FromIPv4(IPv4Addr(v4)), true
	}
	if len(ip) == net.IPv6len {
		return FromIPv6(IPv6Addr(ip)), true
	}
	return IPAddr{}, false
}

// StdIP 返回新分配的 [net.IP]。
func (a IPAddr) StdIP() net.IP {
	if v4, ok := a.As4(); ok {
		return net.IPv4(v4[0], v4[1], v4[2], v4[3]).To4()
	}
	v6, _ := a.As6()
	return net.IP(v6[:]).To16()
}

// BigInt 返回地址的整数值。
func (a IPAddr) BigInt() *big.Int {
	if v4, ok := a.As4(); ok {
		return new(big.Int).SetUint64(uint64(v4.Uint32()))
	}
	v6, _ := a.As6()
	return new(big.Int).SetBytes(v6[:])
}

// FromBigInt 按版本 ver 从整数值构造地址。
// 负数或超出位宽的值返回 [ErrInvalidBigInt]。
func FromBigInt(v *big.Int, ver Version) (IPAddr, error) {
	if v == nil || v.Sign() < 0 {
		return IPAddr{}, ErrInvalidBigInt
	}
	switch ver {
	case V4:
		if v.BitLen() > 32 {
			return IPAddr{}, ErrInvalidBigInt
		}
		var b IPv4Addr
		v.FillBytes(b[:])
		return FromIPv4(b), nil
	case V6:
		if v.BitLen() > 128 {
			return IPAddr{}, ErrInvalidBigInt
		}
		var b IPv6Addr
		v.FillBytes(b[:])
		return FromIPv6(b), nil
	default:
		return IPAddr{}, ErrInvalidBigInt
	}
}
