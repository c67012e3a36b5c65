package xip

import (
	"bytes"
	"encoding/binary"
)

// IPv6Addr 是按网络字节序存放的 IPv6 地址。
type IPv6Addr [16]byte

// 常用 IPv6 地址。
var (
	IPv6Unspecified = IPv6Addr{}
	IPv6Loopback    = IPv6Addr{15: 1}
)

// IPv6 由八个 16 位组构造地址，a 为最高位。
func IPv6(a, b, c, d, e, f, g, h uint16) IPv6Addr {
	return IPv6FromSegments([8]uint16{a, b, c, d, e, f, g, h})
}

// IPv6FromSegments 由八个 16 位组构造地址。
func IPv6FromSegments(seg [8]uint16) IPv6Addr {
	var ip IPv6Addr
	for i, v := range seg {
		binary.BigEndian.PutUint16(ip[2*i:], v)
	}
	return ip
}

// Segments 返回八个 16 位组。
func (ip IPv6Addr) Segments() [8]uint16 {
	var seg [8]uint16
	for i := range seg {
		seg[i] = binary.BigEndian.Uint16(ip[2*i:])
	}
	return seg
}

// Octets 返回十六个字节。
func (ip IPv6Addr) Octets() [16]byte {
	return ip
}

// Compare 按数值大小比较，返回 -1、0 或 1。
func (ip IPv6Addr) Compare(other IPv6Addr) int {
	return bytes.Compare(ip[:], other[:])
}

// IsIPv4Mapped 报告地址是否为 ::ffff:0:0/96。
func (ip IPv6Addr) IsIPv4Mapped() bool {
	return [12]byte(ip[:12]) == [12]byte{10: 0xff, 11: 0xff}
}

// ToIPv4Mapped 对 IPv4-mapped 地址返回内嵌的 IPv4 地址。
func (ip IPv6Addr) ToIPv4Mapped() (IPv4Addr, bool) {
	if !ip.IsIPv4Mapped() {
		return IPv4Addr{}, false
	}
	return IPv4Addr(ip[12:]), true
}

// ToIPv4 对 IPv4-mapped 与 IPv4-compatible（::a.b.c.d）地址返回内嵌的 IPv4 地址。
// 注意 :: 与 ::1 也属于 compatible 前缀。
func (ip IPv6Addr) ToIPv4() (IPv4Addr, bool) {
	if v4, ok := ip.ToIPv4Mapped(); ok {
		return v4, true
	}
	if [12]byte(ip[:12]) == [12]byte{} {
		return IPv4Addr(ip[12:]), true
	}
	return IPv4Addr{}, false
}
