package xip

import (
	"bytes"
	"encoding/binary"
)

// IPv4Addr 是按网络字节序存放的 IPv4 地址。
type IPv4Addr [4]byte

// 常用 IPv4 地址。
var (
	IPv4Unspecified = IPv4Addr{0, 0, 0, 0}
	IPv4Localhost   = IPv4Addr{127, 0, 0, 1}
	IPv4Broadcast   = IPv4Addr{255, 255, 255, 255}
)

// IPv4 由四个八位段构造地址，a 为最高位。
func IPv4(a, b, c, d byte) IPv4Addr {
	return IPv4Addr{a, b, c, d}
}

// IPv4FromUint32 从大端 uint32 构造地址。
func IPv4FromUint32(v uint32) IPv4Addr {
	var ip IPv4Addr
	binary.BigEndian.PutUint32(ip[:], v)
	return ip
}

// Uint32 返回地址的大端 uint32 表示。
func (ip IPv4Addr) Uint32() uint32 {
	return binary.BigEndian.Uint32(ip[:])
}

// Octets 返回四个八位段。
func (ip IPv4Addr) Octets() [4]byte {
	return ip
}

// Compare 按数值大小比较，返回 -1、0 或 1。
func (ip IPv4Addr) Compare(other IPv4Addr) int {
	return bytes.Compare(ip[:], other[:])
}

// ToIPv6Mapped 返回 IPv4-mapped 形式 ::ffff:a.b.c.d。
func (ip IPv4Addr) ToIPv6Mapped() IPv6Addr {
	var v6 IPv6Addr
	v6[10], v6[11] = 0xff, 0xff
	copy(v6[12:], ip[:])
	return v6
}

// ToIPv6Compatible 返回已废弃的 IPv4-compatible 形式 ::a.b.c.d。
func (ip IPv4Addr) ToIPv6Compatible() IPv6Addr {
	var v6 IPv6Addr
	copy(v6[12:], ip[:])
	return v6
}
