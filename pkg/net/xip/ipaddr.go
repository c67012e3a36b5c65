package xip

import "bytes"

// IPAddr 是 IPv4 或 IPv6 地址。
//
// 零值是 IPv4 的 0.0.0.0。IPAddr 可用 == 比较并可作为 map key；
// 不同族的地址永不相等，即使 IPv6 是 IPv4-mapped 形式。
type IPAddr struct {
	// IPv4 存放在前 4 字节，其余字节恒为零。
	b  [16]byte
	v6 bool
}

// FromIPv4 包装 IPv4 地址。
func FromIPv4(ip IPv4Addr) IPAddr {
	var a IPAddr
	copy(a.b[:4], ip[:])
	return a
}

// FromIPv6 包装 IPv6 地址。
func FromIPv6(ip IPv6Addr) IPAddr {
	return IPAddr{b: ip, v6: true}
}

// IsIPv4 报告地址是否为 IPv4。
func (a IPAddr) IsIPv4() bool {
	return !a.v6
}

// IsIPv6 报告地址是否为 IPv6。
func (a IPAddr) IsIPv6() bool {
	return a.v6
}

// Version 返回地址族。
func (a IPAddr) Version() Version {
	if a.v6 {
		return V6
	}
	return V4
}

// As4 返回 IPv4 地址；IPv6 地址返回 false。
func (a IPAddr) As4() (IPv4Addr, bool) {
	if a.v6 {
		return IPv4Addr{}, false
	}
	return IPv4Addr(a.b[:4]), true
}

// As6 返回 IPv6 地址；IPv4 地址返回 false。
func (a IPAddr) As6() (IPv6Addr, bool) {
	if !a.v6 {
		return IPv6Addr{}, false
	}
	return a.b, true
}

// Compare 比较两个地址：所有 IPv4 排在所有 IPv6 之前，同族内按数值比较。
func (a IPAddr) Compare(other IPAddr) int {
	if a.v6 != other.v6 {
		if a.v6 {
			return 1
		}
		return -1
	}
	if a.v6 {
		return bytes.Compare(a.b[:], other.b[:])
	}
	return bytes.Compare(a.b[:4], other.b[:4])
}

// Unmap 把 IPv4-mapped 的 IPv6 地址转换为 IPv4，其余地址原样返回。
func (a IPAddr) Unmap() IPAddr {
	if v6, ok := a.As6(); ok {
		if v4, ok := v6.ToIPv4Mapped(); ok {
			return FromIPv4(v4)
		}
	}
	return a
}
