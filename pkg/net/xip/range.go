package xip

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"

	"github.com/omeyang/xaddr/internal/addrparse"
)

// ParseRange 从字符串解析 IP 范围。支持 3 种格式：
//   - 单 IP: "192.168.1.1"
//   - CIDR: "192.168.1.0/24"（前缀长度不允许前导零）
//   - 范围: "192.168.1.1-192.168.1.100"
//
// 地址部分使用与 [ParseIP] 相同的严格语法，不接受空白与 zone。
// 起止地址必须同族且 start <= end。
func ParseRange(s string) (netipx.IPRange, error) {
	if start, end, ok := strings.Cut(s, "-"); ok {
		from, err := ParseIP(start)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid range start: %w", ErrInvalidRange, err)
		}
		to, err := ParseIP(end)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid range end: %w", ErrInvalidRange, err)
		}
		r := netipx.IPRangeFrom(from.Netip(), to.Netip())
		if !r.IsValid() {
			return netipx.IPRange{}, fmt.Errorf("%w: %s", ErrInvalidRange, s)
		}
		return r, nil
	}

	if addrPart, bitsPart, ok := strings.Cut(s, "/"); ok {
		addr, err := ParseIP(addrPart)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid CIDR: %w", ErrInvalidRange, err)
		}
		maxBits := uint64(32)
		if addr.IsIPv6() {
			maxBits = 128
		}
		bits, ok := addrparse.Decimal(bitsPart, 3, maxBits)
		if !ok {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid prefix length: %q", ErrInvalidRange, bitsPart)
		}
		prefix := netip.PrefixFrom(addr.Netip(), int(bits))
		return netipx.RangeOfPrefix(prefix.Masked()), nil
	}

	addr, err := ParseIP(s)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return netipx.IPRangeFrom(addr.Netip(), addr.Netip()), nil
}

// RangeContains 报告 r 是否包含 a。IPv4 与 IPv6 不互相包含。
func RangeContains(r netipx.IPRange, a IPAddr) bool {
	return r.Contains(a.Netip())
}

// ParseRangeSet 逐个解析 strs 并合并为 [*netipx.IPSet]，重叠与相邻范围自动合并。
// 空切片返回空集合。
func ParseRangeSet(strs []string) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, s := range strs {
		r, err := ParseRange(s)
		if err != nil {
			return nil, fmt.Errorf("parse range %q: %w", s, err)
		}
		b.AddRange(r)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}

// SetContains 报告 set 是否包含 a。nil 集合不包含任何地址。
func SetContains(set *netipx.IPSet, a IPAddr) bool {
	return set != nil && set.Contains(a.Netip())
}
