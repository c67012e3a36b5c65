package xip

import (
	"fmt"

	"github.com/omeyang/xaddr/internal/addrfmt"
)

// 各类地址规范文本的最大长度，定长缓冲区按此分配即可容纳任意地址。
const (
	// MaxIPv4Len 对应 "255.255.255.255"。
	MaxIPv4Len = 15
	// MaxIPv6Len 对应 "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"。
	// 点分 IPv4-mapped 形式最长为 22，同样不会超出。
	MaxIPv6Len = 39
)

const hexDigits = "0123456789abcdef"

// Style 控制 IPv6 地址的输出风格。
//
// 零值 Style 输出纯十六进制，等同 [HexStyle]。
type Style struct {
	// DottedMapped 为 true 时，IPv4-mapped 地址输出为 "::ffff:a.b.c.d"。
	DottedMapped bool
}

var (
	// DefaultStyle 是 String 等方法使用的风格：IPv4-mapped 地址以点分形式输出。
	DefaultStyle = Style{DottedMapped: true}

	// HexStyle 把所有 IPv6 地址都输出为纯十六进制，如 "::ffff:102:304"。
	HexStyle = Style{}
)

// AppendIPv4 把 ip 的点分十进制文本追加到 dst。
func AppendIPv4(dst []byte, ip IPv4Addr) []byte {
	dst = appendDecimal(dst, ip[0])
	dst = append(dst, '.')
	dst = appendDecimal(dst, ip[1])
	dst = append(dst, '.')
	dst = appendDecimal(dst, ip[2])
	dst = append(dst, '.')
	dst = appendDecimal(dst, ip[3])
	return dst
}

// AppendIPv6 按风格 s 把 ip 的规范文本追加到 dst。
func (s Style) AppendIPv6(dst []byte, ip IPv6Addr) []byte {
	if s.DottedMapped {
		if v4, ok := ip.ToIPv4Mapped(); ok {
			dst = append(dst, "::ffff:"...)
			return AppendIPv4(dst, v4)
		}
	}

	seg := ip.Segments()
	zeroStart, zeroEnd := longestZeroRun(&seg)
	for i := 0; i < 8; i++ {
		if i == zeroStart {
			dst = append(dst, ':', ':')
			i = zeroEnd
			if i >= 8 {
				break
			}
		} else if i > 0 {
			dst = append(dst, ':')
		}
		dst = appendHex(dst, seg[i])
	}
	return dst
}

// FormatIPv6 按风格 s 返回 ip 的规范文本。
func (s Style) FormatIPv6(ip IPv6Addr) string {
	var buf [MaxIPv6Len]byte
	return string(s.AppendIPv6(buf[:0], ip))
}

// AppendIP 按风格 s 把 a 的规范文本追加到 dst。
func (s Style) AppendIP(dst []byte, a IPAddr) []byte {
	if v4, ok := a.As4(); ok {
		return AppendIPv4(dst, v4)
	}
	v6, _ := a.As6()
	return s.AppendIPv6(dst, v6)
}

// longestZeroRun 返回最左侧最长零组区间 [start, end)。
// 长度不足 2 时返回 (-1, -1)，单个零组不压缩。
func longestZeroRun(seg *[8]uint16) (int, int) {
	start, end := -1, -1
	for i := 0; i < 8; i++ {
		j := i
		for j < 8 && seg[j] == 0 {
			j++
		}
		// 严格大于保证并列时取最左侧
		if l := j - i; l >= 2 && l > end-start {
			start, end = i, j
		}
		i = j
	}
	return start, end
}

func appendDecimal(dst []byte, v byte) []byte {
	switch {
	case v >= 100:
		return append(dst, '0'+v/100, '0'+v/10%10, '0'+v%10)
	case v >= 10:
		return append(dst, '0'+v/10, '0'+v%10)
	default:
		return append(dst, '0'+v)
	}
}

func appendHex(dst []byte, v uint16) []byte {
	if v >= 0x1000 {
		dst = append(dst, hexDigits[v>>12])
	}
	if v >= 0x100 {
		dst = append(dst, hexDigits[v>>8&0xf])
	}
	if v >= 0x10 {
		dst = append(dst, hexDigits[v>>4&0xf])
	}
	return append(dst, hexDigits[v&0xf])
}

// AppendTo 把规范文本追加到 dst。
func (ip IPv4Addr) AppendTo(dst []byte) []byte {
	return AppendIPv4(dst, ip)
}

// String 返回点分十进制文本。
func (ip IPv4Addr) String() string {
	var buf [MaxIPv4Len]byte
	return string(AppendIPv4(buf[:0], ip))
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (ip IPv4Addr) MarshalText() ([]byte, error) {
	return ip.AppendTo(make([]byte, 0, MaxIPv4Len)), nil
}

// Format 实现 [fmt.Formatter]，%v/%s 支持宽度、精度与 '-'、'0' 标志。
func (ip IPv4Addr) Format(f fmt.State, verb rune) {
	var buf [MaxIPv4Len]byte
	addrfmt.Write(f, verb, "xip.IPv4Addr", AppendIPv4(buf[:0], ip))
}

// AppendTo 按 [DefaultStyle] 把规范文本追加到 dst。
func (ip IPv6Addr) AppendTo(dst []byte) []byte {
	return DefaultStyle.AppendIPv6(dst, ip)
}

// String 按 [DefaultStyle] 返回规范文本。
func (ip IPv6Addr) String() string {
	return DefaultStyle.FormatIPv6(ip)
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (ip IPv6Addr) MarshalText() ([]byte, error) {
	return ip.AppendTo(make([]byte, 0, MaxIPv6Len)), nil
}

// Format 实现 [fmt.Formatter]。
func (ip IPv6Addr) Format(f fmt.State, verb rune) {
	var buf [MaxIPv6Len]byte
	addrfmt.Write(f, verb, "xip.IPv6Addr", DefaultStyle.AppendIPv6(buf[:0], ip))
}

// AppendTo 按 [DefaultStyle] 把规范文本追加到 dst。
func (a IPAddr) AppendTo(dst []byte) []byte {
	return DefaultStyle.AppendIP(dst, a)
}

// String 按 [DefaultStyle] 返回规范文本。
func (a IPAddr) String() string {
	var buf [MaxIPv6Len]byte
	return string(a.AppendTo(buf[:0]))
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (a IPAddr) MarshalText() ([]byte, error) {
	return a.AppendTo(make([]byte, 0, MaxIPv6Len)), nil
}

// Format 实现 [fmt.Formatter]。
func (a IPAddr) Format(f fmt.State, verb rune) {
	var buf [MaxIPv6Len]byte
	addrfmt.Write(f, verb, "xip.IPAddr", a.AppendTo(buf[:0]))
}
