package xsock

import (
	"fmt"
	"strconv"

	"github.com/omeyang/xaddr/internal/addrfmt"
	"github.com/omeyang/xaddr/pkg/net/xip"
)

const (
	// MaxSocketV4Len 对应 "255.255.255.255:65535"。
	MaxSocketV4Len = xip.MaxIPv4Len + 1 + 5
	// MaxSocketV6Len 对应 "[<39 字符地址>%4294967295]:65535"。
	MaxSocketV6Len = 1 + xip.MaxIPv6Len + 1 + 10 + 1 + 1 + 5
)

// AppendTo 把 "ip:port" 追加到 dst。
func (s SocketAddrV4) AppendTo(dst []byte) []byte {
	dst = xip.AppendIPv4(dst, s.ip)
	dst = append(dst, ':')
	return strconv.AppendUint(dst, uint64(s.port), 10)
}

// String 返回 "ip:port"。
func (s SocketAddrV4) String() string {
	var buf [MaxSocketV4Len]byte
	return string(s.AppendTo(buf[:0]))
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (s SocketAddrV4) MarshalText() ([]byte, error) {
	return s.AppendTo(make([]byte, 0, MaxSocketV4Len)), nil
}

// Format 实现 [fmt.Formatter]，%v/%s 支持宽度、精度与 '-'、'0' 标志。
func (s SocketAddrV4) Format(f fmt.State, verb rune) {
	var buf [MaxSocketV4Len]byte
	addrfmt.Write(f, verb, "xsock.SocketAddrV4", s.AppendTo(buf[:0]))
}

// AppendTo 按 [xip.DefaultStyle] 把 "[ip]:port" 或 "[ip%scope]:port" 追加到 dst。
func (s SocketAddrV6) AppendTo(dst []byte) []byte {
	return s.AppendStyle(dst, xip.DefaultStyle)
}

// AppendStyle 按指定风格输出地址部分，其余同 AppendTo。
func (s SocketAddrV6) AppendStyle(dst []byte, style xip.Style) []byte {
	dst = append(dst, '[')
	dst = style.AppendIPv6(dst, s.ip)
	if s.scopeID != 0 {
		dst = append(dst, '%')
		dst = strconv.AppendUint(dst, uint64(s.scopeID), 10)
	}
	dst = append(dst, ']', ':')
	return strconv.AppendUint(dst, uint64(s.port), 10)
}

// String 返回 "[ip]:port" 或 "[ip%scope]:port"。
func (s SocketAddrV6) String() string {
	var buf [MaxSocketV6Len]byte
	return string(s.AppendTo(buf[:0]))
}

// MarshalText 实现 [encoding.TextMarshaler]。flowinfo 不参与序列化。
func (s SocketAddrV6) MarshalText() ([]byte, error) {
	return s.AppendTo(make([]byte, 0, MaxSocketV6Len)), nil
}

// Format 实现 [fmt.Formatter]。
func (s SocketAddrV6) Format(f fmt.State, verb rune) {
	var buf [MaxSocketV6Len]byte
	addrfmt.Write(f, verb, "xsock.SocketAddrV6", s.AppendTo(buf[:0]))
}

// AppendTo 把规范文本追加到 dst。
func (s SocketAddr) AppendTo(dst []byte) []byte {
	if s.is6 {
		return s.v6.AppendTo(dst)
	}
	return s.v4.AppendTo(dst)
}

// String 返回规范文本。
func (s SocketAddr) String() string {
	var buf [MaxSocketV6Len]byte
	return string(s.AppendTo(buf[:0]))
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (s SocketAddr) MarshalText() ([]byte, error) {
	return s.AppendTo(make([]byte, 0, MaxSocketV6Len)), nil
}

// Format 实现 [fmt.Formatter]。
func (s SocketAddr) Format(f fmt.State, verb rune) {
	var buf [MaxSocketV6Len]byte
	addrfmt.Write(f, verb, "xsock.SocketAddr", s.AppendTo(buf[:0]))
}
