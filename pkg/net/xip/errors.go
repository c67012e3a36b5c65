package xip

import (
	"errors"
	"strconv"
)

var (
	// ErrAddrParse 表示地址文本不符合语法。所有解析失败都满足
	// errors.Is(err, ErrAddrParse)。
	ErrAddrParse = errors.New("xip: invalid address syntax")

	// ErrInvalidRange 表示无效的 IP 范围格式。
	ErrInvalidRange = errors.New("xip: invalid IP range")

	// ErrInvalidBigInt 表示 big.Int 值超出 IP 地址范围。
	ErrInvalidBigInt = errors.New("xip: big.Int value out of range for IP address")

	// ErrZone 表示带有非数字 zone 的地址无法转换为 scope id。
	ErrZone = errors.New("xip: zone is not a numeric scope id")
)

// Kind 标识解析失败时期望的文本种类，仅用于错误信息。
type Kind uint8

// 解析目标种类。
const (
	KindIP Kind = iota
	KindIPv4
	KindIPv6
	KindSocket
	KindSocketV4
	KindSocketV6
	KindPort
)

// String 返回种类的可读名称。
func (k Kind) String() string {
	switch k {
	case KindIP:
		return "IP address"
	case KindIPv4:
		return "IPv4 address"
	case KindIPv6:
		return "IPv6 address"
	case KindSocket:
		return "socket address"
	case KindSocketV4:
		return "IPv4 socket address"
	case KindSocketV6:
		return "IPv6 socket address"
	case KindPort:
		return "port"
	default:
		return "address"
	}
}

// AddrParseError 是唯一的解析错误类型。
// 不区分具体失败原因，Input 仅用于展示。
type AddrParseError struct {
	Kind  Kind
	Input string
}

// Error 实现 error 接口。
func (e *AddrParseError) Error() string {
	return "xip: invalid " + e.Kind.String() + " syntax: " + strconv.Quote(e.Input)
}

// Is 使 errors.Is(err, ErrAddrParse) 成立。
func (e *AddrParseError) Is(target error) bool {
	return target == ErrAddrParse
}

// NewParseError 构造 kind 种类的解析错误，供同族的套接字地址包复用。
func NewParseError(kind Kind, input string) error {
	return &AddrParseError{Kind: kind, Input: input}
}
