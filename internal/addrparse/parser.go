// Package addrparse 实现 IPv4/IPv6 地址与套接字地址的文本语法。
//
// 解析器是一个只向前移动的游标：每个 read* 方法要么消费输入并返回 true，
// 要么把游标恢复到调用前的位置并返回 false。公开函数要求整个输入被消费，
// 任何偏差都返回 ok=false，不产生部分结果。
//
// 本包只处理原始字节数组与整数，地址类型由 xip / xsock 在此之上构建。
package addrparse

import "math"

// 各字段的数字位数上限。
const (
	maxIPv4Digits    = 3
	maxHextetDigits  = 4
	maxPortDigits    = 5
	maxScopeIDDigits = 10
)

// SocketV6 是 "[ip%scope]:port" 解析后的各个组成部分。
type SocketV6 struct {
	IP      [16]byte
	Port    uint16
	ScopeID uint32
}

// parser 是零分配的游标解析器，按值存放在调用方栈上。
type parser struct {
	s   string
	pos int
}

// IPv4 解析点分十进制 IPv4 地址，如 "192.168.0.1"。
func IPv4(s string) ([4]byte, bool) {
	p := parser{s: s}
	ip, ok := p.readIPv4()
	return ip, ok && p.done()
}

// IPv6 解析 IPv6 地址，支持 "::" 省略与结尾内嵌 IPv4。
func IPv6(s string) ([16]byte, bool) {
	p := parser{s: s}
	ip, ok := p.readIPv6()
	return ip, ok && p.done()
}

// SocketV4 解析 "<ipv4>:<port>"。
func SocketV4(s string) (ip [4]byte, port uint16, ok bool) {
	p := parser{s: s}
	ip, port, ok = p.readSocketV4()
	return ip, port, ok && p.done()
}

// ParseSocketV6 解析 "[<ipv6>]:<port>" 或 "[<ipv6>%<scope>]:<port>"。
func ParseSocketV6(s string) (SocketV6, bool) {
	p := parser{s: s}
	v, ok := p.readSocketV6()
	return v, ok && p.done()
}

// Port 解析 1~5 位十进制端口号，取值不超过 65535。
func Port(s string) (uint16, bool) {
	p := parser{s: s}
	v, ok := p.readNumber(10, maxPortDigits, true, math.MaxUint16)
	return uint16(v), ok && p.done()
}

// Decimal 解析不超过 maxDigits 位、取值不超过 limit 的十进制数。
// 不接受前导零（"0" 本身除外），用于 CIDR 前缀长度等字段。
func Decimal(s string, maxDigits int, limit uint64) (uint64, bool) {
	p := parser{s: s}
	v, ok := p.readNumber(10, maxDigits, false, limit)
	return v, ok && p.done()
}

func (p *parser) done() bool {
	return p.pos == len(p.s)
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.s) {
		return 0, false
	}
	return p.s[p.pos], true
}

func (p *parser) readGivenChar(c byte) bool {
	if b, ok := p.peek(); ok && b == c {
		p.pos++
		return true
	}
	return false
}

// readNumber 读取 radix 进制的数字串。
// 位数超过 maxDigits、数值超过 limit、或在 allowZeroPrefix=false 时出现
// 多位数的前导零，都视为失败并回退游标。
func (p *parser) readNumber(radix uint64, maxDigits int, allowZeroPrefix bool, limit uint64) (uint64, bool) {
	start := p.pos
	var v uint64
	digits := 0
	for p.pos < len(p.s) {
		d, ok := digitValue(p.s[p.pos], radix)
		if !ok {
			break
		}
		digits++
		if digits > maxDigits {
			p.pos = start
			return 0, false
		}
		v = v*radix + d
		if v > limit {
			p.pos = start
			return 0, false
		}
		p.pos++
	}
	if digits == 0 {
		p.pos = start
		return 0, false
	}
	if !allowZeroPrefix && digits > 1 && p.s[start] == '0' {
		p.pos = start
		return 0, false
	}
	return v, true
}

func digitValue(c byte, radix uint64) (uint64, bool) {
	var d uint64
	switch {
	case c >= '0' && c <= '9':
		d = uint64(c - '0')
	case c >= 'a' && c <= 'f':
		d = uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	if d >= radix {
		return 0, false
	}
	return d, true
}

func (p *parser) readIPv4() ([4]byte, bool) {
	start := p.pos
	var ip [4]byte
	for i := range ip {
		if i > 0 && !p.readGivenChar('.') {
			p.pos = start
			return [4]byte{}, false
		}
		v, ok := p.readNumber(10, maxIPv4Digits, false, math.MaxUint8)
		if !ok {
			p.pos = start
			return [4]byte{}, false
		}
		ip[i] = byte(v)
	}
	return ip, true
}

// readGroups 读取至多 limit 个以 ':' 分隔的 hextet 写入 groups。
// 只有在还剩至少两个组的空间时才尝试内嵌 IPv4，且 IPv4 之后不再读取。
// 返回读到的组数以及最后一段是否为 IPv4。
func (p *parser) readGroups(groups []uint16, limit int) (int, bool) {
	for i := 0; i < limit; i++ {
		if i < limit-1 {
			save := p.pos
			if i == 0 || p.readGivenChar(':') {
				if ip4, ok := p.readIPv4(); ok {
					groups[i] = uint16(ip4[0])<<8 | uint16(ip4[1])
					groups[i+1] = uint16(ip4[2])<<8 | uint16(ip4[3])
					return i + 2, true
				}
			}
			p.pos = save
		}

		save := p.pos
		if i > 0 && !p.readGivenChar(':') {
			return i, false
		}
		g, ok := p.readNumber(16, maxHextetDigits, true, math.MaxUint16)
		if !ok {
			p.pos = save
			return i, false
		}
		groups[i] = uint16(g)
	}
	return limit, false
}

func (p *parser) readIPv6() ([16]byte, bool) {
	start := p.pos

	// "::" 之前的组
	var head [8]uint16
	headSize, headIPv4 := p.readGroups(head[:], 8)
	if headSize == 8 {
		return segmentsToBytes(head), true
	}
	// 内嵌 IPv4 只能位于末尾
	if headIPv4 {
		p.pos = start
		return [16]byte{}, false
	}
	if !p.readGivenChar(':') || !p.readGivenChar(':') {
		p.pos = start
		return [16]byte{}, false
	}

	// "::" 至少代表一个零组
	var tail [7]uint16
	limit := 8 - (headSize + 1)
	tailSize, _ := p.readGroups(tail[:], limit)

	copy(head[8-tailSize:], tail[:tailSize])
	return segmentsToBytes(head), true
}

func segmentsToBytes(g [8]uint16) [16]byte {
	var b [16]byte
	for i, v := range g {
		b[2*i] = byte(v >> 8)
		b[2*i+1] = byte(v)
	}
	return b
}

func (p *parser) readPort() (uint16, bool) {
	start := p.pos
	if !p.readGivenChar(':') {
		return 0, false
	}
	v, ok := p.readNumber(10, maxPortDigits, true, math.MaxUint16)
	if !ok {
		p.pos = start
		return 0, false
	}
	return uint16(v), true
}

func (p *parser) readSocketV4() ([4]byte, uint16, bool) {
	start := p.pos
	ip, ok := p.readIPv4()
	if !ok {
		return [4]byte{}, 0, false
	}
	port, ok := p.readPort()
	if !ok {
		p.pos = start
		return [4]byte{}, 0, false
	}
	return ip, port, true
}

func (p *parser) readSocketV6() (SocketV6, bool) {
	start := p.pos
	fail := func() (SocketV6, bool) {
		p.pos = start
		return SocketV6{}, false
	}

	if !p.readGivenChar('[') {
		return fail()
	}
	ip, ok := p.readIPv6()
	if !ok {
		return fail()
	}
	var scopeID uint32
	if p.readGivenChar('%') {
		v, ok := p.readNumber(10, maxScopeIDDigits, true, math.MaxUint32)
		if !ok {
			return fail()
		}
		scopeID = uint32(v)
	}
	if !p.readGivenChar(']') {
		return fail()
	}
	port, ok := p.readPort()
	if !ok {
		return fail()
	}
	return SocketV6{IP: ip, Port: port, ScopeID: scopeID}, true
}
