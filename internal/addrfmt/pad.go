// Package addrfmt 为地址类型实现 fmt.Formatter 的公共部分。
//
// 调用方先把规范文本写入自己的定长缓冲区，再交给 [Write] 按 fmt 的
// 宽度、精度与标志位输出。
package addrfmt

import (
	"fmt"
	"strconv"
)

const padChunk = 16

var (
	spaces = [padChunk]byte{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	zeros  = [padChunk]byte{'0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0'}
)

// Write 按 verb 输出 text：
//   - %v、%s：先按精度截断，再按宽度填充；'-' 左对齐，'0' 在右对齐时以零填充
//   - %q：输出带引号的文本，宽度与 '-' 同样生效
//   - 其他 verb：输出 "%!verb(typ=text)"，与 fmt 对未知 verb 的处理一致
//
// 地址文本只含 ASCII，因此按字节截断与按字符截断等价。
func Write(f fmt.State, verb rune, typ string, text []byte) {
	switch verb {
	case 'v', 's':
		if prec, ok := f.Precision(); ok && prec < len(text) {
			text = text[:prec]
		}
		pad(f, text, f.Flag('0'))
	case 'q':
		var buf [2 + 64]byte
		pad(f, strconv.AppendQuote(buf[:0], string(text)), false)
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(%s=%s)", verb, typ, text)
	}
}

func pad(f fmt.State, text []byte, zero bool) {
	width, ok := f.Width()
	if !ok || width <= len(text) {
		_, _ = f.Write(text)
		return
	}
	n := width - len(text)
	if f.Flag('-') {
		_, _ = f.Write(text)
		writeFill(f, spaces[:], n)
		return
	}
	if zero {
		writeFill(f, zeros[:], n)
	} else {
		writeFill(f, spaces[:], n)
	}
	_, _ = f.Write(text)
}

func writeFill(f fmt.State, fill []byte, n int) {
	for n > 0 {
		k := min(n, len(fill))
		_, _ = f.Write(fill[:k])
		n -= k
	}
}
