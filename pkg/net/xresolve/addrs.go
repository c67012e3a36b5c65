package xresolve

import (
	"iter"

	"github.com/omeyang/xaddr/pkg/net/xsock"
)

// Addrs 是分派结果：要么恰好一个字面量地址，要么委托给解析器的 [Iterator]。
// 零值是空序列，分派失败时返回的就是零值，不产生任何地址。
//
// 设计决策: 以值类型承载单元素分支，字面量路径不产生堆分配；
// 只有走解析器的分支才持有迭代器。
type Addrs struct {
	one  xsock.SocketAddr
	it   Iterator
	kind addrsKind
	done bool
}

type addrsKind uint8

const (
	addrsEmpty addrsKind = iota
	addrsOne
	addrsMany
)

// One 返回只含 addr 一个元素的序列。
func One(addr xsock.SocketAddr) Addrs {
	return Addrs{one: addr, kind: addrsOne}
}

// Many 返回委托给 it 的序列。it 为 nil 时序列为空。
func Many(it Iterator) Addrs {
	return Addrs{it: it, kind: addrsMany}
}

// IsLiteral 报告序列是否来自字面量（未调用解析器）。零值返回 false。
func (a Addrs) IsLiteral() bool {
	return a.kind == addrsOne
}

// Next 返回下一个地址。
func (a *Addrs) Next() (xsock.SocketAddr, bool) {
	switch a.kind {
	case addrsOne:
		if a.done {
			return xsock.SocketAddr{}, false
		}
		a.done = true
		return a.one, true
	case addrsMany:
		if a.it == nil {
			return xsock.SocketAddr{}, false
		}
		return a.it.Next()
	default:
		return xsock.SocketAddr{}, false
	}
}

// All 返回消费 a 的迭代序列，与 Next 共享进度。
func (a *Addrs) All() iter.Seq[xsock.SocketAddr] {
	return func(yield func(xsock.SocketAddr) bool) {
		for {
			addr, ok := a.Next()
			if !ok || !yield(addr) {
				return
			}
		}
	}
}
