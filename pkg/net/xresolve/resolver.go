package xresolve

import (
	"context"

	"github.com/omeyang/xaddr/pkg/net/xsock"
)

// Resolver 将主机名与端口解析为套接字地址序列。
//
// Resolve 是整个地址层中唯一允许阻塞的操作。实现负责自身的并发安全，
// 失败时返回的错误应可通过 errors.Is 识别（例如 [ErrHostNotFound]）。
// 核心分派逻辑不对 ctx 施加超时，取消语义由实现或中间件负责。
type Resolver interface {
	Resolve(ctx context.Context, host string, port uint16) (Iterator, error)
}

// ResolverFunc 将普通函数适配为 [Resolver]。
type ResolverFunc func(ctx context.Context, host string, port uint16) (Iterator, error)

// Resolve 调用 f(ctx, host, port)。
func (f ResolverFunc) Resolve(ctx context.Context, host string, port uint16) (Iterator, error) {
	return f(ctx, host, port)
}

// Iterator 是有限、不可重启的惰性地址序列。
// Next 在序列耗尽后持续返回 false。
type Iterator interface {
	Next() (xsock.SocketAddr, bool)
}

// SliceIter 在切片上迭代。迭代过程只读，不修改底层切片。
type SliceIter struct {
	addrs []xsock.SocketAddr
	pos   int
}

// NewSliceIter 创建切片迭代器。
func NewSliceIter(addrs []xsock.SocketAddr) *SliceIter {
	return &SliceIter{addrs: addrs}
}

// Next 返回下一个地址。
func (it *SliceIter) Next() (xsock.SocketAddr, bool) {
	if it.pos >= len(it.addrs) {
		return xsock.SocketAddr{}, false
	}
	a := it.addrs[it.pos]
	it.pos++
	return a, true
}

// Collect 耗尽迭代器并返回全部地址。nil 迭代器视为空序列。
func Collect(it Iterator) []xsock.SocketAddr {
	if it == nil {
		return nil
	}
	var out []xsock.SocketAddr
	for {
		a, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, a)
	}
}
