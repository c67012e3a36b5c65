package xresolve

import (
	"context"
	"fmt"

	"github.com/omeyang/xaddr/pkg/net/xip"
	"github.com/omeyang/xaddr/pkg/net/xsock"
)

// HostPort 是 (主机文本, 端口) 对。
type HostPort struct {
	Host string
	Port uint16
}

// Target 返回对应的 [Target]。
func (hp HostPort) Target() Target { return FromHostPort(hp.Host, hp.Port) }

// IPPort 是 (地址, 端口) 对。
type IPPort struct {
	IP   xip.IPAddr
	Port uint16
}

// Target 返回对应的 [Target]。
func (p IPPort) Target() Target { return FromIPPort(p.IP, p.Port) }

// Input 是可在编译期分派的输入形态集合。
type Input interface {
	xsock.SocketAddr | xsock.SocketAddrV4 | xsock.SocketAddrV6 |
		IPPort | HostPort | string | Target
}

// ToSocketAddrs 将 v 转换为套接字地址序列，分派规则见 [Target.SocketAddrs]。
func ToSocketAddrs[T Input](ctx context.Context, r Resolver, v T) (Addrs, error) {
	return targetFor(v).SocketAddrs(ctx, r)
}

func targetFor[T Input](v T) Target {
	switch x := any(v).(type) {
	case xsock.SocketAddr:
		return FromSocketAddr(x)
	case xsock.SocketAddrV4:
		return FromSocketAddrV4(x)
	case xsock.SocketAddrV6:
		return FromSocketAddrV6(x)
	case IPPort:
		return x.Target()
	case HostPort:
		return x.Target()
	case string:
		return FromString(x)
	case Target:
		return x
	}
	panic("unreachable")
}

// TargetOf 在运行期识别输入形态，额外接受各形态的指针（借用引用）。
// nil 指针与未知类型返回 [ErrUnsupportedInput]。
func TargetOf(v any) (Target, error) {
	switch x := v.(type) {
	case xsock.SocketAddr:
		return FromSocketAddr(x), nil
	case xsock.SocketAddrV4:
		return FromSocketAddrV4(x), nil
	case xsock.SocketAddrV6:
		return FromSocketAddrV6(x), nil
	case IPPort:
		return x.Target(), nil
	case HostPort:
		return x.Target(), nil
	case string:
		return FromString(x), nil
	case Target:
		return x, nil
	case *xsock.SocketAddr:
		if x != nil {
			return FromSocketAddr(*x), nil
		}
	case *xsock.SocketAddrV4:
		if x != nil {
			return FromSocketAddrV4(*x), nil
		}
	case *xsock.SocketAddrV6:
		if x != nil {
			return FromSocketAddrV6(*x), nil
		}
	case *IPPort:
		if x != nil {
			return x.Target(), nil
		}
	case *HostPort:
		if x != nil {
			return x.Target(), nil
		}
	case *string:
		if x != nil {
			return FromString(*x), nil
		}
	case *Target:
		if x != nil {
			return *x, nil
		}
	}
	return Target{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, v)
}
