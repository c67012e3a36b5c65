package xip

// 分类谓词都是全函数：任何地址都有确定结果，不会失败。
// IPv6 谓词只看 IPv6 自身的前缀，不展开 IPv4-mapped 地址；
// 需要按内嵌 IPv4 分类时先调用 [IPAddr.Unmap]。

// IsUnspecified 报告 ip 是否为 0.0.0.0。
func (ip IPv4Addr) IsUnspecified() bool {
	return ip == IPv4Unspecified
}

// IsLoopback 报告 ip 是否属于 127.0.0.0/8。
func (ip IPv4Addr) IsLoopback() bool {
	return ip[0] == 127
}

// IsPrivate 报告 ip 是否为私有地址（RFC 1918）：
//   - 10.0.0.0/8
//   - 172.16.0.0/12
//   - 192.168.0.0/16
func (ip IPv4Addr) IsPrivate() bool {
	return ip[0] == 10 ||
		(ip[0] == 172 && ip[1]&0xf0 == 16) ||
		(ip[0] == 192 && ip[1] == 168)
}

// IsLinkLocal 报告 ip 是否属于 169.254.0.0/16（APIPA）。
func (ip IPv4Addr) IsLinkLocal() bool {
	return ip[0] == 169 && ip[1] == 254
}

// IsMulticast 报告 ip 是否属于 224.0.0.0/4。
func (ip IPv4Addr) IsMulticast() bool {
	return ip[0]&0xf0 == 224
}

// IsBroadcast 报告 ip 是否为有限广播地址 255.255.255.255。
func (ip IPv4Addr) IsBroadcast() bool {
	return ip == IPv4Broadcast
}

// IsDocumentation 报告 ip 是否为文档专用地址：
//   - 192.0.2.0/24 (TEST-NET-1)
//   - 198.51.100.0/24 (TEST-NET-2)
//   - 203.0.113.0/24 (TEST-NET-3)
func (ip IPv4Addr) IsDocumentation() bool {
	p := [3]byte(ip[:3])
	return p == [3]byte{192, 0, 2} ||
		p == [3]byte{198, 51, 100} ||
		p == [3]byte{203, 0, 113}
}

// IsShared 报告 ip 是否属于共享地址空间 100.64.0.0/10（RFC 6598, CGNAT）。
func (ip IPv4Addr) IsShared() bool {
	v := ip.Uint32()
	// 100.64.0.0/10 = 0x64400000 - 0x647FFFFF
	return inRange(v, 0x64400000, 0x647FFFFF)
}

// IsBenchmarking 报告 ip 是否属于基准测试地址 198.18.0.0/15（RFC 2544）。
func (ip IPv4Addr) IsBenchmarking() bool {
	v := ip.Uint32()
	// 198.18.0.0/15 = 0xC6120000 - 0xC613FFFF
	return inRange(v, 0xC6120000, 0xC613FFFF)
}

// IsReserved 报告 ip 是否属于保留地址 240.0.0.0/4（Class E）。
// 255.255.255.255 不算保留地址，使用 [IPv4Addr.IsBroadcast] 判断。
func (ip IPv4Addr) IsReserved() bool {
	return ip[0]&0xf0 == 240 && !ip.IsBroadcast()
}

// IsGlobalUnicast 报告 ip 是否为全局单播地址，即不是未指定、环回、
// 链路本地、多播或广播地址。私有地址也属于全局单播。
func (ip IPv4Addr) IsGlobalUnicast() bool {
	return !ip.IsUnspecified() &&
		!ip.IsLoopback() &&
		!ip.IsLinkLocal() &&
		!ip.IsMulticast() &&
		!ip.IsBroadcast()
}

func inRange(v, lo, hi uint32) bool {
	return v >= lo && v <= hi
}

// IsUnspecified 报告 ip 是否为 ::。
func (ip IPv6Addr) IsUnspecified() bool {
	return ip == IPv6Unspecified
}

// IsLoopback 报告 ip 是否为 ::1。
func (ip IPv6Addr) IsLoopback() bool {
	return ip == IPv6Loopback
}

// IsMulticast 报告 ip 是否属于 ff00::/8。
func (ip IPv6Addr) IsMulticast() bool {
	return ip[0] == 0xff
}

// IsUniqueLocal 报告 ip 是否属于唯一本地地址 fc00::/7。
func (ip IPv6Addr) IsUniqueLocal() bool {
	return ip[0]&0xfe == 0xfc
}

// IsUnicastLinkLocal 报告 ip 是否属于链路本地单播地址 fe80::/10。
func (ip IPv6Addr) IsUnicastLinkLocal() bool {
	return ip[0] == 0xfe && ip[1]&0xc0 == 0x80
}

// IsDocumentation 报告 ip 是否属于文档专用地址 2001:db8::/32。
func (ip IPv6Addr) IsDocumentation() bool {
	return [4]byte(ip[:4]) == [4]byte{0x20, 0x01, 0x0d, 0xb8}
}

// IsBenchmarking 报告 ip 是否属于基准测试地址 2001:2::/48（RFC 5180）。
func (ip IPv6Addr) IsBenchmarking() bool {
	return [6]byte(ip[:6]) == [6]byte{0x20, 0x01, 0x00, 0x02, 0x00, 0x00}
}

// IsGlobalUnicast 报告 ip 是否为全局单播地址，即不是未指定、环回、
// 链路本地单播或多播地址。唯一本地地址也属于全局单播。
func (ip IPv6Addr) IsGlobalUnicast() bool {
	return !ip.IsUnspecified() &&
		!ip.IsLoopback() &&
		!ip.IsUnicastLinkLocal() &&
		!ip.IsMulticast()
}

// MulticastScope 是 IPv6 多播地址的作用域（RFC 4291 / RFC 7346）。
type MulticastScope uint8

// 已定义的多播作用域。
const (
	ScopeInterfaceLocal    MulticastScope = 0x1
	ScopeLinkLocal         MulticastScope = 0x2
	ScopeRealmLocal        MulticastScope = 0x3
	ScopeAdminLocal        MulticastScope = 0x4
	ScopeSiteLocal         MulticastScope = 0x5
	ScopeOrganizationLocal MulticastScope = 0x8
	ScopeGlobal            MulticastScope = 0xe
)

// String 返回作用域名称。
func (s MulticastScope) String() string {
	switch s {
	case ScopeInterfaceLocal:
		return "interface-local"
	case ScopeLinkLocal:
		return "link-local"
	case ScopeRealmLocal:
		return "realm-local"
	case ScopeAdminLocal:
		return "admin-local"
	case ScopeSiteLocal:
		return "site-local"
	case ScopeOrganizationLocal:
		return "organization-local"
	case ScopeGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// MulticastScope 返回多播地址的作用域。
// 非多播地址或未定义的作用域值返回 false。
func (ip IPv6Addr) MulticastScope() (MulticastScope, bool) {
	if !ip.IsMulticast() {
		return 0, false
	}
	switch s := MulticastScope(ip[1] & 0x0f); s {
	case ScopeInterfaceLocal, ScopeLinkLocal, ScopeRealmLocal, ScopeAdminLocal,
		ScopeSiteLocal, ScopeOrganizationLocal, ScopeGlobal:
		return s, true
	default:
		return 0, false
	}
}

// IsUnspecified 报告 a 是否为 0.0.0.0 或 ::。
func (a IPAddr) IsUnspecified() bool {
	if v4, ok := a.As4(); ok {
		return v4.IsUnspecified()
	}
	v6, _ := a.As6()
	return v6.IsUnspecified()
}

// IsLoopback 报告 a 是否为环回地址。
func (a IPAddr) IsLoopback() bool {
	if v4, ok := a.As4(); ok {
		return v4.IsLoopback()
	}
	v6, _ := a.As6()
	return v6.IsLoopback()
}

// IsMulticast 报告 a 是否为多播地址。
func (a IPAddr) IsMulticast() bool {
	if v4, ok := a.As4(); ok {
		return v4.IsMulticast()
	}
	v6, _ := a.As6()
	return v6.IsMulticast()
}

// IsDocumentation 报告 a 是否为文档专用地址。
func (a IPAddr) IsDocumentation() bool {
	if v4, ok := a.As4(); ok {
		return v4.IsDocumentation()
	}
	v6, _ := a.As6()
	return v6.IsDocumentation()
}

// Classification 包含 IP 地址的各项分类结果。
//
// 设计决策: 使用扁平的导出字段，调用方直接访问 c.IsPrivate；
// 各标志不互斥，例如 10.0.0.1 同时满足 IsPrivate 与 IsGlobalUnicast。
type Classification struct {
	// Version 是 IP 版本。
	Version Version

	// IsUnspecified 表示是否为未指定地址。
	IsUnspecified bool

	// IsLoopback 表示是否为环回地址。
	IsLoopback bool

	// IsPrivate 表示是否为 IPv4 私有地址。
	IsPrivate bool

	// IsUniqueLocal 表示是否为 IPv6 唯一本地地址（fc00::/7）。
	IsUniqueLocal bool

	// IsLinkLocal 表示是否为链路本地单播地址（169.254.0.0/16 或 fe80::/10）。
	IsLinkLocal bool

	// IsDocumentation 表示是否为文档专用地址。
	IsDocumentation bool

	// IsShared 表示是否为共享地址空间（仅 IPv4）。
	IsShared bool

	// IsBenchmarking 表示是否为基准测试地址。
	IsBenchmarking bool

	// IsReserved 表示是否为保留地址（仅 IPv4）。
	IsReserved bool

	// IsBroadcast 表示是否为有限广播地址（仅 IPv4）。
	IsBroadcast bool

	// IsMulticast 表示是否为多播地址。
	IsMulticast bool

	// IsGlobalUnicast 表示是否为全局单播地址。
	IsGlobalUnicast bool

	// IsIPv4Mapped 表示是否为 IPv4-mapped IPv6 地址。
	IsIPv4Mapped bool

	// MulticastScope 是 IPv6 多播作用域，HasMulticastScope 为 false 时无意义。
	MulticastScope    MulticastScope
	HasMulticastScope bool
}

// Classify 一次性计算 a 的全部分类结果。
func Classify(a IPAddr) Classification {
	if v4, ok := a.As4(); ok {
		return Classification{
			Version:         V4,
			IsUnspecified:   v4.IsUnspecified(),
			IsLoopback:      v4.IsLoopback(),
			IsPrivate:       v4.IsPrivate(),
			IsLinkLocal:     v4.IsLinkLocal(),
			IsDocumentation: v4.IsDocumentation(),
			IsShared:        v4.IsShared(),
			IsBenchmarking:  v4.IsBenchmarking(),
			IsReserved:      v4.IsReserved(),
			IsBroadcast:     v4.IsBroadcast(),
			IsMulticast:     v4.IsMulticast(),
			IsGlobalUnicast: v4.IsGlobalUnicast(),
		}
	}
	v6, _ := a.As6()
	scope, hasScope := v6.MulticastScope()
	return Classification{
		Version:           V6,
		IsUnspecified:     v6.IsUnspecified(),
		IsLoopback:        v6.IsLoopback(),
		IsUniqueLocal:     v6.IsUniqueLocal(),
		IsLinkLocal:       v6.IsUnicastLinkLocal(),
		IsDocumentation:   v6.IsDocumentation(),
		IsBenchmarking:    v6.IsBenchmarking(),
		IsMulticast:       v6.IsMulticast(),
		IsGlobalUnicast:   v6.IsGlobalUnicast(),
		IsIPv4Mapped:      v6.IsIPv4Mapped(),
		MulticastScope:    scope,
		HasMulticastScope: hasScope,
	}
}

type classLabel struct {
	flag  bool
	label string
}

// labels 按优先级列出全部标签，越特殊的分类越靠前。
func (c Classification) labels() [13]classLabel {
	return [...]classLabel{
		{c.IsLoopback, "loopback"},
		{c.IsUnspecified, "unspecified"},
		{c.IsPrivate, "private"},
		{c.IsUniqueLocal, "unique-local"},
		{c.IsLinkLocal, "link-local"},
		{c.IsDocumentation, "documentation"},
		{c.IsShared, "shared-address"},
		{c.IsBenchmarking, "benchmark"},
		{c.IsReserved, "reserved"},
		{c.IsBroadcast, "broadcast"},
		{c.IsMulticast, "multicast"},
		{c.IsGlobalUnicast, "global-unicast"},
		{c.IsIPv4Mapped, "ipv4-mapped"},
	}
}

// String 返回最具体的分类标签（如 loopback 优先于 private，private 优先于 global-unicast）。
// ipv4-mapped 只是附加标记，不参与选择。
func (c Classification) String() string {
	all := c.labels()
	for _, e := range all[:len(all)-1] {
		if e.flag {
			return e.label
		}
	}
	// 只有手工构造的零值 Classification 会走到这里
	return "unknown"
}

// Labels 按优先级返回全部成立的分类标签。
func (c Classification) Labels() []string {
	var out []string
	for _, e := range c.labels() {
		if e.flag {
			out = append(out, e.label)
		}
	}
	return out
}
