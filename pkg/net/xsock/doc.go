// Package xsock 提供套接字地址（IP 地址 + 端口）值类型。
//
// [SocketAddrV4] 是 IPv4 地址与端口；[SocketAddrV6] 额外带有 flowinfo
// 与 scope id；[SocketAddr] 是二者的联合，提供与族无关的 IP/Port 访问。
// 所有类型都是可比较的值类型，零值 [SocketAddr] 是 0.0.0.0:0。
//
// 文本格式：
//
//	10.0.0.1:53
//	[2001:db8::1]:8080
//	[fe80::1%3]:5353     // scope id 非零时输出
//
// 解析与格式化沿用 [xip] 的语法与规范输出；flowinfo 不出现在文本中。
// 与 [net/netip]、[net] 的互转见 convert.go，其中 zone 与 scope id
// 仅在 zone 为十进制数字时互相对应。
package xsock
