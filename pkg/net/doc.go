// Package net 提供网络地址相关的子包。
//
// 子包列表：
//   - xip: IPv4/IPv6 地址类型，解析、规范格式化、分类与范围判断
//   - xsock: 套接字地址（IP + 端口，IPv6 含 flowinfo/scope_id），解析与格式化
//   - xresolve: 地址分派协议，字面量直接返回，主机名交由注入的解析器（缓存、重试、熔断、可观测性中间件）
//
// 设计原则：
//   - 解析严格，格式化规范，二者互为逆运算
//   - 值类型，零分配的热路径
//   - 解析器可注入，库本身不依赖全局状态
package net
