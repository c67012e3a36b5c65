// Package xip 提供与平台无关的 IP 地址值类型。
//
// [IPv4Addr]（4 字节）、[IPv6Addr]（16 字节）与二者的联合类型 [IPAddr]
// 都是可比较的值类型，可直接作为 map key。任何位模式都是合法地址，
// 不存在"无效地址"状态。
//
// # 核心功能
//
//   - parse.go: 严格的文本解析 [ParseIPv4]、[ParseIPv6]、[ParseIP]
//   - format.go: 规范文本输出、[Style] 风格、[fmt.Formatter] 支持
//   - classify.go: 地址分类谓词与 [Classify]
//   - convert.go: 与 [net/netip]、[net.IP]、uint32、[*big.Int] 互转
//   - range.go: 基于 [go4.org/netipx] 的范围解析与集合
//
// # 快速示例
//
//	ip, err := xip.ParseIP("2001:db8::1")
//	if err != nil {
//	    // errors.Is(err, xip.ErrAddrParse) 为 true
//	}
//	fmt.Println(ip)                 // 2001:db8::1
//	fmt.Println(xip.Classify(ip))   // documentation
//
// # 解析规则
//
// 解析器不接受任何宽松写法：
//   - IPv4 每段 1~3 位十进制，不超过 255，除 "0" 外不允许前导零
//   - IPv6 每组 1~4 位十六进制（大小写均可），至多一个 "::"，且 "::" 至少代表一个零组
//   - IPv6 末尾可内嵌点分 IPv4，仅当剩余空间至少两个组时
//   - 不接受空白、符号、zone（"%eth0"）与多余的段
//
// 解析失败统一返回 [*AddrParseError]，可用 errors.Is(err, [ErrAddrParse]) 判断。
//
// # 格式化
//
// 输出始终为规范形式：IPv4 无前导零；IPv6 小写、组内无前导零，
// 最左侧最长（长度至少 2）的连续零组压缩为 "::"。
//
// IPv4-mapped 地址（::ffff:a.b.c.d）的写法由 [Style] 决定：
// [DefaultStyle] 输出点分形式，[HexStyle] 输出纯十六进制形式。
// 两种输出都能被 [ParseIPv6] 解析回同一个值。
//
// # 设计决策
//
//   - 解析、格式化与分类都不访问操作系统，不会因输入而 panic
//   - String 之外的格式化路径写入调用方提供的缓冲区，定长栈缓冲即可容纳最长输出
//   - 零值 [IPAddr] 是 IPv4 的 0.0.0.0
package xip
