// Package xresolve 将各种形态的输入转换为套接字地址序列。
//
// # 分派
//
// 输入形态包括套接字地址字面量、(地址, 端口) 对、"host:port" 文本以及
// (主机文本, 端口) 对。[Target] 以封闭的标签变体承载它们，
// [ToSocketAddrs] 在编译期选择构造方式，[TargetOf] 在运行期识别（含指针形态）。
//
// 分派先尝试零成本的字面量解析，只有失败时才调用注入的 [Resolver]。
// 字面量路径得到恰好一个元素的 [Addrs]，不调用解析器、不分配堆内存。
//
//	addrs, err := xresolve.ToSocketAddrs(ctx, r, "db.internal:5432")
//	if err != nil {
//	    return err
//	}
//	for a := range addrs.All() {
//	    // ...
//	}
//
// 没有全局解析器。只处理字面量时 r 可以为 nil；
// 非字面量输入在 r 为 nil 时返回 [ErrNoResolver]。
//
// # 解析器与中间件
//
//   - [Static]: 内存主机表
//   - [NetResolver]: 平台解析（net.Resolver）
//   - [Cached]: LRU 缓存 + 并发未命中合并
//   - [Retrying]: 暂时性失败的有限次重试
//   - [Breaker]: 连续失败后快速拒绝
//   - [Logged] / [Instrumented]: slog 日志与 OpenTelemetry 指标
//
// [BuildResolver] 按 [Config] 组装完整的解析器链，[LoadConfig] 从 YAML/JSON 加载配置。
package xresolve
