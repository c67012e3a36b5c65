package xresolve

import "errors"

// 解析协议相关错误。
var (
	// ErrNoResolver 表示输入不是地址字面量，但调用方未提供解析器。
	ErrNoResolver = errors.New("xresolve: resolver required for non-literal input")

	// ErrHostNotFound 表示解析器确认主机不存在。
	// 该错误是确定性结果，不会被重试，也不计入熔断失败。
	ErrHostNotFound = errors.New("xresolve: host not found")

	// ErrBreakerOpen 表示熔断器处于打开状态，请求被快速拒绝。
	ErrBreakerOpen = errors.New("xresolve: circuit breaker open")

	// ErrUnsupportedInput 表示 [TargetOf] 收到无法识别的输入类型。
	ErrUnsupportedInput = errors.New("xresolve: unsupported input type")

	// ErrInvalidConfig 表示解析器配置无效。
	ErrInvalidConfig = errors.New("xresolve: invalid config")
)
