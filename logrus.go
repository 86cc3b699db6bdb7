// 定义了日志记录的相关辅助设施，用于调试和跟踪脚本执行。

package subscript

// logClosure 用于延迟生成开销较大的日志内容：
// 只有当对应日志级别真正启用时闭包才会被求值。
type logClosure func() string

// String 调用闭包并返回其结果。
func (c logClosure) String() string {
	return c()
}

// newLogClosure 将函数包装为 logClosure。
func newLogClosure(c func() string) logClosure {
	return c
}
