// 定义了脚本处理过程中可能遇到的错误类型。

package subscript

import "fmt"

// ErrorCode 标识一种脚本错误。
type ErrorCode int

// 这些常量用于标识特定的错误。
const (
	// ErrInternal 表示内部一致性问题，理论上永远不会被触发，
	// 保留它是为了与本包的错误惯例保持一致。
	ErrInternal ErrorCode = iota

	// ErrTruncatedPush 表示脚本中某个数据推送的长度头或其负载越过了
	// 脚本末尾。这是结构性解码失败，与求值失败是不同的通道；
	// 对应 Error 的 Data 字段携带截断前已恢复的部分数据。
	ErrTruncatedPush

	// ErrInvalidItemType 表示传给脚本拼装（或连接）的值不属于
	// 可强制转换的类型集合。
	ErrInvalidItemType

	// ErrElementTooBig 表示要推送的数据超出了 PUSHDATA4 所能表达的
	// 最大长度。
	ErrElementTooBig

	// ErrInvalidStackOperation 表示某个操作码在执行时栈中的元素数量
	// 不足（栈下溢），或访问了不存在的栈位置。
	ErrInvalidStackOperation

	// ErrUnbalancedConditional 表示 OP_ELSE 或 OP_ENDIF 在没有与之
	// 配对的 OP_IF/OP_NOTIF 的情况下出现。
	ErrUnbalancedConditional

	// ErrMinimalIf 表示 OP_IF/OP_NOTIF 弹出的条件值不是最小布尔编码：
	// 条件必须是空串或单字节 0x01。
	ErrMinimalIf

	// ErrVerify 表示 OP_VERIFY 弹出的栈顶元素按规范真值规则为假。
	ErrVerify

	// ErrEqualVerify 表示 OP_EQUALVERIFY 弹出的两个元素逐字节不相等。
	ErrEqualVerify

	// ErrNumericOverflow 表示带检查的数值运算越过了 64 位有符号整数
	// 边界。该边界是刻意的共识式限制，绝不允许静默回绕。
	ErrNumericOverflow

	// ErrStackOverflow 表示执行期间数据栈深度超过了 MaxStackSize。
	ErrStackOverflow

	// ErrUnsupportedOpcode 表示引擎在活跃分支中遇到了受支持子集之外的
	// 操作码。这是与普通求值失败截然不同的硬失败：脚本未必无效，
	// 只是本引擎尚无法对其进行推演。
	ErrUnsupportedOpcode

	// numErrorCodes 是测试中使用的最大错误代码编号。
	numErrorCodes
)

// errorCodeStrings 将错误代码映射到其字符串化形式，便于日志与测试。
var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:              "ErrInternal",
	ErrTruncatedPush:         "ErrTruncatedPush",
	ErrInvalidItemType:       "ErrInvalidItemType",
	ErrElementTooBig:         "ErrElementTooBig",
	ErrInvalidStackOperation: "ErrInvalidStackOperation",
	ErrUnbalancedConditional: "ErrUnbalancedConditional",
	ErrMinimalIf:             "ErrMinimalIf",
	ErrVerify:                "ErrVerify",
	ErrEqualVerify:           "ErrEqualVerify",
	ErrNumericOverflow:       "ErrNumericOverflow",
	ErrStackOverflow:         "ErrStackOverflow",
	ErrUnsupportedOpcode:     "ErrUnsupportedOpcode",
}

// String 将 ErrorCode 以人类可读形式返回。
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error 标识与脚本相关的错误。
// 调用者可以检查 ErrorCode 字段以编程方式确定具体的错误种类，
// 同时仍然获得带上下文信息的错误消息。
type Error struct {
	ErrorCode   ErrorCode
	Description string

	// Data 仅在 ErrorCode 为 ErrTruncatedPush 时设置，
	// 携带截断发生前已恢复的部分推送数据。
	Data []byte
}

// Error 满足 error 接口并打印人类可读的错误。
func (e Error) Error() string {
	return e.Description
}

// scriptError 根据给定的错误代码和描述创建一个 Error。
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// truncatedPushError 创建携带部分恢复数据的结构性解码错误。
func truncatedPushError(desc string, data []byte) Error {
	return Error{ErrorCode: ErrTruncatedPush, Description: desc, Data: data}
}

// IsErrorCode 返回所传错误是否为具有指定错误代码的脚本错误。
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.ErrorCode == c
}
