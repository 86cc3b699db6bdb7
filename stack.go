// 实现了脚本执行过程中使用的数据栈。

package subscript

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// asBool 按规范真值规则解释栈元素：
// 任意非零字节使其为真，唯一的例外是在全零尾部之上的单个末位 0x80
// （即“负零”）被视为假。
func asBool(t []byte) bool {
	for i := range t {
		if t[i] != 0 {
			if i == len(t)-1 && t[i] == 0x80 {
				return false
			}
			return true
		}
	}
	return false
}

// fromBool 将布尔值转换为可推入栈的字节表示。
// 真为单字节 0x01（恰为最小布尔编码），假为空。
func fromBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return nil
}

// stack 表示不可变字节串的后进先出栈，仅在一端追加与弹出；
// 除个别指令要求的栈顶窥视外不存在随机访问。
// 执行引擎在数值与布尔语境下分别通过 ScriptNum 编码与规范真值规则
// 解释其中的元素。
type stack struct {
	stk [][]byte
}

// Depth 返回栈上的元素个数。
func (s *stack) Depth() int32 {
	return int32(len(s.stk))
}

// PushByteArray 将给定字节串压入栈顶。
func (s *stack) PushByteArray(so []byte) {
	s.stk = append(s.stk, so)
}

// PushInt 将给定数值以其规范最小编码压入栈顶。
func (s *stack) PushInt(val ScriptNum) {
	s.PushByteArray(val.Bytes())
}

// PushBool 将给定布尔值压入栈顶。
func (s *stack) PushBool(val bool) {
	s.PushByteArray(fromBool(val))
}

// PopByteArray 弹出并返回栈顶元素，栈空时返回栈下溢错误。
func (s *stack) PopByteArray() ([]byte, error) {
	depth := len(s.stk)
	if depth == 0 {
		return nil, scriptError(ErrInvalidStackOperation,
			"attempt to pop from an empty stack")
	}
	so := s.stk[depth-1]
	s.stk = s.stk[:depth-1]
	return so, nil
}

// PopInt 弹出栈顶元素并将其解释为数值。
// 解码接受任意编码，见 MakeScriptNum。
func (s *stack) PopInt() (ScriptNum, error) {
	so, err := s.PopByteArray()
	if err != nil {
		return 0, err
	}
	return MakeScriptNum(so), nil
}

// PopBool 弹出栈顶元素并按规范真值规则将其解释为布尔值。
func (s *stack) PopBool() (bool, error) {
	so, err := s.PopByteArray()
	if err != nil {
		return false, err
	}
	return asBool(so), nil
}

// PeekByteArray 返回距栈顶 idx 处的元素而不移除它。
func (s *stack) PeekByteArray(idx int32) ([]byte, error) {
	sz := int32(len(s.stk))
	if idx < 0 || idx >= sz {
		str := fmt.Sprintf("index %d is invalid for stack size %d", idx, sz)
		return nil, scriptError(ErrInvalidStackOperation, str)
	}
	return s.stk[sz-idx-1], nil
}

// PeekBool 按规范真值规则返回距栈顶 idx 处元素的布尔解释，
// 不移除该元素。
func (s *stack) PeekBool(idx int32) (bool, error) {
	so, err := s.PeekByteArray(idx)
	if err != nil {
		return false, err
	}
	return asBool(so), nil
}

// String 返回栈的可读表示，仅用于调试日志。
func (s *stack) String() string {
	var result strings.Builder
	for _, stack := range s.stk {
		if len(stack) == 0 {
			result.WriteString("00000000  <empty>\n")
			continue
		}
		result.WriteString(hex.Dump(stack))
	}
	return result.String()
}
