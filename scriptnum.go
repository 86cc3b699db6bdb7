// 实现了执行栈上数值的最小变长编码与解码。

package subscript

import (
	"fmt"
	"math"
)

// ScriptNum 表示执行栈上的有符号整数。
//
// 栈上的规范编码为：零编码为空字节串；非零值按小端序以最少字节数编码其
// 绝对值，符号占用最后一个字节的最高位，当绝对值最后一个字节的最高位
// 本身被占用时追加一个 0x00（正）或 0x80（负）字节；整个负载之前冠以
// 一个单字节长度前缀。该前缀是栈表示的内部约定：它恰好落在内联推送
// 操作码的取值范围内，因而编码结果本身就是一个合法的数据推送。
//
// 注意 Bytes(MakeScriptNum(x)) 不保证逐字节复原 x：解码接受栈上出现的
// 任意编码，而编码总是产生唯一的最小规范形式。这一不对称是刻意的。
type ScriptNum int64

// Bytes 返回数值的规范最小编码（含长度前缀），零返回空切片。
func (n ScriptNum) Bytes() []byte {
	if n == 0 {
		return nil
	}

	payload := numPayload(int64(n))
	result := make([]byte, 0, len(payload)+1)
	result = append(result, byte(len(payload)))
	return append(result, payload...)
}

// numPayload 按小端序返回 n 的最小符号-绝对值字节表示，不含长度前缀。
// 该形式同时用于通用数值推送（见 scriptbuilder.go）。
func numPayload(n int64) []byte {
	if n == 0 {
		return nil
	}

	neg := n < 0
	absv := uint64(n)
	if neg {
		// 对 math.MinInt64 直接取负会溢出，无符号取负则得到 2^63。
		absv = -absv
	}

	result := make([]byte, 0, 9)
	for absv > 0 {
		result = append(result, byte(absv&0xff))
		absv >>= 8
	}

	switch {
	case result[len(result)-1]&0x80 != 0:
		extra := byte(0x00)
		if neg {
			extra = 0x80
		}
		result = append(result, extra)
	case neg:
		result[len(result)-1] |= 0x80
	}
	return result
}

// MakeScriptNum 将栈上的字节串解释为数值。
//
// 第一个字节按栈表示约定视作长度前缀被跳过；其余字节按小端序重建
// 绝对值，最后一个字节的最高位为符号位，置位时从绝对值中剔除后取负。
// 任何编码（包括非最小编码）都被接受，不存在错误路径。绝对值超出
// 64 位可表示范围的输入按 64 位截断处理。
func MakeScriptNum(v []byte) ScriptNum {
	if len(v) <= 1 {
		return 0
	}
	val := v[1:]

	neg := val[len(val)-1]&0x80 != 0

	var mag uint64
	for i, b := range val {
		if i == len(val)-1 {
			b &= 0x7f
		}
		if i < 8 {
			mag |= uint64(b) << (8 * i)
		}
	}

	if neg {
		return ScriptNum(-int64(mag))
	}
	return ScriptNum(int64(mag))
}

// Sub 返回 n - rhs，并在越过 64 位有符号整数边界时失败。
// 该边界是刻意的共识式限制，绝不允许静默回绕。
func (n ScriptNum) Sub(rhs ScriptNum) (ScriptNum, error) {
	if rhs < 0 && n > math.MaxInt64+rhs {
		str := fmt.Sprintf("subtraction of %d - %d overflows int64", n, rhs)
		return 0, scriptError(ErrNumericOverflow, str)
	}
	if rhs > 0 && n < math.MinInt64+rhs {
		str := fmt.Sprintf("subtraction of %d - %d underflows int64", n, rhs)
		return 0, scriptError(ErrNumericOverflow, str)
	}
	return n - rhs, nil
}
