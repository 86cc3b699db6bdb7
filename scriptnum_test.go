// 包含测试脚本数字处理的代码。

package subscript

import (
	"bytes"
	"encoding/hex"
	"math"
	"testing"
)

// hexToBytes 将传入的十六进制字符串转换为字节，失败时直接崩溃。
// 它只会（并且必须仅）使用硬编码常量来调用，以便能检测到源代码中的
// 书写错误。
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestScriptNumBytes 确保从整数到栈上规范最小编码的转换按预期工作，
// 包括长度前缀与符号位的处理。
func TestScriptNumBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		num        ScriptNum
		serialized []byte
	}{
		{0, nil},
		{1, hexToBytes("0101")},
		{-1, hexToBytes("0181")},
		{127, hexToBytes("017f")},
		{-127, hexToBytes("01ff")},
		{128, hexToBytes("028000")},
		{-128, hexToBytes("028080")},
		{129, hexToBytes("028100")},
		{-129, hexToBytes("028180")},
		{256, hexToBytes("020001")},
		{-256, hexToBytes("020081")},
		{32767, hexToBytes("02ff7f")},
		{-32767, hexToBytes("02ffff")},
		{32768, hexToBytes("03008000")},
		{-32768, hexToBytes("03008080")},
		{65535, hexToBytes("03ffff00")},
		{-65535, hexToBytes("03ffff80")},
		{524288, hexToBytes("03000008")},
		{-524288, hexToBytes("03000088")},
		{7340032, hexToBytes("03000070")},
		{-7340032, hexToBytes("030000f0")},
		{8388608, hexToBytes("0400008000")},
		{-8388608, hexToBytes("0400008080")},
		{2147483647, hexToBytes("04ffffff7f")},
		{-2147483647, hexToBytes("04ffffffff")},
		{2147483648, hexToBytes("050000008000")},
		{-2147483648, hexToBytes("050000008080")},
		{4294967295, hexToBytes("05ffffffff00")},
		{-4294967295, hexToBytes("05ffffffff80")},
		{math.MaxInt64, hexToBytes("08ffffffffffffff7f")},
		{-math.MaxInt64, hexToBytes("08ffffffffffffffff")},
		{math.MinInt64, hexToBytes("09000000000000008080")},
	}

	for _, test := range tests {
		gotBytes := test.num.Bytes()
		if !bytes.Equal(gotBytes, test.serialized) {
			t.Errorf("Bytes: did not get expected bytes for %d - "+
				"got %x, want %x", test.num, gotBytes,
				test.serialized)
			continue
		}
	}
}

// TestMakeScriptNum 确保从栈上字节表示到整数的转换按预期工作：
// 第一个字节作为长度前缀被跳过，任何（包括非最小的）编码都被接受。
func TestMakeScriptNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		serialized []byte
		num        ScriptNum
	}{
		// 空串与孤立的前缀字节均为零。
		{nil, 0},
		{hexToBytes("00"), 0},
		{hexToBytes("ff"), 0},

		// 最小编码。
		{hexToBytes("0101"), 1},
		{hexToBytes("0181"), -1},
		{hexToBytes("017f"), 127},
		{hexToBytes("01ff"), -127},
		{hexToBytes("028000"), 128},
		{hexToBytes("028080"), -128},
		{hexToBytes("020001"), 256},
		{hexToBytes("020081"), -256},
		{hexToBytes("04ffffff7f"), 2147483647},
		{hexToBytes("04ffffffff"), -2147483647},
		{hexToBytes("08ffffffffffffff7f"), math.MaxInt64},
		{hexToBytes("09000000000000008080"), math.MinInt64},

		// 非最小编码同样被接受。
		{hexToBytes("020100"), 1},
		{hexToBytes("03010000"), 1},
		{hexToBytes("020180"), -1},
		{hexToBytes("0180"), 0}, // 负零
		{hexToBytes("03800080"), -128},

		// 前缀字节的取值与解码结果无关。
		{hexToBytes("aa05"), 5},
	}

	for _, test := range tests {
		got := MakeScriptNum(test.serialized)
		if got != test.num {
			t.Errorf("MakeScriptNum(%x): got %d, want %d",
				test.serialized, got, test.num)
			continue
		}
	}
}

// TestScriptNumRoundTrip 确保对任意可表示的整数，先编码再解码能够
// 复原原值，并且对非最小编码重新编码会得到唯一的最小形式。
func TestScriptNumRoundTrip(t *testing.T) {
	t.Parallel()

	values := []ScriptNum{
		0, 1, -1, 2, 16, 17, 127, -127, 128, -128, 255, -255, 256,
		32767, -32768, 65535, 1 << 20, -(1 << 20), 2147483647,
		-2147483648, math.MaxInt64, math.MinInt64,
	}
	for _, v := range values {
		if got := MakeScriptNum(v.Bytes()); got != v {
			t.Errorf("round trip of %d: got %d", v, got)
		}
	}

	// 非最小编码在解码后重新编码得到最小形式。
	nonMinimal := []struct {
		serialized []byte
		minimal    []byte
	}{
		{hexToBytes("020100"), hexToBytes("0101")},
		{hexToBytes("03010000"), hexToBytes("0101")},
		{hexToBytes("020180"), hexToBytes("0181")},
		{hexToBytes("0180"), nil},
	}
	for _, test := range nonMinimal {
		got := MakeScriptNum(test.serialized).Bytes()
		if !bytes.Equal(got, test.minimal) {
			t.Errorf("re-encode of %x: got %x, want %x",
				test.serialized, got, test.minimal)
		}
	}
}

// TestScriptNumSub 确保带检查的减法在 64 位边界上显式失败，
// 而不是静默回绕。
func TestScriptNumSub(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n      ScriptNum
		rhs    ScriptNum
		result ScriptNum
		err    error
	}{
		{5, 1, 4, nil},
		{0, 1, -1, nil},
		{-5, -10, 5, nil},
		{math.MinInt64 + 1, 1, math.MinInt64, nil},
		{math.MinInt64, 1, 0, scriptError(ErrNumericOverflow, "")},
		{math.MaxInt64, -1, 0, scriptError(ErrNumericOverflow, "")},
		{math.MaxInt64, 1, math.MaxInt64 - 1, nil},
	}

	for _, test := range tests {
		result, err := test.n.Sub(test.rhs)
		if e, ok := test.err.(Error); ok {
			if !IsErrorCode(err, e.ErrorCode) {
				t.Errorf("%d - %d: unexpected error - got %v, "+
					"want %v", test.n, test.rhs, err, e.ErrorCode)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d - %d: unexpected error %v", test.n, test.rhs, err)
			continue
		}
		if result != test.result {
			t.Errorf("%d - %d: got %d, want %d", test.n, test.rhs,
				result, test.result)
		}
	}
}
