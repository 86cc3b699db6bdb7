// 包含测试脚本构建器的代码。

package subscript

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScriptBuilderAddOp 确保按操作码推送的行为符合预期。
func TestScriptBuilderAddOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opcodes  []Opcode
		expected []byte
	}{{
		name:     "push OP_FALSE",
		opcodes:  []Opcode{OP_FALSE},
		expected: []byte{byte(OP_FALSE)},
	}, {
		name:     "push OP_TRUE",
		opcodes:  []Opcode{OP_TRUE},
		expected: []byte{byte(OP_TRUE)},
	}, {
		name:     "push OP_DUP OP_EQUALVERIFY",
		opcodes:  []Opcode{OP_DUP, OP_EQUALVERIFY},
		expected: []byte{byte(OP_DUP), byte(OP_EQUALVERIFY)},
	}}

	// 通过逐个 AddOp 运行测试。
	builder := NewScriptBuilder()
	for _, test := range tests {
		builder.Reset()
		for _, opcode := range test.opcodes {
			builder.AddOp(opcode)
		}
		result, err := builder.Script()
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, result, test.name)
	}

	// 通过 AddOps 运行测试。
	for _, test := range tests {
		builder.Reset().AddOps(test.opcodes)
		result, err := builder.Script()
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, result, test.name)
	}
}

// TestScriptBuilderAddInt64 确保按数值推送的行为符合预期：
// [0,16] 与 -1 使用单字节操作码，其余使用最小字节表示的数据推送。
func TestScriptBuilderAddInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val      int64
		expected []byte
	}{
		{"push -1", -1, []byte{byte(OP_1NEGATE)}},
		{"push small int 0", 0, []byte{byte(OP_0)}},
		{"push small int 1", 1, []byte{byte(OP_1)}},
		{"push small int 16", 16, []byte{byte(OP_16)}},
		{"push 17", 17, []byte{0x01, 0x11}},
		{"push 65", 65, []byte{0x01, 0x41}},
		{"push 127", 127, []byte{0x01, 0x7f}},
		{"push 128", 128, []byte{0x02, 0x80, 0x00}},
		{"push 255", 255, []byte{0x02, 0xff, 0x00}},
		{"push 256", 256, []byte{0x02, 0x00, 0x01}},
		{"push 32767", 32767, []byte{0x02, 0xff, 0x7f}},
		{"push 32768", 32768, []byte{0x03, 0x00, 0x80, 0x00}},
		{"push -2", -2, []byte{0x01, 0x82}},
		{"push -128", -128, []byte{0x02, 0x80, 0x80}},
		{"push -32768", -32768, []byte{0x03, 0x00, 0x80, 0x80}},
	}

	builder := NewScriptBuilder()
	for _, test := range tests {
		builder.Reset().AddInt64(test.val)
		result, err := builder.Script()
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, result, test.name)
	}
}

// TestScriptBuilderAddData 确保按数据推送时选择规范的最小长度前缀：
// 0 到 75 字节内联，其后依次是 OP_PUSHDATA1、OP_PUSHDATA2 与
// OP_PUSHDATA4。
func TestScriptBuilderAddData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []byte
	}{{
		name:     "push empty byte sequence",
		data:     nil,
		expected: []byte{byte(OP_0)},
	}, {
		name:     "push 1 byte",
		data:     []byte{0x01},
		expected: []byte{0x01, 0x01},
	}, {
		name:     "push 75 bytes",
		data:     bytes.Repeat([]byte{0x49}, 75),
		expected: append([]byte{0x4b}, bytes.Repeat([]byte{0x49}, 75)...),
	}, {
		name: "push 76 bytes",
		data: bytes.Repeat([]byte{0x49}, 76),
		expected: append([]byte{byte(OP_PUSHDATA1), 76},
			bytes.Repeat([]byte{0x49}, 76)...),
	}, {
		name: "push 255 bytes",
		data: bytes.Repeat([]byte{0x49}, 255),
		expected: append([]byte{byte(OP_PUSHDATA1), 255},
			bytes.Repeat([]byte{0x49}, 255)...),
	}, {
		name: "push 256 bytes",
		data: bytes.Repeat([]byte{0x49}, 256),
		expected: append([]byte{byte(OP_PUSHDATA2), 0x00, 0x01},
			bytes.Repeat([]byte{0x49}, 256)...),
	}, {
		name: "push 65535 bytes",
		data: bytes.Repeat([]byte{0x49}, 65535),
		expected: append([]byte{byte(OP_PUSHDATA2), 0xff, 0xff},
			bytes.Repeat([]byte{0x49}, 65535)...),
	}, {
		name: "push 65536 bytes",
		data: bytes.Repeat([]byte{0x49}, 65536),
		expected: append([]byte{byte(OP_PUSHDATA4), 0x00, 0x00, 0x01, 0x00},
			bytes.Repeat([]byte{0x49}, 65536)...),
	}}

	builder := NewScriptBuilder()
	for _, test := range tests {
		builder.Reset().AddData(test.data)
		result, err := builder.Script()
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, result, test.name)
	}
}

// TestScriptBuilderAddScriptNum 确保数值栈值以其带长度前缀的规范编码
// 被原样拼入，零编码为 OP_0。
func TestScriptBuilderAddScriptNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val      ScriptNum
		expected []byte
	}{
		{"push zero", 0, []byte{byte(OP_0)}},
		{"push 1", 1, []byte{0x01, 0x01}},
		{"push -1", -1, []byte{0x01, 0x81}},
		{"push 128", 128, []byte{0x02, 0x80, 0x00}},
	}

	builder := NewScriptBuilder()
	for _, test := range tests {
		builder.Reset().AddScriptNum(test.val)
		result, err := builder.Script()
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, result, test.name)
	}
}

// TestScriptBuilderStickyError 确保出错后构建器保持错误状态，
// 后续调用均为空操作且不观察部分结果。
func TestScriptBuilderStickyError(t *testing.T) {
	t.Parallel()

	// AddItem 拒绝不受支持的类型，之后的调用不再生效。
	builder := NewScriptBuilder()
	builder.AddOp(OP_DUP).AddItem(3.14).AddOp(OP_DROP)
	result, err := builder.Script()
	require.Nil(t, result)
	require.True(t, IsErrorCode(err, ErrInvalidItemType), "err: %v", err)

	// Reset 清除错误状态。
	builder.Reset().AddOp(OP_DUP)
	result, err = builder.Script()
	require.NoError(t, err)
	require.Equal(t, []byte{byte(OP_DUP)}, result)
}

// TestScriptBuilderAllocOption 确保初始容量选项只是性能提示，
// 不影响产出的脚本。
func TestScriptBuilderAllocOption(t *testing.T) {
	t.Parallel()

	builder := NewScriptBuilder(WithScriptAllocSize(1))
	builder.AddOp(OP_DUP).AddData([]byte{0xde, 0xad})
	result, err := builder.Script()
	require.NoError(t, err)
	require.Equal(t, []byte{byte(OP_DUP), 0x02, 0xde, 0xad}, result)
}
