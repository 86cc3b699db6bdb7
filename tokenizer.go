// 包含脚本令牌化的逻辑，用于将脚本分解为操作码和内联数据。

package subscript

import (
	"encoding/binary"
	"fmt"
)

// ScriptTokenizer 提供了一种从左到右遍历脚本的设施，不涉及额外分配，
// 同时对脚本的良构性进行惰性检查：截断的推送长度头或负载在迭代到达时
// 才作为结构性解码错误报告，而不是在构造时。
//
// 迭代完成后必须检查 Err：Done 在正常结束和出错时都会返回 true。
type ScriptTokenizer struct {
	script  []byte
	offset  int32
	op      Opcode
	data    []byte
	hasData bool
	err     error
}

// Done 返回所有字节均已耗尽或遇到解析错误，亦即 Next 不会再成功。
func (t *ScriptTokenizer) Done() bool {
	return t.err != nil || t.offset >= int32(len(t.script))
}

// Next 尝试解析下一条指令并返回是否成功。
// 失败时 Err 返回具体错误，且令牌化器的位置不再前进。
//
// 字节值 0x00 到 0x4b 本身就是内联推送长度（OP_0 因而是一次零长度
// 推送）；OP_PUSHDATA1/2/4 的长度由其后 1/2/4 个小端字节给出；
// 其余字节值不携带内联数据。
func (t *ScriptTokenizer) Next() bool {
	if t.Done() {
		return false
	}

	start := t.offset
	op := Opcode(t.script[start])
	next := start + 1

	switch {
	case op > OP_PUSHDATA4:
		t.op, t.data, t.hasData = op, nil, false
		t.offset = next
		return true

	// 0x00 至 0x4b：操作码字节本身即为推送长度。
	case op < OP_PUSHDATA1:
		dataLen := int32(op)
		if int32(len(t.script))-next < dataLen {
			partial := t.script[next:]
			str := fmt.Sprintf("opcode %s requires %d bytes of data, "+
				"only %d remain", op, dataLen, len(partial))
			t.err = truncatedPushError(str, partial)
			return false
		}
		t.op = op
		t.data = t.script[next : next+dataLen]
		t.hasData = true
		t.offset = next + dataLen
		return true

	// OP_PUSHDATA1/2/4：长度由其后的小端字节给出。
	default:
		var lenBytes int32
		switch op {
		case OP_PUSHDATA1:
			lenBytes = 1
		case OP_PUSHDATA2:
			lenBytes = 2
		case OP_PUSHDATA4:
			lenBytes = 4
		}
		if int32(len(t.script))-next < lenBytes {
			str := fmt.Sprintf("opcode %s requires %d bytes for its "+
				"data length, only %d remain", op, lenBytes,
				int32(len(t.script))-next)
			t.err = truncatedPushError(str, nil)
			return false
		}

		var dataLen int32
		switch op {
		case OP_PUSHDATA1:
			dataLen = int32(t.script[next])
		case OP_PUSHDATA2:
			dataLen = int32(binary.LittleEndian.Uint16(t.script[next:]))
		case OP_PUSHDATA4:
			dataLen = int32(binary.LittleEndian.Uint32(t.script[next:]))
		}
		next += lenBytes

		// 无符号长度字段本身总被视为有效；越过脚本末尾才算截断。
		if dataLen < 0 || int32(len(t.script))-next < dataLen {
			partial := t.script[next:]
			str := fmt.Sprintf("opcode %s declares %d bytes of data, "+
				"only %d remain", op, dataLen, len(partial))
			t.err = truncatedPushError(str, partial)
			return false
		}
		t.op = op
		t.data = t.script[next : next+dataLen]
		t.hasData = true
		t.offset = next + dataLen
		return true
	}
}

// Script 返回被遍历的完整脚本的原始字节。
func (t *ScriptTokenizer) Script() []byte {
	return t.script
}

// ByteIndex 返回刚解析出的指令之后的字节偏移，
// 亦即下一条指令的起始偏移。
func (t *ScriptTokenizer) ByteIndex() int32 {
	return t.offset
}

// Opcode 返回当前指令的操作码。
func (t *ScriptTokenizer) Opcode() Opcode {
	return t.op
}

// Data 返回当前指令的内联数据。
// 对零长度推送返回空切片，对不携带数据的指令返回 nil。
func (t *ScriptTokenizer) Data() []byte {
	return t.data
}

// HasData 返回当前指令是否是数据推送。
// 零长度推送（如 OP_0）同样计为数据推送，这与按操作码区分不同。
func (t *ScriptTokenizer) HasData() bool {
	return t.hasData
}

// Err 返回令牌化过程中遇到的错误，正常耗尽时为 nil。
func (t *ScriptTokenizer) Err() error {
	return t.err
}

// MakeScriptTokenizer 为给定脚本字节返回一个新的令牌化器。
// 调用方不得在迭代期间修改该字节切片。
func MakeScriptTokenizer(script []byte) ScriptTokenizer {
	return ScriptTokenizer{script: script}
}
