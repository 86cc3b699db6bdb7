// 包含一个构建器，用于以编程方式构建脚本。

package subscript

import (
	"encoding/binary"
	"fmt"
)

const (
	// defaultScriptAlloc 是用于支撑脚本构建器的缓冲区的默认大小。
	// 多数脚本远小于该值，选它是为了避免增长时的多次重新分配。
	defaultScriptAlloc = 500
)

// ScriptBuilder 提供以编程方式构建脚本的设施。
// 它允许推送操作码、数值与任意数据，数据推送采用规范的最小编码。
//
// 出错后构建器进入粘滞错误状态，后续的 Add 调用均为空操作，
// 最终的错误由 Script 返回。
type ScriptBuilder struct {
	script []byte
	err    error
}

// ScriptBuilderOpt 定义可传给构建器构造函数的函数式选项。
type ScriptBuilderOpt func(*scriptBuilderConfig)

// scriptBuilderConfig 保存构建器的可配置项。
type scriptBuilderConfig struct {
	allocSize int
}

// defaultScriptBuilderConfig 返回带默认值的配置。
func defaultScriptBuilderConfig() *scriptBuilderConfig {
	return &scriptBuilderConfig{
		allocSize: defaultScriptAlloc,
	}
}

// WithScriptAllocSize 指定构建器缓冲区的初始容量。
func WithScriptAllocSize(size int) ScriptBuilderOpt {
	return func(cfg *scriptBuilderConfig) {
		cfg.allocSize = size
	}
}

// NewScriptBuilder 返回一个新的脚本构建器实例。
func NewScriptBuilder(opts ...ScriptBuilderOpt) *ScriptBuilder {
	cfg := defaultScriptBuilderConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &ScriptBuilder{
		script: make([]byte, 0, cfg.allocSize),
	}
}

// AddOp 将单个操作码以其单字节形式推入脚本。
func (b *ScriptBuilder) AddOp(op Opcode) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	b.script = append(b.script, byte(op))
	return b
}

// AddOps 将若干操作码依次推入脚本。
func (b *ScriptBuilder) AddOps(ops []Opcode) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	for _, op := range ops {
		b.script = append(b.script, byte(op))
	}
	return b
}

// AddData 将给定数据以规范的最小长度前缀推送形式推入脚本：
// 长度 0 到 75 的数据由长度字节本身内联前缀，更长的数据依次使用
// OP_PUSHDATA1、OP_PUSHDATA2 与 OP_PUSHDATA4。
// 超出 OP_PUSHDATA4 所能表达的数据是构建期失败。
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	dataLen := len(data)
	switch {
	case dataLen < int(OP_PUSHDATA1):
		b.script = append(b.script, byte(dataLen))

	case dataLen <= 0xff:
		b.script = append(b.script, byte(OP_PUSHDATA1), byte(dataLen))

	case dataLen <= 0xffff:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		b.script = append(b.script, byte(OP_PUSHDATA2))
		b.script = append(b.script, buf...)

	case int64(dataLen) <= 0xffffffff:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		b.script = append(b.script, byte(OP_PUSHDATA4))
		b.script = append(b.script, buf...)

	default:
		str := fmt.Sprintf("adding %d bytes of data exceeds the "+
			"maximum size allowed by a data push", dataLen)
		b.err = scriptError(ErrElementTooBig, str)
		return b
	}
	b.script = append(b.script, data...)
	return b
}

// AddInt64 将给定数值推入脚本：0 到 16 使用规范小整数推送操作码，
// -1 使用 OP_1NEGATE，其余数值作为其最小符号-绝对值字节表示的
// 规范数据推送。
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	switch {
	case val >= 0 && val <= 16:
		b.script = append(b.script, byte(smallIntOpcode(val)))
		return b
	case val == -1:
		b.script = append(b.script, byte(OP_1NEGATE))
		return b
	}
	return b.AddData(numPayload(val))
}

// AddScriptNum 将数值栈值以其规范最小编码推入脚本。
// 零编码为 OP_0；非零值的编码因其长度前缀本身就是一次合法的内联
// 推送，直接原样拼入。
func (b *ScriptBuilder) AddScriptNum(n ScriptNum) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if n == 0 {
		b.script = append(b.script, byte(OP_0))
		return b
	}
	b.script = append(b.script, n.Bytes()...)
	return b
}

// AddScript 将已有脚本原样拼入，不做任何重新编码。
func (b *ScriptBuilder) AddScript(s *Script) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	b.script = append(b.script, s.raw...)
	return b
}

// AddItem 按单一强制转换规则将任意受支持的值推入脚本：
//
//	Opcode     -> 其单字节
//	ScriptNum  -> 其规范最小编码（零为 OP_0）
//	int/int64  -> [0,16] 为规范小整数推送操作码，-1 为 OP_1NEGATE，
//	              其余为最小字节表示的规范数据推送
//	[]byte     -> 规范长度前缀数据推送
//	*Script    -> 原样拼接
//
// 其他任何类型都是构建期失败（ErrInvalidItemType）。
func (b *ScriptBuilder) AddItem(item interface{}) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	switch v := item.(type) {
	case Opcode:
		return b.AddOp(v)
	case ScriptNum:
		return b.AddScriptNum(v)
	case int:
		return b.AddInt64(int64(v))
	case int64:
		return b.AddInt64(v)
	case []byte:
		return b.AddData(v)
	case *Script:
		return b.AddScript(v)
	default:
		str := fmt.Sprintf("type %T cannot be coerced into a script", item)
		b.err = scriptError(ErrInvalidItemType, str)
		return b
	}
}

// Reset 清空脚本与错误状态，使构建器可以复用。
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.script = b.script[0:0]
	b.err = nil
	return b
}

// Script 返回构建完成的脚本字节。
// 构建过程中发生的第一个错误在此返回，此时不观察任何部分结果。
func (b *ScriptBuilder) Script() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.script, nil
}
