// 包含处理脚本字节码的基本类型与方法。

package subscript

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Script 是一段不可变的序列化脚本：操作码与内联数据长度/负载的有序
// 字节序列。构造时不保证良构性——截断的推送序列是该类型的合法取值，
// 在迭代时才作为可区分的结构性错误被发现。
//
// Script 一经构造只会被读取，绝不原地修改；连接产生新的 Script。
// 因此多个调用者并发只读使用同一个 Script 天然安全。
type Script struct {
	raw []byte
}

// NewScriptFromBytes 从原始字节构造脚本。字节被复制，
// 调用者之后可以自由修改传入的切片。
func NewScriptFromBytes(raw []byte) *Script {
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return &Script{raw: buf}
}

// AssembleScript 将一列可强制转换的值从左到右折叠为一个脚本。
// 强制转换规则见 ScriptBuilder.AddItem。
func AssembleScript(items ...interface{}) (*Script, error) {
	b := NewScriptBuilder()
	for _, item := range items {
		b.AddItem(item)
	}
	raw, err := b.Script()
	if err != nil {
		return nil, err
	}
	return &Script{raw: raw}, nil
}

// Bytes 返回脚本原始字节的副本。
func (s *Script) Bytes() []byte {
	buf := make([]byte, len(s.raw))
	copy(buf, s.raw)
	return buf
}

// Len 返回脚本的字节长度。
func (s *Script) Len() int {
	return len(s.raw)
}

// Tokenizer 返回对脚本的结构化原始遍历，
// 逐条产出（操作码、内联数据、字节偏移）。
func (s *Script) Tokenizer() ScriptTokenizer {
	return MakeScriptTokenizer(s.raw)
}

// Append 将给定值按与 AssembleScript 相同的强制转换规则附加到脚本
// 末尾并返回新的脚本。两个输入都不会被修改。
func (s *Script) Append(items ...interface{}) (*Script, error) {
	b := NewScriptBuilder(WithScriptAllocSize(len(s.raw) + defaultScriptAlloc))
	b.script = append(b.script, s.raw...)
	for _, item := range items {
		b.AddItem(item)
	}
	raw, err := b.Script()
	if err != nil {
		return nil, err
	}
	return &Script{raw: raw}, nil
}

// ScriptItemKind 区分熟化遍历产出的三种值。
type ScriptItemKind int

// 熟化遍历产出的值类别。
const (
	// ItemOp 表示一条不属于推送语义的指令。
	ItemOp ScriptItemKind = iota

	// ItemNum 表示一个已解码为原生整数的规范小整数推送。
	ItemNum

	// ItemData 表示一段随时可用的推送数据原始字节。
	ItemData
)

// ScriptItem 是熟化遍历产出的一项：操作码、已解码的小整数或推送数据
// 三者居其一，由 Kind 标记。这是执行引擎消费的表示。
type ScriptItem struct {
	Kind ScriptItemKind
	Op   Opcode
	Num  int64
	Data []byte
}

// makeScriptItem 将一条原始指令熟化为引擎可直接消费的值。
// 推送数据成为原始字节（OP_0 是零长度推送，因而产出空字节而非整数），
// OP_1 到 OP_16 解码为原生整数，其余指令原样产出操作码。
func makeScriptItem(op Opcode, data []byte, hasData bool) ScriptItem {
	if hasData {
		return ScriptItem{Kind: ItemData, Data: data}
	}
	if op.IsSmallInt() {
		return ScriptItem{Kind: ItemNum, Num: int64(op.AsSmallInt())}
	}
	return ScriptItem{Kind: ItemOp, Op: op}
}

// Items 返回脚本的熟化遍历结果。
// 脚本结构受损时返回 ErrTruncatedPush，且不产出部分结果。
func (s *Script) Items() ([]ScriptItem, error) {
	items := make([]ScriptItem, 0, len(s.raw))
	tokenizer := MakeScriptTokenizer(s.raw)
	for tokenizer.Next() {
		items = append(items, makeScriptItem(tokenizer.Opcode(),
			tokenizer.Data(), tokenizer.HasData()))
	}
	if err := tokenizer.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// String 以人类可读的单行形式反汇编脚本，仅用于诊断。
// 数据推送以十六进制呈现；脚本结构受损时在末尾注明错误而不是失败。
func (s *Script) String() string {
	var buf strings.Builder
	tokenizer := MakeScriptTokenizer(s.raw)
	for tokenizer.Next() {
		if buf.Len() != 0 {
			buf.WriteByte(' ')
		}
		if tokenizer.HasData() {
			buf.WriteString("x'")
			buf.WriteString(hex.EncodeToString(tokenizer.Data()))
			buf.WriteString("'")
			continue
		}
		buf.WriteString(tokenizer.Opcode().String())
	}
	if err := tokenizer.Err(); err != nil {
		if buf.Len() != 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString("<ERROR: ")
		buf.WriteString(err.Error())
		buf.WriteString(">")
	}
	return buf.String()
}

// GetSigOpCount 返回脚本中签名操作的数量。
//
// OP_CHECKSIG 与 OP_CHECKSIGVERIFY 各计 1。对 OP_CHECKMULTISIG 与
// OP_CHECKMULTISIGVERIFY，当 accurate 为真且紧邻的前一条指令是
// OP_1 到 OP_16 的规范小整数推送时计其解码值，否则计保守上界
// MaxPubKeysPerMultiSig。精确计数依赖前导操作码的上下文，
// 保守上界则永远安全——这是真实的资源记账取舍。
//
// 脚本结构受损时返回 ErrTruncatedPush。
func (s *Script) GetSigOpCount(accurate bool) (int, error) {
	numSigOps := 0
	prevOp := OP_INVALIDOPCODE
	tokenizer := MakeScriptTokenizer(s.raw)
	for tokenizer.Next() {
		switch tokenizer.Opcode() {
		case OP_CHECKSIG, OP_CHECKSIGVERIFY:
			numSigOps++

		case OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
			if accurate && prevOp >= OP_1 && prevOp <= OP_16 {
				numSigOps += prevOp.AsSmallInt()
			} else {
				numSigOps += MaxPubKeysPerMultiSig
			}
		}
		prevOp = tokenizer.Opcode()
	}
	if err := tokenizer.Err(); err != nil {
		return 0, err
	}
	return numSigOps, nil
}

// FindAndDelete 返回删除了匹配指令后的新脚本。
//
// 逐条遍历脚本：当某条指令起始偏移处的字节与 sig 逐字节相等时，
// 该条指令整体被排除；其余指令的确切源字节（而非操作码加解码数据的
// 重序列化）被原样复制进结果。必须按字节区间复制：重新编码可能改变
// 非最小推送的表示，从而悄然改变结果。空的 sig 匹配每一条指令。
//
// 脚本结构受损时返回 ErrTruncatedPush。
func (s *Script) FindAndDelete(sig []byte) (*Script, error) {
	result := make([]byte, 0, len(s.raw))
	var prevOffset int32
	tokenizer := MakeScriptTokenizer(s.raw)
	for tokenizer.Next() {
		start, end := prevOffset, tokenizer.ByteIndex()
		prevOffset = end

		matchEnd := start + int32(len(sig))
		if matchEnd <= int32(len(s.raw)) &&
			bytes.Equal(s.raw[start:matchEnd], sig) {
			continue
		}
		result = append(result, s.raw[start:end]...)
	}
	if err := tokenizer.Err(); err != nil {
		return nil, err
	}
	return &Script{raw: result}, nil
}

// Hash160 计算 RIPEMD-160(SHA-256(b))。
// 散列原语在此只是被消费的外部依赖，本包不自行实现。
func Hash160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(chainhash.HashB(b))
	return h.Sum(nil)
}
