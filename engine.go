// 包含脚本执行引擎的核心代码，负责受支持指令子集的单遍求值。

package subscript

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/sirupsen/logrus"
)

// Engine 是对单个脚本的单遍解释器。
// 它消费脚本的熟化遍历，维护一个数据栈和一个条件分支跟踪器，
// 并报告整体成功或失败。栈与跟踪器为单次求值所独占：
// 无共享，无加锁，无 I/O，无挂起点。
//
// 引擎刻意只实现足以对受约束脚本进行推演的指令子集；
// 在活跃分支中遇到子集之外的指令是硬失败（ErrUnsupportedOpcode），
// 与普通求值失败分属不同的错误通道。
type Engine struct {
	script    *Script
	tokenizer ScriptTokenizer
	dstack    stack
	condStack condStack
	stepIdx   int
}

// NewEngine 为给定脚本返回一个新的执行引擎。
func NewEngine(script *Script) *Engine {
	return &Engine{
		script:    script,
		tokenizer: MakeScriptTokenizer(script.raw),
		condStack: newCondStack(),
	}
}

// executeConditional 处理会改变条件执行状态的操作码。
// 即使在非活跃分支内，分支记账也要继续进行以跟踪嵌套。
func (vm *Engine) executeConditional(op Opcode, active bool) error {
	switch op {
	case OP_IF, OP_NOTIF:
		branchVal := false
		if active {
			cond, err := vm.dstack.PopByteArray()
			if err != nil {
				return err
			}
			// 最小布尔编码：条件必须是空串或单字节 0x01。
			if len(cond) > 1 || (len(cond) == 1 && cond[0] != 0x01) {
				str := fmt.Sprintf("conditional value %x is not a "+
					"minimally encoded boolean", cond)
				return scriptError(ErrMinimalIf, str)
			}
			branchVal = asBool(cond)
			if op == OP_NOTIF {
				branchVal = !branchVal
			}
		}
		vm.condStack.pushBack(branchVal)
		return nil

	case OP_ELSE:
		if vm.condStack.empty() {
			return scriptError(ErrUnbalancedConditional,
				"encountered OP_ELSE with no matching conditional")
		}
		return vm.condStack.toggleTop()

	case OP_ENDIF:
		if vm.condStack.empty() {
			return scriptError(ErrUnbalancedConditional,
				"encountered OP_ENDIF with no matching conditional")
		}
		return vm.condStack.popBack()
	}

	return scriptError(ErrInternal,
		"executeConditional called with a non-conditional opcode")
}

// executeItem 执行熟化遍历产出的一项。
func (vm *Engine) executeItem(item ScriptItem) error {
	active := vm.condStack.allTrue()

	switch item.Kind {
	case ItemData:
		if active {
			vm.dstack.PushByteArray(item.Data)
		}
		return nil

	case ItemNum:
		if active {
			vm.dstack.PushInt(ScriptNum(item.Num))
		}
		return nil
	}

	op := item.Op
	if op.isConditional() {
		return vm.executeConditional(op, active)
	}
	if !active {
		// 非活跃分支内的其余指令一律跳过，包括不受支持的指令。
		// 副作用被直接抑制，无需对分支内的操作数做任何特殊解析。
		return nil
	}

	switch op {
	case OP_SHA256:
		so, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		vm.dstack.PushByteArray(chainhash.HashB(so))

	case OP_1SUB:
		n, err := vm.dstack.PopInt()
		if err != nil {
			return err
		}
		diff, err := n.Sub(1)
		if err != nil {
			return err
		}
		vm.dstack.PushInt(diff)

	case OP_WITHIN:
		maxVal, err := vm.dstack.PopInt()
		if err != nil {
			return err
		}
		minVal, err := vm.dstack.PopInt()
		if err != nil {
			return err
		}
		x, err := vm.dstack.PopInt()
		if err != nil {
			return err
		}
		vm.dstack.PushBool(minVal <= x && x < maxVal)

	case OP_DUP:
		so, err := vm.dstack.PeekByteArray(0)
		if err != nil {
			return err
		}
		vm.dstack.PushByteArray(so)

	case OP_IFDUP:
		so, err := vm.dstack.PeekByteArray(0)
		if err != nil {
			return err
		}
		if asBool(so) {
			vm.dstack.PushByteArray(so)
		}

	case OP_DROP:
		if _, err := vm.dstack.PopByteArray(); err != nil {
			return err
		}

	case OP_CHECKSIGVERIFY:
		// 弹出公钥与签名；密码学有效性被假定为真，
		// 此处只执行指令的栈深约定。
		if vm.dstack.Depth() < 2 {
			str := fmt.Sprintf("%s requires 2 stack items, have %d",
				op, vm.dstack.Depth())
			return scriptError(ErrInvalidStackOperation, str)
		}
		_, _ = vm.dstack.PopByteArray()
		_, _ = vm.dstack.PopByteArray()

	case OP_CHECKTEMPLATEVERIFY, OP_CHECKLOCKTIMEVERIFY,
		OP_CHECKSEQUENCEVERIFY:
		// 仅检查栈深的上下文校验占位：操作数留在栈上，
		// 其上下文含义在本引擎中不做求值。
		if _, err := vm.dstack.PeekByteArray(0); err != nil {
			return err
		}

	case OP_EQUALVERIFY:
		a, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		b, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		if !bytes.Equal(a, b) {
			return scriptError(ErrEqualVerify,
				"OP_EQUALVERIFY failed: top stack items are not equal")
		}

	case OP_VERIFY:
		v, err := vm.dstack.PopBool()
		if err != nil {
			return err
		}
		if !v {
			return scriptError(ErrVerify,
				"OP_VERIFY failed: top stack item is false")
		}

	default:
		str := fmt.Sprintf("script contains opcode %s which cannot be "+
			"interpreted yet", op)
		return scriptError(ErrUnsupportedOpcode, str)
	}
	return nil
}

// Step 执行下一条指令并将程序计数器前移。
// 指令流被完整消费后返回 done 为 true。
// 返回错误后再调用 Step 或其他方法的结果是未定义的。
func (vm *Engine) Step() (done bool, err error) {
	// 尝试解析下一条指令；解析失败是结构性解码错误（截断推送）。
	if !vm.tokenizer.Next() {
		if err := vm.tokenizer.Err(); err != nil {
			return false, err
		}

		// 指令流被完整消费。引擎不检查最终栈内容，
		// 也不要求条件分支在脚本末尾闭合——那是调用方的职责。
		return true, nil
	}
	vm.stepIdx++

	item := makeScriptItem(vm.tokenizer.Opcode(), vm.tokenizer.Data(),
		vm.tokenizer.HasData())
	if err := vm.executeItem(item); err != nil {
		return false, err
	}

	// 防御性的栈深上限，防止病态输入。
	if vm.dstack.Depth() > MaxStackSize {
		str := fmt.Sprintf("stack size %d > max allowed %d",
			vm.dstack.Depth(), MaxStackSize)
		return false, scriptError(ErrStackOverflow, str)
	}
	return false, nil
}

// Execute 逐条执行脚本的所有指令，成功时返回 nil，
// 任何指令报告失败时立即停止并返回该错误。
func (vm *Engine) Execute() (err error) {
	logrus.Tracef("%v", newLogClosure(func() string {
		return fmt.Sprintf("executing script: %s", vm.script)
	}))

	done := false
	for !done {
		done, err = vm.Step()
		if err != nil {
			return err
		}
		logrus.Tracef("%v", newLogClosure(func() string {
			// 跟踪时记录非空栈。
			if vm.dstack.Depth() == 0 {
				return fmt.Sprintf("step %d: stack empty", vm.stepIdx)
			}
			return fmt.Sprintf("step %d: stack:\n%s", vm.stepIdx,
				vm.dstack.String())
		}))
	}
	return nil
}

// Evaluate 是顶层的通过/失败判定。
//
// 它对脚本执行一次完整求值：全部指令序列被无失败地消费时返回 true。
// 普通求值失败（栈下溢、校验失败、非最小布尔编码、分支结构错误）
// 以及结构性解码失败均折叠为 false，不向外传播错误——
// 多数候选脚本本就是无效的，这是正常运行的一部分。
// 唯独不受支持指令这一不可恢复的硬失败随 false 一并返回，
// 使调用方能把“脚本无效”与“引擎无法推演该脚本”区分开。
//
// Evaluate 不检查最终栈内容，那超出本核心的职责范围。
func Evaluate(script *Script) (bool, error) {
	vm := NewEngine(script)
	err := vm.Execute()
	switch {
	case err == nil:
		return true, nil

	case IsErrorCode(err, ErrUnsupportedOpcode):
		return false, err

	default:
		logrus.Tracef("%v", newLogClosure(func() string {
			return fmt.Sprintf("script failed: %v", err)
		}))
		return false, nil
	}
}
