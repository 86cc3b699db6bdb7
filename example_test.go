// 演示了本包主要入口的典型用法。

package subscript_test

import (
	"fmt"

	"github.com/qinglongcn/subscript"
)

// 演示如何从混合的值列表拼装脚本并查看其反汇编形式。
func ExampleAssembleScript() {
	script, err := subscript.AssembleScript(
		subscript.OP_DUP, []byte{0xde, 0xad}, subscript.OP_EQUALVERIFY,
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(script)

	// Output:
	// OP_DUP x'dead' OP_EQUALVERIFY
}

// 演示顶层通过/失败判定。
func ExampleEvaluate() {
	script, err := subscript.AssembleScript(
		5, subscript.OP_1SUB, []byte{0x01, 0x04}, subscript.OP_EQUALVERIFY,
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	valid, err := subscript.Evaluate(script)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(valid)

	// Output:
	// true
}

// 演示精确与保守两种签名操作计数模式的差别。
func ExampleScript_GetSigOpCount() {
	script, err := subscript.AssembleScript(2, subscript.OP_CHECKMULTISIG)
	if err != nil {
		fmt.Println(err)
		return
	}

	accurate, _ := script.GetSigOpCount(true)
	conservative, _ := script.GetSigOpCount(false)
	fmt.Println(accurate, conservative)

	// Output:
	// 2 20
}

// 演示按指令边界删除匹配字节序列。
func ExampleScript_FindAndDelete() {
	script := subscript.NewScriptFromBytes([]byte{
		0x02, 0xde, 0xad, byte(subscript.OP_DUP), 0x02, 0xde, 0xad,
	})

	result, err := script.FindAndDelete([]byte{0x02, 0xde, 0xad})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result)

	// Output:
	// OP_DUP
}
