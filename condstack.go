// 实现了嵌套条件分支执行状态的紧凑跟踪器。

package subscript

// condNoFalse 是 firstFalsePos 的哨兵值，表示没有任何分支为假。
const condNoFalse = int32(-1)

// condStack 以 O(1) 的空间与时间跟踪嵌套条件（IF/NOTIF/ELSE/ENDIF）
// 的执行状态。它只记录深度与最浅一个假分支的位置：位于假祖先之下的
// 分支与“代码当前是否活跃”无关，因为活跃性是所有打开分支的合取。
//
// 不变量：firstFalsePos 要么是哨兵，要么严格小于 size。
type condStack struct {
	size          int32
	firstFalsePos int32
}

// newCondStack 返回一个空的条件栈。
func newCondStack() condStack {
	return condStack{firstFalsePos: condNoFalse}
}

// empty 返回条件栈是否为空。
func (c *condStack) empty() bool {
	return c.size == 0
}

// allTrue 返回当前是否不存在为假的分支，亦即代码是否活跃。
func (c *condStack) allTrue() bool {
	return c.firstFalsePos == condNoFalse
}

// pushBack 压入一个新分支。若此前所有分支均为真而新分支为假，
// 则记录其位置（压入前的深度）为最浅假分支。
func (c *condStack) pushBack(v bool) {
	if c.firstFalsePos == condNoFalse && !v {
		c.firstFalsePos = c.size
	}
	c.size++
}

// popBack 弹出最顶端的分支。
// 若弹出的恰是最浅假分支，哨兵复位；空栈弹出是可区分的错误。
func (c *condStack) popBack() error {
	if c.size == 0 {
		return scriptError(ErrUnbalancedConditional,
			"attempt to pop an empty condition stack")
	}
	c.size--
	if c.firstFalsePos == c.size {
		c.firstFalsePos = condNoFalse
	}
	return nil
}

// toggleTop 翻转最顶端分支的真值。
// 顶端之下已有假祖先时翻转不可观察，因而是空操作；
// 空栈翻转是可区分的错误。
func (c *condStack) toggleTop() error {
	switch {
	case c.size == 0:
		return scriptError(ErrUnbalancedConditional,
			"attempt to toggle an empty condition stack")
	case c.firstFalsePos == condNoFalse:
		c.firstFalsePos = c.size - 1
	case c.firstFalsePos == c.size-1:
		c.firstFalsePos = condNoFalse
	}
	return nil
}
