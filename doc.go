// 通常包含包的文档说明，描述 subscript 包的目的和总体用途。

/*
subscript 包实现了一个微型的确定性栈式机，覆盖用于锁定和解锁价值转移
的脚本语言的一个受限子集，以及承载该字节码的二进制序列化格式。

脚本是从左到右处理的基于栈的指令序列。本包提供三类紧密耦合的能力：
指令与推送数据的变长二进制编码/解码（线格式）、维护栈与分支状态的
执行引擎，以及一组对共识敏感的字节级变换（最小编码规则、签名操作
计数、字节区间删除）。后者的逐字节精确性是正确性要求而非风格选择：
任何偏差都会让本来相同的输入得到不同的验证结果。

# 脚本构造

Script 是不可变的字节序列，可以直接由原始字节构造，也可以通过
AssembleScript 或 ScriptBuilder 由操作码、数值与数据按单一强制转换
规则折叠而成。Append 以同样的规则连接并返回新脚本，绝不修改输入。

# 遍历

Tokenizer 提供原始的结构化遍历（操作码、内联数据、字节偏移）；
Items 提供熟化遍历，产出可直接使用的值：推送数据为原始字节、规范
小整数推送为原生整数、其余为操作码。截断的推送长度头或负载在迭代
到达时作为 ErrTruncatedPush 报告，是头等条件而非边角情况。

# 求值

Evaluate 是通过/失败判定。引擎刻意只实现受支持的指令子集，足以对
受约束的脚本进行推演；它不是经过安全审计的完整验证器。普通求值
失败折叠为 false；在活跃分支中遇到子集之外的指令则是可区分的硬失败
（ErrUnsupportedOpcode），调用方据此能把“脚本无效”与“引擎无法
推演该脚本”区分开。

# 错误

该包返回的错误类型为 subscript.Error。调用者可以检查其 ErrorCode
字段以编程方式确定具体错误，也可以使用便捷函数 IsErrorCode。
结构性解码错误（ErrTruncatedPush）额外携带截断前已恢复的部分数据。
*/
package subscript
