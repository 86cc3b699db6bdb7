// 包含与共识规则相关的脚本常量。

package subscript

const (
	// MaxScriptElementSize 是可推送到栈上的单个元素的最大字节数。
	// 本包不强制该上限，它是留给上层的策略性限制，
	// 需要面对不可信输入的调用方应自行施加。
	MaxScriptElementSize = 520

	// MaxPubKeysPerMultiSig 是多重签名操作允许的公钥数量上限，
	// 也是签名操作计数在无法精确计数时采用的保守值。
	MaxPubKeysPerMultiSig = 20

	// MaxStackSize 是执行期间数据栈允许的最大深度，
	// 作为面对病态输入的防御性资源上限。
	MaxStackSize = 1000
)
