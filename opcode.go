// 包含脚本语言受限子集所使用的全部操作码常量及其诊断名称表。

package subscript

import "fmt"

// Opcode 是单字节的脚本指令。
// 操作码是一个封闭的编译期枚举：每个字节值至多对应一个规范常量，
// 名称仅用于诊断输出，身份由字节值本身决定。
type Opcode byte

// 这些常量是比特币系脚本中官方操作码的字节值。
// 引擎只支持其中一个刻意挑选的子集（见 engine.go），
// 但编码、迭代与分析均须识别完整的推送语义，因此保留完整的值表。
const (
	// 数据推送
	OP_0         Opcode = 0x00 // 0 - 推送空字节串（亦即布尔假）
	OP_FALSE     Opcode = 0x00 // 0 - OP_0 的别名
	OP_DATA_1    Opcode = 0x01 // 1 - 接下来的 1 个字节是数据
	OP_DATA_2    Opcode = 0x02 // 2
	OP_DATA_3    Opcode = 0x03 // 3
	OP_DATA_4    Opcode = 0x04 // 4
	OP_DATA_5    Opcode = 0x05 // 5
	OP_DATA_6    Opcode = 0x06 // 6
	OP_DATA_7    Opcode = 0x07 // 7
	OP_DATA_8    Opcode = 0x08 // 8
	OP_DATA_9    Opcode = 0x09 // 9
	OP_DATA_10   Opcode = 0x0a // 10
	OP_DATA_11   Opcode = 0x0b // 11
	OP_DATA_12   Opcode = 0x0c // 12
	OP_DATA_13   Opcode = 0x0d // 13
	OP_DATA_14   Opcode = 0x0e // 14
	OP_DATA_15   Opcode = 0x0f // 15
	OP_DATA_16   Opcode = 0x10 // 16
	OP_DATA_17   Opcode = 0x11 // 17
	OP_DATA_18   Opcode = 0x12 // 18
	OP_DATA_19   Opcode = 0x13 // 19
	OP_DATA_20   Opcode = 0x14 // 20
	OP_DATA_21   Opcode = 0x15 // 21
	OP_DATA_22   Opcode = 0x16 // 22
	OP_DATA_23   Opcode = 0x17 // 23
	OP_DATA_24   Opcode = 0x18 // 24
	OP_DATA_25   Opcode = 0x19 // 25
	OP_DATA_26   Opcode = 0x1a // 26
	OP_DATA_27   Opcode = 0x1b // 27
	OP_DATA_28   Opcode = 0x1c // 28
	OP_DATA_29   Opcode = 0x1d // 29
	OP_DATA_30   Opcode = 0x1e // 30
	OP_DATA_31   Opcode = 0x1f // 31
	OP_DATA_32   Opcode = 0x20 // 32
	OP_DATA_33   Opcode = 0x21 // 33
	OP_DATA_34   Opcode = 0x22 // 34
	OP_DATA_35   Opcode = 0x23 // 35
	OP_DATA_36   Opcode = 0x24 // 36
	OP_DATA_37   Opcode = 0x25 // 37
	OP_DATA_38   Opcode = 0x26 // 38
	OP_DATA_39   Opcode = 0x27 // 39
	OP_DATA_40   Opcode = 0x28 // 40
	OP_DATA_41   Opcode = 0x29 // 41
	OP_DATA_42   Opcode = 0x2a // 42
	OP_DATA_43   Opcode = 0x2b // 43
	OP_DATA_44   Opcode = 0x2c // 44
	OP_DATA_45   Opcode = 0x2d // 45
	OP_DATA_46   Opcode = 0x2e // 46
	OP_DATA_47   Opcode = 0x2f // 47
	OP_DATA_48   Opcode = 0x30 // 48
	OP_DATA_49   Opcode = 0x31 // 49
	OP_DATA_50   Opcode = 0x32 // 50
	OP_DATA_51   Opcode = 0x33 // 51
	OP_DATA_52   Opcode = 0x34 // 52
	OP_DATA_53   Opcode = 0x35 // 53
	OP_DATA_54   Opcode = 0x36 // 54
	OP_DATA_55   Opcode = 0x37 // 55
	OP_DATA_56   Opcode = 0x38 // 56
	OP_DATA_57   Opcode = 0x39 // 57
	OP_DATA_58   Opcode = 0x3a // 58
	OP_DATA_59   Opcode = 0x3b // 59
	OP_DATA_60   Opcode = 0x3c // 60
	OP_DATA_61   Opcode = 0x3d // 61
	OP_DATA_62   Opcode = 0x3e // 62
	OP_DATA_63   Opcode = 0x3f // 63
	OP_DATA_64   Opcode = 0x40 // 64
	OP_DATA_65   Opcode = 0x41 // 65
	OP_DATA_66   Opcode = 0x42 // 66
	OP_DATA_67   Opcode = 0x43 // 67
	OP_DATA_68   Opcode = 0x44 // 68
	OP_DATA_69   Opcode = 0x45 // 69
	OP_DATA_70   Opcode = 0x46 // 70
	OP_DATA_71   Opcode = 0x47 // 71
	OP_DATA_72   Opcode = 0x48 // 72
	OP_DATA_73   Opcode = 0x49 // 73
	OP_DATA_74   Opcode = 0x4a // 74
	OP_DATA_75   Opcode = 0x4b // 75 - 接下来的 75 个字节是数据
	OP_PUSHDATA1 Opcode = 0x4c // 76 - 随后 1 个字节表示数据长度
	OP_PUSHDATA2 Opcode = 0x4d // 77 - 随后 2 个小端字节表示数据长度
	OP_PUSHDATA4 Opcode = 0x4e // 78 - 随后 4 个小端字节表示数据长度
	OP_1NEGATE   Opcode = 0x4f // 79 - 推送数字 -1
	OP_RESERVED  Opcode = 0x50 // 80 - 保留
	OP_1         Opcode = 0x51 // 81 - 推送数字 1
	OP_TRUE      Opcode = 0x51 // 81 - OP_1 的别名
	OP_2         Opcode = 0x52 // 82
	OP_3         Opcode = 0x53 // 83
	OP_4         Opcode = 0x54 // 84
	OP_5         Opcode = 0x55 // 85
	OP_6         Opcode = 0x56 // 86
	OP_7         Opcode = 0x57 // 87
	OP_8         Opcode = 0x58 // 88
	OP_9         Opcode = 0x59 // 89
	OP_10        Opcode = 0x5a // 90
	OP_11        Opcode = 0x5b // 91
	OP_12        Opcode = 0x5c // 92
	OP_13        Opcode = 0x5d // 93
	OP_14        Opcode = 0x5e // 94
	OP_15        Opcode = 0x5f // 95
	OP_16        Opcode = 0x60 // 96 - 推送数字 16

	// 流程控制
	OP_NOP      Opcode = 0x61 // 97
	OP_VER      Opcode = 0x62 // 98
	OP_IF       Opcode = 0x63 // 99 - 条件分支开始
	OP_NOTIF    Opcode = 0x64 // 100 - 取反条件分支开始
	OP_VERIF    Opcode = 0x65 // 101
	OP_VERNOTIF Opcode = 0x66 // 102
	OP_ELSE     Opcode = 0x67 // 103 - 条件分支翻转
	OP_ENDIF    Opcode = 0x68 // 104 - 条件分支结束
	OP_VERIFY   Opcode = 0x69 // 105 - 栈顶为假则失败
	OP_RETURN   Opcode = 0x6a // 106

	// 栈操作
	OP_TOALTSTACK   Opcode = 0x6b // 107
	OP_FROMALTSTACK Opcode = 0x6c // 108
	OP_2DROP        Opcode = 0x6d // 109
	OP_2DUP         Opcode = 0x6e // 110
	OP_3DUP         Opcode = 0x6f // 111
	OP_2OVER        Opcode = 0x70 // 112
	OP_2ROT         Opcode = 0x71 // 113
	OP_2SWAP        Opcode = 0x72 // 114
	OP_IFDUP        Opcode = 0x73 // 115 - 栈顶为真时复制栈顶
	OP_DEPTH        Opcode = 0x74 // 116
	OP_DROP         Opcode = 0x75 // 117 - 弹出栈顶
	OP_DUP          Opcode = 0x76 // 118 - 复制栈顶
	OP_NIP          Opcode = 0x77 // 119
	OP_OVER         Opcode = 0x78 // 120
	OP_PICK         Opcode = 0x79 // 121
	OP_ROLL         Opcode = 0x7a // 122
	OP_ROT          Opcode = 0x7b // 123
	OP_SWAP         Opcode = 0x7c // 124
	OP_TUCK         Opcode = 0x7d // 125

	// 拼接操作
	OP_CAT    Opcode = 0x7e // 126
	OP_SUBSTR Opcode = 0x7f // 127
	OP_LEFT   Opcode = 0x80 // 128
	OP_RIGHT  Opcode = 0x81 // 129
	OP_SIZE   Opcode = 0x82 // 130

	// 位逻辑
	OP_INVERT      Opcode = 0x83 // 131
	OP_AND         Opcode = 0x84 // 132
	OP_OR          Opcode = 0x85 // 133
	OP_XOR         Opcode = 0x86 // 134
	OP_EQUAL       Opcode = 0x87 // 135
	OP_EQUALVERIFY Opcode = 0x88 // 136 - 两元素相等则继续，否则失败
	OP_RESERVED1   Opcode = 0x89 // 137
	OP_RESERVED2   Opcode = 0x8a // 138

	// 数值运算
	OP_1ADD               Opcode = 0x8b // 139
	OP_1SUB               Opcode = 0x8c // 140 - 带溢出检查的减一
	OP_2MUL               Opcode = 0x8d // 141
	OP_2DIV               Opcode = 0x8e // 142
	OP_NEGATE             Opcode = 0x8f // 143
	OP_ABS                Opcode = 0x90 // 144
	OP_NOT                Opcode = 0x91 // 145
	OP_0NOTEQUAL          Opcode = 0x92 // 146
	OP_ADD                Opcode = 0x93 // 147
	OP_SUB                Opcode = 0x94 // 148
	OP_MUL                Opcode = 0x95 // 149
	OP_DIV                Opcode = 0x96 // 150
	OP_MOD                Opcode = 0x97 // 151
	OP_LSHIFT             Opcode = 0x98 // 152
	OP_RSHIFT             Opcode = 0x99 // 153
	OP_BOOLAND            Opcode = 0x9a // 154
	OP_BOOLOR             Opcode = 0x9b // 155
	OP_NUMEQUAL           Opcode = 0x9c // 156
	OP_NUMEQUALVERIFY     Opcode = 0x9d // 157
	OP_NUMNOTEQUAL        Opcode = 0x9e // 158
	OP_LESSTHAN           Opcode = 0x9f // 159
	OP_GREATERTHAN        Opcode = 0xa0 // 160
	OP_LESSTHANOREQUAL    Opcode = 0xa1 // 161
	OP_GREATERTHANOREQUAL Opcode = 0xa2 // 162
	OP_MIN                Opcode = 0xa3 // 163
	OP_MAX                Opcode = 0xa4 // 164
	OP_WITHIN             Opcode = 0xa5 // 165 - 半开区间 [min, max) 判定

	// 加密
	OP_RIPEMD160           Opcode = 0xa6 // 166
	OP_SHA1                Opcode = 0xa7 // 167
	OP_SHA256              Opcode = 0xa8 // 168 - 弹出一项并推送其 SHA-256 摘要
	OP_HASH160             Opcode = 0xa9 // 169
	OP_HASH256             Opcode = 0xaa // 170
	OP_CODESEPARATOR       Opcode = 0xab // 171
	OP_CHECKSIG            Opcode = 0xac // 172
	OP_CHECKSIGVERIFY      Opcode = 0xad // 173 - 弹出公钥与签名，有效性由上层保证
	OP_CHECKMULTISIG       Opcode = 0xae // 174
	OP_CHECKMULTISIGVERIFY Opcode = 0xaf // 175

	// 扩展
	OP_NOP1                Opcode = 0xb0 // 176
	OP_CHECKLOCKTIMEVERIFY Opcode = 0xb1 // 177 - 仅检查栈深的上下文校验占位
	OP_CHECKSEQUENCEVERIFY Opcode = 0xb2 // 178 - 仅检查栈深的上下文校验占位
	OP_CHECKTEMPLATEVERIFY Opcode = 0xb3 // 179 - 仅检查栈深的上下文校验占位
	OP_NOP5                Opcode = 0xb4 // 180
	OP_NOP6                Opcode = 0xb5 // 181
	OP_NOP7                Opcode = 0xb6 // 182
	OP_NOP8                Opcode = 0xb7 // 183
	OP_NOP9                Opcode = 0xb8 // 184
	OP_NOP10               Opcode = 0xb9 // 185

	// 模板匹配参数
	OP_SMALLINTEGER Opcode = 0xfa // 250
	OP_PUBKEYS      Opcode = 0xfb // 251
	OP_PUBKEYHASH   Opcode = 0xfd // 253
	OP_PUBKEY       Opcode = 0xfe // 254

	OP_INVALIDOPCODE Opcode = 0xff // 255
)

// opcodeNames 保存操作码的人类可读名称，仅用于诊断输出。
// 未命名的字节值通过 String 以 OP_UNKNOWN 形式呈现。
var opcodeNames = map[Opcode]string{
	OP_0:                   "OP_0",
	OP_DATA_1:              "OP_DATA_1",
	OP_DATA_2:              "OP_DATA_2",
	OP_DATA_3:              "OP_DATA_3",
	OP_DATA_4:              "OP_DATA_4",
	OP_DATA_5:              "OP_DATA_5",
	OP_DATA_6:              "OP_DATA_6",
	OP_DATA_7:              "OP_DATA_7",
	OP_DATA_8:              "OP_DATA_8",
	OP_DATA_9:              "OP_DATA_9",
	OP_DATA_10:             "OP_DATA_10",
	OP_DATA_11:             "OP_DATA_11",
	OP_DATA_12:             "OP_DATA_12",
	OP_DATA_13:             "OP_DATA_13",
	OP_DATA_14:             "OP_DATA_14",
	OP_DATA_15:             "OP_DATA_15",
	OP_DATA_16:             "OP_DATA_16",
	OP_DATA_17:             "OP_DATA_17",
	OP_DATA_18:             "OP_DATA_18",
	OP_DATA_19:             "OP_DATA_19",
	OP_DATA_20:             "OP_DATA_20",
	OP_DATA_21:             "OP_DATA_21",
	OP_DATA_22:             "OP_DATA_22",
	OP_DATA_23:             "OP_DATA_23",
	OP_DATA_24:             "OP_DATA_24",
	OP_DATA_25:             "OP_DATA_25",
	OP_DATA_26:             "OP_DATA_26",
	OP_DATA_27:             "OP_DATA_27",
	OP_DATA_28:             "OP_DATA_28",
	OP_DATA_29:             "OP_DATA_29",
	OP_DATA_30:             "OP_DATA_30",
	OP_DATA_31:             "OP_DATA_31",
	OP_DATA_32:             "OP_DATA_32",
	OP_DATA_33:             "OP_DATA_33",
	OP_DATA_34:             "OP_DATA_34",
	OP_DATA_35:             "OP_DATA_35",
	OP_DATA_36:             "OP_DATA_36",
	OP_DATA_37:             "OP_DATA_37",
	OP_DATA_38:             "OP_DATA_38",
	OP_DATA_39:             "OP_DATA_39",
	OP_DATA_40:             "OP_DATA_40",
	OP_DATA_41:             "OP_DATA_41",
	OP_DATA_42:             "OP_DATA_42",
	OP_DATA_43:             "OP_DATA_43",
	OP_DATA_44:             "OP_DATA_44",
	OP_DATA_45:             "OP_DATA_45",
	OP_DATA_46:             "OP_DATA_46",
	OP_DATA_47:             "OP_DATA_47",
	OP_DATA_48:             "OP_DATA_48",
	OP_DATA_49:             "OP_DATA_49",
	OP_DATA_50:             "OP_DATA_50",
	OP_DATA_51:             "OP_DATA_51",
	OP_DATA_52:             "OP_DATA_52",
	OP_DATA_53:             "OP_DATA_53",
	OP_DATA_54:             "OP_DATA_54",
	OP_DATA_55:             "OP_DATA_55",
	OP_DATA_56:             "OP_DATA_56",
	OP_DATA_57:             "OP_DATA_57",
	OP_DATA_58:             "OP_DATA_58",
	OP_DATA_59:             "OP_DATA_59",
	OP_DATA_60:             "OP_DATA_60",
	OP_DATA_61:             "OP_DATA_61",
	OP_DATA_62:             "OP_DATA_62",
	OP_DATA_63:             "OP_DATA_63",
	OP_DATA_64:             "OP_DATA_64",
	OP_DATA_65:             "OP_DATA_65",
	OP_DATA_66:             "OP_DATA_66",
	OP_DATA_67:             "OP_DATA_67",
	OP_DATA_68:             "OP_DATA_68",
	OP_DATA_69:             "OP_DATA_69",
	OP_DATA_70:             "OP_DATA_70",
	OP_DATA_71:             "OP_DATA_71",
	OP_DATA_72:             "OP_DATA_72",
	OP_DATA_73:             "OP_DATA_73",
	OP_DATA_74:             "OP_DATA_74",
	OP_DATA_75:             "OP_DATA_75",
	OP_PUSHDATA1:           "OP_PUSHDATA1",
	OP_PUSHDATA2:           "OP_PUSHDATA2",
	OP_PUSHDATA4:           "OP_PUSHDATA4",
	OP_1NEGATE:             "OP_1NEGATE",
	OP_RESERVED:            "OP_RESERVED",
	OP_1:                   "OP_1",
	OP_2:                   "OP_2",
	OP_3:                   "OP_3",
	OP_4:                   "OP_4",
	OP_5:                   "OP_5",
	OP_6:                   "OP_6",
	OP_7:                   "OP_7",
	OP_8:                   "OP_8",
	OP_9:                   "OP_9",
	OP_10:                  "OP_10",
	OP_11:                  "OP_11",
	OP_12:                  "OP_12",
	OP_13:                  "OP_13",
	OP_14:                  "OP_14",
	OP_15:                  "OP_15",
	OP_16:                  "OP_16",
	OP_NOP:                 "OP_NOP",
	OP_VER:                 "OP_VER",
	OP_IF:                  "OP_IF",
	OP_NOTIF:               "OP_NOTIF",
	OP_VERIF:               "OP_VERIF",
	OP_VERNOTIF:            "OP_VERNOTIF",
	OP_ELSE:                "OP_ELSE",
	OP_ENDIF:               "OP_ENDIF",
	OP_VERIFY:              "OP_VERIFY",
	OP_RETURN:              "OP_RETURN",
	OP_TOALTSTACK:          "OP_TOALTSTACK",
	OP_FROMALTSTACK:        "OP_FROMALTSTACK",
	OP_2DROP:               "OP_2DROP",
	OP_2DUP:                "OP_2DUP",
	OP_3DUP:                "OP_3DUP",
	OP_2OVER:               "OP_2OVER",
	OP_2ROT:                "OP_2ROT",
	OP_2SWAP:               "OP_2SWAP",
	OP_IFDUP:               "OP_IFDUP",
	OP_DEPTH:               "OP_DEPTH",
	OP_DROP:                "OP_DROP",
	OP_DUP:                 "OP_DUP",
	OP_NIP:                 "OP_NIP",
	OP_OVER:                "OP_OVER",
	OP_PICK:                "OP_PICK",
	OP_ROLL:                "OP_ROLL",
	OP_ROT:                 "OP_ROT",
	OP_SWAP:                "OP_SWAP",
	OP_TUCK:                "OP_TUCK",
	OP_CAT:                 "OP_CAT",
	OP_SUBSTR:              "OP_SUBSTR",
	OP_LEFT:                "OP_LEFT",
	OP_RIGHT:               "OP_RIGHT",
	OP_SIZE:                "OP_SIZE",
	OP_INVERT:              "OP_INVERT",
	OP_AND:                 "OP_AND",
	OP_OR:                  "OP_OR",
	OP_XOR:                 "OP_XOR",
	OP_EQUAL:               "OP_EQUAL",
	OP_EQUALVERIFY:         "OP_EQUALVERIFY",
	OP_RESERVED1:           "OP_RESERVED1",
	OP_RESERVED2:           "OP_RESERVED2",
	OP_1ADD:                "OP_1ADD",
	OP_1SUB:                "OP_1SUB",
	OP_2MUL:                "OP_2MUL",
	OP_2DIV:                "OP_2DIV",
	OP_NEGATE:              "OP_NEGATE",
	OP_ABS:                 "OP_ABS",
	OP_NOT:                 "OP_NOT",
	OP_0NOTEQUAL:           "OP_0NOTEQUAL",
	OP_ADD:                 "OP_ADD",
	OP_SUB:                 "OP_SUB",
	OP_MUL:                 "OP_MUL",
	OP_DIV:                 "OP_DIV",
	OP_MOD:                 "OP_MOD",
	OP_LSHIFT:              "OP_LSHIFT",
	OP_RSHIFT:              "OP_RSHIFT",
	OP_BOOLAND:             "OP_BOOLAND",
	OP_BOOLOR:              "OP_BOOLOR",
	OP_NUMEQUAL:            "OP_NUMEQUAL",
	OP_NUMEQUALVERIFY:      "OP_NUMEQUALVERIFY",
	OP_NUMNOTEQUAL:         "OP_NUMNOTEQUAL",
	OP_LESSTHAN:            "OP_LESSTHAN",
	OP_GREATERTHAN:         "OP_GREATERTHAN",
	OP_LESSTHANOREQUAL:     "OP_LESSTHANOREQUAL",
	OP_GREATERTHANOREQUAL:  "OP_GREATERTHANOREQUAL",
	OP_MIN:                 "OP_MIN",
	OP_MAX:                 "OP_MAX",
	OP_WITHIN:              "OP_WITHIN",
	OP_RIPEMD160:           "OP_RIPEMD160",
	OP_SHA1:                "OP_SHA1",
	OP_SHA256:              "OP_SHA256",
	OP_HASH160:             "OP_HASH160",
	OP_HASH256:             "OP_HASH256",
	OP_CODESEPARATOR:       "OP_CODESEPARATOR",
	OP_CHECKSIG:            "OP_CHECKSIG",
	OP_CHECKSIGVERIFY:      "OP_CHECKSIGVERIFY",
	OP_CHECKMULTISIG:       "OP_CHECKMULTISIG",
	OP_CHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY",
	OP_NOP1:                "OP_NOP1",
	OP_CHECKLOCKTIMEVERIFY: "OP_CHECKLOCKTIMEVERIFY",
	OP_CHECKSEQUENCEVERIFY: "OP_CHECKSEQUENCEVERIFY",
	OP_CHECKTEMPLATEVERIFY: "OP_CHECKTEMPLATEVERIFY",
	OP_NOP5:                "OP_NOP5",
	OP_NOP6:                "OP_NOP6",
	OP_NOP7:                "OP_NOP7",
	OP_NOP8:                "OP_NOP8",
	OP_NOP9:                "OP_NOP9",
	OP_NOP10:               "OP_NOP10",
	OP_SMALLINTEGER:        "OP_SMALLINTEGER",
	OP_PUBKEYS:             "OP_PUBKEYS",
	OP_PUBKEYHASH:          "OP_PUBKEYHASH",
	OP_PUBKEY:              "OP_PUBKEY",
	OP_INVALIDOPCODE:       "OP_INVALIDOPCODE",
}

// String 返回操作码的人类可读名称。
// 未命名的字节值以 OP_UNKNOWN(0x..) 形式返回，绝不会失败。
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OP_UNKNOWN(0x%02x)", byte(op))
}

// IsSmallInt 返回该操作码是否属于规范小整数推送族，
// 即 OP_0 以及 OP_1 到 OP_16。
func (op Opcode) IsSmallInt() bool {
	return op == OP_0 || (op >= OP_1 && op <= OP_16)
}

// AsSmallInt 以整数形式返回小整数推送操作码所代表的值。
// 按照 IsSmallInt，调用前提是该操作码确实属于小整数族。
func (op Opcode) AsSmallInt() int {
	if op == OP_0 {
		return 0
	}
	return int(op - (OP_1 - 1))
}

// smallIntOpcode 返回表示 0 到 16 之间整数的规范小整数推送操作码。
func smallIntOpcode(n int64) Opcode {
	if n == 0 {
		return OP_0
	}
	return OP_1 + Opcode(n-1)
}

// isConditional 返回该操作码在执行时是否会改变条件执行状态。
func (op Opcode) isConditional() bool {
	switch op {
	case OP_IF, OP_NOTIF, OP_ELSE, OP_ENDIF:
		return true
	default:
		return false
	}
}
