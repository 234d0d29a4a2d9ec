package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 对外业务码，写在响应体的 code 字段里。
const (
	OK              = 0
	InvalidParam    = 1
	UnknownWorld    = 100
	UnknownBuilding = 101
	NotOwner        = 102
	NoSoldiers      = 103
	MatchOver       = 104
	InvalidLevel    = 105

	SystemError = 500
	Timeout     = 504
)
