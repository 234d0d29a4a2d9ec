package app

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{
		Code:    c,
		Message: m,
	}
}

var (
	// 关卡加载失败的细分原因，写入 data["reason"]。
	ReasonLevelNotFound      = NewReason("LEVEL_NOT_FOUND", "关卡文件不存在")
	ReasonLevelBadName       = NewReason("LEVEL_BAD_NAME", "关卡名非法")
	ReasonLevelSyntax        = NewReason("LEVEL_SYNTAX", "关卡文件不是合法的 YAML")
	ReasonLevelSchema        = NewReason("LEVEL_SCHEMA", "关卡文件不符合 schema")
	ReasonLevelUnknownTeam   = NewReason("LEVEL_UNKNOWN_TEAM", "关卡引用了未配置的阵营")
	ReasonLevelUnknownPreset = NewReason("LEVEL_UNKNOWN_PRESET", "关卡引用了未知的建筑预设")
	ReasonLevelKindMismatch  = NewReason("LEVEL_KIND_MISMATCH", "建筑类别与预设不符")
)

var (
	// 技术错误 reason，用于日志与排障。
	ReasonLevelReadFail   = NewReason("LEVEL_READ_FAIL", "关卡文件读取失败")
	ReasonMatchStoreFail  = NewReason("MATCH_STORE_FAIL", "对局记录写入失败")
	ReasonActorAskTimeout = NewReason("ACTOR_ASK_TIMEOUT", "对局 actor 响应超时")
)
