package app

import "github.com/RafikBaaziz123/ConquEST/modules/kit/errx"

// Code 对局相关的错误码，transport 层据此映射为对外业务码。
type Code = errx.Code

const (
	CodeUnknownWorld    Code = "WORLD_UNKNOWN"
	CodeUnknownBuilding Code = "BUILDING_UNKNOWN"
	CodeUnknownTeam     Code = "TEAM_UNKNOWN"
	CodeNotOwner        Code = "BUILDING_NOT_OWNER"
	CodeNoSoldiers      Code = "NO_SOLDIERS"
	CodeMatchOver       Code = "MATCH_OVER"
	CodeInvalidLevel    Code = "LEVEL_INVALID"
	// CodeInternalServer 复用 kit 的统一系统码。
	CodeInternalServer Code = errx.CodeInternal
)

type Error = errx.Error

// NewError 创建业务类错误（不捕获栈）。
func NewError(code Code, msg string) *Error {
	return errx.NewBiz(code, msg)
}

// Wrap 创建系统类错误并挂载 cause。
func Wrap(code Code, msg string, cause error) *Error {
	return errx.NewSys(code, msg).WithCause(cause)
}

// 哨兵错误：通过 WithData/WithCause 派生，不要直接修改。
var (
	ErrUnknownWorld    = errx.NewBiz(CodeUnknownWorld, "对局不存在")
	ErrUnknownBuilding = errx.NewBiz(CodeUnknownBuilding, "建筑不存在")
	ErrUnknownTeam     = errx.NewBiz(CodeUnknownTeam, "阵营不存在")
	ErrNotOwner        = errx.NewBiz(CodeNotOwner, "不是己方建筑")
	ErrNoSoldiers      = errx.NewBiz(CodeNoSoldiers, "没有可出征的士兵")
	ErrMatchOver       = errx.NewBiz(CodeMatchOver, "对局已结束")
	ErrInvalidLevel    = errx.NewBiz(CodeInvalidLevel, "关卡无效")
	ErrEmptySelection  = errx.NewBiz(errx.CodeReqParamError, "没有选中任何建筑")
	ErrInternalServer  = errx.ErrInternal
)
