package handler

import (
	"context"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/internal/world/actor"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/errx"
)

func mapBizCodeToClientCode(code errx.Code) int {
	switch code {
	case app.CodeUnknownWorld:
		return transport.UnknownWorld
	case app.CodeUnknownBuilding:
		return transport.UnknownBuilding
	case app.CodeNotOwner:
		return transport.NotOwner
	case app.CodeNoSoldiers:
		return transport.NoSoldiers
	case app.CodeMatchOver:
		return transport.MatchOver
	case app.CodeInvalidLevel:
		return transport.InvalidLevel
	case app.CodeUnknownTeam, errx.CodeReqParamError:
		return transport.InvalidParam
	default:
		return transport.SystemError
	}
}

func mapTechErrToClientCode(err error) int {
	if err == nil {
		return transport.OK
	}
	if e, ok := errx.As(err); ok && e.Code() == errx.CodeTimeout {
		return transport.Timeout
	}
	return actor.CodeFromError(err)
}

// HandleError 把错误转换成 (业务码, 提示文案)，并把原因写进访问日志。
func HandleError(ctx context.Context, err error) (int, string) {
	e, ok := errx.As(err)
	if ok {
		reason := e.Reason()
		if reason == "" {
			reason = e.CodeText()
		}
		transport.SetErrorReason(ctx, reason)
	}

	if ok && e.IsBiz() {
		return mapBizCodeToClientCode(e.Code()), e.Msg()
	}

	bizCode := mapTechErrToClientCode(err)
	if bizCode == transport.Timeout {
		return bizCode, "请求超时，请稍后重试"
	}
	return bizCode, "系统繁忙，请稍后重试"
}
