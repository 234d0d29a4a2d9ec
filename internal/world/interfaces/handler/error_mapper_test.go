package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/internal/world/actor"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/errx"
)

func TestHandleError_业务错误(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{name: "对局不存在", err: app.ErrUnknownWorld.WithData("world_id", "x"), code: transport.UnknownWorld},
		{name: "建筑不存在", err: app.ErrUnknownBuilding, code: transport.UnknownBuilding},
		{name: "不是己方建筑", err: app.ErrNotOwner, code: transport.NotOwner},
		{name: "没有士兵", err: app.ErrNoSoldiers, code: transport.NoSoldiers},
		{name: "对局已结束", err: app.ErrMatchOver, code: transport.MatchOver},
		{name: "关卡无效", err: app.ErrInvalidLevel.WithReason(app.ReasonLevelNotFound), code: transport.InvalidLevel},
		{name: "未知阵营", err: app.ErrUnknownTeam, code: transport.InvalidParam},
		{name: "空选择", err: app.ErrEmptySelection, code: transport.InvalidParam},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := HandleError(context.Background(), tc.err)
			e, _ := errx.As(tc.err)
			if code != tc.code || msg != e.Msg() {
				t.Fatalf("期望 code=%d msg=%s, got code=%d msg=%s", tc.code, e.Msg(), code, msg)
			}
		})
	}
}

func TestHandleError_系统错误不透出细节(t *testing.T) {
	code, msg := HandleError(context.Background(), app.Wrap(app.CodeInternalServer, "关卡文件读取失败", errors.New("disk")))
	if code != transport.SystemError || msg != "系统繁忙，请稍后重试" {
		t.Fatalf("got code=%d msg=%s", code, msg)
	}

	code, _ = HandleError(context.Background(), &actor.RuntimeError{Code: transport.Timeout, Message: "actor 请求超时"})
	if code != transport.Timeout {
		t.Fatalf("期望超时码, got=%d", code)
	}
	code, _ = HandleError(context.Background(), errx.ErrTimeout)
	if code != transport.Timeout {
		t.Fatalf("期望超时码, got=%d", code)
	}
}

func TestHandleError_原因写入访问日志(t *testing.T) {
	ctx := transport.NewContext("POST /v1/matches")
	HandleError(ctx, app.ErrInvalidLevel.WithReason(app.ReasonLevelSchema))
	if al := transport.FromContext(ctx); al == nil || al.ErrorReason != app.ReasonLevelSchema.Code {
		t.Fatalf("期望记录细分原因, got=%+v", al)
	}

	ctx = transport.NewContext("GET /v1/matches/:id/snapshot")
	HandleError(ctx, app.ErrUnknownWorld)
	if al := transport.FromContext(ctx); al.ErrorReason != string(app.CodeUnknownWorld) {
		t.Fatalf("期望没有原因时记录错误码, got=%s", al.ErrorReason)
	}
}
