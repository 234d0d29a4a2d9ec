package transport

import (
	"context"
	"time"

	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/tracex"

	"go.uber.org/zap"
)

// AccessLog 是一次对局请求的日志上下文。
// 入口（HTTP 中间件或 ws 路由）创建，handler 回填业务码、对局 id 与失败原因。
type AccessLog struct {
	BizCode     BizCode
	ErrorReason string
	// WorldID 请求作用的对局；开局、列表等不针对单局的请求为空。
	WorldID string
	// Tick 请求完成时对局所在的 tick，0 表示未知。
	Tick      uint64
	startTime time.Time
	action    string
}

type accessLogKey struct{}

// NewContext 以 background 为父 context。ws 请求没有请求级 context，走这里。
func NewContext(action string) context.Context {
	return NewContextWithParent(context.Background(), action)
}

// NewContextWithParent 保留父 context 的取消与超时。
func NewContextWithParent(parent context.Context, action string) context.Context {
	ctx := parent
	if ctx == nil {
		ctx = context.Background()
	}
	if action == "" {
		action = "unknown"
	}
	ctx, _ = tracex.Ensure(ctx)
	ctx = tracex.WithSpanID(ctx, "match")

	al := &AccessLog{
		BizCode:   SystemError,
		startTime: time.Now(),
		action:    action,
	}
	return context.WithValue(ctx, accessLogKey{}, al)
}

func FromContext(ctx context.Context) *AccessLog {
	if ctx == nil {
		return nil
	}
	al, _ := ctx.Value(accessLogKey{}).(*AccessLog)
	return al
}

func SetBizCode(ctx context.Context, code BizCode) {
	if al := FromContext(ctx); al != nil {
		al.BizCode = code
	}
}

// SetErrorReason 空原因不覆盖已有值。
func SetErrorReason(ctx context.Context, reason string) {
	if reason == "" {
		return
	}
	if al := FromContext(ctx); al != nil {
		al.ErrorReason = reason
	}
}

// SetWorldID 先设者优先：handler 明确给出的对局 id 不会被入口的兜底解析覆盖。
func SetWorldID(ctx context.Context, worldID string) {
	if worldID == "" {
		return
	}
	if al := FromContext(ctx); al != nil && al.WorldID == "" {
		al.WorldID = worldID
	}
}

// WorldIDFromContext 没有访问日志上下文时返回空串。
func WorldIDFromContext(ctx context.Context) string {
	if al := FromContext(ctx); al != nil {
		return al.WorldID
	}
	return ""
}

// SetTick 记录请求完成时的对局 tick。
func SetTick(ctx context.Context, tick uint64) {
	if al := FromContext(ctx); al != nil {
		al.Tick = tick
	}
}

// WriteAccessLog 入口在请求结束时 defer 调用。
func WriteAccessLog(ctx context.Context, log logx.Logger) {
	al := FromContext(ctx)
	if al == nil || log == nil {
		return
	}

	fields := []zap.Field{
		zap.Duration("latency", time.Since(al.startTime)),
	}
	if al.WorldID != "" {
		fields = append(fields, zap.String("world_id", al.WorldID))
	}
	if al.Tick > 0 {
		fields = append(fields, zap.Uint64("tick", al.Tick))
	}
	if al.BizCode == OK {
		fields = append(fields, zap.String("result", "success"))
	} else {
		fields = append(fields, zap.String("result", "failure"))
		if al.ErrorReason != "" {
			fields = append(fields, zap.String("error_reason", al.ErrorReason))
		}
	}
	logx.ReportAccessWithLoggerContext(ctx, log, al.action, int(al.BizCode), fields...)
}
