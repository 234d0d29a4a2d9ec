package logx

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// BizLog 业务拒绝日志的输入。
type BizLog struct {
	Action  string
	Reason  string
	Message string
}

// SysLog 技术错误日志的输入。
type SysLog struct {
	Action string
	Err    error
}

// ReportAccessWithLoggerContext 访问日志：biz_code 为 0 记 INFO，>=500 记 ERROR，其余 WARN。
func ReportAccessWithLoggerContext(ctx context.Context, l Logger, action string, bizCode int, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := append([]zap.Field{
		zap.String("log_type", "access"),
		zap.String("action", action),
		zap.Int("biz_code", bizCode),
	}, fields...)
	withCtx := l.WithContext(ctx)
	switch {
	case bizCode == 0:
		withCtx.Info("access", base...)
	case bizCode >= 500:
		withCtx.Error("access", base...)
	default:
		withCtx.Warn("access", base...)
	}
}

// ReportBizWithLoggerContext 业务拒绝：INFO，不带栈。
func ReportBizWithLoggerContext(ctx context.Context, l Logger, biz BizLog, fields ...zap.Field) {
	if l == nil {
		return
	}
	action := biz.Action
	if action == "" {
		action = "biz_reject"
	}
	base := []zap.Field{
		zap.String("err_type", "biz"),
		zap.String("action", action),
	}
	msg := action
	if biz.Reason != "" {
		base = append(base, zap.String("reason", biz.Reason))
		msg += ", reason:" + biz.Reason
	}
	if biz.Message != "" {
		base = append(base, zap.String("biz_message", biz.Message))
		msg += ", msg:" + biz.Message
	}
	l.WithContext(ctx).Info(msg, append(base, fields...)...)
}

// ReportSysErrorWithLoggerContext 技术错误：ERROR，附带 cause 链和发生处的栈。
func ReportSysErrorWithLoggerContext(ctx context.Context, l Logger, sys SysLog, fields ...zap.Field) {
	if sys.Err == nil || l == nil {
		return
	}
	action := sys.Action
	if action == "" {
		action = "sys_error"
	}
	meta := BuildErrorLog(sys.Err)
	base := []zap.Field{
		zap.String("err_type", "sys"),
		zap.String("action", action),
	}
	if meta.Code != "" {
		base = append(base, zap.String("error_code", meta.Code))
	}
	if len(meta.CauseChain) != 0 {
		base = append(base, zap.Strings("cause_chain", meta.CauseChain))
	}
	if len(meta.Data) != 0 {
		base = append(base, zap.Any("error_data", meta.Data))
	}
	if meta.Origin != "" {
		base = append(base, zap.String("origin_caller", meta.Origin), zap.String("stack_origin", meta.Stack))
	}
	msg := fmt.Sprintf("%s, error:%s", action, meta.Error)
	if meta.Reason != "" {
		msg = fmt.Sprintf("%s, reason:%s, error:%s", action, meta.Reason, meta.Error)
	}
	l.WithContext(ctx).Error(msg, append(base, fields...)...)
}

type bizClassifier interface{ IsBiz() bool }

// ReportError 按错误类型分流：业务拒绝走 ReportBizWithLoggerContext，其余走 ReportSysErrorWithLoggerContext。
func ReportError(ctx context.Context, l Logger, action string, err error, fields ...zap.Field) {
	if err == nil {
		return
	}
	var bc bizClassifier
	if errors.As(err, &bc) && bc.IsBiz() {
		meta := BuildErrorLog(err)
		ReportBizWithLoggerContext(ctx, l, BizLog{Action: action, Reason: meta.Code, Message: meta.Msg}, fields...)
		return
	}
	ReportSysErrorWithLoggerContext(ctx, l, SysLog{Action: action, Err: err}, fields...)
}
