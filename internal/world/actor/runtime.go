package actor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/internal/world/actors"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"

	protoactor "github.com/asynkron/protoactor-go/actor"
)

const defaultAskTimeout = 3 * time.Second

type RuntimeError struct {
	Code    int
	Message string
	Cause   error
}

func (e *RuntimeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *RuntimeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Runtime 对外的对局入口：把调用转换成发给 ManagerActor 的请求并等待回复。
type Runtime struct {
	system  *protoactor.ActorSystem
	root    *protoactor.RootContext
	manager *protoactor.PID
	store   port.MatchStore
	timeout time.Duration
}

func NewRuntime(levels port.LevelRepository, store port.MatchStore, cfg actors.MatchConfig, askTimeout time.Duration) *Runtime {
	if askTimeout <= 0 {
		askTimeout = defaultAskTimeout
	}

	system := protoactor.NewActorSystem()
	root := system.Root
	managerProps := protoactor.PropsFromProducer(func() protoactor.Actor {
		return actors.NewManagerActor(levels, store, cfg)
	})
	manager := root.Spawn(managerProps)

	return &Runtime{
		system:  system,
		root:    root,
		manager: manager,
		store:   store,
		timeout: askTimeout,
	}
}

func (r *Runtime) Shutdown() {
	if r == nil {
		return
	}
	if r.root != nil && r.manager != nil {
		// 等子 actor 走完 Stopping，最后一份记录才能落库
		_ = r.root.StopFuture(r.manager).Wait()
	}
	if r.system != nil {
		r.system.Shutdown()
	}
}

// StartMatch worldID 为空时自动分配。
func (r *Runtime) StartMatch(ctx context.Context, worldID, level string) (*messages.WHStartMatch, error) {
	req := &messages.HWStartMatch{WorldBaseMessage: messages.WorldBaseMessage{WorldId: worldID}, Level: level}
	return ask[*messages.WHStartMatch](ctx, r, req)
}

func (r *Runtime) Snapshot(ctx context.Context, worldID string) (*messages.WHSnapshot, error) {
	req := &messages.HWSnapshot{WorldBaseMessage: messages.WorldBaseMessage{WorldId: worldID}}
	return ask[*messages.WHSnapshot](ctx, r, req)
}

func (r *Runtime) Order(ctx context.Context, req *messages.HWOrder) (*messages.WHOrder, error) {
	return ask[*messages.WHOrder](ctx, r, req)
}

func (r *Runtime) HitTest(ctx context.Context, worldID string, x, y float64) (*messages.WHHitTest, error) {
	req := &messages.HWHitTest{WorldBaseMessage: messages.WorldBaseMessage{WorldId: worldID}, X: x, Y: y}
	return ask[*messages.WHHitTest](ctx, r, req)
}

func (r *Runtime) Step(ctx context.Context, worldID string, ticks int) (*messages.WHStep, error) {
	req := &messages.HWStep{WorldBaseMessage: messages.WorldBaseMessage{WorldId: worldID}, Ticks: ticks}
	return ask[*messages.WHStep](ctx, r, req)
}

func (r *Runtime) StopMatch(ctx context.Context, worldID string) (*messages.WHStopMatch, error) {
	req := &messages.HWStopMatch{WorldBaseMessage: messages.WorldBaseMessage{WorldId: worldID}}
	return ask[*messages.WHStopMatch](ctx, r, req)
}

// Matches 已落库的对局记录，包含已经停止的对局。
func (r *Runtime) Matches(ctx context.Context) ([]port.MatchRecord, error) {
	if r == nil || r.store == nil {
		return nil, nil
	}
	return r.store.List(ctx)
}

// ask 业务拒绝原样返回 FailResp 里的错误，其余异常包装成 RuntimeError。
func ask[T any](ctx context.Context, r *Runtime, msg messages.WorldMessage) (T, error) {
	var zero T
	if r == nil {
		return zero, &RuntimeError{Code: transport.SystemError, Message: "actor runtime 未初始化"}
	}
	res, err := r.request(r.manager, msg, r.timeoutFromContext(ctx))
	if err != nil {
		return zero, err
	}
	switch v := res.(type) {
	case *messages.FailResp:
		return zero, v.Err
	case T:
		return v, nil
	default:
		return zero, &RuntimeError{
			Code:    transport.SystemError,
			Message: fmt.Sprintf("actor 回复类型不符: %T", res),
		}
	}
}

func (r *Runtime) request(pid *protoactor.PID, msg any, timeout time.Duration) (any, error) {
	if r == nil || r.root == nil {
		return nil, &RuntimeError{Code: transport.SystemError, Message: "actor runtime 未初始化"}
	}
	if pid == nil {
		return nil, &RuntimeError{Code: transport.SystemError, Message: "actor pid 为空"}
	}

	future := r.root.RequestFuture(pid, msg, timeout)
	res, err := future.Result()
	if errors.Is(err, protoactor.ErrDeadLetter) {
		// 对局 actor 已经停止，映射还没来得及清理
		return nil, app.ErrUnknownWorld.WithCause(err)
	}
	if errors.Is(err, protoactor.ErrTimeout) {
		return nil, &RuntimeError{
			Code:    transport.Timeout,
			Message: "actor 请求超时",
			Cause:   err,
		}
	}
	if err != nil {
		return nil, &RuntimeError{
			Code:    transport.SystemError,
			Message: "actor 请求失败",
			Cause:   err,
		}
	}
	return res, nil
}

func (r *Runtime) timeoutFromContext(ctx context.Context) time.Duration {
	if r == nil || r.timeout <= 0 {
		return defaultAskTimeout
	}
	if ctx == nil {
		return r.timeout
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return r.timeout
	}
	remain := time.Until(deadline)
	if remain <= 0 {
		return time.Millisecond
	}
	if remain < r.timeout {
		return remain
	}
	return r.timeout
}

func CodeFromError(err error) int {
	if err == nil {
		return transport.OK
	}
	var re *RuntimeError
	if errors.As(err, &re) && re != nil && re.Code != 0 {
		return re.Code
	}
	return transport.SystemError
}
