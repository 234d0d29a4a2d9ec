package actors

import (
	"reflect"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/errx"

	"github.com/asynkron/protoactor-go/actor"
)

type Dispatcher struct {
	handlers map[reflect.Type]Handler
}

type Handler struct {
	fn      reflect.Value
	reqType reflect.Type
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[reflect.Type]Handler),
	}
	d.registerAll()
	return d
}

func (d *Dispatcher) registerAll() {
	register(d, WH.HandleHWSnapshot)
	register(d, WH.HandleHWOrder)
	register(d, WH.HandleHWHitTest)
	register(d, WH.HandleHWStep)
}

func register[Req any](
	d *Dispatcher,
	fn func(ctx actor.Context, p *WorldActor, req Req),
) {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	if reqType == nil {
		panic("dispatcher req type cannot be nil")
	}

	d.handlers[reqType] = Handler{
		fn:      reflect.ValueOf(fn),
		reqType: reqType,
	}
}

// Handles 是否注册了该请求类型。
func (d *Dispatcher) Handles(req messages.WorldMessage) bool {
	if req == nil {
		return false
	}
	_, ok := d.handlers[reflect.TypeOf(req)]
	return ok
}

func (d *Dispatcher) Dispatch(ctx actor.Context, p *WorldActor, req messages.WorldMessage) {
	if req == nil {
		ctx.Respond(fail(errx.ErrReqParam.WithData("detail", "nil req")))
		return
	}

	bodyType := reflect.TypeOf(req)
	handler, ok := d.handlers[bodyType]
	if !ok {
		ctx.Respond(fail(errx.ErrReqParam.WithData("detail", "no handler for "+bodyType.String())))
		return
	}

	if bodyType != handler.reqType {
		ctx.Respond(fail(errx.ErrReqParam.WithData("detail", "request body type mismatch")))
		return
	}

	handler.fn.Call([]reflect.Value{
		reflect.ValueOf(ctx),
		reflect.ValueOf(p),
		reflect.ValueOf(req),
	})
}
