package actors

import (
	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
	"github.com/RafikBaaziz123/ConquEST/internal/world/service"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/errx"

	"github.com/asynkron/protoactor-go/actor"
)

// maxStepTicks 单次手动推进的上限。
const maxStepTicks = 10000

type WorldHandler struct{}

var WH = &WorldHandler{}

func (h *WorldHandler) HandleHWSnapshot(ctx actor.Context, p *WorldActor, req *messages.HWSnapshot) {
	ctx.Respond(&messages.WHSnapshot{
		Snapshot: p.world.Snapshot(),
		Status:   p.game.Status().String(),
		Over:     p.game.Over(),
	})
}

func (h *WorldHandler) HandleHWOrder(ctx actor.Context, p *WorldActor, req *messages.HWOrder) {
	if p.game.Over() {
		ctx.Respond(fail(app.ErrMatchOver.WithData("world_id", string(p.worldID))))
		return
	}
	team := p.game.Player()
	if req.Team != "" {
		t, ok := p.world.TeamByName(req.Team)
		if !ok {
			ctx.Respond(fail(app.ErrUnknownTeam.WithData("team", req.Team)))
			return
		}
		team = t.ID()
	}

	order := service.Order{
		Team:   team,
		To:     entity.BuildingID(req.To),
		Enlist: req.Enlist,
	}
	for _, id := range req.From {
		order.From = append(order.From, entity.BuildingID(id))
	}
	armies, err := service.Dispatch(p.world, order)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}

	out := make([]int, 0, len(armies))
	for _, id := range armies {
		out = append(out, int(id))
	}
	ctx.Respond(&messages.WHOrder{Armies: out})
}

func (h *WorldHandler) HandleHWHitTest(ctx actor.Context, p *WorldActor, req *messages.HWHitTest) {
	b, ok := p.world.FindBuildingAt(entity.Vec2{X: req.X, Y: req.Y})
	if !ok {
		ctx.Respond(&messages.WHHitTest{})
		return
	}
	snap, _ := p.world.Snapshot().Building(b.ID())
	ctx.Respond(&messages.WHHitTest{Found: true, Building: snap})
}

// HandleHWStep 手动推进，自动推进关闭（tick_rate=0）时由调用方驱动对局。
func (h *WorldHandler) HandleHWStep(ctx actor.Context, p *WorldActor, req *messages.HWStep) {
	n := req.Ticks
	if n < 1 {
		n = 1
	}
	if n > maxStepTicks {
		ctx.Respond(fail(errx.ErrReqParam.WithData("ticks", req.Ticks).WithData("max", maxStepTicks)))
		return
	}
	if p.game.Over() {
		ctx.Respond(fail(app.ErrMatchOver.WithData("world_id", string(p.worldID))))
		return
	}

	var captures []messages.CaptureView
	for i := 0; i < n && !p.game.Over(); i++ {
		captures = append(captures, p.step()...)
	}
	ctx.Respond(&messages.WHStep{
		Tick:     p.world.TickCount(),
		Status:   p.game.Status().String(),
		Over:     p.game.Over(),
		Captures: captures,
	})
}

func fail(err error) *messages.FailResp {
	return &messages.FailResp{Err: err}
}
