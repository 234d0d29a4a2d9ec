package actors

import (
	"context"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/dc"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
	"github.com/RafikBaaziz123/ConquEST/internal/world/service"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type State int

const (
	None State = iota
	Init
	Online
	Failed
	Offline
	Stopping
)

const (
	loadTimeout  = 3 * time.Second
	closeTimeout = 3 * time.Second
)

// MatchConfig 每局对战共用的参数。
type MatchConfig struct {
	PlayerTeam string
	AITeams    []string
	// TickInterval 为 0 时不自动推进，只响应 HWStep
	TickInterval time.Duration
	FlushEvery   time.Duration
	Logger       logx.Logger
}

// WorldActor 持有一局对战，所有读写都在 actor 的消息循环里串行执行。
type WorldActor struct {
	state   State
	worldID WorldID
	level   string
	cfg     MatchConfig
	logger  logx.Logger

	levels     port.LevelRepository
	store      port.MatchStore
	dc         *dc.WorldDC
	world      *entity.World
	game       *service.Game
	dispatcher *Dispatcher
	initErr    error

	tickStop  chan struct{}
	flushStop chan struct{}
}

type tick struct{}

func (tick) NotInfluenceReceiveTimeout() {}

type flushTick struct{}

func (flushTick) NotInfluenceReceiveTimeout() {}

func NewWorldActor(worldID WorldID, level string, levels port.LevelRepository, store port.MatchStore, cfg MatchConfig) *WorldActor {
	logger := cfg.Logger
	if logger == nil {
		logger = logx.Nop()
	}
	return &WorldActor{
		state:      None,
		worldID:    worldID,
		level:      level,
		cfg:        cfg,
		logger:     logger.With(zap.String("world_id", string(worldID)), zap.String("level", level)),
		levels:     levels,
		store:      store,
		dispatcher: NewDispatcher(),
	}
}

func (p *WorldActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		p.state = Init
		p.init(ctx)
		return
	case *actor.Stopping:
		p.stopLoops()
		if p.dc != nil {
			p.flush()
			closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()
			if err := p.dc.Close(closeCtx); err != nil {
				p.logger.Error("world dc close failed", zap.Error(err))
			}
		}
		p.state = Stopping
		return
	case *actor.Stopped:
		p.stopLoops()
		p.state = Offline
		p.logger.Info("对局已停止")
		return
	case *actor.Restarting:
		p.stopLoops()
		p.state = Init
		return
	case tick:
		if p.state != Online || p.game.Over() {
			return
		}
		p.step()
		return
	case flushTick:
		if p.state != Online {
			return
		}
		p.flush()
		return
	case *messages.HWStartMatch:
		if p.state == Failed {
			ctx.Respond(fail(p.initErr))
			ctx.Stop(ctx.Self())
			return
		}
		ctx.Respond(&messages.WHStartMatch{
			WorldId:    string(p.worldID),
			Level:      p.level,
			PlayerTeam: p.cfg.PlayerTeam,
		})
		return
	case *messages.HWStopMatch:
		ctx.Respond(&messages.WHStopMatch{WorldId: string(p.worldID)})
		ctx.Stop(ctx.Self())
		return
	case messages.WorldMessage:
		if msg == nil {
			return
		}
		if p.state != Online {
			ctx.Respond(fail(app.ErrUnknownWorld.WithData("world_id", string(p.worldID))))
			return
		}
		p.dispatcher.Dispatch(ctx, p, msg)
	default:
		return
	}
}

func (p *WorldActor) init(ctx actor.Context) {
	if err := p.load(); err != nil {
		// 等 HWStartMatch 把错误带回给调用方后再停
		p.state = Failed
		p.initErr = err
		p.logger.Warn("对局创建失败", zap.Error(err))
		return
	}
	p.dc = dc.NewWorldDC(p.store, p.worldID, p.level, p.cfg.FlushEvery, p.logger)
	p.state = Online
	p.flush()
	p.startLoops(ctx)
	p.logger.Info("对局开始", zap.String("player_team", p.cfg.PlayerTeam), zap.Strings("ai_teams", p.cfg.AITeams))
}

func (p *WorldActor) load() error {
	loadCtx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	w, err := p.levels.LoadWorld(loadCtx, p.worldID, p.level)
	if err != nil {
		return err
	}

	player, ok := w.TeamByName(p.cfg.PlayerTeam)
	if !ok {
		return app.ErrUnknownTeam.WithData("team", p.cfg.PlayerTeam)
	}
	var ais []entity.TeamID
	for _, name := range p.cfg.AITeams {
		t, ok := w.TeamByName(name)
		if !ok {
			return app.ErrUnknownTeam.WithData("team", name)
		}
		ais = append(ais, t.ID())
	}
	p.world = w
	p.game = service.NewGame(w, player.ID(), ais...)
	return nil
}

// step 推进一个 tick 并记录易主；对局结束时停掉自动推进并立即落一次库。
func (p *WorldActor) step() []messages.CaptureView {
	captures := p.game.Step()
	views := make([]messages.CaptureView, 0, len(captures))
	for _, c := range captures {
		v := messages.CaptureView{
			Building: int(c.Building),
			From:     p.teamName(c.From),
			To:       p.teamName(c.To),
		}
		views = append(views, v)
		p.logger.Info("建筑易主",
			zap.Int("building_id", v.Building),
			zap.String("from", v.From),
			zap.String("to", v.To),
			zap.Uint64("tick", p.world.TickCount()),
		)
	}
	if p.game.Over() {
		p.stopTickLoop()
		p.flush()
		p.logger.Info("对局结束", zap.String("status", p.game.Status().String()), zap.Uint64("tick", p.world.TickCount()))
	}
	return views
}

func (p *WorldActor) teamName(id entity.TeamID) string {
	if t, ok := p.world.Team(id); ok {
		return t.Name()
	}
	return ""
}

func (p *WorldActor) flush() {
	if p.dc == nil || p.game == nil {
		return
	}
	p.dc.Flush(p.world.Snapshot(), p.game.Status().String(), p.game.Over())
}

func (p *WorldActor) WorldID() WorldID {
	return p.worldID
}

func (p *WorldActor) State() State {
	return p.state
}

func (p *WorldActor) startLoops(ctx actor.Context) {
	self := ctx.Self()
	root := ctx.ActorSystem().Root
	if p.tickStop == nil && p.cfg.TickInterval > 0 {
		p.tickStop = make(chan struct{})
		go sendEvery(root, self, p.tickStop, p.cfg.TickInterval, tick{})
	}
	if p.flushStop == nil {
		p.flushStop = make(chan struct{})
		go sendEvery(root, self, p.flushStop, p.dc.FlushEvery(), flushTick{})
	}
}

// sendEvery 定时给自己投递消息；真正的处理仍在 actor 线程里。
func sendEvery(root *actor.RootContext, self *actor.PID, stop <-chan struct{}, every time.Duration, msg any) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			root.Send(self, msg)
		case <-stop:
			return
		}
	}
}

func (p *WorldActor) stopTickLoop() {
	if p.tickStop == nil {
		return
	}
	close(p.tickStop)
	p.tickStop = nil
}

func (p *WorldActor) stopLoops() {
	p.stopTickLoop()
	if p.flushStop == nil {
		return
	}
	close(p.flushStop)
	p.flushStop = nil
}
