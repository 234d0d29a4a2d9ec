package ws

import (
	"context"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport/ws"
	"github.com/RafikBaaziz123/ConquEST/internal/world/interfaces/handler"
	"github.com/RafikBaaziz123/ConquEST/internal/world/interfaces/handler/http/dto"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"go.uber.org/zap"
)

const (
	// PushSnapshot match.watch 订阅后服务端推送的消息名
	PushSnapshot = "match.push"

	defaultWatchInterval = 200 * time.Millisecond
	minWatchInterval     = 20 * time.Millisecond
	watchAskTimeout      = 2 * time.Second
)

type worldReq struct {
	WorldID string `json:"world_id"`
}

type hitReq struct {
	WorldID string  `json:"world_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

type orderReq struct {
	WorldID string `json:"world_id"`
	Team    string `json:"team"`
	From    []int  `json:"from"`
	To      int    `json:"to"`
	Enlist  bool   `json:"enlist"`
}

type stepReq struct {
	WorldID string `json:"world_id"`
	Ticks   int    `json:"ticks"`
}

type watchReq struct {
	WorldID    string `json:"world_id"`
	IntervalMs int    `json:"interval_ms"`
}

type WsHandler struct {
	matches handler.MatchService
	log     logx.Logger
}

func NewWsHandler(matches handler.MatchService, log logx.Logger) *WsHandler {
	if log == nil {
		log = logx.Nop()
	}
	return &WsHandler{matches: matches, log: log}
}

func (h *WsHandler) RegisterRoutes(r *ws.Router) {
	g := r.Group("match")
	g.Handle("snapshot", h.Snapshot, ws.WorldScoped())
	g.Handle("hit", h.HitTest, ws.WorldScoped())
	g.Handle("order", h.Order, ws.WorldScoped())
	g.Handle("step", h.Step, ws.WorldScoped())
	g.Handle("watch", h.Watch, ws.WorldScoped(), ws.Streaming())
}

func (h *WsHandler) Snapshot(ctx context.Context, req *ws.WsMsgReq, rsp *ws.WsMsgResp) {
	var in worldReq
	if !h.bind(req, rsp, &in) {
		return
	}
	res, err := h.matches.Snapshot(ctx, in.WorldID)
	if err != nil {
		h.error(ctx, rsp, "ws snapshot", err)
		return
	}
	h.ok(rsp, dto.SnapshotRsp{Status: res.Status, Over: res.Over, World: res.Snapshot})
}

func (h *WsHandler) HitTest(ctx context.Context, req *ws.WsMsgReq, rsp *ws.WsMsgResp) {
	var in hitReq
	if !h.bind(req, rsp, &in) {
		return
	}
	res, err := h.matches.HitTest(ctx, in.WorldID, in.X, in.Y)
	if err != nil {
		h.error(ctx, rsp, "ws hit test", err)
		return
	}
	out := dto.HitTestRsp{Found: res.Found}
	if res.Found {
		out.Building = &res.Building
	}
	h.ok(rsp, out)
}

func (h *WsHandler) Order(ctx context.Context, req *ws.WsMsgReq, rsp *ws.WsMsgResp) {
	var in orderReq
	if !h.bind(req, rsp, &in) {
		return
	}
	if len(in.From) == 0 {
		h.fail(rsp, transport.InvalidParam, "参数有误")
		return
	}
	res, err := h.matches.Order(ctx, &messages.HWOrder{
		WorldBaseMessage: messages.WorldBaseMessage{WorldId: in.WorldID},
		Team:             in.Team,
		From:             in.From,
		To:               in.To,
		Enlist:           in.Enlist,
	})
	if err != nil {
		h.error(ctx, rsp, "ws order", err)
		return
	}
	h.ok(rsp, dto.OrderRsp{Armies: res.Armies})
}

func (h *WsHandler) Step(ctx context.Context, req *ws.WsMsgReq, rsp *ws.WsMsgResp) {
	var in stepReq
	if !h.bind(req, rsp, &in) {
		return
	}
	res, err := h.matches.Step(ctx, in.WorldID, in.Ticks)
	if err != nil {
		h.error(ctx, rsp, "ws step", err)
		return
	}
	transport.SetTick(ctx, res.Tick)
	h.ok(rsp, dto.StepRsp{Tick: res.Tick, Status: res.Status, Over: res.Over, Captures: res.Captures})
}

// Watch 先回一帧快照，之后按间隔推送，直到连接断开、对局结束或对局消失。
// 同一连接重复订阅同一对局只回快照，不再起新的推送循环。
func (h *WsHandler) Watch(ctx context.Context, req *ws.WsMsgReq, rsp *ws.WsMsgResp) {
	var in watchReq
	if !h.bind(req, rsp, &in) {
		return
	}
	res, err := h.matches.Snapshot(ctx, in.WorldID)
	if err != nil {
		h.error(ctx, rsp, "ws watch", err)
		return
	}
	h.ok(rsp, dto.SnapshotRsp{Status: res.Status, Over: res.Over, World: res.Snapshot})
	if res.Over {
		return
	}

	every := time.Duration(in.IntervalMs) * time.Millisecond
	if every <= 0 {
		every = defaultWatchInterval
	}
	every = max(every, minWatchInterval)
	if req.Conn == nil || !ws.StartWatch(req.Conn, in.WorldID) {
		return
	}
	go h.watchLoop(req.Conn, in.WorldID, every)
}

func (h *WsHandler) watchLoop(conn ws.WSConn, worldID string, every time.Duration) {
	defer ws.StopWatch(conn, worldID)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-conn.Done():
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), watchAskTimeout)
		res, err := h.matches.Snapshot(ctx, worldID)
		cancel()
		if err != nil {
			h.log.Info("停止推送对局快照", zap.String("world_id", worldID), zap.Error(err))
			return
		}
		if !conn.Push(PushSnapshot, dto.SnapshotRsp{Status: res.Status, Over: res.Over, World: res.Snapshot}) {
			return
		}
		if res.Over {
			return
		}
	}
}

func (h *WsHandler) bind(req *ws.WsMsgReq, rsp *ws.WsMsgResp, dst any) bool {
	if err := ws.BindJSON(req, dst); err != nil {
		h.fail(rsp, transport.InvalidParam, "参数有误")
		return false
	}
	return true
}

func (h *WsHandler) ok(rsp *ws.WsMsgResp, data any) {
	rsp.Body.Code = transport.OK
	rsp.Body.Msg = data
}

func (h *WsHandler) fail(rsp *ws.WsMsgResp, code int, msg string) {
	rsp.Body.Code = code
	rsp.Body.Msg = msg
}

func (h *WsHandler) error(ctx context.Context, rsp *ws.WsMsgResp, action string, err error) {
	logx.ReportError(ctx, h.log, action, err)
	code, msg := handler.HandleError(ctx, err)
	h.fail(rsp, code, msg)
}
