package http

import (
	"context"
	nethttp "net/http"
	"strconv"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/internal/world/interfaces/handler"
	"github.com/RafikBaaziz123/ConquEST/internal/world/interfaces/handler/http/dto"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

type HttpHandler struct {
	matches      handler.MatchService
	levels       handler.LevelLister
	defaultLevel string
	log          logx.Logger
}

func NewHttpHandler(matches handler.MatchService, levels handler.LevelLister, defaultLevel string, log logx.Logger) *HttpHandler {
	if log == nil {
		log = logx.Nop()
	}
	return &HttpHandler{
		matches:      matches,
		levels:       levels,
		defaultLevel: defaultLevel,
		log:          log,
	}
}

func (h *HttpHandler) RegisterRoutes(group *gin.RouterGroup) {
	v1 := group.Group("/v1")
	v1.GET("/levels", h.Levels)

	matchGroup := v1.Group("/matches")
	matchGroup.POST("", h.StartMatch)
	matchGroup.GET("", h.ListMatches)
	matchGroup.GET("/:id/snapshot", h.Snapshot)
	matchGroup.GET("/:id/hit", h.HitTest)
	matchGroup.POST("/:id/orders", h.Order)
	matchGroup.POST("/:id/step", h.Step)
	matchGroup.DELETE("/:id", h.StopMatch)
}

func (h *HttpHandler) Levels(c *gin.Context) {
	ctx := c.Request.Context()

	levels, err := h.levels.Levels()
	if err != nil {
		h.error(ctx, c, "list levels", err)
		return
	}
	h.ok(c, dto.LevelsRsp{Levels: levels})
}

func (h *HttpHandler) StartMatch(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StartMatchReq
	// 空 body 按默认关卡开局
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.fail(c, transport.InvalidParam, "参数有误")
			return
		}
	}
	if req.Level == "" {
		req.Level = h.defaultLevel
	}

	res, err := h.matches.StartMatch(ctx, req.WorldID, req.Level)
	if err != nil {
		h.error(ctx, c, "start match", err)
		return
	}
	h.ok(c, dto.StartMatchRsp{WorldID: res.WorldId, Level: res.Level, PlayerTeam: res.PlayerTeam})
}

func (h *HttpHandler) ListMatches(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.matches.Matches(ctx)
	if err != nil {
		h.error(ctx, c, "list matches", err)
		return
	}
	out := make([]dto.MatchSummary, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewMatchSummary(r))
	}
	h.ok(c, out)
}

func (h *HttpHandler) Snapshot(c *gin.Context) {
	ctx := c.Request.Context()

	res, err := h.matches.Snapshot(ctx, c.Param("id"))
	if err != nil {
		h.error(ctx, c, "snapshot", err)
		return
	}
	h.ok(c, dto.SnapshotRsp{Status: res.Status, Over: res.Over, World: res.Snapshot})
}

func (h *HttpHandler) HitTest(c *gin.Context) {
	ctx := c.Request.Context()

	x, errX := strconv.ParseFloat(c.Query("x"), 64)
	y, errY := strconv.ParseFloat(c.Query("y"), 64)
	if errX != nil || errY != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	res, err := h.matches.HitTest(ctx, c.Param("id"), x, y)
	if err != nil {
		h.error(ctx, c, "hit test", err)
		return
	}
	out := dto.HitTestRsp{Found: res.Found}
	if res.Found {
		out.Building = &res.Building
	}
	h.ok(c, out)
}

func (h *HttpHandler) Order(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.OrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	res, err := h.matches.Order(ctx, &messages.HWOrder{
		WorldBaseMessage: messages.WorldBaseMessage{WorldId: c.Param("id")},
		Team:             req.Team,
		From:             req.From,
		To:               req.To,
		Enlist:           req.Enlist,
	})
	if err != nil {
		h.error(ctx, c, "order", err)
		return
	}
	h.ok(c, dto.OrderRsp{Armies: res.Armies})
}

func (h *HttpHandler) Step(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StepReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.fail(c, transport.InvalidParam, "参数有误")
			return
		}
	}

	res, err := h.matches.Step(ctx, c.Param("id"), req.Ticks)
	if err != nil {
		h.error(ctx, c, "step", err)
		return
	}
	h.ok(c, dto.StepRsp{Tick: res.Tick, Status: res.Status, Over: res.Over, Captures: res.Captures})
}

func (h *HttpHandler) StopMatch(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.matches.StopMatch(ctx, c.Param("id")); err != nil {
		h.error(ctx, c, "stop match", err)
		return
	}
	h.ok(c, nil)
}

func (h *HttpHandler) ok(c *gin.Context, data any) {
	c.JSON(nethttp.StatusOK, dto.Success(transport.OK, data))
}

func (h *HttpHandler) fail(c *gin.Context, code int, msg string) {
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}

func (h *HttpHandler) error(ctx context.Context, c *gin.Context, action string, err error) {
	logx.ReportError(ctx, h.log, action, err)
	code, msg := handler.HandleError(ctx, err)
	h.fail(c, code, msg)
}
