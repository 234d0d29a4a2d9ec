package interfaces

import (
	transporthttp "github.com/RafikBaaziz123/ConquEST/internal/shared/transport/http"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport/ws"
	"github.com/RafikBaaziz123/ConquEST/internal/world/interfaces/handler"
	"github.com/RafikBaaziz123/ConquEST/internal/world/interfaces/handler/http"
	wshandler "github.com/RafikBaaziz123/ConquEST/internal/world/interfaces/handler/ws"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

// Module 对局观察端接口：HTTP 做一问一答，websocket 额外支持快照推送。
type Module struct {
	httpHandler *http.HttpHandler
	wsHandler   *wshandler.WsHandler
}

func New(matches handler.MatchService, levels handler.LevelLister, defaultLevel string, log logx.Logger) *Module {
	return &Module{
		httpHandler: http.NewHttpHandler(matches, levels, defaultLevel, log),
		wsHandler:   wshandler.NewWsHandler(matches, log),
	}
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.httpHandler.RegisterRoutes(g)
}

func (m *Module) WsRegister(r *ws.Router) {
	m.wsHandler.RegisterRoutes(r)
}

var (
	_ transporthttp.Registrar = (*Module)(nil)
	_ ws.Registrar            = (*Module)(nil)
)
