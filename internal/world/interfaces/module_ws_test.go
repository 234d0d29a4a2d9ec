package interfaces

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	transporthttp "github.com/RafikBaaziz123/ConquEST/internal/shared/transport/http"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport/ws"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
	wshandler "github.com/RafikBaaziz123/ConquEST/internal/world/interfaces/handler/ws"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type wsFrame struct {
	Seq  int64           `json:"seq"`
	Name string          `json:"name"`
	Code int             `json:"code"`
	Msg  json.RawMessage `json:"msg"`
}

func newWsTestServer(t *testing.T) (*transporthttp.Server, *websocket.Conn) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := newTestModule(t)
	s := transporthttp.NewHttpServer(":0", gin.New(), logx.Nop())
	s.Register(m)
	router := ws.NewRouter(logx.Nop())
	router.Register(m)
	s.Engine().GET("/ws", gin.WrapH(ws.NewServer(router, logx.Nop())))

	srv := httptest.NewServer(s.Engine())
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return s, conn
}

func send(t *testing.T, conn *websocket.Conn, seq int64, name string, msg any) {
	t.Helper()
	if err := conn.WriteJSON(ws.ReqBody{Seq: seq, Name: name, Msg: msg}); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// next 读到满足条件的帧为止，中间的推送帧会被跳过。
func next(t *testing.T, conn *websocket.Conn, match func(wsFrame) bool) wsFrame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		var f wsFrame
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("read: %v", err)
		}
		if match(f) {
			return f
		}
	}
}

func bySeq(seq int64) func(wsFrame) bool {
	return func(f wsFrame) bool { return f.Seq == seq && f.Name != wshandler.PushSnapshot }
}

func TestModuleWs_请求应答(t *testing.T) {
	s, conn := newWsTestServer(t)
	if env := call(t, s, nethttp.MethodPost, "/v1/matches", `{"world_id":"m-1"}`, nil); env.Code != transport.OK {
		t.Fatalf("start: %+v", env)
	}

	send(t, conn, 1, "match.snapshot", map[string]any{"world_id": "m-1"})
	f := next(t, conn, bySeq(1))
	var snap struct {
		Status string               `json:"status"`
		World  entity.WorldSnapshot `json:"world"`
	}
	if f.Code != transport.OK || json.Unmarshal(f.Msg, &snap) != nil || snap.Status != "playing" || len(snap.World.Buildings) != 4 {
		t.Fatalf("snapshot: %+v", f)
	}

	send(t, conn, 2, "match.order", map[string]any{"world_id": "m-1", "from": []int{1}, "to": 3})
	f = next(t, conn, bySeq(2))
	var order struct {
		Armies []int `json:"armies"`
	}
	if f.Code != transport.OK || json.Unmarshal(f.Msg, &order) != nil || len(order.Armies) != 1 {
		t.Fatalf("order: %+v", f)
	}

	send(t, conn, 3, "match.hit", map[string]any{"world_id": "m-1", "x": 45, "y": 105})
	f = next(t, conn, bySeq(3))
	var hit struct {
		Found    bool                     `json:"found"`
		Building *entity.BuildingSnapshot `json:"building"`
	}
	if f.Code != transport.OK || json.Unmarshal(f.Msg, &hit) != nil || !hit.Found || hit.Building.ID != 1 {
		t.Fatalf("hit: %+v", f)
	}

	send(t, conn, 4, "match.step", map[string]any{"world_id": "m-1", "ticks": 2})
	f = next(t, conn, bySeq(4))
	var step struct {
		Tick uint64 `json:"tick"`
	}
	if f.Code != transport.OK || json.Unmarshal(f.Msg, &step) != nil || step.Tick != 2 {
		t.Fatalf("step: %+v", f)
	}
}

func TestModuleWs_错误与心跳(t *testing.T) {
	_, conn := newWsTestServer(t)

	send(t, conn, 1, "match.snapshot", map[string]any{"world_id": "zzz"})
	if f := next(t, conn, bySeq(1)); f.Code != transport.UnknownWorld {
		t.Fatalf("期望未知对局, got=%+v", f)
	}

	send(t, conn, 2, "match.nope", nil)
	if f := next(t, conn, bySeq(2)); f.Code != transport.InvalidParam {
		t.Fatalf("期望未知路由为参数错误, got=%+v", f)
	}

	send(t, conn, 3, "match.order", map[string]any{"world_id": "zzz", "to": 1})
	if f := next(t, conn, bySeq(3)); f.Code != transport.InvalidParam {
		t.Fatalf("期望缺少出发建筑为参数错误, got=%+v", f)
	}

	send(t, conn, 4, ws.HeartbeatMsg, map[string]any{"ctime": 1})
	f := next(t, conn, bySeq(4))
	var hb ws.Heartbeat
	if json.Unmarshal(f.Msg, &hb) != nil || hb.CTime != 1 || hb.STime == 0 {
		t.Fatalf("heartbeat: %+v", f)
	}
}

func TestModuleWs_订阅推送快照(t *testing.T) {
	s, conn := newWsTestServer(t)
	if env := call(t, s, nethttp.MethodPost, "/v1/matches", `{"world_id":"m-1"}`, nil); env.Code != transport.OK {
		t.Fatalf("start: %+v", env)
	}

	send(t, conn, 1, "match.watch", map[string]any{"world_id": "m-1", "interval_ms": 20})
	if f := next(t, conn, bySeq(1)); f.Code != transport.OK {
		t.Fatalf("watch: %+v", f)
	}

	f := next(t, conn, func(f wsFrame) bool { return f.Name == wshandler.PushSnapshot })
	var snap struct {
		World entity.WorldSnapshot `json:"world"`
	}
	if json.Unmarshal(f.Msg, &snap) != nil || snap.World.ID != "m-1" {
		t.Fatalf("push: %+v", f)
	}

	// 推进后推送的快照跟着变化
	call(t, s, nethttp.MethodPost, "/v1/matches/m-1/step", `{"ticks":3}`, nil)
	next(t, conn, func(f wsFrame) bool {
		if f.Name != wshandler.PushSnapshot {
			return false
		}
		var s struct {
			World entity.WorldSnapshot `json:"world"`
		}
		return json.Unmarshal(f.Msg, &s) == nil && s.World.Tick == 3
	})
}
