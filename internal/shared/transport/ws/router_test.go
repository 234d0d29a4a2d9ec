package ws

import (
	"context"
	"sync"
	"testing"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// propConn 只实现连接属性，够路由和订阅登记使用。
type propConn struct {
	mu    sync.Mutex
	props map[string]any
	done  chan struct{}
}

func newPropConn() *propConn {
	return &propConn{props: make(map[string]any), done: make(chan struct{})}
}

func (c *propConn) SetProperty(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.props[key] = value
}

func (c *propConn) SetPropertyIfAbsent(key string, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.props[key]; ok {
		return false
	}
	c.props[key] = value
	return true
}

func (c *propConn) GetProperty(key string) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props[key]
}

func (c *propConn) RemoveProperty(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.props, key)
}

func (c *propConn) Addr() string                    { return "test" }
func (c *propConn) Push(name string, data any) bool { return true }
func (c *propConn) Close()                          {}
func (c *propConn) Done() <-chan struct{}           { return c.done }

func newReq(name string, msg any) (*WsMsgReq, *WsMsgResp) {
	return &WsMsgReq{Body: &ReqBody{Seq: 1, Name: name, Msg: msg}, Conn: newPropConn()},
		&WsMsgResp{Body: &RespBody{Seq: 1, Name: name}}
}

func TestRouter_路由元信息(t *testing.T) {
	r := NewRouter(logx.Nop())
	noop := func(context.Context, *WsMsgReq, *WsMsgResp) {}
	g := r.Group("match")
	g.Handle("watch", noop, WorldScoped(), Streaming())
	g.Handle("snapshot", noop, WorldScoped())
	r.Group("level").Handle("list", noop)

	got := r.Routes()
	want := []RouteMeta{
		{Name: "level.list"},
		{Name: "match.snapshot", WorldScoped: true},
		{Name: "match.watch", WorldScoped: true, Streaming: true},
	}
	if len(got) != len(want) {
		t.Fatalf("期望 %d 条路由, got=%+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("第 %d 条期望 %+v, got=%+v", i, want[i], got[i])
		}
	}
}

func TestRouter_对局路由缺少id不进handler(t *testing.T) {
	r := NewRouter(logx.Nop())
	called := false
	r.Group("match").Handle("snapshot", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {
		called = true
		resp.Body.Code = transport.OK
	}, WorldScoped())

	for _, msg := range []any{nil, map[string]any{}, map[string]any{"world_id": 3}} {
		req, resp := newReq("match.snapshot", msg)
		r.Dispatch(req, resp)
		if called || resp.Body.Code != transport.InvalidParam {
			t.Fatalf("msg=%v 期望参数错误且不进 handler, called=%v code=%d", msg, called, resp.Body.Code)
		}
	}
}

func TestRouter_访问日志带对局id(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRouter(logx.NewZapLogger(zap.New(core)))
	var seen string
	r.Group("match").Handle("step", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {
		seen = transport.WorldIDFromContext(ctx)
		transport.SetTick(ctx, 12)
		resp.Body.Code = transport.OK
	}, WorldScoped())

	req, resp := newReq("match.step", map[string]any{"world_id": "m-1", "ticks": 2})
	r.Dispatch(req, resp)

	if seen != "m-1" {
		t.Fatalf("期望 handler 从 context 拿到对局 id, got=%q", seen)
	}
	entries := logs.FilterMessage("access").All()
	if len(entries) != 1 {
		t.Fatalf("期望一条访问日志, got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["world_id"] != "m-1" || fields["tick"] != uint64(12) || fields["biz_code"] != int64(transport.OK) {
		t.Fatalf("访问日志字段不符: %v", fields)
	}
}

func TestStartWatch_同一对局只登记一次(t *testing.T) {
	conn := newPropConn()

	if !StartWatch(conn, "m-1") {
		t.Fatalf("期望首次订阅成功")
	}
	if StartWatch(conn, "m-1") {
		t.Fatalf("期望重复订阅被拒绝")
	}
	if !StartWatch(conn, "m-2") || !Watching(conn, "m-2") {
		t.Fatalf("期望不同对局互不影响")
	}

	StopWatch(conn, "m-1")
	if Watching(conn, "m-1") || !StartWatch(conn, "m-1") {
		t.Fatalf("期望退出推送后可以重新订阅")
	}
}
