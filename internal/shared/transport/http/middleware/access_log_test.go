package middleware

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newAccessLogEngine(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	e := gin.New()
	e.Use(AccessLog(logx.NewZapLogger(zap.New(core))))
	e.GET("/v1/matches/:id/snapshot", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"code": 0, "data": gin.H{"status": "playing"}})
	})
	e.POST("/v1/matches/:id/step", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"code": 0, "data": gin.H{"tick": 7}})
	})
	e.POST("/v1/matches", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"code": 0, "data": gin.H{"world_id": "m-new"}})
	})
	e.GET("/v1/matches", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"code": 0, "data": []gin.H{{"world_id": "m-1"}}})
	})
	e.DELETE("/v1/matches/:id", func(c *gin.Context) {
		transport.SetWorldID(c.Request.Context(), "m-handler")
		c.JSON(nethttp.StatusOK, gin.H{"code": 101, "msg": "对局不存在"})
	})
	return e, logs
}

func TestAccessLog_记录对局id(t *testing.T) {
	e, logs := newAccessLogEngine(t)

	cases := []struct {
		method, path string
		worldID      string
		code         int64
	}{
		{nethttp.MethodGet, "/v1/matches/m-1/snapshot", "m-1", 0},
		{nethttp.MethodPost, "/v1/matches", "m-new", 0},
		{nethttp.MethodGet, "/v1/matches", "", 0},
		{nethttp.MethodDelete, "/v1/matches/m-path", "m-handler", 101},
	}
	for _, tc := range cases {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.path, nil))
	}

	entries := logs.FilterMessage("access").All()
	if len(entries) != len(cases) {
		t.Fatalf("期望 %d 条访问日志, got=%d", len(cases), len(entries))
	}
	for i, tc := range cases {
		fields := entries[i].ContextMap()
		got, ok := fields["world_id"]
		if tc.worldID == "" {
			if ok {
				t.Fatalf("%s %s 期望不带 world_id, got=%v", tc.method, tc.path, got)
			}
		} else if got != tc.worldID {
			t.Fatalf("%s %s 期望 world_id=%s, got=%v", tc.method, tc.path, tc.worldID, got)
		}
		if fields["biz_code"] != tc.code {
			t.Fatalf("%s %s 期望 biz_code=%d, got=%v", tc.method, tc.path, tc.code, fields["biz_code"])
		}
	}
}

func TestAccessLog_记录推进后的tick(t *testing.T) {
	e, logs := newAccessLogEngine(t)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(nethttp.MethodPost, "/v1/matches/m-1/step", nil))

	entries := logs.FilterMessage("access").All()
	if len(entries) != 1 {
		t.Fatalf("期望一条访问日志, got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["tick"] != uint64(7) || fields["world_id"] != "m-1" {
		t.Fatalf("期望 world_id=m-1 tick=7, got=%v", fields)
	}
}

func TestParseMatchResponse(t *testing.T) {
	if _, ok := parseMatchResponse([]byte("404 page not found")); ok {
		t.Fatalf("期望非 JSON 响应体解析失败")
	}
	rsp, ok := parseMatchResponse([]byte(`{"code":3,"data":[1,2]}`))
	if !ok || rsp.Code == nil || *rsp.Code != 3 || rsp.Data != nil {
		t.Fatalf("期望 data 为数组时仍取到 code, got=%+v ok=%v", rsp, ok)
	}
	rsp, ok = parseMatchResponse([]byte(`{"status":"ok"}`))
	if !ok || rsp.Code != nil {
		t.Fatalf("期望没有 code 字段时 Code 为空, got=%+v", rsp)
	}
}
