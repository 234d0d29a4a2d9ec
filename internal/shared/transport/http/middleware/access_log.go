package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

// WorldIDParam 对局路由上标识对局的路径参数，例如 /v1/matches/:id/snapshot。
const WorldIDParam = "id"

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(data []byte) (int, error) {
	_, _ = w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	_, _ = w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// AccessLog 每个请求一条访问日志。
// 业务码取响应体的 code 字段；对局 id 依次取 handler 设置的值、路径参数、
// 响应体 data.world_id（开局请求在响应之前并不知道 id）。
func AccessLog(log logx.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		action := c.Request.Method + " " + route

		ctx := transport.NewContextWithParent(c.Request.Context(), action)
		c.Request = c.Request.WithContext(ctx)

		bw := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		if al := transport.FromContext(ctx); al != nil && al.ErrorReason == "" && len(c.Errors) > 0 {
			transport.SetErrorReason(ctx, c.Errors.Last().Error())
		}
		transport.SetWorldID(ctx, c.Param(WorldIDParam))

		rsp, ok := parseMatchResponse(bw.body.Bytes())
		switch {
		case ok && rsp.Code != nil:
			transport.SetBizCode(ctx, transport.BizCode(*rsp.Code))
		case c.Writer.Status() >= http.StatusBadRequest:
			transport.SetBizCode(ctx, transport.BizCode(transport.SystemError))
		default:
			transport.SetBizCode(ctx, transport.BizCode(transport.OK))
		}
		if ok && rsp.Data != nil {
			transport.SetWorldID(ctx, rsp.Data.WorldID)
			transport.SetTick(ctx, rsp.Data.Tick)
		}

		transport.WriteAccessLog(ctx, log)
	}
}

// matchResponse 只取访问日志关心的字段，其余忽略。
type matchResponse struct {
	Code *int `json:"code"`
	Data *struct {
		WorldID string `json:"world_id"`
		Tick    uint64 `json:"tick"`
	} `json:"data"`
}

// parseMatchResponse 响应体不是 JSON 对象（例如列表或空体）时返回 false。
func parseMatchResponse(body []byte) (matchResponse, bool) {
	var rsp matchResponse
	if len(body) == 0 {
		return rsp, false
	}
	if err := json.Unmarshal(body, &rsp); err != nil {
		// data 是数组时整体解析失败，退回只取 code
		var codeOnly struct {
			Code *int `json:"code"`
		}
		if json.Unmarshal(body, &codeOnly) != nil {
			return rsp, false
		}
		return matchResponse{Code: codeOnly.Code}, true
	}
	return rsp, true
}
