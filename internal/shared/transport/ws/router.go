package ws

import (
	"context"
	"sort"
	"strings"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/logs"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"
)

// WorldIDField 对局请求消息体里标识对局的字段。
const WorldIDField = "world_id"

type HandlerFunc func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp)

// RouteMeta 路由元信息。
type RouteMeta struct {
	// Name 完整路由名，例如 match.snapshot
	Name string
	// WorldScoped 请求必须带 world_id，路由在进入 handler 前校验并写入访问日志。
	WorldScoped bool
	// Streaming 应答之后还会在同一连接上持续推送，例如 match.watch。
	Streaming bool
}

type RouteOption func(*RouteMeta)

func WorldScoped() RouteOption {
	return func(m *RouteMeta) { m.WorldScoped = true }
}

func Streaming() RouteOption {
	return func(m *RouteMeta) { m.Streaming = true }
}

type route struct {
	meta    RouteMeta
	handler HandlerFunc
}

type Group struct {
	prefix string
	routes map[string]*route
}

func (g *Group) Handle(name string, h HandlerFunc, opts ...RouteOption) {
	meta := RouteMeta{Name: g.prefix + "." + name}
	for _, opt := range opts {
		opt(&meta)
	}
	g.routes[name] = &route{meta: meta, handler: h}
}

// Registrar 模块向 ws 路由注册自己的处理器。
type Registrar interface {
	WsRegister(r *Router)
}

type Router struct {
	groups map[string]*Group
	log    logx.Logger
}

func NewRouter(l logx.Logger) *Router {
	if l == nil {
		l = logx.NewZapLogger(logs.Logger())
	}
	return &Router{
		groups: make(map[string]*Group),
		log:    l,
	}
}

func (r *Router) Group(prefix string) *Group {
	group := r.groups[prefix]
	if group == nil {
		group = &Group{
			prefix: prefix,
			routes: make(map[string]*route),
		}
	}
	r.groups[prefix] = group
	return group
}

// Register 依次挂载各模块的路由。
func (r *Router) Register(rs ...Registrar) {
	for _, m := range rs {
		m.WsRegister(r)
	}
}

// Routes 按名字排序返回全部已注册路由。
func (r *Router) Routes() []RouteMeta {
	var out []RouteMeta
	for _, g := range r.groups {
		for _, rt := range g.routes {
			out = append(out, rt.meta)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// req.Body.Name(路径)：例如，查询快照 match(组标识).snapshot(路由标识)
func (r *Router) Dispatch(req *WsMsgReq, resp *WsMsgResp) {
	ctx := r.prepareDispatchContext(req, resp)
	defer r.writeAccessLog(ctx, resp)

	if !r.validateDispatchInput(req, resp) {
		return
	}

	rt := r.findRoute(req.Body.Name, resp)
	if rt == nil {
		return
	}
	if rt.meta.WorldScoped {
		worldID := worldIDOf(req.Body.Msg)
		if worldID == "" {
			r.setErrorResponse(resp, transport.InvalidParam, "缺少对局 id")
			return
		}
		transport.SetWorldID(ctx, worldID)
	}

	rt.handler(ctx, req, resp)
}

// worldIDOf 消息体按 JSON 解出后是 map；其它形状视为没有对局 id。
func worldIDOf(msg any) string {
	m, ok := msg.(map[string]any)
	if !ok {
		return ""
	}
	id, _ := m[WorldIDField].(string)
	return id
}

func (r *Router) prepareDispatchContext(req *WsMsgReq, resp *WsMsgResp) context.Context {
	action := "WS unknown"
	if req != nil && req.Body != nil {
		action = "WS " + req.Body.Name
	}
	ctx := transport.NewContext(action)

	if resp != nil && resp.Body != nil {
		// 先置系统错误，避免 handler 漏设时出现“成功假象”。
		resp.Body.Code = transport.SystemError
		resp.Body.Msg = nil
	}
	return ctx
}

func (r *Router) validateDispatchInput(req *WsMsgReq, resp *WsMsgResp) bool {
	if req != nil && req.Body != nil && resp != nil && resp.Body != nil {
		return true
	}
	r.setErrorResponse(resp, transport.InvalidParam, "参数有误")
	return false
}

func (r *Router) findRoute(name string, resp *WsMsgResp) *route {
	prefix, handler, ok := parseRouteName(name)
	if !ok {
		r.setErrorResponse(resp, transport.InvalidParam, "路由参数有误")
		return nil
	}

	group := r.groups[prefix]
	if group == nil {
		r.setErrorResponse(resp, transport.InvalidParam, "路由组不存在")
		return nil
	}

	rt := group.routes[handler]
	if rt == nil {
		r.setErrorResponse(resp, transport.InvalidParam, "路由处理器不存在")
		return nil
	}
	return rt
}

func parseRouteName(name string) (string, string, bool) {
	split := strings.Split(name, ".")
	if len(split) != 2 {
		return "", "", false
	}
	prefix := split[0]
	handler := split[1]
	if prefix == "" || handler == "" {
		return "", "", false
	}
	return prefix, handler, true
}

func (r *Router) setErrorResponse(resp *WsMsgResp, code int, msg string) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = code
	resp.Body.Msg = msg
}

func (r *Router) writeAccessLog(ctx context.Context, resp *WsMsgResp) {
	bizCode := transport.SystemError
	if resp != nil && resp.Body != nil {
		bizCode = resp.Body.Code
	}
	transport.SetBizCode(ctx, transport.BizCode(bizCode))
	transport.WriteAccessLog(ctx, r.log)
}
