package ws

type ReqBody struct {
	Seq  int64  `json:"seq"`
	Name string `json:"name"`
	Msg  any    `json:"msg"`
}

type RespBody struct {
	Seq  int64  `json:"seq"`
	Name string `json:"name"`
	Code int    `json:"code"`
	Msg  any    `json:"msg"`
}

type WsMsgReq struct {
	Body *ReqBody
	Conn WSConn
}

type WsMsgResp struct {
	Body *RespBody
}

// WSConn handler 持有的连接视图。
type WSConn interface {
	SetProperty(key string, value any)
	// SetPropertyIfAbsent key 已存在时不覆盖并返回 false。
	SetPropertyIfAbsent(key string, value any) bool
	GetProperty(key string) any
	RemoveProperty(key string)
	Addr() string
	Push(name string, data any) bool
	Close()
	// Done 连接关闭时该 channel 会被关闭
	Done() <-chan struct{}
}

type Heartbeat struct {
	CTime int64 `json:"ctime"`
	STime int64 `json:"stime"`
}

const (
	HeartbeatMsg = "heartbeat"
)

// 连接属性里记录该连接正在推送的对局，避免同一对局重复订阅起多个推送循环。
const connKeyWatchPrefix = "watch:"

func watchKey(worldID string) string {
	return connKeyWatchPrefix + worldID
}

// StartWatch 登记对局推送；同一连接已在推送该对局时返回 false。
func StartWatch(conn WSConn, worldID string) bool {
	return conn.SetPropertyIfAbsent(watchKey(worldID), true)
}

// StopWatch 推送循环退出时调用，之后可以重新订阅。
func StopWatch(conn WSConn, worldID string) {
	conn.RemoveProperty(watchKey(worldID))
}

// Watching 返回该连接是否正在推送指定对局。
func Watching(conn WSConn, worldID string) bool {
	return conn.GetProperty(watchKey(worldID)) != nil
}
