package messages

import "github.com/RafikBaaziz123/ConquEST/internal/world/entity"

// HW* 为发往对局的请求，WH* 为对局的回复。

type WorldMessage interface {
	WorldID() string
}

type WorldBaseMessage struct {
	WorldId string
}

func (w WorldBaseMessage) WorldID() string {
	return w.WorldId
}

// HWStartMatch WorldId 为空时由管理者分配。
type HWStartMatch struct {
	WorldBaseMessage
	Level string
}

type WHStartMatch struct {
	WorldId    string
	Level      string
	PlayerTeam string
}

type HWSnapshot struct {
	WorldBaseMessage
}

type WHSnapshot struct {
	Snapshot entity.WorldSnapshot
	Status   string
	Over     bool
}

// HWOrder Team 为空时按玩家阵营下令。
type HWOrder struct {
	WorldBaseMessage
	Team   string
	From   []int
	To     int
	Enlist bool
}

type WHOrder struct {
	Armies []int
}

type HWHitTest struct {
	WorldBaseMessage
	X, Y float64
}

type WHHitTest struct {
	Found    bool
	Building entity.BuildingSnapshot
}

// HWStep 手动推进若干 tick，Ticks < 1 按 1 处理。
type HWStep struct {
	WorldBaseMessage
	Ticks int
}

type WHStep struct {
	Tick     uint64
	Status   string
	Over     bool
	Captures []CaptureView
}

type HWStopMatch struct {
	WorldBaseMessage
}

type WHStopMatch struct {
	WorldId string
}
