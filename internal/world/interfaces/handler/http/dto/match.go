package dto

import (
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
)

type StartMatchReq struct {
	WorldID string `json:"world_id"`
	Level   string `json:"level"`
}

type StartMatchRsp struct {
	WorldID    string `json:"world_id"`
	Level      string `json:"level"`
	PlayerTeam string `json:"player_team"`
}

type OrderReq struct {
	Team   string `json:"team"`
	From   []int  `json:"from" binding:"required"`
	To     int    `json:"to" binding:"required"`
	Enlist bool   `json:"enlist"`
}

type OrderRsp struct {
	Armies []int `json:"armies"`
}

type StepReq struct {
	Ticks int `json:"ticks"`
}

type StepRsp struct {
	Tick     uint64                 `json:"tick"`
	Status   string                 `json:"status"`
	Over     bool                   `json:"over"`
	Captures []messages.CaptureView `json:"captures"`
}

type SnapshotRsp struct {
	Status string               `json:"status"`
	Over   bool                 `json:"over"`
	World  entity.WorldSnapshot `json:"world"`
}

type HitTestRsp struct {
	Found    bool                     `json:"found"`
	Building *entity.BuildingSnapshot `json:"building,omitempty"`
}

// MatchSummary 对局列表里的一行，不带完整快照。
type MatchSummary struct {
	WorldID   string    `json:"world_id"`
	Level     string    `json:"level"`
	Version   uint64    `json:"version"`
	Status    string    `json:"status"`
	Over      bool      `json:"over"`
	Tick      uint64    `json:"tick"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMatchSummary(r port.MatchRecord) MatchSummary {
	return MatchSummary{
		WorldID:   string(r.WorldID),
		Level:     r.Level,
		Version:   r.Version,
		Status:    r.Status,
		Over:      r.Over,
		Tick:      r.Snapshot.Tick,
		UpdatedAt: r.UpdatedAt,
	}
}

type LevelsRsp struct {
	Levels []string `json:"levels"`
}
