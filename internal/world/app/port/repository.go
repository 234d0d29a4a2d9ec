package port

import (
	"context"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
)

//go:generate go tool mockgen -destination=./mocks/repository_mock.go -package=mocks . LevelRepository,MatchStore

// LevelRepository 按关卡名构建一张新地图。
type LevelRepository interface {
	LoadWorld(ctx context.Context, id entity.WorldID, level string) (*entity.World, error)
}

// MatchStore 保存每局对战的最新记录。
type MatchStore interface {
	Save(ctx context.Context, r *MatchRecord) error
	List(ctx context.Context) ([]MatchRecord, error)
}

// MatchRecord 一局对战在某个时刻的状态。Version 单调递增，旧版本不会覆盖新版本。
type MatchRecord struct {
	WorldID   entity.WorldID       `json:"world_id"`
	Level     string               `json:"level"`
	Version   uint64               `json:"version"`
	Status    string               `json:"status"`
	Over      bool                 `json:"over"`
	Snapshot  entity.WorldSnapshot `json:"snapshot"`
	UpdatedAt time.Time            `json:"updated_at"`
}
