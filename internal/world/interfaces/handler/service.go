package handler

import (
	"context"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
)

// MatchService 对局入口，由 actor.Runtime 实现。
type MatchService interface {
	StartMatch(ctx context.Context, worldID, level string) (*messages.WHStartMatch, error)
	Snapshot(ctx context.Context, worldID string) (*messages.WHSnapshot, error)
	Order(ctx context.Context, req *messages.HWOrder) (*messages.WHOrder, error)
	HitTest(ctx context.Context, worldID string, x, y float64) (*messages.WHHitTest, error)
	Step(ctx context.Context, worldID string, ticks int) (*messages.WHStep, error)
	StopMatch(ctx context.Context, worldID string) (*messages.WHStopMatch, error)
	Matches(ctx context.Context) ([]port.MatchRecord, error)
}

// LevelLister 列出可用关卡。
type LevelLister interface {
	Levels() ([]string, error)
}
