package actor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport"
	"github.com/RafikBaaziz123/ConquEST/internal/world/actors"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
	"github.com/RafikBaaziz123/ConquEST/internal/world/infra/level"
	"github.com/RafikBaaziz123/ConquEST/internal/world/infra/persistence/memory"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/errx"
)

var testRoster = level.Roster{
	{Name: "Red", Stats: entity.TeamStats{Attack: 10, Defense: 4, Speed: 3, RegenerationRate: 40}},
	{Name: "Blue", Stats: entity.TeamStats{Attack: 10, Defense: 4, Speed: 3, RegenerationRate: 40}},
}

// newTestRuntime 关闭自动推进，对局只通过 Step 前进。
func newTestRuntime(t *testing.T) (*Runtime, *memory.MatchStore) {
	t.Helper()
	store := memory.NewMatchStore()
	rt := NewRuntime(memory.NewWorldRepository(testRoster), store, actors.MatchConfig{
		PlayerTeam: "Red",
		AITeams:    []string{"Blue"},
		FlushEvery: time.Hour,
	}, time.Second)
	return rt, store
}

func TestRuntime_开局与查询(t *testing.T) {
	rt, _ := newTestRuntime(t)
	defer rt.Shutdown()
	ctx := context.Background()

	started, err := rt.StartMatch(ctx, "m-1", memory.SkirmishLevel)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.WorldId != "m-1" || started.PlayerTeam != "Red" || started.Level != memory.SkirmishLevel {
		t.Fatalf("unexpected start reply: %+v", started)
	}

	snap, err := rt.Snapshot(ctx, "m-1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Status != "playing" || snap.Over || snap.Snapshot.Tick != 0 || len(snap.Snapshot.Buildings) != 4 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	// Red 城镇占地 (40,100) 50×50
	hit, err := rt.HitTest(ctx, "m-1", 45, 105)
	if err != nil || !hit.Found || hit.Building.ID != 1 || hit.Building.TeamName != "Red" {
		t.Fatalf("期望命中 Red 城镇, got=%+v err=%v", hit, err)
	}
	miss, err := rt.HitTest(ctx, "m-1", 0, 0)
	if err != nil || miss.Found {
		t.Fatalf("期望空地不命中, got=%+v err=%v", miss, err)
	}
}

func TestRuntime_自动分配对局ID(t *testing.T) {
	rt, _ := newTestRuntime(t)
	defer rt.Shutdown()

	started, err := rt.StartMatch(context.Background(), "", memory.SkirmishLevel)
	if err != nil || started.WorldId == "" {
		t.Fatalf("期望分配对局 ID, got=%+v err=%v", started, err)
	}
	if _, err := rt.Snapshot(context.Background(), started.WorldId); err != nil {
		t.Fatalf("期望可以按分配的 ID 查询, err=%v", err)
	}
}

func TestRuntime_下令与推进(t *testing.T) {
	rt, _ := newTestRuntime(t)
	defer rt.Shutdown()
	ctx := context.Background()
	if _, err := rt.StartMatch(ctx, "m-1", memory.SkirmishLevel); err != nil {
		t.Fatalf("start: %v", err)
	}

	res, err := rt.Order(ctx, &messages.HWOrder{
		WorldBaseMessage: messages.WorldBaseMessage{WorldId: "m-1"},
		From:             []int{1, 1},
		To:               3,
	})
	if err != nil || len(res.Armies) != 1 {
		t.Fatalf("期望派出一支军队, got=%+v err=%v", res, err)
	}

	_, err = rt.Order(ctx, &messages.HWOrder{
		WorldBaseMessage: messages.WorldBaseMessage{WorldId: "m-1"},
		From:             []int{3},
		To:               1,
	})
	if !errors.Is(err, app.ErrNotOwner) {
		t.Fatalf("期望不能调动对方建筑, got=%v", err)
	}

	// 显式指定阵营时按该阵营下令
	res, err = rt.Order(ctx, &messages.HWOrder{
		WorldBaseMessage: messages.WorldBaseMessage{WorldId: "m-1"},
		Team:             "Blue",
		From:             []int{3},
		To:               1,
		Enlist:           true,
	})
	if err != nil || len(res.Armies) != 1 {
		t.Fatalf("期望 Blue 派出一支军队, got=%+v err=%v", res, err)
	}
	_, err = rt.Order(ctx, &messages.HWOrder{
		WorldBaseMessage: messages.WorldBaseMessage{WorldId: "m-1"},
		Team:             "Green",
		From:             []int{1},
		To:               3,
	})
	if !errors.Is(err, app.ErrUnknownTeam) {
		t.Fatalf("期望未知阵营被拒绝, got=%v", err)
	}

	step, err := rt.Step(ctx, "m-1", 5)
	if err != nil || step.Tick != 5 || step.Status != "playing" {
		t.Fatalf("期望推进 5 tick, got=%+v err=%v", step, err)
	}
	step, err = rt.Step(ctx, "m-1", 0)
	if err != nil || step.Tick != 6 {
		t.Fatalf("期望 ticks<1 时按 1 处理, got=%+v err=%v", step, err)
	}
	if _, err := rt.Step(ctx, "m-1", 1<<20); !errors.Is(err, errx.ErrReqParam) {
		t.Fatalf("期望超过上限被拒绝, got=%v", err)
	}
}

func TestRuntime_错误路径(t *testing.T) {
	rt, _ := newTestRuntime(t)
	defer rt.Shutdown()
	ctx := context.Background()

	if _, err := rt.Snapshot(ctx, "nope"); !errors.Is(err, app.ErrUnknownWorld) {
		t.Fatalf("期望对局不存在, got=%v", err)
	}
	if _, err := rt.StartMatch(ctx, "m-2", "missing"); !errors.Is(err, app.ErrInvalidLevel) {
		t.Fatalf("期望关卡无效, got=%v", err)
	}
	// 创建失败的对局随后被清理
	if _, err := rt.Snapshot(ctx, "m-2"); !errors.Is(err, app.ErrUnknownWorld) {
		t.Fatalf("期望失败的对局不可查询, got=%v", err)
	}
	if _, err := rt.StopMatch(ctx, "nope"); !errors.Is(err, app.ErrUnknownWorld) {
		t.Fatalf("期望停止不存在的对局失败, got=%v", err)
	}
}

func TestRuntime_停止后记录落库(t *testing.T) {
	rt, store := newTestRuntime(t)
	ctx := context.Background()
	if _, err := rt.StartMatch(ctx, "m-1", memory.SkirmishLevel); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := rt.Step(ctx, "m-1", 3); err != nil {
		t.Fatalf("step: %v", err)
	}
	stopped, err := rt.StopMatch(ctx, "m-1")
	if err != nil || stopped.WorldId != "m-1" {
		t.Fatalf("stop: %+v err=%v", stopped, err)
	}
	if _, err := rt.Snapshot(ctx, "m-1"); !errors.Is(err, app.ErrUnknownWorld) {
		t.Fatalf("期望停止后不可查询, got=%v", err)
	}

	rt.Shutdown()

	records, err := rt.Matches(ctx)
	if err != nil || len(records) != 1 {
		t.Fatalf("期望一条对局记录, got=%+v err=%v", records, err)
	}
	r, _ := store.Get("m-1")
	if r.Snapshot.Tick != 3 || r.Status != "playing" || r.Level != memory.SkirmishLevel {
		t.Fatalf("期望停止时写入最终状态, got=%+v", r)
	}
}

func TestRuntime_超时(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	time.Sleep(2 * time.Millisecond)

	rt := &Runtime{timeout: time.Second}
	if got := rt.timeoutFromContext(ctx); got != time.Millisecond {
		t.Fatalf("期望已过期的 ctx 给出最小超时, got=%v", got)
	}
	if got := rt.timeoutFromContext(context.Background()); got != time.Second {
		t.Fatalf("期望没有 deadline 时用默认超时, got=%v", got)
	}
	if CodeFromError(&RuntimeError{Code: transport.Timeout}) != transport.Timeout || CodeFromError(nil) != transport.OK {
		t.Fatalf("CodeFromError 映射不对")
	}
}
