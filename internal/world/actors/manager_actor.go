package actors

import (
	"github.com/RafikBaaziz123/ConquEST/internal/shared/actor/messages"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/google/uuid"
)

type WorldID = entity.WorldID

// ManagerActor 按 WorldID 把请求转发给对应的 WorldActor。
type ManagerActor struct {
	levels      port.LevelRepository
	store       port.MatchStore
	cfg         MatchConfig
	worldActors map[WorldID]*actor.PID
	byPID       map[string]WorldID
}

func NewManagerActor(levels port.LevelRepository, store port.MatchStore, cfg MatchConfig) *ManagerActor {
	return &ManagerActor{
		levels:      levels,
		store:       store,
		cfg:         cfg,
		worldActors: make(map[WorldID]*actor.PID),
		byPID:       make(map[string]WorldID),
	}
}

func (m *ManagerActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Terminated:
		// 子 actor 停止（主动结束或创建失败）后移除
		if id, ok := m.byPID[msg.Who.GetId()]; ok {
			delete(m.byPID, msg.Who.GetId())
			delete(m.worldActors, id)
		}
		return
	case *messages.HWStartMatch:
		id := WorldID(msg.WorldId)
		if id == "" {
			id = WorldID(uuid.NewString())
		}
		ctx.Forward(m.getOrSpawn(ctx, id, msg.Level))
		return
	case *messages.HWStopMatch:
		// 先摘掉映射，停止过程中的请求直接按对局不存在处理
		id := WorldID(msg.WorldID())
		pid, ok := m.worldActors[id]
		if !ok {
			ctx.Respond(fail(app.ErrUnknownWorld.WithData("world_id", msg.WorldID())))
			return
		}
		delete(m.worldActors, id)
		delete(m.byPID, pid.GetId())
		ctx.Forward(pid)
		return
	case messages.WorldMessage:
		pid, ok := m.worldActors[WorldID(msg.WorldID())]
		if !ok {
			ctx.Respond(fail(app.ErrUnknownWorld.WithData("world_id", msg.WorldID())))
			return
		}
		ctx.Forward(pid)
	default:
		return
	}
}

// getOrSpawn 对局已存在时直接复用，level 被忽略。
func (m *ManagerActor) getOrSpawn(ctx actor.Context, worldID WorldID, level string) *actor.PID {
	if pid, ok := m.worldActors[worldID]; ok && pid != nil {
		return pid
	}

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewWorldActor(worldID, level, m.levels, m.store, m.cfg)
	})
	pid := ctx.Spawn(props)
	m.worldActors[worldID] = pid
	m.byPID[pid.GetId()] = worldID
	return pid
}
