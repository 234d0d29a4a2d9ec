package service

import (
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
)

type Status int

const (
	StatusPlaying Status = iota
	StatusVictory
	StatusDefeat
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusVictory:
		return "victory"
	case StatusDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// FinalDelay 胜负已分后继续推进的 tick 数，让最后的军队走完。
const FinalDelay = 30

// Capture 一次建筑易主。
type Capture struct {
	Building entity.BuildingID
	From     entity.TeamID
	To       entity.TeamID
}

// Game 一局对战的回合驱动：阵营回合开始、AI 行动、世界推进、胜负判定。
// 只能在持有该局的单一线程里调用。
type Game struct {
	world  port.World
	player entity.TeamID
	ais    []*AIPlayer

	status     Status
	finalDelay int
	over       bool

	owners map[entity.BuildingID]entity.TeamID
}

func NewGame(w port.World, player entity.TeamID, aiTeams ...entity.TeamID) *Game {
	g := &Game{
		world:      w,
		player:     player,
		status:     StatusPlaying,
		finalDelay: FinalDelay,
		owners:     make(map[entity.BuildingID]entity.TeamID),
	}
	for _, t := range aiTeams {
		g.ais = append(g.ais, NewAIPlayer(w, t))
	}
	for _, b := range w.Buildings() {
		g.owners[b.ID] = b.Team
	}
	return g
}

func (g *Game) Status() Status { return g.status }

// Over 胜负已分且收尾 tick 已经走完，不再推进。
func (g *Game) Over() bool { return g.over }

func (g *Game) Player() entity.TeamID { return g.player }

// Step 推进一个 tick，返回本 tick 内发生的易主。
func (g *Game) Step() []Capture {
	if g.over {
		return nil
	}
	g.world.StartTurn()
	for _, ai := range g.ais {
		ai.Play()
	}
	g.world.Tick()
	g.checkGameOver()
	return g.captures()
}

func (g *Game) checkGameOver() {
	if g.status != StatusPlaying {
		g.finalDelay--
		if g.finalDelay <= 0 {
			g.over = true
		}
		return
	}
	if g.world.OwnedBuildingCount(g.player) == 0 {
		g.status = StatusDefeat
		return
	}
	// 中立阵营可以保留建筑，只看 AI 阵营
	for _, ai := range g.ais {
		if g.world.OwnedBuildingCount(ai.Team()) != 0 {
			return
		}
	}
	g.status = StatusVictory
}

func (g *Game) captures() []Capture {
	var out []Capture
	for _, b := range g.world.Buildings() {
		prev, ok := g.owners[b.ID]
		if ok && prev != b.Team {
			out = append(out, Capture{Building: b.ID, From: prev, To: b.Team})
		}
		g.owners[b.ID] = b.Team
	}
	return out
}
