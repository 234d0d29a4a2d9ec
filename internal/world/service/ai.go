package service

import (
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
)

// AIPlayer 电脑控制的阵营。
// 每回合检查己方每个建筑：人口超过上限一半时，向门口距离最近的非己方建筑征兵出击。
type AIPlayer struct {
	world port.World
	team  entity.TeamID
}

func NewAIPlayer(w port.World, team entity.TeamID) *AIPlayer {
	return &AIPlayer{world: w, team: team}
}

func (p *AIPlayer) Team() entity.TeamID { return p.team }

// Play 走一步，返回本回合派出的军队。
func (p *AIPlayer) Play() []entity.ArmyID {
	owned := p.world.OwnedBuildings(p.team)
	if len(owned) == 0 {
		return nil
	}
	all := p.world.Buildings()

	var sent []entity.ArmyID
	for _, b := range owned {
		if b.Population <= b.MaxPopulation/2 {
			continue
		}
		target, ok := nearestTarget(b, all, p.team)
		if !ok {
			continue
		}
		if a, ok := p.world.Recruit(b.ID, target.ID); ok {
			sent = append(sent, a.ID())
		}
	}
	return sent
}

// nearestTarget 距离相同时取先出现的建筑。
func nearestTarget(from entity.BuildingSnapshot, all []entity.BuildingSnapshot, team entity.TeamID) (entity.BuildingSnapshot, bool) {
	var (
		best  entity.BuildingSnapshot
		found bool
		bestD float64
	)
	for _, b := range all {
		if b.Team == team {
			continue
		}
		d := from.Door.Dist(b.Door)
		if !found || d < bestD {
			best, bestD, found = b, d, true
		}
	}
	return best, found
}
