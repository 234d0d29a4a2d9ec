package service

import (
	"slices"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
)

// Selection 玩家当前选中、准备出兵的己方建筑。
type Selection struct {
	world port.World
	team  entity.TeamID
	ids   []entity.BuildingID
}

func NewSelection(w port.World, team entity.TeamID) *Selection {
	return &Selection{world: w, team: team}
}

func (s *Selection) Team() entity.TeamID { return s.team }

func (s *Selection) IsEmpty() bool { return len(s.ids) == 0 }

func (s *Selection) Clear() { s.ids = s.ids[:0] }

// Add 只接受当前属于本阵营且尚未选中的建筑。
func (s *Selection) Add(id entity.BuildingID) bool {
	if s.contains(id) || !s.owned()[id] {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s *Selection) Remove(id entity.BuildingID) bool {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

// Buildings 返回选中的建筑，并剔除选中之后被敌方占领的。
func (s *Selection) Buildings() []entity.BuildingID {
	owned := s.owned()
	s.ids = slices.DeleteFunc(s.ids, func(id entity.BuildingID) bool { return !owned[id] })
	return slices.Clone(s.ids)
}

func (s *Selection) contains(id entity.BuildingID) bool { return slices.Contains(s.ids, id) }

func (s *Selection) owned() map[entity.BuildingID]bool {
	out := make(map[entity.BuildingID]bool)
	for _, b := range s.world.OwnedBuildings(s.team) {
		out[b.ID] = true
	}
	return out
}
