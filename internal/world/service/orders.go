package service

import (
	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
)

// Order 一次出兵命令：从若干己方建筑向同一个目标派兵。
type Order struct {
	Team   entity.TeamID
	From   []entity.BuildingID
	To     entity.BuildingID
	Enlist bool
}

// Dispatch 按选中的建筑逐个出兵，返回创建的军队。
// 抽不出士兵的建筑（或源即目标）被跳过；一支军队都没有时返回 ErrNoSoldiers。
func Dispatch(w port.World, o Order) ([]entity.ArmyID, error) {
	if len(o.From) == 0 {
		return nil, app.ErrEmptySelection
	}
	if !hasBuilding(w.Buildings(), o.To) {
		return nil, app.ErrUnknownBuilding.WithData("building_id", int(o.To))
	}

	sel := NewSelection(w, o.Team)
	for _, id := range o.From {
		// 重复的 id 只算一次
		if !sel.Add(id) && !sel.contains(id) {
			return nil, app.ErrNotOwner.WithData("building_id", int(id))
		}
	}

	raise := w.Recruit
	if o.Enlist {
		raise = w.Enlist
	}
	var armies []entity.ArmyID
	for _, id := range sel.Buildings() {
		if a, ok := raise(id, o.To); ok {
			armies = append(armies, a.ID())
		}
	}
	if len(armies) == 0 {
		return nil, app.ErrNoSoldiers
	}
	return armies, nil
}

func hasBuilding(all []entity.BuildingSnapshot, id entity.BuildingID) bool {
	for _, b := range all {
		if b.ID == id {
			return true
		}
	}
	return false
}
