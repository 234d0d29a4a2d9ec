package service

import "github.com/RafikBaaziz123/ConquEST/internal/world/entity"

func newWorld() (*entity.World, *entity.Team, *entity.Team) {
	w := entity.NewWorld("svc-test")
	red := w.AddTeam(entity.NewTeam("Red", entity.TeamStats{Attack: 10, Defense: 4, Speed: 3, RegenerationRate: 40}))
	blue := w.AddTeam(entity.NewTeam("Blue", entity.TeamStats{Attack: 10, Defense: 4, Speed: 3, RegenerationRate: 40}))
	return w, red, blue
}

func town(w *entity.World, t *entity.Team, pop int, x, y float64) *entity.Building {
	return w.AddBuilding(t, entity.BuildingParams{
		Kind:          entity.KindTown,
		Population:    pop,
		MaxPopulation: 40,
		FoodOutput:    10,
		Bounds:        entity.Rect{X: x, Y: y, W: 20, H: 20},
	})
}

func snap(id entity.BuildingID, team entity.TeamID) entity.BuildingSnapshot {
	return entity.BuildingSnapshot{ID: id, Team: team}
}
