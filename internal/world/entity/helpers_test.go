package entity

func newTestWorld() (*World, *Team, *Team) {
	w := NewWorld("test")
	red := w.AddTeam(NewTeam("Red", TeamStats{Attack: 10, Defense: 4, Speed: 3, RegenerationRate: 40}))
	blue := w.AddTeam(NewTeam("Blue", TeamStats{Attack: 10, Defense: 4, Speed: 3, RegenerationRate: 40}))
	return w, red, blue
}

func box(x, y float64) Rect {
	return Rect{X: x, Y: y, W: 20, H: 20}
}

func addTown(w *World, t *Team, pop int, at Rect) *Building {
	return w.AddBuilding(t, BuildingParams{Kind: KindTown, Population: pop, MaxPopulation: 40, FoodOutput: 10, Bounds: at})
}

func addFarm(w *World, t *Team, pop int, at Rect) *Building {
	return w.AddBuilding(t, BuildingParams{Kind: KindFarm, Population: pop, MaxPopulation: 40, FoodOutput: 20, Bounds: at})
}

// addArmyAt 直接在指定位置放一支军队。
func addArmyAt(w *World, t *Team, dest *Building, soldiers, attack, speed int, at Vec2) *Army {
	a := NewArmy(t, dest, soldiers, attack, speed, at)
	w.AddArmy(a)
	return a
}
