package entity

import "testing"

func TestTeam_StartTurn_连续调用不累计(t *testing.T) {
	team := NewTeam("Red", TeamStats{Defense: 4})
	team.AddMaxPopExtra(3)
	team.AddExtraDefense(2)

	team.StartTurn()
	team.StartTurn()
	if team.ExtraMaxPopulation() != 0 || team.ExtraDefense() != 0 {
		t.Fatalf("期望两次 StartTurn 后加成都为 0, got maxPop=%d defense=%d", team.ExtraMaxPopulation(), team.ExtraDefense())
	}
	if team.Defense() != 4 {
		t.Fatalf("期望防御回到基础值 4, got=%d", team.Defense())
	}
}

func TestTeam_加成可多次累加(t *testing.T) {
	team := NewTeam("Red", TeamStats{Defense: 4})
	team.AddExtraDefense(1)
	team.AddExtraDefense(2)
	team.AddMaxPopExtra(5)
	if team.Defense() != 7 {
		t.Fatalf("期望 Defense=4+3, got=%d", team.Defense())
	}
	if team.ExtraMaxPopulation() != 5 {
		t.Fatalf("期望 ExtraMaxPopulation=5, got=%d", team.ExtraMaxPopulation())
	}
}

func TestTeam_建筑归属集合(t *testing.T) {
	w, red, _ := newTestWorld()
	a := addTown(w, red, 10, box(0, 0))
	b := addFarm(w, red, 10, box(40, 0))

	if red.BuildingCount() != 2 {
		t.Fatalf("期望拥有 2 个建筑, got=%d", red.BuildingCount())
	}
	ids := red.BuildingIDs()
	if len(ids) != 2 || ids[0] != a.ID() || ids[1] != b.ID() {
		t.Fatalf("期望按 id 升序返回, got=%v", ids)
	}
	w.RemoveBuilding(a.ID())
	if red.Owns(a.ID()) || red.BuildingCount() != 1 {
		t.Fatalf("期望移除建筑后归属集合同步更新, ids=%v", red.BuildingIDs())
	}
}
