package service

import (
	"testing"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port/mocks"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"

	"go.uber.org/mock/gomock"
)

func TestSelection_只接受己方且不重复(t *testing.T) {
	w, red, blue := newWorld()
	mine := town(w, red, 10, 0, 0)
	theirs := town(w, blue, 10, 100, 0)

	sel := NewSelection(w, red.ID())
	if !sel.IsEmpty() {
		t.Fatalf("期望新建的选择为空")
	}
	if !sel.Add(mine.ID()) {
		t.Fatalf("期望可以选中己方建筑")
	}
	if sel.Add(mine.ID()) {
		t.Fatalf("期望重复选中被拒绝")
	}
	if sel.Add(theirs.ID()) {
		t.Fatalf("期望敌方建筑被拒绝")
	}
	if sel.Add(entity.BuildingID(999)) {
		t.Fatalf("期望不存在的建筑被拒绝")
	}
	if !sel.Remove(mine.ID()) || sel.Remove(mine.ID()) {
		t.Fatalf("期望只能移除已选中的建筑")
	}
	sel.Add(mine.ID())
	sel.Clear()
	if !sel.IsEmpty() {
		t.Fatalf("期望 Clear 后为空")
	}
}

func TestSelection_读取时剔除已被占领的建筑(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWorld(ctrl)
	red := entity.TeamID(1)

	both := []entity.BuildingSnapshot{snap(1, red), snap(2, red)}
	gomock.InOrder(
		w.EXPECT().OwnedBuildings(red).Return(both).Times(2),
		w.EXPECT().OwnedBuildings(red).Return(both[1:]),
	)

	sel := NewSelection(w, red)
	sel.Add(1)
	sel.Add(2)

	got := sel.Buildings()
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("期望只剩下仍属于己方的建筑 2, got=%v", got)
	}
}
