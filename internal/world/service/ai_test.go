package service

import "testing"

func TestAIPlayer_人口过半时攻击最近的非己方建筑(t *testing.T) {
	w, red, blue := newWorld()
	home := town(w, red, 30, 0, 0)
	town(w, red, 5, 40, 0) // 最近但是己方
	far := town(w, blue, 10, 300, 0)
	near := town(w, blue, 10, 100, 0)

	ai := NewAIPlayer(w, red.ID())
	sent := ai.Play()

	if len(sent) != 1 {
		t.Fatalf("期望只有人口过半的建筑出兵, got=%d", len(sent))
	}
	a, ok := w.Army(sent[0])
	if !ok {
		t.Fatalf("期望军队已经登记到世界")
	}
	if a.Destination() != near.ID() {
		t.Fatalf("期望目标为最近的敌方建筑 %d（不是 %d）, got=%d", near.ID(), far.ID(), a.Destination())
	}
	if a.Soldiers() != 15 || home.Population() != 15 {
		t.Fatalf("期望按征兵比例抽出一半, soldiers=%d pop=%d", a.Soldiers(), home.Population())
	}
}

func TestAIPlayer_人口恰好一半时不出兵(t *testing.T) {
	w, red, blue := newWorld()
	town(w, red, 20, 0, 0)
	town(w, blue, 10, 100, 0)

	if sent := NewAIPlayer(w, red.ID()).Play(); len(sent) != 0 {
		t.Fatalf("期望 20 不大于 40/2 时不出兵, got=%v", sent)
	}
}

func TestAIPlayer_距离相同时取先出现的建筑(t *testing.T) {
	w, red, blue := newWorld()
	town(w, red, 30, 100, 100)
	first := town(w, blue, 10, 100, 0)
	town(w, blue, 10, 100, 200)

	sent := NewAIPlayer(w, red.ID()).Play()
	if len(sent) != 1 {
		t.Fatalf("期望出兵一次, got=%d", len(sent))
	}
	a, _ := w.Army(sent[0])
	if a.Destination() != first.ID() {
		t.Fatalf("期望平局时选择先加入世界的建筑, got=%d", a.Destination())
	}
}

func TestAIPlayer_没有建筑时什么都不做(t *testing.T) {
	w, red, blue := newWorld()
	town(w, blue, 30, 0, 0)

	if sent := NewAIPlayer(w, red.ID()).Play(); sent != nil {
		t.Fatalf("期望没有建筑的阵营不行动, got=%v", sent)
	}
}
