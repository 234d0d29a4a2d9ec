package entity

import (
	"math"
	"testing"
)

func almostEqual(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestProjectile_每tick追踪目标当前位置(t *testing.T) {
	w, red, blue := newTestWorld()
	dest := addTown(w, red, 10, box(500, 500))
	target := addArmyAt(w, blue, dest, 5, 10, 0, Vec2{X: 100, Y: 0})
	p := NewProjectile(Vec2{}, 1, target)
	w.AddProjectile(p)

	p.update()
	if !almostEqual(p.Direction(), Vec2{X: 1, Y: 0}) {
		t.Fatalf("期望第一次朝 (100,0) 飞行, got=%v", p.Direction())
	}
	if !almostEqual(p.Center(), Vec2{X: 12, Y: 0}) {
		t.Fatalf("期望前进 12, got=%v", p.Center())
	}

	start := target.Position()
	target.pos = Vec2{X: 12, Y: 100}
	p.update()
	want := Vec2{X: 0, Y: 1}
	if !almostEqual(p.Direction(), want) {
		t.Fatalf("期望方向指向目标最新位置 %v, got=%v (创建时位置 %v)", target.Position(), p.Direction(), start)
	}
}

func TestProjectile_命中后结束并减员(t *testing.T) {
	w, red, blue := newTestWorld()
	dest := addTown(w, red, 10, box(500, 500))
	target := addArmyAt(w, blue, dest, 3, 10, 0, Vec2{X: 20, Y: 0})
	p := NewProjectile(Vec2{}, 1, target)
	w.AddProjectile(p)

	p.update()

	if !p.Terminated() {
		t.Fatalf("期望距离小于 12 时命中, center=%v", p.Center())
	}
	if target.Soldiers() != 2 {
		t.Fatalf("期望目标减员 1, got=%d", target.Soldiers())
	}
}

func TestProjectile_目标已结束时直接失效(t *testing.T) {
	w, red, blue := newTestWorld()
	dest := addTown(w, red, 10, box(500, 500))
	target := addArmyAt(w, blue, dest, 3, 10, 0, Vec2{X: 5, Y: 0})
	p := NewProjectile(Vec2{}, 1, target)
	w.AddProjectile(p)

	target.terminate()
	p.update()

	if !p.Terminated() {
		t.Fatalf("期望目标已结束时投射物失效")
	}
	if target.Soldiers() != 3 {
		t.Fatalf("期望不对已结束的目标造成伤害, got=%d", target.Soldiers())
	}
	if p.Center() != (Vec2{}) {
		t.Fatalf("期望投射物不再移动, got=%v", p.Center())
	}
}

func TestProjectile_目标已被移除时直接失效(t *testing.T) {
	w, red, blue := newTestWorld()
	dest := addTown(w, red, 10, box(500, 500))
	target := addArmyAt(w, blue, dest, 3, 10, 0, Vec2{X: 50, Y: 0})
	p := NewProjectile(Vec2{}, 1, target)
	w.AddProjectile(p)

	w.RemoveArmy(target.ID())
	p.update()

	if !p.Terminated() {
		t.Fatalf("期望目标不存在时投射物失效")
	}
}
