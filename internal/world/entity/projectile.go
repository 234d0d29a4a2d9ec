package entity

// ProjectileSpeed 投射物每 tick 飞行距离
const ProjectileSpeed = 12.0

type ProjectileID int

// Projectile 城镇发射的追踪弹，每 tick 重新瞄准目标当前位置。
type Projectile struct {
	id         ProjectileID
	world      *World
	target     ArmyID
	power      int
	center     Vec2
	dir        Vec2
	terminated bool
}

func NewProjectile(from Vec2, power int, target *Army) *Projectile {
	return &Projectile{
		target: target.ID(),
		power:  power,
		center: from,
	}
}

func (p *Projectile) ID() ProjectileID { return p.id }
func (p *Projectile) Target() ArmyID   { return p.target }
func (p *Projectile) Power() int       { return p.power }
func (p *Projectile) Center() Vec2     { return p.center }

// Direction 最近一次 update 计算出的飞行方向。
func (p *Projectile) Direction() Vec2 { return p.dir }

func (p *Projectile) Terminated() bool { return p.terminated }

// update 目标已不存在或已结束时投射物直接失效，不产生伤害。
func (p *Projectile) update() {
	if p.terminated {
		return
	}
	target, ok := p.world.army(p.target)
	if !ok || target.terminated {
		p.terminated = true
		return
	}
	p.dir = target.pos.Sub(p.center).Unit()
	p.center = p.center.Add(p.dir.Scale(ProjectileSpeed))
	if p.center.Dist(target.pos) < ProjectileSpeed {
		target.Kill(p.power)
		p.terminated = true
	}
}

func (p *Projectile) snapshot() ProjectileSnapshot {
	return ProjectileSnapshot{
		ID:     p.id,
		Target: p.target,
		Power:  p.power,
		Center: p.center,
	}
}
