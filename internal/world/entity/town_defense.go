package entity

const (
	TownShotInterval = 30
	TownRange        = 140.0
	TownKillPower    = 1
)

// defend 城镇射击倒计时，归零时重置并尝试开火。
func (b *Building) defend() {
	b.nextShot--
	if b.nextShot > 0 {
		return
	}
	b.nextShot = TownShotInterval
	b.fire()
}

// fire 按世界中军队的顺序扫描，选中的是射程内最后一支敌军，而不是最近的一支。
// 本 tick 已结束但尚未清扫的军队同样会被选中，这一枪随后由投射物自行失效。
func (b *Building) fire() {
	door := b.Door()
	var target *Army
	for _, a := range b.world.armies {
		if a.team == b.team {
			continue
		}
		if door.DistSq(a.pos) < TownRange*TownRange {
			target = a
		}
	}
	if target == nil {
		return
	}
	b.world.addProjectile(NewProjectile(door, TownKillPower, target))
}
