package entity

const (
	// MaxAttack 军队单兵攻击上限
	MaxAttack = 20
	// MaxSpeed 军队移动速度上限（地图单位/tick）
	MaxSpeed = 10
	// EngageDistance 两支敌对军队距离小于该值时交战
	EngageDistance = 5.0
)

type ArmyID int

// Army 行军中的部队。方向在创建时确定，途中不再修正。
type Army struct {
	id    ArmyID
	world *World
	team  TeamID
	dest  BuildingID

	soldiers   int
	attack     int
	pos        Vec2
	dir        Vec2
	speed      int
	speedOrig  int
	terminated bool
}

// NewArmy 从 from 出发朝 dest 的门口行进；attack 与 speed 会被截断到合法区间。
// 军队在 World.AddArmy 之后才拥有 id。
func NewArmy(team *Team, dest *Building, soldiers, attack, speed int, from Vec2) *Army {
	a := &Army{
		team:     team.ID(),
		dest:     dest.ID(),
		soldiers: max(0, soldiers),
		pos:      from,
		dir:      dest.Door().Sub(from).Unit(),
	}
	a.SetAttack(attack)
	a.SetSpeed(speed)
	a.speedOrig = a.speed
	return a
}

func (a *Army) ID() ArmyID              { return a.id }
func (a *Army) TeamID() TeamID          { return a.team }
func (a *Army) Destination() BuildingID { return a.dest }
func (a *Army) Soldiers() int           { return a.soldiers }
func (a *Army) AttackPower() int        { return a.attack }
func (a *Army) Speed() int              { return a.speed }
func (a *Army) Position() Vec2          { return a.pos }
func (a *Army) Direction() Vec2         { return a.dir }
func (a *Army) Terminated() bool        { return a.terminated }

func (a *Army) SetAttack(v int) { a.attack = clamp(v, 0, MaxAttack) }

func (a *Army) SetSpeed(v int) { a.speed = clamp(v, 0, MaxSpeed) }

func (a *Army) terminate() { a.terminated = true }

// update 前进一步；与目的地门口的距离小于速度即视为到达。
func (a *Army) update() {
	if a.terminated {
		return
	}
	dest, ok := a.world.building(a.dest)
	if !ok {
		a.terminate()
		return
	}
	speed := float64(a.speed)
	a.pos = a.pos.Add(a.dir.Scale(speed))
	if a.pos.Dist(dest.Door()) < speed {
		if dest.team == a.team {
			a.enter(dest)
		} else {
			a.attackBuilding(dest)
		}
	}
	a.speed = a.speedOrig
}

// enter 增援己方建筑。
func (a *Army) enter(dest *Building) {
	dest.ChangePopulation(a.soldiers)
	a.terminate()
}

// attackBuilding 攻城。无论胜负军队都会消耗殆尽。
func (a *Army) attackBuilding(dest *Building) {
	totalDefense := float64(dest.Defense())
	totalAttack := float64(a.attack * a.soldiers)
	fight := totalDefense - totalAttack

	if fight > 0 {
		survivors := int(float64(dest.population) * (fight / totalDefense))
		dest.ChangePopulation(survivors - dest.population)
	} else {
		dest.ChangePopulation(-dest.population)
		dest.setTeam(a.world.teams[a.team])
		if totalAttack > 0 {
			dest.ChangePopulation(int(float64(a.soldiers) * (-fight / totalAttack)))
		}
	}
	a.terminate()
}

// Attack 与另一支敌军交战。同阵营调用直接忽略。
// 平局时 other 剩余 0 人但不会被标记结束，而 a 被结束。
func (a *Army) Attack(other *Army) {
	if other == nil || a.team == other.team {
		return
	}
	totalA := float64(a.attack * a.soldiers)
	totalB := float64(other.attack * other.soldiers)
	fight := totalA - totalB

	if fight > 0 {
		a.soldiers = int(fight / float64(a.attack))
		other.terminate()
		return
	}
	other.soldiers = 0
	if other.attack > 0 {
		other.soldiers = int(-fight / float64(other.attack))
	}
	a.terminate()
}

// Kill 被投射物命中时减员，减到 0 即结束。
func (a *Army) Kill(n int) {
	a.soldiers -= n
	if a.soldiers <= 0 {
		a.soldiers = 0
		a.terminate()
	}
}

func (a *Army) snapshot() ArmySnapshot {
	return ArmySnapshot{
		ID:          a.id,
		Team:        a.team,
		Destination: a.dest,
		Soldiers:    a.soldiers,
		Attack:      a.attack,
		Speed:       a.speed,
		Position:    a.pos,
		Direction:   a.dir,
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
