package entity

type BuildingID int

// Kind 建筑类别。同一结构体按 Kind 查规则表，城镇额外带自动防御。
type Kind uint8

const (
	KindFarm Kind = iota + 1
	KindTown
)

func (k Kind) String() string {
	switch k {
	case KindFarm:
		return "farm"
	case KindTown:
		return "town"
	default:
		return "unknown"
	}
}

const (
	// 食物加成：每满 15 人 +15 食物（仅农场）
	foodBand = 15
	// 阵营加成：每满 20 人 +1（农场加人口上限，城镇加防御）
	contributionBand = 20
)

// kindRule 各类别的常量表，所有比例都按整数截断。
type kindRule struct {
	regenOffset    int
	growStep       int
	decayStep      int
	recruitPercent int
	enlistPercent  int
	attackPenalty  int
	defensePenalty int
	foodBonus      bool
}

var kindRules = map[Kind]kindRule{
	KindFarm: {
		regenOffset:    3,
		growStep:       1,
		decayStep:      -2,
		recruitPercent: 30,
		enlistPercent:  60,
		attackPenalty:  2,
		defensePenalty: 2,
		foodBonus:      true,
	},
	KindTown: {
		regenOffset:    0,
		growStep:       2,
		decayStep:      -1,
		recruitPercent: 50,
		enlistPercent:  80,
	},
}

// BuildingParams 关卡加载时创建建筑所需的参数。
type BuildingParams struct {
	Kind          Kind
	Population    int
	MaxPopulation int
	FoodOutput    int
	Bounds        Rect
}

type Building struct {
	id    BuildingID
	kind  Kind
	rule  kindRule
	world *World
	team  TeamID

	population int
	baseMaxPop int
	baseFood   int
	nextRegen  int
	bounds     Rect

	// 城镇射击倒计时
	nextShot int
}

func (b *Building) ID() BuildingID         { return b.id }
func (b *Building) Kind() Kind             { return b.kind }
func (b *Building) TeamID() TeamID         { return b.team }
func (b *Building) Population() int        { return b.population }
func (b *Building) BaseMaxPopulation() int { return b.baseMaxPop }
func (b *Building) Bounds() Rect           { return b.bounds }

// Door 出兵和发射投射物的位置。
func (b *Building) Door() Vec2 { return b.bounds.Door() }

// Team 通过世界解析所属阵营；建筑总是属于一个已注册的阵营。
func (b *Building) Team() *Team { return b.world.teams[b.team] }

func (b *Building) MaxPopulation() int {
	return b.baseMaxPop + b.Team().ExtraMaxPopulation()
}

func (b *Building) IsFull() bool { return b.population == b.MaxPopulation() }

func (b *Building) IsOverpopulated() bool { return b.population > b.MaxPopulation() }

// ChangePopulation 人口变化，结果不小于 0。
func (b *Building) ChangePopulation(delta int) {
	b.population += delta
	if b.population < 0 {
		b.population = 0
	}
}

func (b *Building) FoodOutput() int {
	if !b.rule.foodBonus {
		return b.baseFood
	}
	return b.baseFood + (b.population/foodBand)*foodBand
}

// Defense 建筑总防御 = (阵营防御 - 类别惩罚) × 人口。
func (b *Building) Defense() int {
	return (b.Team().Defense() - b.rule.defensePenalty) * b.population
}

func (b *Building) isRegenerationTime() bool { return b.nextRegen <= 0 }

func (b *Building) resetRegeneration() {
	b.nextRegen = b.Team().RegenerationRate() - b.rule.regenOffset
}

// RegeneratePop 到达再生时刻时重置倒计时并调整人口。
// maxGrowth >= 0 表示调用方允许增长的上限；已满员时不再增长。
func (b *Building) RegeneratePop(maxGrowth int) {
	if !b.isRegenerationTime() {
		return
	}
	b.resetRegeneration()
	if maxGrowth >= 0 && b.IsFull() {
		return
	}
	b.managePopulation(maxGrowth)
}

// managePopulation 超员时按衰减步长减少，即使调用方给了增长空间。
func (b *Building) managePopulation(maxGrowth int) {
	step := b.rule.growStep
	if b.IsOverpopulated() {
		step = b.rule.decayStep
	}
	b.ChangePopulation(min(maxGrowth, step))
}

func (b *Building) extract(percent int) int {
	n := b.population * percent / 100
	b.ChangePopulation(-n)
	return n
}

// RecruitSoldiers 轻度征兵，返回抽出的人数（可能为 0）。
func (b *Building) RecruitSoldiers() int { return b.extract(b.rule.recruitPercent) }

// EnlistSoldiers 全面动员，比例高于 RecruitSoldiers。
func (b *Building) EnlistSoldiers() int { return b.extract(b.rule.enlistPercent) }

// RecruitArmy 抽出 0 人时返回 nil，不产生军队。
func (b *Building) RecruitArmy(dest *Building) *Army {
	n := b.RecruitSoldiers()
	if n == 0 {
		return nil
	}
	return b.createArmy(dest, n)
}

func (b *Building) EnlistArmy(dest *Building) *Army {
	n := b.EnlistSoldiers()
	if n == 0 {
		return nil
	}
	return b.createArmy(dest, n)
}

func (b *Building) createArmy(dest *Building, n int) *Army {
	t := b.Team()
	return NewArmy(t, dest, n, t.Attack()-b.rule.attackPenalty, t.Speed(), b.Door())
}

// setTeam 易主：迁移阵营归属并重新开始再生周期。
func (b *Building) setTeam(t *Team) {
	if old, ok := b.world.teams[b.team]; ok {
		old.removeBuilding(b.id)
	}
	b.team = t.ID()
	t.addBuilding(b.id)
	b.resetRegeneration()
}

// contribute 把本建筑的加成计入所属阵营，每回合一次。
func (b *Building) contribute() {
	bonus := b.population / contributionBand
	switch b.kind {
	case KindFarm:
		b.Team().AddMaxPopExtra(bonus)
	case KindTown:
		b.Team().AddExtraDefense(bonus)
	}
}

// update 每 tick 推进再生倒计时；城镇还要执行自动防御。
func (b *Building) update() {
	if b.nextRegen > 0 {
		b.nextRegen--
	}
	if b.kind == KindTown {
		b.defend()
	}
}

func (b *Building) snapshot() BuildingSnapshot {
	t := b.Team()
	return BuildingSnapshot{
		ID:            b.id,
		Kind:          b.kind.String(),
		Team:          b.team,
		TeamName:      t.Name(),
		Population:    b.population,
		MaxPopulation: b.MaxPopulation(),
		FoodOutput:    b.FoodOutput(),
		Defense:       b.Defense(),
		Bounds:        b.bounds,
		Door:          b.Door(),
	}
}
