package entity

import "sync"

// WorldID 一局对战（一张地图实例）的标识。
type WorldID string

// World 持有一张地图上的全部实体，并按固定顺序推进一个 tick。
//
// 所有导出方法都在同一把 mu 下互斥执行：模拟线程调用 Tick，
// 输入/渲染线程在两个 tick 之间下达命令或读取快照。
// 通过 Building/Army 指针直接修改状态必须在持有 World 的线程里进行。
type World struct {
	mu   sync.Mutex
	id   WorldID
	tick uint64

	teams     map[TeamID]*Team
	teamOrder []TeamID

	buildings     []*Building
	buildingIndex map[BuildingID]*Building

	armies      []*Army
	armyIndex   map[ArmyID]*Army
	projectiles []*Projectile

	nextTeamID       TeamID
	nextBuildingID   BuildingID
	nextArmyID       ArmyID
	nextProjectileID ProjectileID
}

func NewWorld(id WorldID) *World {
	return &World{
		id:            id,
		teams:         make(map[TeamID]*Team),
		buildingIndex: make(map[BuildingID]*Building),
		armyIndex:     make(map[ArmyID]*Army),
	}
}

func (w *World) ID() WorldID { return w.id }

func (w *World) TickCount() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tick
}

// AddTeam 注册阵营并分配 id；重复注册直接返回。
func (w *World) AddTeam(t *Team) *Team {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.addTeam(t)
}

func (w *World) addTeam(t *Team) *Team {
	if t.id != 0 && w.teams[t.id] == t {
		return t
	}
	w.nextTeamID++
	t.id = w.nextTeamID
	w.teams[t.id] = t
	w.teamOrder = append(w.teamOrder, t.id)
	return t
}

func (w *World) Team(id TeamID) (*Team, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	t, ok := w.teams[id]
	return t, ok
}

func (w *World) TeamByName(name string) (*Team, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, id := range w.teamOrder {
		if t := w.teams[id]; t.name == name {
			return t, true
		}
	}
	return nil, false
}

// Teams 按注册顺序返回。
func (w *World) Teams() []*Team {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*Team, 0, len(w.teamOrder))
	for _, id := range w.teamOrder {
		out = append(out, w.teams[id])
	}
	return out
}

// AddBuilding 创建建筑并同时登记到阵营与世界。
func (w *World) AddBuilding(team *Team, p BuildingParams) *Building {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.addTeam(team)
	w.nextBuildingID++
	b := &Building{
		id:         w.nextBuildingID,
		kind:       p.Kind,
		rule:       kindRules[p.Kind],
		world:      w,
		team:       team.id,
		baseMaxPop: p.MaxPopulation,
		baseFood:   p.FoodOutput,
		bounds:     p.Bounds,
		nextShot:   TownShotInterval,
	}
	b.ChangePopulation(p.Population)
	b.resetRegeneration()
	team.addBuilding(b.id)
	w.buildings = append(w.buildings, b)
	w.buildingIndex[b.id] = b
	return b
}

// RemoveBuilding 正常对局不会调用；正在前往的军队会在下一 tick 失效。
func (w *World) RemoveBuilding(id BuildingID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.buildingIndex[id]
	if !ok {
		return
	}
	if t, ok := w.teams[b.team]; ok {
		t.removeBuilding(id)
	}
	delete(w.buildingIndex, id)
	for i, cur := range w.buildings {
		if cur == b {
			w.buildings = append(w.buildings[:i], w.buildings[i+1:]...)
			break
		}
	}
}

func (w *World) Building(id BuildingID) (*Building, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.building(id)
}

func (w *World) building(id BuildingID) (*Building, bool) {
	b, ok := w.buildingIndex[id]
	return b, ok
}

func (w *World) AddArmy(a *Army) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.addArmy(a)
}

func (w *World) addArmy(a *Army) {
	if a == nil || a.world != nil {
		return
	}
	w.nextArmyID++
	a.id = w.nextArmyID
	a.world = w
	w.armies = append(w.armies, a)
	w.armyIndex[a.id] = a
}

// RemoveArmy 在两个 tick 之间调用，标记后立即压缩集合。
func (w *World) RemoveArmy(id ArmyID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if a, ok := w.armyIndex[id]; ok {
		a.terminate()
	}
	w.purge()
}

func (w *World) Army(id ArmyID) (*Army, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.army(id)
}

func (w *World) army(id ArmyID) (*Army, bool) {
	a, ok := w.armyIndex[id]
	return a, ok
}

func (w *World) AddProjectile(p *Projectile) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.addProjectile(p)
}

func (w *World) addProjectile(p *Projectile) {
	if p == nil || p.world != nil {
		return
	}
	w.nextProjectileID++
	p.id = w.nextProjectileID
	p.world = w
	w.projectiles = append(w.projectiles, p)
}

func (w *World) RemoveProjectile(id ProjectileID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.projectiles {
		if p.id == id {
			p.terminated = true
		}
	}
	w.purge()
}

// StartTurn 回合开始：清空所有阵营的加成，再由每个建筑各贡献一次。
func (w *World) StartTurn() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, id := range w.teamOrder {
		w.teams[id].StartTurn()
	}
	for _, b := range w.buildings {
		b.contribute()
	}
}

// Tick 推进一个模拟步，各阶段顺序不可调整：
// 行军与到达 → 军队互战 → 投射物 → 建筑 → 清扫已结束的军队和投射物。
func (w *World) Tick() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.tick++

	for _, a := range w.armies {
		a.update()
	}

	// 已结束但尚未清扫的军队同样参与配对
	for i := 0; i < len(w.armies); i++ {
		for k := i + 1; k < len(w.armies); k++ {
			a, b := w.armies[i], w.armies[k]
			if a.team == b.team {
				continue
			}
			if a.pos.Dist(b.pos) < EngageDistance {
				a.Attack(b)
			}
		}
	}

	for _, p := range w.projectiles {
		p.update()
	}

	w.updateBuildings()
	w.purge()
}

// updateBuildings 以阵营食物盈余作为人口增长预算。
func (w *World) updateBuildings() {
	surplus := make(map[TeamID]int, len(w.teams))
	for _, b := range w.buildings {
		surplus[b.team] += b.FoodOutput() - b.population
	}
	for _, b := range w.buildings {
		b.update()
		before := b.population
		b.RegeneratePop(max(surplus[b.team], -1))
		surplus[b.team] -= b.population - before
	}
}

// purge 标记-压缩，只在所有遍历结束后执行。
func (w *World) purge() {
	armies := w.armies[:0]
	for _, a := range w.armies {
		if a.terminated {
			delete(w.armyIndex, a.id)
			continue
		}
		armies = append(armies, a)
	}
	clear(w.armies[len(armies):])
	w.armies = armies

	projectiles := w.projectiles[:0]
	for _, p := range w.projectiles {
		if !p.terminated {
			projectiles = append(projectiles, p)
		}
	}
	clear(w.projectiles[len(projectiles):])
	w.projectiles = projectiles
}

// Recruit 从 src 轻度征兵前往 dst；抽不出士兵时返回 false。
func (w *World) Recruit(src, dst BuildingID) (*Army, bool) {
	return w.dispatch(src, dst, (*Building).RecruitArmy)
}

// Enlist 与 Recruit 相同，但按全面动员比例抽兵。
func (w *World) Enlist(src, dst BuildingID) (*Army, bool) {
	return w.dispatch(src, dst, (*Building).EnlistArmy)
}

func (w *World) dispatch(src, dst BuildingID, raise func(*Building, *Building) *Army) (*Army, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	from, ok := w.building(src)
	if !ok {
		return nil, false
	}
	to, ok := w.building(dst)
	if !ok || from == to {
		return nil, false
	}
	a := raise(from, to)
	if a == nil {
		return nil, false
	}
	w.addArmy(a)
	return a, true
}

// FindBuildingAt 返回占地包含 p 的第一个建筑（按加入顺序）。
func (w *World) FindBuildingAt(p Vec2) (*Building, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range w.buildings {
		if b.bounds.Contains(p) {
			return b, true
		}
	}
	return nil, false
}

// OwnedBuildings 返回阵营当前拥有建筑的快照，按世界中的顺序。
func (w *World) OwnedBuildings(team TeamID) []BuildingSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []BuildingSnapshot
	for _, b := range w.buildings {
		if b.team == team {
			out = append(out, b.snapshot())
		}
	}
	return out
}

// Buildings 所有建筑的快照，按世界中的顺序。
func (w *World) Buildings() []BuildingSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]BuildingSnapshot, 0, len(w.buildings))
	for _, b := range w.buildings {
		out = append(out, b.snapshot())
	}
	return out
}

// OwnedBuildingCount 为 0 表示该阵营已经输掉。
func (w *World) OwnedBuildingCount(team TeamID) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	t, ok := w.teams[team]
	if !ok {
		return 0
	}
	return t.BuildingCount()
}

func (w *World) Snapshot() WorldSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := WorldSnapshot{
		ID:          w.id,
		Tick:        w.tick,
		Teams:       make([]TeamSnapshot, 0, len(w.teamOrder)),
		Buildings:   make([]BuildingSnapshot, 0, len(w.buildings)),
		Armies:      make([]ArmySnapshot, 0, len(w.armies)),
		Projectiles: make([]ProjectileSnapshot, 0, len(w.projectiles)),
	}
	for _, id := range w.teamOrder {
		t := w.teams[id]
		s.Teams = append(s.Teams, TeamSnapshot{
			ID:                 t.id,
			Name:               t.name,
			Attack:             t.Attack(),
			Defense:            t.Defense(),
			Speed:              t.Speed(),
			RegenerationRate:   t.RegenerationRate(),
			ExtraMaxPopulation: t.extraMaxPop,
			ExtraDefense:       t.extraDefense,
			Buildings:          t.BuildingCount(),
		})
	}
	teamIdx := make(map[TeamID]int, len(s.Teams))
	for i, t := range s.Teams {
		teamIdx[t.ID] = i
	}
	for _, b := range w.buildings {
		bs := b.snapshot()
		s.Buildings = append(s.Buildings, bs)
		if i, ok := teamIdx[b.team]; ok {
			s.Teams[i].Population += bs.Population
			s.Teams[i].FoodOutput += bs.FoodOutput
		}
	}
	for _, a := range w.armies {
		s.Armies = append(s.Armies, a.snapshot())
	}
	for _, p := range w.projectiles {
		s.Projectiles = append(s.Projectiles, p.snapshot())
	}
	return s
}
