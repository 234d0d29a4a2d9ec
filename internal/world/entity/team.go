package entity

import "sort"

type TeamID int

// TeamStats 阵营基础属性，创建后不再变化。
type TeamStats struct {
	Attack           int `yaml:"attack" mapstructure:"attack" json:"attack"`
	Defense          int `yaml:"defense" mapstructure:"defense" json:"defense"`
	Speed            int `yaml:"speed" mapstructure:"speed" json:"speed"`
	MaxPopulation    int `yaml:"max_population" mapstructure:"max_population" json:"max_population"`
	RegenerationRate int `yaml:"regeneration_rate" mapstructure:"regeneration_rate" json:"regeneration_rate"`
}

// Team 阵营：基础属性 + 每 tick 重新累计的加成 + 当前拥有的建筑集合。
type Team struct {
	id    TeamID
	name  string
	stats TeamStats

	// 每回合清零，由己方建筑在 tick 内重新贡献
	extraMaxPop  int
	extraDefense int

	buildings map[BuildingID]struct{}
}

func NewTeam(name string, stats TeamStats) *Team {
	return &Team{
		name:      name,
		stats:     stats,
		buildings: make(map[BuildingID]struct{}),
	}
}

func (t *Team) ID() TeamID       { return t.id }
func (t *Team) Name() string     { return t.name }
func (t *Team) Stats() TeamStats { return t.stats }
func (t *Team) Attack() int      { return t.stats.Attack }
func (t *Team) Speed() int       { return t.stats.Speed }

// Defense 基础防御 + 本回合城镇贡献的额外防御。
func (t *Team) Defense() int { return t.stats.Defense + t.extraDefense }

func (t *Team) BaseDefense() int        { return t.stats.Defense }
func (t *Team) BaseMaxPopulation() int  { return t.stats.MaxPopulation }
func (t *Team) RegenerationRate() int   { return t.stats.RegenerationRate }
func (t *Team) ExtraMaxPopulation() int { return t.extraMaxPop }
func (t *Team) ExtraDefense() int       { return t.extraDefense }

// StartTurn 清空本回合累计的加成。
func (t *Team) StartTurn() {
	t.extraMaxPop = 0
	t.extraDefense = 0
}

func (t *Team) AddMaxPopExtra(n int)  { t.extraMaxPop += n }
func (t *Team) AddExtraDefense(n int) { t.extraDefense += n }

func (t *Team) addBuilding(id BuildingID)    { t.buildings[id] = struct{}{} }
func (t *Team) removeBuilding(id BuildingID) { delete(t.buildings, id) }

func (t *Team) Owns(id BuildingID) bool {
	_, ok := t.buildings[id]
	return ok
}

// BuildingCount 为 0 即该阵营已出局。
func (t *Team) BuildingCount() int { return len(t.buildings) }

// BuildingIDs 按 id 升序返回，保证遍历结果稳定。
func (t *Team) BuildingIDs() []BuildingID {
	out := make([]BuildingID, 0, len(t.buildings))
	for id := range t.buildings {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
