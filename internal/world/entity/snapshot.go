package entity

// 只读快照：值拷贝，渲染层或 HTTP 观察端可以在锁外随意读取。

type TeamSnapshot struct {
	ID                 TeamID `json:"id"`
	Name               string `json:"name"`
	Attack             int    `json:"attack"`
	Defense            int    `json:"defense"`
	Speed              int    `json:"speed"`
	RegenerationRate   int    `json:"regeneration_rate"`
	ExtraMaxPopulation int    `json:"extra_max_population"`
	ExtraDefense       int    `json:"extra_defense"`
	Buildings          int    `json:"buildings"`
	Population         int    `json:"population"`
	FoodOutput         int    `json:"food_output"`
}

type BuildingSnapshot struct {
	ID            BuildingID `json:"id"`
	Kind          string     `json:"kind"`
	Team          TeamID     `json:"team"`
	TeamName      string     `json:"team_name"`
	Population    int        `json:"population"`
	MaxPopulation int        `json:"max_population"`
	FoodOutput    int        `json:"food_output"`
	Defense       int        `json:"defense"`
	Bounds        Rect       `json:"bounds"`
	Door          Vec2       `json:"door"`
}

type ArmySnapshot struct {
	ID          ArmyID     `json:"id"`
	Team        TeamID     `json:"team"`
	Destination BuildingID `json:"destination"`
	Soldiers    int        `json:"soldiers"`
	Attack      int        `json:"attack"`
	Speed       int        `json:"speed"`
	Position    Vec2       `json:"position"`
	Direction   Vec2       `json:"direction"`
}

type ProjectileSnapshot struct {
	ID     ProjectileID `json:"id"`
	Target ArmyID       `json:"target"`
	Power  int          `json:"power"`
	Center Vec2         `json:"center"`
}

type WorldSnapshot struct {
	ID          WorldID              `json:"id"`
	Tick        uint64               `json:"tick"`
	Teams       []TeamSnapshot       `json:"teams"`
	Buildings   []BuildingSnapshot   `json:"buildings"`
	Armies      []ArmySnapshot       `json:"armies"`
	Projectiles []ProjectileSnapshot `json:"projectiles"`
}

// Team 按名字查找阵营快照。
func (s WorldSnapshot) Team(name string) (TeamSnapshot, bool) {
	for _, t := range s.Teams {
		if t.Name == name {
			return t, true
		}
	}
	return TeamSnapshot{}, false
}

func (s WorldSnapshot) Building(id BuildingID) (BuildingSnapshot, bool) {
	for _, b := range s.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return BuildingSnapshot{}, false
}
