package level

import (
	"github.com/RafikBaaziz123/ConquEST/internal/shared/serverconfig"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"

	"github.com/go-viper/mapstructure/v2"
)

// TeamSpec 阵营名与基础属性。
type TeamSpec struct {
	Name  string
	Stats entity.TeamStats
}

// Roster 本服配置的全部阵营，按配置顺序。
type Roster []TeamSpec

// RosterFromConfig 把配置里的阵营转换成实体属性。
func RosterFromConfig(teams []serverconfig.TeamConfig) (Roster, error) {
	out := make(Roster, 0, len(teams))
	for _, t := range teams {
		var stats entity.TeamStats
		if err := mapstructure.Decode(t, &stats); err != nil {
			return nil, err
		}
		out = append(out, TeamSpec{Name: t.Name, Stats: stats})
	}
	return out, nil
}

// Build 按关卡创建世界。roster 里的阵营全部注册（即使关卡没用到），
// 保证玩家与 AI 阵营总能按名字找到。
func Build(id entity.WorldID, doc Document, roster Roster) (*entity.World, error) {
	w := entity.NewWorld(id)
	teams := make(map[string]*entity.Team, len(roster))
	for _, spec := range roster {
		teams[spec.Name] = w.AddTeam(entity.NewTeam(spec.Name, spec.Stats))
	}

	for i, b := range doc.Buildings {
		team, ok := teams[b.Team]
		if !ok {
			return nil, app.ErrInvalidLevel.WithReason(app.ReasonLevelUnknownTeam).
				WithData("level", doc.Name).
				WithData("index", i).
				WithData("team", b.Team)
		}
		p, ok := presets[b.Preset]
		if !ok {
			return nil, app.ErrInvalidLevel.WithReason(app.ReasonLevelUnknownPreset).
				WithData("level", doc.Name).
				WithData("index", i).
				WithData("preset", b.Preset)
		}
		if p.kind != kindFromName(b.Kind) {
			return nil, app.ErrInvalidLevel.WithReason(app.ReasonLevelKindMismatch).
				WithData("level", doc.Name).
				WithData("index", i).
				WithData("kind", b.Kind).
				WithData("preset", b.Preset)
		}
		w.AddBuilding(team, entity.BuildingParams{
			Kind:          p.kind,
			Population:    b.Population,
			MaxPopulation: p.maxPop,
			FoodOutput:    p.food,
			Bounds:        entity.Rect{X: b.X, Y: b.Y, W: p.width, H: p.height},
		})
	}
	return w, nil
}
