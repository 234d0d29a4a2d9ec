package level

import "github.com/RafikBaaziz123/ConquEST/internal/world/entity"

// preset 关卡里可用的建筑模板：人口上限、基础食物与占地大小。
type preset struct {
	kind   entity.Kind
	maxPop int
	food   int
	width  float64
	height float64
}

var presets = map[string]preset{
	"village": {kind: entity.KindTown, maxPop: 20, food: 20, width: 40, height: 40},
	"town":    {kind: entity.KindTown, maxPop: 40, food: 10, width: 50, height: 50},
	"city":    {kind: entity.KindTown, maxPop: 60, food: 0, width: 64, height: 64},

	"field":      {kind: entity.KindFarm, maxPop: 20, food: 10, width: 40, height: 30},
	"farm":       {kind: entity.KindFarm, maxPop: 40, food: 20, width: 50, height: 40},
	"plantation": {kind: entity.KindFarm, maxPop: 60, food: 30, width: 64, height: 48},
}

func kindFromName(name string) entity.Kind {
	switch name {
	case "town":
		return entity.KindTown
	case "farm":
		return entity.KindFarm
	default:
		return 0
	}
}
