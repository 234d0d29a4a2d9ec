package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
	"github.com/RafikBaaziz123/ConquEST/internal/world/infra/level"
)

// SkirmishLevel 内置关卡名，没有关卡目录时也能开局。
const SkirmishLevel = "skirmish"

// WorldRepository 关卡保存在内存中，测试和本地调试使用。
type WorldRepository struct {
	mu     sync.RWMutex
	docs   map[string]level.Document
	roster level.Roster
}

var _ port.LevelRepository = (*WorldRepository)(nil)

func NewWorldRepository(roster level.Roster) *WorldRepository {
	r := &WorldRepository{
		docs:   make(map[string]level.Document),
		roster: roster,
	}
	r.Put(skirmish(roster))
	return r
}

// Put 新增或替换一个关卡。
func (r *WorldRepository) Put(doc level.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.Name] = doc
}

func (r *WorldRepository) LoadWorld(ctx context.Context, id entity.WorldID, name string) (*entity.World, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	doc, ok := r.docs[name]
	r.mu.RUnlock()
	if !ok {
		return nil, app.ErrInvalidLevel.WithReason(app.ReasonLevelNotFound).WithData("level", name)
	}
	return level.Build(id, doc, r.roster)
}

func (r *WorldRepository) Levels() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.docs))
	for name := range r.docs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// skirmish 每个阵营在一条横线上各占一座城镇，中间夹一块农田。
func skirmish(roster level.Roster) level.Document {
	doc := level.Document{Name: SkirmishLevel}
	for i, t := range roster {
		x := float64(40 + i*200)
		doc.Buildings = append(doc.Buildings,
			level.BuildingSpec{Kind: "town", Preset: "town", X: x, Y: 100, Population: 20, Team: t.Name},
			level.BuildingSpec{Kind: "farm", Preset: "field", X: x, Y: 220, Population: 8, Team: t.Name},
		)
	}
	return doc
}
