package port

import "github.com/RafikBaaziz123/ConquEST/internal/world/entity"

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . World

// World 服务层（AI、命令、胜负判定）对地图的全部依赖，由 *entity.World 实现。
type World interface {
	StartTurn()
	Tick()
	Buildings() []entity.BuildingSnapshot
	OwnedBuildings(team entity.TeamID) []entity.BuildingSnapshot
	OwnedBuildingCount(team entity.TeamID) int
	Recruit(src, dst entity.BuildingID) (*entity.Army, bool)
	Enlist(src, dst entity.BuildingID) (*entity.Army, bool)
}

var _ World = (*entity.World)(nil)
