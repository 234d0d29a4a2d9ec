package level

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
)

const fileExt = ".yml"

// Repository 从目录中读取 <name>.yml 关卡。
type Repository struct {
	dir    string
	roster Roster
}

var _ port.LevelRepository = (*Repository)(nil)

func NewRepository(dir string, roster Roster) *Repository {
	return &Repository{dir: dir, roster: roster}
}

func (r *Repository) LoadWorld(ctx context.Context, id entity.WorldID, name string) (*entity.World, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validName(name) {
		return nil, app.ErrInvalidLevel.WithReason(app.ReasonLevelBadName).WithData("level", name)
	}
	data, err := os.ReadFile(filepath.Join(r.dir, name+fileExt))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, app.ErrInvalidLevel.WithReason(app.ReasonLevelNotFound).WithData("level", name)
	}
	if err != nil {
		return nil, app.Wrap(app.CodeInternalServer, "关卡文件读取失败", err).
			WithReason(app.ReasonLevelReadFail).
			WithData("level", name)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(id, doc, r.roster)
}

// Levels 目录下所有关卡名，按字母序。
func (r *Repository) Levels() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(out)
	return out, nil
}

// validName 只允许单层文件名，防止跳出关卡目录。
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
