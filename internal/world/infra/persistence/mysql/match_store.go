package mysql

import (
	"context"
	"errors"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/infra/persistence/model"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/errx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	OpSaveMatch    = "repo.match.Save"
	OpListMatch    = "repo.match.List"
	OpMigrateMatch = "repo.match.AutoMigrate"
)

// MatchStore matches 表，每局一行。
type MatchStore struct {
	db *gorm.DB
}

var _ port.MatchStore = (*MatchStore)(nil)

func NewMatchStore(db *gorm.DB) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) WithTx(tx *gorm.DB) *MatchStore {
	return &MatchStore{db: tx}
}

func (s *MatchStore) AutoMigrate() error {
	if err := s.db.AutoMigrate(&model.MatchRow{}); err != nil {
		return infraErr(OpMigrateMatch, err, nil)
	}
	return nil
}

// Save 行锁内比较版本，旧版本直接丢弃。
func (s *MatchStore) Save(ctx context.Context, r *port.MatchRecord) error {
	if r == nil {
		return nil
	}
	row := model.MatchRecordToRow(*r)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.WithTx(tx).upsert(&row)
	})
	if err != nil {
		return infraErr(OpSaveMatch, err, map[string]any{"world_id": row.WorldID, "version": row.Version})
	}
	return nil
}

func (s *MatchStore) upsert(row *model.MatchRow) error {
	var cur model.MatchRow
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("world_id", "version").
		Where("world_id = ?", row.WorldID).
		Take(&cur).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.db.Create(row).Error
	case err != nil:
		return err
	case cur.Version >= row.Version:
		return nil
	}
	return s.db.Select("*").Omit("created_at").Updates(row).Error
}

func (s *MatchStore) List(ctx context.Context) ([]port.MatchRecord, error) {
	var rows []model.MatchRow
	if err := s.db.WithContext(ctx).Order("created_at, world_id").Find(&rows).Error; err != nil {
		return nil, infraErr(OpListMatch, err, nil)
	}
	out := make([]port.MatchRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, model.MatchRowToRecord(m))
	}
	return out, nil
}

func infraErr(op string, err error, data map[string]any) error {
	return errx.ErrUnavailable.WithCause(err).WithData("op", op).WithDataMap(data)
}
