package model

import (
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
)

// MatchDoc mongodb 里一局对战的文档，_id 即对局 id。
type MatchDoc struct {
	WorldID   string               `bson:"_id"`
	Level     string               `bson:"level"`
	Version   int64                `bson:"version"`
	Status    string               `bson:"status"`
	Over      bool                 `bson:"over"`
	Tick      int64                `bson:"tick"`
	Snapshot  entity.WorldSnapshot `bson:"snapshot"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

// MatchRow mysql matches 表的一行；快照整体存成 JSON 列。
type MatchRow struct {
	WorldID   string               `gorm:"column:world_id;primaryKey;size:64"`
	Level     string               `gorm:"column:level;size:64"`
	Version   uint64               `gorm:"column:version"`
	Status    string               `gorm:"column:status;size:16"`
	Over      bool                 `gorm:"column:is_over"`
	Tick      uint64               `gorm:"column:tick"`
	Snapshot  entity.WorldSnapshot `gorm:"column:snapshot;type:json;serializer:json"`
	CreatedAt time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time            `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (MatchRow) TableName() string {
	return "matches"
}

func MatchRecordToDoc(r port.MatchRecord) MatchDoc {
	return MatchDoc{
		WorldID:   string(r.WorldID),
		Level:     r.Level,
		Version:   int64(r.Version),
		Status:    r.Status,
		Over:      r.Over,
		Tick:      int64(r.Snapshot.Tick),
		Snapshot:  r.Snapshot,
		UpdatedAt: r.UpdatedAt,
	}
}

func MatchDocToRecord(d MatchDoc) port.MatchRecord {
	r := port.MatchRecord{
		WorldID:   entity.WorldID(d.WorldID),
		Level:     d.Level,
		Version:   uint64(d.Version),
		Status:    d.Status,
		Over:      d.Over,
		Snapshot:  d.Snapshot,
		UpdatedAt: d.UpdatedAt,
	}
	if r.Snapshot.ID == "" {
		r.Snapshot.ID = r.WorldID
	}
	return r
}

func MatchRecordToRow(r port.MatchRecord) MatchRow {
	return MatchRow{
		WorldID:   string(r.WorldID),
		Level:     r.Level,
		Version:   r.Version,
		Status:    r.Status,
		Over:      r.Over,
		Tick:      r.Snapshot.Tick,
		Snapshot:  r.Snapshot,
		UpdatedAt: r.UpdatedAt,
	}
}

func MatchRowToRecord(m MatchRow) port.MatchRecord {
	r := port.MatchRecord{
		WorldID:   entity.WorldID(m.WorldID),
		Level:     m.Level,
		Version:   m.Version,
		Status:    m.Status,
		Over:      m.Over,
		Snapshot:  m.Snapshot,
		UpdatedAt: m.UpdatedAt,
	}
	if r.Snapshot.ID == "" {
		r.Snapshot.ID = r.WorldID
	}
	return r
}
