package mysql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
	"github.com/RafikBaaziz123/ConquEST/internal/world/infra/persistence/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 需要真实的 mysql：CONQUEST_TEST_MYSQL_DSN=root:root@tcp(127.0.0.1:3306)/conquest_test?parseTime=True
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("CONQUEST_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("CONQUEST_TEST_MYSQL_DSN not set")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Migrator().DropTable(&model.MatchRow{}); err != nil {
		t.Fatalf("drop: %v", err)
	}
	t.Cleanup(func() { _ = db.Migrator().DropTable(&model.MatchRow{}) })
	return db
}

func record(id string, version, tick uint64, over bool) *port.MatchRecord {
	return &port.MatchRecord{
		WorldID:   entity.WorldID(id),
		Level:     "valley",
		Version:   version,
		Status:    "playing",
		Over:      over,
		Snapshot:  entity.WorldSnapshot{ID: entity.WorldID(id), Tick: tick},
		UpdatedAt: time.Now().Truncate(time.Second),
	}
}

func TestMatchStore_版本覆盖(t *testing.T) {
	ctx := context.Background()
	s := NewMatchStore(openTestDB(t))
	if err := s.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	saves := []*port.MatchRecord{
		record("m-1", 1, 10, false),
		record("m-1", 3, 30, true),
		record("m-1", 2, 20, false),
	}
	for _, r := range saves {
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("save v%d: %v", r.Version, err)
		}
	}
	if err := s.Save(ctx, nil); err != nil {
		t.Fatalf("期望 nil 记录直接忽略, got=%v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("期望一局, got=%d", len(list))
	}
	got := list[0]
	if got.Version != 3 || got.Snapshot.Tick != 30 || !got.Over {
		t.Fatalf("期望旧版本不覆盖新版本, got=%+v", got)
	}
}
