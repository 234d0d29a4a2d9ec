package logs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/serverconfig"

	glogger "gorm.io/gorm/logger"
)

func TestGormLogger_错误与慢查询(t *testing.T) {
	file := filepath.Join(t.TempDir(), "gorm.log")
	if err := Init("gorm-test", serverconfig.LogConfig{FileDir: file, Level: "debug"}); err != nil {
		t.Fatalf("init: %v", err)
	}
	l := NewGormLogger(glogger.Warn, 10*time.Millisecond)
	ctx := context.Background()
	sql := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), sql, errors.New("boom"))
	l.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	// 记录不存在不算错误
	l.Trace(ctx, time.Now(), sql, glogger.ErrRecordNotFound)
	l.LogMode(glogger.Silent).Trace(ctx, time.Now(), sql, errors.New("silent"))
	_ = Sync()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if strings.Count(out, "gorm trace error") != 1 || !strings.Contains(out, "boom") {
		t.Fatalf("期望只记录一条 SQL 错误, got=%s", out)
	}
	if !strings.Contains(out, "gorm slow query") {
		t.Fatalf("期望记录慢查询, got=%s", out)
	}
	if strings.Contains(out, "silent") {
		t.Fatalf("期望 Silent 模式不输出")
	}
}
