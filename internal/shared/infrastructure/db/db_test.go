package db

import (
	"testing"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/serverconfig"
)

func TestDSN(t *testing.T) {
	got := DSN(serverconfig.MySQLConfig{Host: "10.0.0.1", User: "u", Password: "p", DBName: "conquest"})
	want := "u:p@tcp(10.0.0.1:3306)/conquest?charset=utf8mb4&parseTime=True&loc=Local"
	if got != want {
		t.Fatalf("got=%s", got)
	}
}

func TestOpen_缺少配置(t *testing.T) {
	if _, err := Open(serverconfig.MySQLConfig{}); err == nil {
		t.Fatalf("期望 host 为空时直接报错")
	}
}
