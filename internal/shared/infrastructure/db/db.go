package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/logs"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/serverconfig"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

func Open(cfg serverconfig.MySQLConfig) (*gorm.DB, error) {
	if cfg.Host == "" || cfg.DBName == "" {
		return nil, errors.New("mysql host or dbname is empty")
	}

	slow := time.Duration(cfg.SlowMs) * time.Millisecond
	if slow <= 0 {
		slow = defaultSlowThreshold
	}
	gcfg := &gorm.Config{
		Logger: logs.NewGormLogger(logger.Warn, slow),
	}

	db, err := gorm.Open(mysql.Open(DSN(cfg)), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConn)
	sqlDB.SetMaxIdleConns(cfg.MaxIdle)

	logs.Info("open db success",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("db", cfg.DBName),
		zap.String("user", cfg.User),
	)
	return db, nil
}

// DSN username:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func DSN(cfg serverconfig.MySQLConfig) string {
	port := cfg.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		port,
		cfg.DBName,
	)
}
