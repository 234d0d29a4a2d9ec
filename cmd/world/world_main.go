package main

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/config"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/infrastructure/db"
	sharedmongo "github.com/RafikBaaziz123/ConquEST/internal/shared/infrastructure/mongo"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/logs"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/serverconfig"
	transporthttp "github.com/RafikBaaziz123/ConquEST/internal/shared/transport/http"
	"github.com/RafikBaaziz123/ConquEST/internal/shared/transport/ws"
	worldactor "github.com/RafikBaaziz123/ConquEST/internal/world/actor"
	worldactors "github.com/RafikBaaziz123/ConquEST/internal/world/actors"
	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/infra/level"
	"github.com/RafikBaaziz123/ConquEST/internal/world/infra/persistence/memory"
	worldmongo "github.com/RafikBaaziz123/ConquEST/internal/world/infra/persistence/mongodb"
	worldmysql "github.com/RafikBaaziz123/ConquEST/internal/world/infra/persistence/mysql"
	"github.com/RafikBaaziz123/ConquEST/internal/world/interfaces"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 只有日志级别支持热更新，其余配置需要重启
	err := serverconfig.Load("", func(next serverconfig.Config) {
		if logs.SetLevel(next.Log.Level) {
			logs.Info("日志级别已更新", zap.String("level", next.Log.Level))
		}
	})
	if err != nil {
		panic(err)
	}
	if err := logs.Init("world", serverconfig.Conf.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()
	logs.Info("conf", zap.Any("conf", serverconfig.Conf))

	game := serverconfig.Conf.Game
	roster, err := level.RosterFromConfig(game.Teams)
	if err != nil {
		logs.Fatal("decode team roster failed", zap.Error(err))
	}
	levels := level.NewRepository(levelDir(game.LevelDir), roster)
	store, closeStore, err := openStore(serverconfig.Conf.Store)
	if err != nil {
		logs.Fatal("open match store failed", zap.String("driver", serverconfig.Conf.Store.DriverName()), zap.Error(err))
	}
	defer closeStore()
	baseLogger := logx.NewZapLogger(logs.Logger())

	// runtime 先于 store 关闭，最后一次落盘还能写进去
	runtime := worldactor.NewRuntime(levels, store, worldactors.MatchConfig{
		PlayerTeam:   game.PlayerTeam,
		AITeams:      game.AITeams,
		TickInterval: game.TickInterval(),
		Logger:       baseLogger,
	}, game.AskTimeout())
	defer runtime.Shutdown()

	if game.Level != "" {
		started, err := runtime.StartMatch(context.Background(), "", game.Level)
		if err != nil {
			logs.Fatal("start default match failed", zap.String("level", game.Level), zap.Error(err))
		}
		logs.Info("默认对局已开始", zap.String("world_id", started.WorldId), zap.String("level", started.Level))
	}

	module := interfaces.New(runtime, levels, game.Level, baseLogger)
	httpServer := transporthttp.NewHttpServer(serverconfig.Conf.Observer.Addr(), nil, baseLogger)
	httpServer.Register(module)

	wsRouter := ws.NewRouter(baseLogger)
	wsRouter.Register(module)
	httpServer.Engine().GET("/ws", gin.WrapH(ws.NewServer(wsRouter, baseLogger)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logs.Info("observer http started", zap.String("addr", serverconfig.Conf.Observer.Addr()))
		return httpServer.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		logs.Info("收到退出信号，准备优雅退出")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logs.Error("服务异常退出", zap.Error(err))
	}
}

// levelDir 相对路径按配置文件所在项目根目录解析。
func levelDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	cfgPath, err := config.Resolve("")
	if err != nil {
		return dir
	}
	root := filepath.Dir(filepath.Dir(cfgPath))
	return filepath.Join(root, dir)
}

// openStore 按配置选择对局记录的存储后端。
func openStore(cfg serverconfig.StoreConfig) (port.MatchStore, func(), error) {
	switch cfg.DriverName() {
	case serverconfig.StoreMongoDB:
		mdb, err := sharedmongo.Open(cfg.MongoDB, logs.Logger())
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = mdb.Close(context.Background()) }
		store := worldmongo.NewMatchStore(mdb.Database)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
		return store, closeFn, nil
	case serverconfig.StoreMySQL:
		gormDB, err := db.Open(cfg.MySQL)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		store := worldmysql.NewMatchStore(gormDB)
		if err := store.AutoMigrate(); err != nil {
			closeFn()
			return nil, nil, err
		}
		return store, closeFn, nil
	default:
		return memory.NewMatchStore(), func() {}, nil
	}
}
