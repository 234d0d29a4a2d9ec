package serverconfig

import (
	"fmt"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/config"
)

const (
	defaultConfigRelPath = "configs/conf.yml"
	defaultAskTimeout    = 2 * time.Second

	StoreMemory  = "memory"
	StoreMongoDB = "mongodb"
	StoreMySQL   = "mysql"
)

// Conf 只在启动时写入一次；热更新的内容通过 Load 的回调下发。
var Conf Config

// Load 读取配置；path 为空时向上查找 configs/conf.yml。
func Load(path string, onChange func(Config)) error {
	cfg, err := config.Load(path, onChange)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	Conf = cfg
	return nil
}

func (c Config) Validate() error {
	if c.Game.TickRate < 0 {
		return fmt.Errorf("game.tick_rate must not be negative, got=%d", c.Game.TickRate)
	}
	seen := make(map[string]struct{}, len(c.Game.Teams))
	for _, t := range c.Game.Teams {
		if t.Name == "" {
			return fmt.Errorf("game.teams: team name is empty")
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("game.teams: duplicate team %q", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	if c.Game.PlayerTeam != "" {
		if _, ok := seen[c.Game.PlayerTeam]; !ok {
			return fmt.Errorf("game.player_team %q is not in game.teams", c.Game.PlayerTeam)
		}
	}
	for _, name := range c.Game.AITeams {
		if _, ok := seen[name]; !ok {
			return fmt.Errorf("game.ai_teams: %q is not in game.teams", name)
		}
	}
	switch c.Store.DriverName() {
	case StoreMemory:
	case StoreMongoDB:
		if c.Store.MongoDB.URI == "" || c.Store.MongoDB.Database == "" {
			return fmt.Errorf("store.mongodb: uri and database are required")
		}
	case StoreMySQL:
		if c.Store.MySQL.Host == "" || c.Store.MySQL.DBName == "" {
			return fmt.Errorf("store.mysql: host and dbname are required")
		}
	default:
		return fmt.Errorf("store.driver: unknown driver %q", c.Store.Driver)
	}
	return nil
}

// DriverName 未配置时使用内存存储。
func (s StoreConfig) DriverName() string {
	if s.Driver == "" {
		return StoreMemory
	}
	return s.Driver
}

// AskTimeout actor 请求超时，未配置时 2s。
func (g GameConfig) AskTimeout() time.Duration {
	if g.AskTimeoutMs <= 0 {
		return defaultAskTimeout
	}
	return time.Duration(g.AskTimeoutMs) * time.Millisecond
}

// TickInterval 每个 tick 的间隔；TickRate 为 0 时返回 0。
func (g GameConfig) TickInterval() time.Duration {
	if g.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(g.TickRate)
}

// Team 按名字查阵营配置。
func (g GameConfig) Team(name string) (TeamConfig, bool) {
	for _, t := range g.Teams {
		if t.Name == name {
			return t, true
		}
	}
	return TeamConfig{}, false
}

func (o ObserverConfig) Addr() string {
	host := o.Host
	if host == "" {
		host = "0.0.0.0"
	}
	return fmt.Sprintf("%s:%d", host, o.Port)
}
