package serverconfig

type Config struct {
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Game     GameConfig     `yaml:"game" mapstructure:"game"`
	Observer ObserverConfig `yaml:"observer" mapstructure:"observer"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type GameConfig struct {
	// 每秒 tick 数；0 表示不自动推进，只能通过 Step 手动推进
	TickRate     int          `yaml:"tick_rate" mapstructure:"tick_rate"`
	LevelDir     string       `yaml:"level_dir" mapstructure:"level_dir"`
	Level        string       `yaml:"level" mapstructure:"level"`
	PlayerTeam   string       `yaml:"player_team" mapstructure:"player_team"`
	AITeams      []string     `yaml:"ai_teams" mapstructure:"ai_teams"`
	Teams        []TeamConfig `yaml:"teams" mapstructure:"teams"`
	AskTimeoutMs int          `yaml:"ask_timeout_ms" mapstructure:"ask_timeout_ms"`
}

// TeamConfig 阵营的基础属性。
type TeamConfig struct {
	Name             string `yaml:"name" mapstructure:"name"`
	Attack           int    `yaml:"attack" mapstructure:"attack"`
	Defense          int    `yaml:"defense" mapstructure:"defense"`
	Speed            int    `yaml:"speed" mapstructure:"speed"`
	MaxPopulation    int    `yaml:"max_population" mapstructure:"max_population"`
	RegenerationRate int    `yaml:"regeneration_rate" mapstructure:"regeneration_rate"`
}

type ObserverConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

// StoreConfig 对局记录的存储后端。
type StoreConfig struct {
	// memory / mongodb / mysql，为空按 memory
	Driver  string        `yaml:"driver" mapstructure:"driver"`
	MongoDB MongoDBConfig `yaml:"mongodb" mapstructure:"mongodb"`
	MySQL   MySQLConfig   `yaml:"mysql" mapstructure:"mysql"`
}

type MongoDBConfig struct {
	URI             string `yaml:"uri" mapstructure:"uri"`
	Database        string `yaml:"database" mapstructure:"database"`
	ConnectTimeoutS int    `yaml:"connect_timeout_s" mapstructure:"connect_timeout_s"`
}

type MySQLConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	MaxIdle  int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn  int    `yaml:"max_conn" mapstructure:"max_conn"`
	// SlowMs 超过该耗时的 SQL 记为慢查询
	SlowMs int `yaml:"slow_ms" mapstructure:"slow_ms"`
}
