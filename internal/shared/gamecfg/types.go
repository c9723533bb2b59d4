package gamecfg

import "time"

type Config struct {
	Game GameConfig `yaml:"game" mapstructure:"game"`
	Data DataConfig `yaml:"data" mapstructure:"data"`
	Log  LogConfig  `yaml:"log" mapstructure:"log"`
}

type GameConfig struct {
	// TotalVillagers 是全村劳动力上限（所有资源分配之和不得超过它）。
	TotalVillagers int `yaml:"total_villagers" mapstructure:"total_villagers"`
	// TickInterval 是积累循环的固定周期。
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`
	// Yields 是每种资源"单个村民每 tick"的产出率，支持热更新。
	Yields map[string]float64 `yaml:"yields" mapstructure:"yields"`
}

type DataConfig struct {
	Dir           string `yaml:"dir" mapstructure:"dir"`
	ResourcesFile string `yaml:"resources_file" mapstructure:"resources_file"`
	VillagersFile string `yaml:"villagers_file" mapstructure:"villagers_file"`
	PidFile       string `yaml:"pid_file" mapstructure:"pid_file"`
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
