package gamecfg

import (
	"time"

	"VillageIdle/internal/shared/config"
)

var Conf Config

// Load 加载游戏配置并补齐默认值。
// onReload 非 nil 时开启热更新：配置文件变更后带着新配置回调（产出率、日志级别等）。
func Load(path string, onReload func(Config)) {
	var onChange func()
	if onReload != nil {
		onChange = func() {
			applyDefaults(&Conf)
			onReload(Conf)
		}
	}
	config.Load(path, &Conf, onChange)
	applyDefaults(&Conf)
}

// applyDefaults 把缺失的配置项回填为原版数值，保证配置文件可以只写想改的部分。
func applyDefaults(c *Config) {
	if c.Game.TotalVillagers <= 0 {
		c.Game.TotalVillagers = 100
	}
	if c.Game.TickInterval <= 0 {
		c.Game.TickInterval = 10 * time.Second
	}
	if len(c.Game.Yields) == 0 {
		c.Game.Yields = map[string]float64{
			"gold":  0.00004,
			"stone": 0.90,
			"wood":  0.001,
			"food":  0.0001,
		}
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if c.Data.ResourcesFile == "" {
		c.Data.ResourcesFile = "resources.json"
	}
	if c.Data.VillagersFile == "" {
		c.Data.VillagersFile = "villagers.json"
	}
	if c.Data.PidFile == "" {
		c.Data.PidFile = "game.pid"
	}
	if c.Log.MaxSize <= 0 {
		c.Log.MaxSize = 20 // 原版 MAX_LOG_SIZE = 20MB
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 1 // 原版只保留一代备份
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
