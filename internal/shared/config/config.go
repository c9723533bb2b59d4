package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const defaultConfigRelPath = "configs/conf.yml"

// Load 读取配置文件并反序列化到 out。
//
// 约定：
// 1) 传入 path（相对/绝对路径）则优先使用；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`。
//
// onChange 非 nil 时开启文件监听：配置变更后重新反序列化并回调。
// 配置属于启动门槛，文件缺失/不可解析直接 panic（由进程入口兜底报告后退出）。
func Load(path string, out any, onChange func()) {
	curDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	if path == "" {
		path = findConfigUpward(curDir)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(curDir, path)
	}
	load(path, out, onChange)
}

func load(configPath string, out any, onChange func()) {
	if !fileExist(configPath) {
		panic(fmt.Sprintf("config file not exist, configPath=%v", configPath))
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	// tick_interval 等时长字段支持 "10s" 这样的写法
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))

	if onChange != nil {
		v.OnConfigChange(func(e fsnotify.Event) {
			if err := v.Unmarshal(out, hook); err != nil {
				// 热更新失败不致命：保留上一份配置继续跑
				fmt.Fprintf(os.Stderr, "reload config failed: %v\n", err)
				return
			}
			onChange()
		})
		v.WatchConfig()
	}

	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}
	if err := v.Unmarshal(out, hook); err != nil {
		panic(err)
	}
}

func findConfigUpward(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("config file not exist, searched configs/conf.yml from: " + startDir)
		}
		dir = parent
	}
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
