package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"VillageIdle/internal/shared/gamecfg"
	"VillageIdle/internal/shared/logs"
	"VillageIdle/internal/shared/proc"
	"VillageIdle/internal/village/domain"
	"VillageIdle/internal/village/entity"
	"VillageIdle/internal/village/infra/store"
	"VillageIdle/internal/village/interfaces"
	"VillageIdle/modules/kit/logx"
)

func main() {
	daemon := flag.Bool("daemon", false, "run detached in background (command interpreter disabled)")
	cfgPath := flag.String("config", "", "config file path (default: search configs/conf.yml upward)")
	flag.Parse()

	// 配置热更新回调先于 Village 构造注册，用持有者 + 锁避免竞态。
	var (
		mu  sync.Mutex
		vil *entity.Village
	)
	gamecfg.Load(*cfgPath, func(c gamecfg.Config) {
		mu.Lock()
		defer mu.Unlock()
		if vil == nil {
			return
		}
		yields, unknown := domain.YieldTableFrom(c.Game.Yields)
		for _, name := range unknown {
			logs.Warn("unknown resource in yields config", zap.String("resource", name))
		}
		vil.SetYields(yields)
		logs.SetLevel(c.Log.Level)
		logs.Info("config reloaded", zap.Any("yields", c.Game.Yields), zap.String("level", c.Log.Level))
	})
	cfg := gamecfg.Conf

	// --daemon 且还没进入后台：单实例守卫 + 拉起后台子进程后父进程退出。
	// 守卫只是尽力而为（pid 可能被复用），但已有活实例时必须立刻拒绝、不碰游戏状态。
	pidPath := filepath.Join(cfg.Data.Dir, cfg.Data.PidFile)
	if *daemon && !proc.InDaemon() {
		if pid, alive := proc.Alive(pidPath); alive {
			fmt.Fprintf(os.Stderr, "game is already running with pid %d\n", pid)
			os.Exit(1)
		}
		childPid, err := proc.Detach()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to detach: %v\n", err)
			os.Exit(1)
		}
		if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to record daemon pid: %v\n", err)
			os.Exit(1)
		}
		if err := proc.WritePid(pidPath, childPid); err != nil {
			fmt.Fprintf(os.Stderr, "failed to record daemon pid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("daemon process id: %d\n", childPid)
		return
	}

	if err := logs.Init("game", cfg.Log); err != nil {
		panic(err)
	}
	log := logx.NewZapLogger(logs.Logger())

	// 首跑引导：两条记录文件缺失则创建全零默认；创建不了属于启动门槛错误
	st := store.NewFileStore(cfg.Data, log)
	if err := st.Ensure(); err != nil {
		logs.Fatal("create record files failed", zap.Error(err))
	}

	yields, unknown := domain.YieldTableFrom(cfg.Game.Yields)
	for _, name := range unknown {
		logs.Warn("unknown resource in yields config", zap.String("resource", name))
	}

	mu.Lock()
	vil = entity.New(cfg.Game.TotalVillagers, yields, st.LoadLedger(), st.LoadAllocation())
	mu.Unlock()

	mod := interfaces.New(vil, st, cfg.Game.TickInterval, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go mod.Accumulator.Run(ctx)

	logs.Info("welcome to the resource management game")

	// 后台模式：命令解释器关闭，只跑积累循环
	if *daemon {
		<-ctx.Done()
		mod.Service.Farewell()
		proc.RemovePid(pidPath)
		logs.Sync()
		return
	}

	logs.Info("type 'help' to see available commands")

	done := make(chan struct{})
	go func() {
		mod.REPL.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
		// exit 命令或输入流关闭：道别已在解释器里完成
	case <-ctx.Done():
		// 中断信号：道别后直接退出，状态已随每次变更落盘，无需回滚
		mod.Service.Farewell()
	}
	logs.Sync()
}
