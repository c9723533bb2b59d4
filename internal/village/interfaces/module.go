package interfaces

import (
	"time"

	"VillageIdle/internal/village/app"
	"VillageIdle/internal/village/entity"
	"VillageIdle/internal/village/interfaces/repl"
	"VillageIdle/modules/kit/logx"
)

// Module 聚合村庄模块的两块运行面：后台积累循环与前台命令解释器。
// 两者在构造时拿到同一个 Village 共享句柄，不存在环境全局变量。
type Module struct {
	Service     *app.VillageService
	Accumulator *app.Accumulator
	REPL        *repl.REPL
}

func New(village *entity.Village, store app.RecordStore, interval time.Duration, log logx.Logger) *Module {
	svc := app.NewVillageService(village, store, log)
	return &Module{
		Service:     svc,
		Accumulator: app.NewAccumulator(village, store, log, interval),
		REPL:        repl.New(svc, log),
	}
}
