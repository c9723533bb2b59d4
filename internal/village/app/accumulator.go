package app

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"VillageIdle/internal/village/entity"
)

// Accumulator 在固定周期上推进资源积累，是账本的唯一写入方。
type Accumulator struct {
	village  *entity.Village
	store    RecordStore
	log      Logger
	interval time.Duration
}

func NewAccumulator(village *entity.Village, store RecordStore, log Logger, interval time.Duration) *Accumulator {
	return &Accumulator{
		village:  village,
		store:    store,
		log:      log,
		interval: interval,
	}
}

// Run 阻塞运行，直到 ctx 取消。在独立 goroutine 里调用。
// 错过的 tick 不补算：进程被挂起多久，恢复后也只按下一次到点计一次。
func (a *Accumulator) Run(ctx context.Context) {
	a.log.Info("accumulator started", zap.Duration("interval", a.interval))

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("accumulator stopped")
			return
		case <-ticker.C:
			a.Tick()
		}
	}
}

// Tick 推进一个 tick：全部种类更新完毕后才持久化账本。
func (a *Accumulator) Tick() {
	gains, ledger := a.village.AccrueTick()
	for _, g := range gains {
		// 增量远小于 1.0 是常态，固定 18 位小数输出，不许被四舍五入掉
		a.log.Info("resource updated",
			zap.String("resource", string(g.Kind)),
			zap.String("gain", "+"+strconv.FormatFloat(g.Amount, 'f', 18, 64)),
			zap.Int("villagers", g.Villagers),
		)
	}
	if err := a.store.SaveLedger(ledger); err != nil {
		// 保存失败不致命：内存态权威，下个 tick 再试
		a.log.Error("save resources failed", zap.Error(err))
	}
}
