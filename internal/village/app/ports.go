package app

import (
	"VillageIdle/internal/village/domain"
	"VillageIdle/modules/kit/logx"
)

// RecordStore 是两条持久化记录的出入口。
//
// Load 一侧永不失败：存档缺失/损坏由实现回退为全零默认并打警告。
// Save 一侧整记录覆盖、最后一次成功写入为准；失败由调用方记日志后继续
// （内存态仍然权威，之后的保存可能成功）。
type RecordStore interface {
	LoadLedger() domain.Ledger
	SaveLedger(domain.Ledger) error
	LoadAllocation() domain.Allocation
	SaveAllocation(domain.Allocation) error
}

type Logger = logx.Logger
