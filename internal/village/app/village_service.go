package app

import (
	"errors"
	"strconv"

	"go.uber.org/zap"

	"VillageIdle/internal/village/domain"
	"VillageIdle/internal/village/entity"
	"VillageIdle/modules/kit/errx"
)

// VillageService 承载命令解释器的全部操作。
// 解释器无状态：每条命令独立校验、整体生效或整体拒绝，不存在半程变更。
// 所有回应都走可观测通道（日志），没有单独的应答通道。
type VillageService struct {
	village *entity.Village
	store   RecordStore
	log     Logger
}

func NewVillageService(village *entity.Village, store RecordStore, log Logger) *VillageService {
	return &VillageService{
		village: village,
		store:   store,
		log:     log,
	}
}

// Assign 处理重新分配：校验资源名 → 数量 → 劳动力上限，通过后整体替换、
// 持久化分配表并确认。任何一步失败都原样拒绝，状态不动。
func (s *VillageService) Assign(rawKind, rawCount string) error {
	kind, ok := domain.ParseKind(rawKind)
	if !ok {
		return ErrInvalidResource.
			WithData("resource", rawKind).
			WithData("valid", domain.KindNames())
	}

	count, convErr := strconv.Atoi(rawCount)
	if convErr != nil {
		return ErrInvalidNumber.WithData("token", rawCount)
	}

	alloc, err := s.village.Assign(kind, count)
	if err != nil {
		var over *domain.OverAllocationError
		switch {
		case errors.As(err, &over):
			return ErrOverAllocation.
				WithData("assigned", over.Assigned).
				WithData("max", over.Max)
		case errors.Is(err, domain.ErrNegativeCount):
			return ErrInvalidNumber.WithData("count", count)
		default:
			return errx.ErrInternal.WithCause(err)
		}
	}

	if err := s.store.SaveAllocation(alloc); err != nil {
		// 保存失败不回滚：内存态权威，记一笔错误，后续保存可能成功
		s.log.Error("save villagers failed", zap.Error(err))
	}
	s.log.Info("villagers assigned",
		zap.String("resource", string(kind)),
		zap.Int("count", count),
		zap.Int("total", alloc.Total()),
	)
	return nil
}

// Status 报告账本、分配表与已分配总数，纯读不改。
// 快照来自同一把锁下的一致性读取，不会看到半个 tick 的账本。
func (s *VillageService) Status() {
	ledger, alloc, total := s.village.Snapshot()

	ledgerFields := make([]zap.Field, 0, len(domain.Kinds()))
	allocFields := make([]zap.Field, 0, len(domain.Kinds()))
	for _, k := range domain.Kinds() {
		ledgerFields = append(ledgerFields, zap.String(string(k), strconv.FormatFloat(ledger[k], 'f', -1, 64)))
		allocFields = append(allocFields, zap.Int(string(k), alloc[k]))
	}

	s.log.Info("current resources", ledgerFields...)
	s.log.Info("villager allocation", allocFields...)
	s.log.Info("total gathering villagers", zap.Int("total", total))
}

// Help 报告全部命令及语法。
func (s *VillageService) Help() {
	s.log.Info("available commands:")
	s.log.Info("  get <resource> with <number> villagers/villager - assign villagers to a resource (e.g. get gold with 10 villagers)")
	s.log.Info("  status - display current resource levels and villager allocation")
	s.log.Info("  help   - display this help message")
	s.log.Info("  exit   - exit the game")
}

// Farewell 在进程退出前道别（exit 命令或收到中断信号时调用）。
func (s *VillageService) Farewell() {
	s.log.Info("exiting game, goodbye")
}
