package entity

import (
	"sync"

	"VillageIdle/internal/village/domain"
)

// Village 是两条共享记录的唯一持有者，在构造时分别交给积累循环和命令解释器。
//
// 写入方各只有一个：账本只被积累循环写，分配表只被命令解释器写。
// 但 status 要跨多个种类一致地读，所以所有访问都过同一把读写锁，
// 不允许读到"半个 tick"的账本。
type Village struct {
	mu           sync.RWMutex
	maxVillagers int
	yields       domain.YieldTable
	ledger       domain.Ledger
	alloc        domain.Allocation
}

// Gain 是一个 tick 里单种资源的增量明细（日志要求保留亚单位精度）。
type Gain struct {
	Kind      domain.Kind
	Villagers int     // 本 tick 参与的村民数
	Amount    float64 // 本 tick 增量
	Total     float64 // 更新后的库存
}

func New(maxVillagers int, yields domain.YieldTable, ledger domain.Ledger, alloc domain.Allocation) *Village {
	if ledger == nil {
		ledger = domain.NewLedger()
	}
	if alloc == nil {
		alloc = domain.NewAllocation()
	}
	return &Village{
		maxVillagers: maxVillagers,
		yields:       yields,
		ledger:       ledger.Clone(),
		alloc:        alloc.Clone(),
	}
}

// Assign 用新数量整体替换某一种资源上的村民数。
// 校验全部通过才落地：数量非负 → 替换后总数不超上限；失败时不产生任何变更。
// 成功时返回分配表快照，供调用方持久化。
func (v *Village) Assign(kind domain.Kind, count int) (domain.Allocation, error) {
	if count < 0 {
		return nil, domain.ErrNegativeCount
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	assigned := v.alloc.Total()
	if assigned-v.alloc[kind]+count > v.maxVillagers {
		return nil, &domain.OverAllocationError{Assigned: assigned, Max: v.maxVillagers}
	}
	v.alloc[kind] = count
	return v.alloc.Clone(), nil
}

// AccrueTick 按当前分配和产出率推进一个 tick：
// gain = 村民数 × 产出率，负增益防御性钳到 0，全部种类更新完才返回。
// 返回逐种增量明细和更新后的账本快照，供日志输出与持久化。
func (v *Village) AccrueTick() ([]Gain, domain.Ledger) {
	v.mu.Lock()
	defer v.mu.Unlock()

	gains := make([]Gain, 0, len(domain.Kinds()))
	for _, k := range domain.Kinds() {
		n := v.alloc[k]
		gain := float64(n) * v.yields[k]
		if gain < 0 {
			gain = 0
		}
		v.ledger[k] += gain
		gains = append(gains, Gain{
			Kind:      k,
			Villagers: n,
			Amount:    gain,
			Total:     v.ledger[k],
		})
	}
	return gains, v.ledger.Clone()
}

// Snapshot 一致性读取两条记录（status 用），返回的都是副本。
func (v *Village) Snapshot() (domain.Ledger, domain.Allocation, int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.ledger.Clone(), v.alloc.Clone(), v.alloc.Total()
}

// SetYields 整表替换产出率（配置热更新）。
func (v *Village) SetYields(yields domain.YieldTable) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.yields = yields
}

// MaxVillagers 返回劳动力上限。
func (v *Village) MaxVillagers() int {
	return v.maxVillagers
}
