package app

import (
	"VillageIdle/internal/village/domain"
)

// fakeStore 记录保存调用，模拟持久化出入口。
type fakeStore struct {
	ledger      domain.Ledger
	alloc       domain.Allocation
	ledgerSaves int
	allocSaves  int
	saveErr     error
}

func (f *fakeStore) LoadLedger() domain.Ledger {
	if f.ledger == nil {
		return domain.NewLedger()
	}
	return f.ledger.Clone()
}

func (f *fakeStore) SaveLedger(l domain.Ledger) error {
	f.ledgerSaves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.ledger = l.Clone()
	return nil
}

func (f *fakeStore) LoadAllocation() domain.Allocation {
	if f.alloc == nil {
		return domain.NewAllocation()
	}
	return f.alloc.Clone()
}

func (f *fakeStore) SaveAllocation(a domain.Allocation) error {
	f.allocSaves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.alloc = a.Clone()
	return nil
}
