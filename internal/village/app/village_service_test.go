package app

import (
	"errors"
	"testing"

	"VillageIdle/internal/village/domain"
	"VillageIdle/internal/village/entity"
	"VillageIdle/modules/kit/logx"
)

func newTestService(maxVillagers int) (*VillageService, *entity.Village, *fakeStore) {
	v := entity.New(maxVillagers, tickYields(), nil, nil)
	st := &fakeStore{}
	return NewVillageService(v, st, logx.Nop()), v, st
}

func TestAssign_成功后持久化分配表并确认(t *testing.T) {
	svc, v, st := newTestService(100)

	if err := svc.Assign("gold", "10"); err != nil {
		t.Fatalf("期望分配成功，got=%v", err)
	}
	if st.allocSaves != 1 {
		t.Fatalf("期望成功分配恰好保存一次，got=%d", st.allocSaves)
	}
	_, alloc, total := v.Snapshot()
	if alloc[domain.KindGold] != 10 || total != 10 {
		t.Fatalf("期望 gold=10 total=10，got gold=%d total=%d", alloc[domain.KindGold], total)
	}
	for _, k := range []domain.Kind{domain.KindStone, domain.KindWood, domain.KindFood} {
		if alloc[k] != 0 {
			t.Fatalf("期望其余种类保持 0，%s=%d", k, alloc[k])
		}
	}
}

func TestAssign_资源名不在封闭集合_拒绝且不落盘(t *testing.T) {
	svc, v, st := newTestService(100)

	err := svc.Assign("iron", "5")
	if !errors.Is(err, ErrInvalidResource) {
		t.Fatalf("期望无效资源错误，got=%v", err)
	}
	if st.allocSaves != 0 {
		t.Fatalf("期望被拒绝的命令不触发保存，got=%d", st.allocSaves)
	}
	if _, _, total := v.Snapshot(); total != 0 {
		t.Fatalf("期望分配表不动，total=%d", total)
	}
}

func TestAssign_超额携带当前总数与上限(t *testing.T) {
	svc, _, st := newTestService(100)
	if err := svc.Assign("wood", "60"); err != nil {
		t.Fatalf("前置分配失败: %v", err)
	}

	err := svc.Assign("stone", "50")
	if !errors.Is(err, ErrOverAllocation) {
		t.Fatalf("期望超额分配错误，got=%v", err)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("期望 errx 错误模型，got=%T", err)
	}
	data := e.Data()
	if data["assigned"] != 60 || data["max"] != 100 {
		t.Fatalf("期望错误上下文带 assigned=60 max=100，got=%v", data)
	}
	if st.allocSaves != 1 {
		t.Fatalf("期望超额命令不触发第二次保存，got=%d", st.allocSaves)
	}
}

func TestAssign_负数按无效数字拒绝(t *testing.T) {
	svc, _, _ := newTestService(100)
	if err := svc.Assign("food", "-1"); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("期望无效数字错误，got=%v", err)
	}
}

func TestAssign_数量不是整数_拒绝(t *testing.T) {
	svc, _, st := newTestService(100)
	if err := svc.Assign("food", "ten"); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("期望无效数字错误，got=%v", err)
	}
	if st.allocSaves != 0 {
		t.Fatalf("期望被拒绝的命令不触发保存")
	}
}

func TestAssign_资源名先于数量校验(t *testing.T) {
	svc, _, _ := newTestService(100)
	// 两个 token 都不合法时，先报资源名错误
	if err := svc.Assign("iron", "ten"); !errors.Is(err, ErrInvalidResource) {
		t.Fatalf("期望资源名错误优先，got=%v", err)
	}
}

func TestAssign_保存失败不回滚_内存态权威(t *testing.T) {
	v := entity.New(100, tickYields(), nil, nil)
	st := &fakeStore{saveErr: errors.New("io error")}
	svc := NewVillageService(v, st, logx.Nop())

	if err := svc.Assign("gold", "7"); err != nil {
		t.Fatalf("期望保存失败不影响命令成功，got=%v", err)
	}
	_, alloc, _ := v.Snapshot()
	if alloc[domain.KindGold] != 7 {
		t.Fatalf("期望内存态已生效，gold=%d", alloc[domain.KindGold])
	}
}

func TestStatus_纯读不改(t *testing.T) {
	svc, v, st := newTestService(100)
	svc.Status()
	if st.allocSaves != 0 || st.ledgerSaves != 0 {
		t.Fatalf("期望 status 不触发任何保存")
	}
	if _, _, total := v.Snapshot(); total != 0 {
		t.Fatalf("期望零状态下总数为 0，got=%d", total)
	}
}
