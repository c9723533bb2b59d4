package store

import (
	"os"
	"path/filepath"
	"testing"

	"VillageIdle/internal/shared/gamecfg"
	"VillageIdle/internal/village/domain"
	"VillageIdle/modules/kit/logx"
)

func newTestStore(t *testing.T) (*FileStore, gamecfg.DataConfig) {
	t.Helper()
	cfg := gamecfg.DataConfig{
		Dir:           t.TempDir(),
		ResourcesFile: "resources.json",
		VillagersFile: "villagers.json",
	}
	return NewFileStore(cfg, logx.Nop()), cfg
}

func TestEnsure_首跑创建全零记录(t *testing.T) {
	s, cfg := newTestStore(t)
	if err := s.Ensure(); err != nil {
		t.Fatalf("期望首跑创建成功，got=%v", err)
	}
	for _, name := range []string{cfg.ResourcesFile, cfg.VillagersFile} {
		if _, err := os.Stat(filepath.Join(cfg.Dir, name)); err != nil {
			t.Fatalf("期望 %s 已创建，got=%v", name, err)
		}
	}

	ledger := s.LoadLedger()
	alloc := s.LoadAllocation()
	for _, k := range domain.Kinds() {
		if ledger[k] != 0 || alloc[k] != 0 {
			t.Fatalf("期望首跑记录全零，%s ledger=%v alloc=%d", k, ledger[k], alloc[k])
		}
	}
}

func TestEnsure_已有记录不覆盖(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Ensure(); err != nil {
		t.Fatalf("首跑创建失败: %v", err)
	}
	ledger := domain.NewLedger()
	ledger[domain.KindWood] = 12.5
	if err := s.SaveLedger(ledger); err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	if err := s.Ensure(); err != nil {
		t.Fatalf("二次 Ensure 失败: %v", err)
	}
	if got := s.LoadLedger()[domain.KindWood]; got != 12.5 {
		t.Fatalf("期望 Ensure 不覆盖已有记录，wood=%v", got)
	}
}

func TestSaveLoad_往返相等(t *testing.T) {
	s, _ := newTestStore(t)

	ledger := domain.NewLedger()
	ledger[domain.KindGold] = 0.0004
	ledger[domain.KindStone] = 1234.5
	if err := s.SaveLedger(ledger); err != nil {
		t.Fatalf("保存账本失败: %v", err)
	}
	got := s.LoadLedger()
	for _, k := range domain.Kinds() {
		if got[k] != ledger[k] {
			t.Fatalf("期望账本往返相等，%s want=%v got=%v", k, ledger[k], got[k])
		}
	}

	alloc := domain.NewAllocation()
	alloc[domain.KindFood] = 42
	if err := s.SaveAllocation(alloc); err != nil {
		t.Fatalf("保存分配表失败: %v", err)
	}
	got2 := s.LoadAllocation()
	for _, k := range domain.Kinds() {
		if got2[k] != alloc[k] {
			t.Fatalf("期望分配表往返相等，%s want=%d got=%d", k, alloc[k], got2[k])
		}
	}
}

func TestLoad_记录缺失回退全零(t *testing.T) {
	s, _ := newTestStore(t)
	ledger := s.LoadLedger()
	for _, k := range domain.Kinds() {
		if ledger[k] != 0 {
			t.Fatalf("期望缺失记录回退全零，%s=%v", k, ledger[k])
		}
	}
}

func TestLoad_记录损坏回退全零(t *testing.T) {
	s, cfg := newTestStore(t)
	path := filepath.Join(cfg.Dir, cfg.VillagersFile)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("写入损坏文件失败: %v", err)
	}
	alloc := s.LoadAllocation()
	for _, k := range domain.Kinds() {
		if alloc[k] != 0 {
			t.Fatalf("期望损坏记录回退全零，%s=%d", k, alloc[k])
		}
	}
}

func TestLoad_未知键忽略_已知键照搬(t *testing.T) {
	s, cfg := newTestStore(t)
	raw := []byte(`{"gold": 3.5, "mithril": 99}`)
	if err := os.WriteFile(filepath.Join(cfg.Dir, cfg.ResourcesFile), raw, 0644); err != nil {
		t.Fatalf("写入记录失败: %v", err)
	}
	ledger := s.LoadLedger()
	if ledger[domain.KindGold] != 3.5 {
		t.Fatalf("期望已知键照搬，gold=%v", ledger[domain.KindGold])
	}
	if _, ok := ledger["mithril"]; ok {
		t.Fatalf("期望未知键不进账本")
	}
}
