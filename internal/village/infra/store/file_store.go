package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"VillageIdle/internal/shared/gamecfg"
	"VillageIdle/internal/village/domain"
	"VillageIdle/modules/kit/logx"
)

// FileStore 把两条记录存成扁平 JSON 文档（资源名 → 数值）。
// 持久化粒度是"整文件覆盖"：没有增量写，最后一次成功写入为准。
type FileStore struct {
	resourcesPath string
	villagersPath string
	log           logx.Logger
}

func NewFileStore(cfg gamecfg.DataConfig, log logx.Logger) *FileStore {
	return &FileStore{
		resourcesPath: filepath.Join(cfg.Dir, cfg.ResourcesFile),
		villagersPath: filepath.Join(cfg.Dir, cfg.VillagersFile),
		log:           log,
	}
}

// Ensure 首跑时创建缺失的记录文件（全零默认）。
// 创建失败属于启动门槛错误，原样上抛，由进程入口以非零码退出。
func (s *FileStore) Ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.resourcesPath), 0755); err != nil {
		return err
	}
	if err := s.ensureFile(s.resourcesPath, domain.NewLedger()); err != nil {
		return err
	}
	return s.ensureFile(s.villagersPath, domain.NewAllocation())
}

func (s *FileStore) ensureFile(path string, zero any) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := writeJSON(path, zero); err != nil {
		return err
	}
	s.log.Info("created record file", zap.String("path", path))
	return nil
}

// LoadLedger 读取资源账本。缺失/损坏回退全零默认并打警告，永不失败。
func (s *FileStore) LoadLedger() domain.Ledger {
	ledger := domain.NewLedger()
	raw := map[string]float64{}
	if !s.read(s.resourcesPath, &raw) {
		return ledger
	}
	for name, v := range raw {
		if k, ok := domain.ParseKind(name); ok {
			ledger[k] = v
		}
	}
	return ledger
}

// SaveLedger 整文件覆盖写入资源账本。
func (s *FileStore) SaveLedger(l domain.Ledger) error {
	return writeJSON(s.resourcesPath, l)
}

// LoadAllocation 读取村民分配表。缺失/损坏回退全零默认并打警告，永不失败。
func (s *FileStore) LoadAllocation() domain.Allocation {
	alloc := domain.NewAllocation()
	raw := map[string]int{}
	if !s.read(s.villagersPath, &raw) {
		return alloc
	}
	for name, n := range raw {
		if k, ok := domain.ParseKind(name); ok {
			alloc[k] = n
		}
	}
	return alloc
}

// SaveAllocation 整文件覆盖写入村民分配表。
func (s *FileStore) SaveAllocation(a domain.Allocation) error {
	return writeJSON(s.villagersPath, a)
}

// read 把 JSON 记录读进 out；任何失败都按"记录缺失"处理：打警告、返回 false。
func (s *FileStore) read(path string, out any) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("record missing, falling back to zero defaults",
			zap.String("path", path), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("record corrupt, falling back to zero defaults",
			zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
