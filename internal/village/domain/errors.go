package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind 表示资源名不在封闭集合内。
	ErrUnknownKind = errors.New("unknown resource kind")
	// ErrNegativeCount 表示村民数量为负（分配表各项必须非负）。
	ErrNegativeCount = errors.New("villager count must be non-negative")
)

// OverAllocationError 表示这次重新分配会突破劳动力上限。
// 携带当前已分配总数与上限，报错时原样回给操作者。
type OverAllocationError struct {
	Assigned int // 变更前已分配总数
	Max      int // 劳动力上限
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("too many villagers: %d assigned, max %d", e.Assigned, e.Max)
}
