package domain

import (
	"maps"
	"strings"
)

// Kind 是资源种类（封闭集合，运行期不会扩展）。
type Kind string

const (
	KindGold  Kind = "gold"  // 金
	KindStone Kind = "stone" // 石头
	KindWood  Kind = "wood"  // 木
	KindFood  Kind = "food"  // 粮食
)

// Kinds 按固定顺序返回全部资源种类（遍历账本时保证输出顺序稳定）。
func Kinds() []Kind {
	return []Kind{KindGold, KindStone, KindWood, KindFood}
}

// ParseKind 大小写不敏感地解析资源名。
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(s))
	switch k {
	case KindGold, KindStone, KindWood, KindFood:
		return k, true
	}
	return "", false
}

// KindNames 返回全部资源名（报错提示用）。
func KindNames() []string {
	ks := Kinds()
	out := make([]string, 0, len(ks))
	for _, k := range ks {
		out = append(out, string(k))
	}
	return out
}

// Ledger 是资源库存账本。只由积累循环写入，正常运行下各项单调不减。
type Ledger map[Kind]float64

// NewLedger 返回全零账本（首跑/存档缺失时的默认值）。
func NewLedger() Ledger {
	l := make(Ledger, len(Kinds()))
	for _, k := range Kinds() {
		l[k] = 0
	}
	return l
}

func (l Ledger) Clone() Ledger {
	return maps.Clone(l)
}

// Allocation 是村民分配表。只由命令解释器写入，各项恒为非负整数。
type Allocation map[Kind]int

// NewAllocation 返回全零分配表。
func NewAllocation() Allocation {
	a := make(Allocation, len(Kinds()))
	for _, k := range Kinds() {
		a[k] = 0
	}
	return a
}

func (a Allocation) Clone() Allocation {
	return maps.Clone(a)
}

// Total 返回已分配的村民总数。
func (a Allocation) Total() int {
	sum := 0
	for _, n := range a {
		sum += n
	}
	return sum
}

// YieldTable 是"单个村民每 tick"的产出率表（配置期常量，不属于可变状态）。
type YieldTable map[Kind]float64

// YieldTableFrom 把配置里的字符串键产出率表转成强类型表。
// 未知键不会进表，作为第二个返回值交给调用方打警告；缺失的种类补 0。
func YieldTableFrom(raw map[string]float64) (YieldTable, []string) {
	t := make(YieldTable, len(Kinds()))
	for _, k := range Kinds() {
		t[k] = 0
	}
	var unknown []string
	for name, rate := range raw {
		k, ok := ParseKind(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		t[k] = rate
	}
	return t, unknown
}
