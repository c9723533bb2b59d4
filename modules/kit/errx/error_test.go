package errx

import (
	"errors"
	"testing"
)

func TestError_Is_只按code比较语义(t *testing.T) {
	e1 := NewBiz("BIZ_A", "a").WithData("k", "v").WithCause(errors.New("cause1"))
	e2 := NewBiz("BIZ_A", "a2").WithData("k2", "v2").WithCause(errors.New("cause2"))
	if !errors.Is(e1, e2) {
		t.Fatalf("期望 errors.Is 只按 code 判断语义，e1=%v e2=%v", e1, e2)
	}
	if errors.Is(e1, NewBiz("BIZ_B", "a")) {
		t.Fatalf("期望不同 code 不相等")
	}
}

func TestError_业务错误不捕获栈(t *testing.T) {
	cause := errors.New("file gone")
	err := NewBiz("BIZ_X", "拒绝").WithCause(cause)
	if got := err.Stack(); got != nil {
		t.Fatalf("期望业务错误不捕获栈，got=%v", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链不丢，err=%v", err)
	}
}

func TestError_系统错误只捕获一次栈(t *testing.T) {
	sys := NewSys("SYS_IO", "存档写入失败").WithCause(errors.New("disk full"))
	if len(sys.Stack()) == 0 {
		t.Fatalf("期望系统错误在挂 cause 处捕获栈")
	}
	sys2 := NewSys("SYS_IO2", "上层包装").WithCause(sys)
	if got := sys2.Stack(); got != nil {
		t.Fatalf("期望上层不重复捕获栈（cause 链里已有），got=%v", got)
	}
}

func TestError_WithData不污染哨兵(t *testing.T) {
	sentinel := NewBiz("BIZ_Y", "y")
	derived := sentinel.WithData("n", 3)
	if sentinel.Data() != nil {
		t.Fatalf("期望哨兵错误保持无 data，got=%v", sentinel.Data())
	}
	if got := derived.Data()["n"]; got != 3 {
		t.Fatalf("期望派生错误携带 data，got=%v", got)
	}
}
