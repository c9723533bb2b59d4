package proc

import (
	"os"
	"strconv"
	"strings"
	"syscall"
)

// pid 文件单实例守卫。
// 注意这只是"尽力而为"：pid 可能被无关进程复用，这里不追求强一致，
// 只防住最常见的"同一台机器起了两份"的情况。

// Alive 读取 pid 文件并探测其中记录的进程是否仍然存活。
// 文件不存在、内容损坏、进程已消失都视为"没有存活实例"。
func Alive(pidPath string) (int, bool) {
	raw, err := os.ReadFile(pidPath)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	p, err := os.FindProcess(pid)
	if err != nil {
		return 0, false
	}
	// 信号 0 只做存在性探测，不会真的打扰对方进程
	if err := p.Signal(syscall.Signal(0)); err != nil {
		return 0, false
	}
	return pid, true
}

// WritePid 把 pid 记录到文件（整文件覆盖）。
func WritePid(pidPath string, pid int) error {
	return os.WriteFile(pidPath, []byte(strconv.Itoa(pid)), 0644)
}

// RemovePid 清理 pid 文件，文件本来就不存在时静默。
func RemovePid(pidPath string) {
	_ = os.Remove(pidPath)
}
