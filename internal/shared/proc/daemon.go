package proc

import (
	"os"
	"os/exec"
)

// 后台运行不用自我 fork（Go 运行时做不了），而是委托标准的进程拉起 API：
// 重新 exec 自身、打上环境变量标记、标准流全部指向空设备，父进程记下 pid 就退出。

const daemonEnv = "VILLAGE_DAEMON"

// InDaemon 报告当前进程是否是被 Detach 拉起的后台子进程。
func InDaemon() bool {
	return os.Getenv(daemonEnv) == "1"
}

// Detach 以后台模式重新拉起自身，返回子进程 pid。
// 调用方（父进程）随后应当写 pid 文件并以成功码退出。
func Detach() (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, err
	}

	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return 0, err
	}
	defer devnull.Close()

	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Env = append(os.Environ(), daemonEnv+"=1")
	cmd.Stdin = devnull
	cmd.Stdout = devnull
	cmd.Stderr = devnull
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	return cmd.Process.Pid, nil
}
