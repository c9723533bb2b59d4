package errx

// 这里只放“跨模块统一”的系统类错误码。
// 业务域错误码（例如 VILLAGE_OVER_ALLOCATION）由各业务包自行定义，不允许集中到 kit 里。

const (
	// CodeInternal 表示进程内部不可预期错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 表示依赖不可用（磁盘 IO、存档文件等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
)

// 统一系统类哨兵错误（通过 WithData/WithCause 派生使用，禁止原地修改）。
var (
	ErrInternal    = NewSys(CodeInternal, "内部错误")
	ErrUnavailable = NewSys(CodeUnavailable, "依赖不可用")
)
