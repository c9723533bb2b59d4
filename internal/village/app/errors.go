package app

import "VillageIdle/modules/kit/errx"

// Code 表示应用层错误码（贴近操作者可见的业务语义）。
type Code = errx.Code

const (
	CodeInvalidResource Code = "VILLAGE_INVALID_RESOURCE"
	CodeInvalidNumber   Code = "VILLAGE_INVALID_NUMBER"
	CodeOverAllocation  Code = "VILLAGE_OVER_ALLOCATION"
	CodeUnknownCommand  Code = "VILLAGE_UNKNOWN_COMMAND"
	CodeBadUsage        Code = "VILLAGE_BAD_USAGE"
)

// Error 复用通用错误模型：对外语义(code/msg)、上下文(data)、溯源链(cause)。
type Error = errx.Error

// 命令校验类哨兵错误（业务拒绝，不捕获栈）。
// 提示必须具体可操作：带上合法资源集合、当前总数/上限、指向 help 等上下文。
var (
	ErrInvalidResource = errx.NewBiz(CodeInvalidResource, "invalid resource type")
	ErrInvalidNumber   = errx.NewBiz(CodeInvalidNumber, "invalid number of villagers, must be a non-negative integer")
	ErrOverAllocation  = errx.NewBiz(CodeOverAllocation, "too many villagers assigned")
	ErrUnknownCommand  = errx.NewBiz(CodeUnknownCommand, "unknown command, type 'help' for available commands")
	ErrBadUsage        = errx.NewBiz(CodeBadUsage, "invalid command format, use: get <resource> with <number> villagers/villager")
)
