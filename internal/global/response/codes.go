package response

// 错误码为稳定的机器可读标识，前两位/三位即 HTTP 状态码（code/100）。
// 客户端按 code 分支，msg 仅供人读。
var (
	ErrInvalidRequest = newError(40000, "请求参数无效")
	ErrNotFound       = newError(40400, "资源不存在")
	ErrAlreadyExists  = newError(40900, "资源已存在")
	ErrCapacityFull   = newError(40901, "活动报名人数已满")
	ErrDatabase       = newError(50000, "数据库操作失败")
	ErrInternal       = newError(50001, "服务器内部错误")
)
