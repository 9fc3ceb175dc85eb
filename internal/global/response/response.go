package response

import (
	"net/http"

	"volunet-backend/config"
	"volunet-backend/internal/global/logger"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体
type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Success 返回成功响应，data 最多一个
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "ok",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，HTTP 状态码由错误码推导（code/100）
func Fail(c *gin.Context, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = ErrInternal.WithOrigin(err)
	}

	status := int(e.Code) / 100
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// 原始错误仅在 debug 模式下暴露给前端
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = gin.H{"origin": e.Origin}
	}

	// 存入上下文，供 Sentry 上报判断
	c.Set(ErrorContextKey, e)

	c.JSON(status, body)
}

// Recovery 捕获 handler 中的 panic 并转换为统一错误响应
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("panic recovered",
			"panic", r,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.Abort()
		Fail(c, ErrInternal)
	}
}
