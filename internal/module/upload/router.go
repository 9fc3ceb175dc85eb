package upload

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleUpload) InitRouter(r *gin.RouterGroup) {
	uploadGroup := r.Group("/upload")
	{
		// 图片直传预签名端点（地点图片、用户头像）
		uploadGroup.GET("/presign", Presign)
	}
}
