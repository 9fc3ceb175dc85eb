package seed

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleSeed) InitRouter(r *gin.RouterGroup) {
	// 演示数据加载端点，可重复调用
	r.GET("/seed", LoadFixtures)
}
