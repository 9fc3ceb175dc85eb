package user

import (
	"github.com/gin-gonic/gin"
)

// InitRouter 初始化用户模块的路由
func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")
	{
		// 注册端点
		userGroup.POST("", RegisterUser)

		// 用户信息端点
		userGroup.GET("/:id", GetUser)

		// 用户信息更新端点
		userGroup.PUT("/:id", UpdateUser)

		// 用户删除端点，关联行级联删除
		userGroup.DELETE("/:id", DeleteUser)
	}
}
