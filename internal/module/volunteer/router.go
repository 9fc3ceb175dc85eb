package volunteer

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleVolunteer) InitRouter(r *gin.RouterGroup) {
	// 活动登记端点
	r.POST("/volunteer", CreateVolunteer)

	// 活动一览端点，支持 student / previous 查询参数
	r.GET("/volunteer-list", ListVolunteers)

	// 活动一览导出端点
	r.GET("/volunteer-list/export", ExportVolunteers)

	volunteerGroup := r.Group("/volunteer")
	{
		// 活动详情端点（含组织者信息）
		volunteerGroup.GET("/:id", GetVolunteer)

		// 教师共享端点
		volunteerGroup.PUT("/:id", ShareVolunteer)

		// 报名者一览端点
		volunteerGroup.GET("/:id/participants", ListParticipants)
	}
}
