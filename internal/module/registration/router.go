package registration

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleRegistration) InitRouter(r *gin.RouterGroup) {
	// 参加者报名端点
	r.PUT("/volunteer-registrations", RegisterParticipant)
}
