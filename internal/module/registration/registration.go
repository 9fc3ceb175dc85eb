package registration

import (
	"strconv"

	"volunet-backend/internal/global/database"
	"volunet-backend/internal/global/response"
	"volunet-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RegisterReq 定义报名请求的结构体
// 前端以字符串形式提交两个ID，需要转换为数字
type RegisterReq struct {
	UserID      string `json:"userId" binding:"required"`      // 用户ID
	VolunteerID string `json:"volunteerId" binding:"required"` // 活动ID
}

// RegisterParticipant 处理参加者报名请求
// 重复报名检查、人数上限检查、关联插入与人数递增在同一事务内完成
func RegisterParticipant(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定报名请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	userID, err := strconv.ParseUint(req.UserID, 10, 64)
	if err != nil {
		log.Warn("用户ID无效", "user_id", req.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithTips("userId 必须为数字"))
		return
	}
	volunteerID, err := strconv.ParseUint(req.VolunteerID, 10, 64)
	if err != nil {
		log.Warn("活动ID无效", "volunteer_id", req.VolunteerID)
		response.Fail(c, response.ErrInvalidRequest.WithTips("volunteerId 必须为数字"))
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("用户不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		var volunteer model.Volunteer
		if err := tx.First(&volunteer, "id = ?", volunteerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("活动不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		// 重复报名检查
		var existing int64
		if err := tx.Model(&model.UserVolunteer{}).
			Where("user_id = ? AND volunteer_id = ? AND role = ?", userID, volunteerID, model.RoleParticipant).
			Count(&existing).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		if existing > 0 {
			return response.ErrAlreadyExists.WithTips("已报名该活动")
		}

		// 人数上限检查
		if volunteer.CurrentPeople >= volunteer.MaxPeople {
			return response.ErrCapacityFull
		}

		link := model.UserVolunteer{
			UserID:      uint(userID),
			VolunteerID: uint(volunteerID),
			Role:        model.RoleParticipant,
		}
		if err := tx.Create(&link).Error; err != nil {
			// 唯一索引兜住并发下绕过计数检查的重复报名
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return response.ErrAlreadyExists.WithTips("已报名该活动")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		// 条件递增，current_people 不会越过 max_people，并发抢最后一个名额时只有一方生效
		result := tx.Model(&model.Volunteer{}).
			Where("id = ? AND current_people < max_people", volunteerID).
			Update("current_people", gorm.Expr("current_people + 1"))
		if result.Error != nil {
			return response.ErrDatabase.WithOrigin(result.Error)
		}
		if result.RowsAffected == 0 {
			return response.ErrCapacityFull
		}

		return nil
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			log.Warn("报名失败", "error", err, "user_id", userID, "volunteer_id", volunteerID)
			response.Fail(c, respErr)
			return
		}
		log.Error("报名失败", "error", err, "user_id", userID, "volunteer_id", volunteerID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("报名成功", "user_id", userID, "volunteer_id", volunteerID)

	response.Success(c, gin.H{
		"message": "报名成功",
	})
}
