package volunteer

import (
	"strconv"
	"time"

	"volunet-backend/internal/global/database"
	"volunet-backend/internal/global/response"
	"volunet-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// VolunteerCreateReq 定义活动登记请求的结构体
type VolunteerCreateReq struct {
	OrganizationName string `json:"organizationName" binding:"required"`                                               // 主办团体名称
	Category         string `json:"category" binding:"required,oneof=EnvironmentProtection Welfare CommunityActivity"` // 活动类别
	VolunteerName    string `json:"volunteerName" binding:"required"`                                                  // 活动名称
	Location         string `json:"location" binding:"required"`                                                       // 活动地点
	LocationImageUrl string `json:"locationImageUrl"`                                                                  // 地点图片URL
	EventDate        string `json:"eventDate" binding:"required"`                                                      // 活动时间，RFC3339
	MaxPeople        int    `json:"maxPeople" binding:"required,gt=0"`                                                 // 人数上限
	Description      string `json:"description"`                                                                       // 活动说明
	UserID           uint   `json:"userId" binding:"required"`                                                         // 登记者用户ID
}

// CreateVolunteer 处理活动登记请求
// 在同一事务内写入活动行和组织者关联行，任一失败整体回滚
func CreateVolunteer(c *gin.Context) {
	var req VolunteerCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定活动登记请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		log.Error("活动时间格式错误", "error", err, "event_date", req.EventDate)
		response.Fail(c, response.ErrInvalidRequest.WithTips("eventDate 必须为 RFC3339 格式"))
		return
	}

	volunteer := model.Volunteer{
		OrganizerName:    req.OrganizationName,
		Category:         req.Category,
		VolunteerName:    req.VolunteerName,
		Location:         req.Location,
		LocationImageUrl: req.LocationImageUrl,
		EventDate:        eventDate.UnixMilli(),
		CurrentPeople:    0,
		MaxPeople:        req.MaxPeople,
		Description:      req.Description,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("登记者用户不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		if err := tx.Create(&volunteer).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		// 用插入后返回的活动ID建立组织者关联
		link := model.UserVolunteer{
			UserID:      req.UserID,
			VolunteerID: volunteer.ID,
			Role:        model.RoleOrganizer,
		}
		if err := tx.Create(&link).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		return nil
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			log.Warn("活动登记失败", "error", err, "volunteer_name", req.VolunteerName)
			response.Fail(c, respErr)
			return
		}
		log.Error("活动登记失败", "error", err, "volunteer_name", req.VolunteerName)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动登记成功",
		"volunteer_id", volunteer.ID,
		"volunteer_name", volunteer.VolunteerName,
		"user_id", req.UserID,
	)

	response.Success(c, gin.H{
		"message":     "活动登记成功",
		"volunteerId": volunteer.ID,
	})
}

// ListVolunteersReq 定义活动一览的查询参数结构体
type ListVolunteersReq struct {
	Student  bool `form:"student"`  // 仅返回已共享给学生的活动
	Previous bool `form:"previous"` // 仅返回已结束的活动
}

// VolunteerSummary 活动一览的投影
type VolunteerSummary struct {
	ID                 uint   `json:"id"`
	VolunteerName      string `json:"volunteerName"`
	Description        string `json:"description"`
	OrganizationName   string `json:"organizationName"`
	EventDate          string `json:"eventDate"`
	Location           string `json:"location"`
	LocationImageUrl   string `json:"locationImageUrl"`
	Category           string `json:"category"`
	CurrentPeople      int    `json:"currentPeople"`
	MaxPeople          int    `json:"maxPeople"`
	IsSharedToStudents bool   `json:"isSharedToStudents"`
}

func toSummary(v *model.Volunteer) VolunteerSummary {
	return VolunteerSummary{
		ID:                 v.ID,
		VolunteerName:      v.VolunteerName,
		Description:        v.Description,
		OrganizationName:   v.OrganizerName,
		EventDate:          formatEventDate(v.EventDate),
		Location:           v.Location,
		LocationImageUrl:   v.LocationImageUrl,
		Category:           v.Category,
		CurrentPeople:      v.CurrentPeople,
		MaxPeople:          v.MaxPeople,
		IsSharedToStudents: v.IsSharedToStudents,
	}
}

func formatEventDate(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(time.RFC3339)
}

// ListVolunteers 获取活动一览
// student 与 previous 互斥，两者同时为 true 时 student 优先
func ListVolunteers(c *gin.Context) {
	var req ListVolunteersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	query := database.DB.Model(&model.Volunteer{})
	switch {
	case req.Student:
		query = query.Where("is_shared_to_students = ?", true)
	case req.Previous:
		query = query.Where("event_date < ?", time.Now().UnixMilli())
	}

	var volunteers []model.Volunteer
	if err := query.Find(&volunteers).Error; err != nil {
		log.Error("获取活动一览失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	summaries := make([]VolunteerSummary, 0, len(volunteers))
	for i := range volunteers {
		summaries = append(summaries, toSummary(&volunteers[i]))
	}

	log.Info("获取活动一览成功",
		"count", len(summaries),
		"student", req.Student,
		"previous", req.Previous,
	)

	response.Success(c, summaries)
}

// VolunteerDetail 活动详情，附带组织者信息
type VolunteerDetail struct {
	VolunteerSummary
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Organizer     string    `json:"organizer"`     // 组织者显示名
	OrganizerID   uint      `json:"organizerId"`   // 组织者用户ID
	OrganizerIcon string    `json:"organizerIcon"` // 组织者头像URL
}

// GetVolunteer 获取活动详情
// 活动、组织者关联、组织者用户三次读取在同一事务内完成，避免撕裂视图
func GetVolunteer(c *gin.Context) {
	id, ok := volunteerIdValidator(c)
	if !ok {
		return
	}

	var (
		volunteer model.Volunteer
		link      model.UserVolunteer
		organizer model.User
	)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&volunteer, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("活动不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		if err := tx.Where("volunteer_id = ? AND role = ?", id, model.RoleOrganizer).
			Order("id").First(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("未找到活动的组织者关联")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		if err := tx.First(&organizer, "id = ?", link.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("组织者用户不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		return nil
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			log.Warn("获取活动详情失败", "error", err, "id", id)
			response.Fail(c, respErr)
			return
		}
		log.Error("获取活动详情失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	detail := VolunteerDetail{
		VolunteerSummary: toSummary(&volunteer),
		CreatedAt:        volunteer.CreatedAt,
		UpdatedAt:        volunteer.UpdatedAt,
		Organizer:        organizer.Name,
		OrganizerID:      organizer.ID,
		OrganizerIcon:    organizer.IconUrl,
	}

	log.Info("获取活动详情成功", "id", volunteer.ID, "name", volunteer.VolunteerName)

	response.Success(c, detail)
}

// ShareVolunteer 将活动共享给学生
// 幂等：重复调用不报错，共享后不可撤销
func ShareVolunteer(c *gin.Context) {
	id, ok := volunteerIdValidator(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var volunteer model.Volunteer
		if err := tx.First(&volunteer, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrNotFound.WithTips("活动不存在")
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		if volunteer.IsSharedToStudents {
			// 已共享，无需更新
			return nil
		}

		if err := tx.Model(&volunteer).Update("is_shared_to_students", true).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		return nil
	})
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			log.Warn("共享活动失败", "error", err, "id", id)
			response.Fail(c, respErr)
			return
		}
		log.Error("共享活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动已共享给学生", "id", id)

	response.Success(c, gin.H{
		"message": "活动已共享给学生",
	})
}

// Participant 报名者投影
type Participant struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IconUrl string `json:"iconUrl"`
	QrCode  string `json:"qrCode"`
}

// ListParticipants 获取活动的报名者一览
func ListParticipants(c *gin.Context) {
	id, ok := volunteerIdValidator(c)
	if !ok {
		return
	}

	var count int64
	if err := database.DB.Model(&model.Volunteer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if count == 0 {
		log.Warn("活动不存在", "id", id)
		response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
		return
	}

	var participants []Participant
	if err := database.DB.Model(&model.User{}).
		Select("users.id, users.name, users.email, users.icon_url, users.qr_code").
		Joins("JOIN users_volunteers ON users_volunteers.user_id = users.id").
		Where("users_volunteers.volunteer_id = ? AND users_volunteers.role = ?", id, model.RoleParticipant).
		Find(&participants).Error; err != nil {
		log.Error("获取报名者一览失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("获取报名者一览成功", "id", id, "count", len(participants))

	response.Success(c, participants)
}

// volunteerIdValidator 校验路径参数中的活动ID
func volunteerIdValidator(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Warn("活动ID无效", "id", raw)
		response.Fail(c, response.ErrInvalidRequest.WithTips("活动ID必须为数字"))
		return 0, false
	}
	return uint(id), true
}
