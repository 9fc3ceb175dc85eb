package user

import (
	"strconv"

	"volunet-backend/internal/global/database"
	"volunet-backend/internal/global/response"
	"volunet-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserRegisterReq 定义用户注册请求的结构体
// 三个角色标志互相独立，可同时持有多个
type UserRegisterReq struct {
	Name        string `json:"name" binding:"required"`        // 显示名
	Email       string `json:"email" binding:"required,email"` // 邮箱，全局唯一
	IconUrl     string `json:"iconUrl"`                        // 头像URL
	Comment     string `json:"comment"`                        // 自由备注
	QrCode      string `json:"qrCode"`                         // 二维码内容
	IsTeacher   bool   `json:"isTeacher"`                      // 教师角色
	IsStudent   bool   `json:"isStudent"`                      // 学生角色
	IsOrganizer bool   `json:"isOrganizer"`                    // 组织者角色
}

// RegisterUser 处理用户注册请求
func RegisterUser(c *gin.Context) {
	var req UserRegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 查询邮箱是否已被占用，唯一索引兜底
	var existing model.User
	err := database.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		log.Warn("邮箱已被占用", "email", req.Email)
		response.Fail(c, response.ErrAlreadyExists.WithTips("邮箱已被占用"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	user := model.User{
		Name:        req.Name,
		Email:       req.Email,
		IconUrl:     req.IconUrl,
		Comment:     req.Comment,
		QrCode:      req.QrCode,
		IsTeacher:   req.IsTeacher,
		IsStudent:   req.IsStudent,
		IsOrganizer: req.IsOrganizer,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("创建用户失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功", "id", user.ID, "email", user.Email)

	response.Success(c, gin.H{
		"message": "注册成功",
		"userId":  user.ID,
	})
}

// GetUser 获取用户信息
func GetUser(c *gin.Context) {
	id, ok := userIdValidator(c)
	if !ok {
		return
	}

	var user model.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("用户不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		log.Error("查询用户失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, user)
}

// UserUpdateReq 定义用户信息更新请求的结构体，使用指针类型支持部分更新
type UserUpdateReq struct {
	Name        *string `json:"name"`        // 显示名，可选
	IconUrl     *string `json:"iconUrl"`     // 头像URL，可选
	Comment     *string `json:"comment"`     // 自由备注，可选
	QrCode      *string `json:"qrCode"`      // 二维码内容，可选
	IsTeacher   *bool   `json:"isTeacher"`   // 教师角色，可选
	IsStudent   *bool   `json:"isStudent"`   // 学生角色，可选
	IsOrganizer *bool   `json:"isOrganizer"` // 组织者角色，可选
}

// UpdateUser 处理用户信息更新请求，updated_at 随保存刷新
func UpdateUser(c *gin.Context) {
	id, ok := userIdValidator(c)
	if !ok {
		return
	}

	var req UserUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("用户不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		log.Error("查询用户失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.IconUrl != nil {
		user.IconUrl = *req.IconUrl
	}
	if req.Comment != nil {
		user.Comment = *req.Comment
	}
	if req.QrCode != nil {
		user.QrCode = *req.QrCode
	}
	if req.IsTeacher != nil {
		user.IsTeacher = *req.IsTeacher
	}
	if req.IsStudent != nil {
		user.IsStudent = *req.IsStudent
	}
	if req.IsOrganizer != nil {
		user.IsOrganizer = *req.IsOrganizer
	}

	if err := database.DB.Save(&user).Error; err != nil {
		log.Error("更新用户失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户更新成功", "id", user.ID)

	response.Success(c)
}

// DeleteUser 处理用户删除请求
// users_volunteers 中引用该用户的行级联删除，活动行保留
func DeleteUser(c *gin.Context) {
	id, ok := userIdValidator(c)
	if !ok {
		return
	}

	var user model.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("用户不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		log.Error("查询用户失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		log.Error("删除用户失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户删除成功", "id", id)

	response.Success(c)
}

// userIdValidator 校验路径参数中的用户ID
func userIdValidator(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Warn("用户ID无效", "id", raw)
		response.Fail(c, response.ErrInvalidRequest.WithTips("用户ID必须为数字"))
		return 0, false
	}
	return uint(id), true
}
