package seed

import (
	"time"

	"volunet-backend/internal/global/database"
	"volunet-backend/internal/global/response"
	"volunet-backend/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadFixtures 加载演示数据
// 可重复调用：用户以邮箱为自然键冲突跳过，活动仅在表为空时插入
func LoadFixtures(c *gin.Context) {
	var inserted struct {
		Users      int
		Volunteers int
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		users := fixtureUsers()
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&users)
		if result.Error != nil {
			return result.Error
		}
		inserted.Users = int(result.RowsAffected)

		var count int64
		if err := tx.Model(&model.Volunteer{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			volunteers := fixtureVolunteers(time.Now())
			result = tx.Create(&volunteers)
			if result.Error != nil {
				return result.Error
			}
			inserted.Volunteers = int(result.RowsAffected)
		}

		return nil
	})
	if err != nil {
		log.Error("加载演示数据失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("演示数据加载完成",
		"users", inserted.Users,
		"volunteers", inserted.Volunteers,
	)

	response.Success(c, gin.H{
		"message":    "演示数据加载完成",
		"users":      inserted.Users,
		"volunteers": inserted.Volunteers,
	})
}
