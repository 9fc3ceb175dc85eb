package model

type User struct {
	Model
	Name        string `gorm:"type:varchar(100);not null" json:"name"`          // 显示名
	Email       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"` // 邮箱，全局唯一
	IconUrl     string `gorm:"type:varchar(255)" json:"iconUrl"`                // 头像URL
	Comment     string `gorm:"type:varchar(500)" json:"comment"`                // 自由备注
	QrCode      string `gorm:"type:varchar(255)" json:"qrCode"`                 // 出席确认用二维码内容
	IsTeacher   bool   `gorm:"default:false;not null" json:"isTeacher"`         // 教师角色
	IsStudent   bool   `gorm:"default:false;not null" json:"isStudent"`         // 学生角色
	IsOrganizer bool   `gorm:"default:false;not null" json:"isOrganizer"`       // 组织者角色
}

func (User) TableName() string {
	return "users"
}
