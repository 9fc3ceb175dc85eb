package model

// 活动类别为封闭枚举，请求边界用 binding:oneof 校验
const (
	CategoryEnvironmentProtection = "EnvironmentProtection"
	CategoryWelfare               = "Welfare"
	CategoryCommunityActivity     = "CommunityActivity"
)

type Volunteer struct {
	Model
	OrganizerName      string `gorm:"type:varchar(100);not null" json:"organizationName"` // 主办团体名称（冗余存储，非外键）
	Category           string `gorm:"type:varchar(50);not null" json:"category"`          // 活动类别
	VolunteerName      string `gorm:"type:varchar(100);not null" json:"volunteerName"`    // 活动名称
	Location           string `gorm:"type:varchar(255);not null" json:"location"`         // 活动地点
	LocationImageUrl   string `gorm:"type:varchar(500)" json:"locationImageUrl"`          // 地点图片URL
	EventDate          int64  `gorm:"not null" json:"eventDate"`                          // 活动时间，毫秒时间戳
	CurrentPeople      int    `gorm:"default:0;not null" json:"currentPeople"`            // 当前报名人数
	MaxPeople          int    `gorm:"not null" json:"maxPeople"`                          // 人数上限
	Description        string `gorm:"type:varchar(1000)" json:"description"`              // 活动说明
	IsSharedToStudents bool   `gorm:"default:false;not null" json:"isSharedToStudents"`   // 教师是否已共享给学生
}

func (Volunteer) TableName() string {
	return "volunteers"
}
