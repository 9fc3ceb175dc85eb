package model

// 关联角色，区分创建者与报名参加者
const (
	RoleOrganizer   = "organizer"
	RoleParticipant = "participant"
)

// UserVolunteer 用户与活动的关联表，删除用户或活动时级联删除
// (user_id, volunteer_id, role) 唯一，数据库层面杜绝重复报名
type UserVolunteer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_user_volunteer_role" json:"userId"`
	VolunteerID uint   `gorm:"not null;uniqueIndex:idx_user_volunteer_role;index" json:"volunteerId"`
	Role        string `gorm:"type:varchar(20);not null;default:participant;uniqueIndex:idx_user_volunteer_role" json:"role"`

	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Volunteer Volunteer `gorm:"foreignKey:VolunteerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserVolunteer) TableName() string {
	return "users_volunteers"
}
