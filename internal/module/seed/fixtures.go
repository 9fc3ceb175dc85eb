package seed

import (
	"time"

	"volunet-backend/internal/model"

	"github.com/google/uuid"
)

// fixtureVolunteers 演示用活动：未来2件、已结束2件
func fixtureVolunteers(now time.Time) []model.Volunteer {
	day := 24 * time.Hour
	return []model.Volunteer{
		{
			OrganizerName:      "梅田環境美化推進会",
			Category:           model.CategoryEnvironmentProtection,
			VolunteerName:      "茶屋町周辺のごみ拾い活動",
			Location:           "大阪府大阪市北区茶屋町",
			LocationImageUrl:   "https://images.volunet.example/chayamachi.jpg",
			EventDate:          now.Add(7 * day).UnixMilli(),
			CurrentPeople:      8,
			MaxPeople:          20,
			Description:        "通勤・通学路にもなる茶屋町エリアのごみ拾いを行います。",
			IsSharedToStudents: true,
		},
		{
			OrganizerName:      "中津福祉サポートセンター",
			Category:           model.CategoryWelfare,
			VolunteerName:      "中津町の高齢者見守り訪問",
			Location:           "大阪府大阪市北区中津",
			LocationImageUrl:   "https://images.volunet.example/nakatsu.jpg",
			EventDate:          now.Add(14 * day).UnixMilli(),
			CurrentPeople:      5,
			MaxPeople:          10,
			Description:        "高齢者世帯への簡単な声かけ・安否確認活動です。",
			IsSharedToStudents: false,
		},
		{
			OrganizerName:      "大阪駅前第3ビル自治会",
			Category:           model.CategoryCommunityActivity,
			VolunteerName:      "地域夏祭りの設営・案内ボランティア",
			Location:           "大阪府大阪市北区梅田",
			LocationImageUrl:   "https://images.volunet.example/umeda.jpg",
			EventDate:          now.Add(-30 * day).UnixMilli(),
			CurrentPeople:      18,
			MaxPeople:          25,
			Description:        "ステージ設営・案内係・清掃など幅広く活躍しました。",
			IsSharedToStudents: true,
		},
		{
			OrganizerName:      "扇町公園緑化委員会",
			Category:           model.CategoryEnvironmentProtection,
			VolunteerName:      "扇町公園の落ち葉掃除と花壇整備",
			Location:           "大阪府大阪市北区扇町",
			LocationImageUrl:   "https://images.volunet.example/ogimachi.jpg",
			EventDate:          now.Add(-60 * day).UnixMilli(),
			CurrentPeople:      12,
			MaxPeople:          15,
			Description:        "秋の落ち葉清掃と、花壇への花植え活動を行いました。",
			IsSharedToStudents: false,
		},
	}
}

// fixtureUsers 演示用用户，邮箱为自然键
func fixtureUsers() []model.User {
	return []model.User{
		{
			Name:        "田中太郎",
			Email:       "tanaka@volunet.example",
			IconUrl:     "https://images.volunet.example/icons/tanaka.png",
			Comment:     "地域活動が大好きです。",
			QrCode:      uuid.NewString(),
			IsOrganizer: true,
		},
		{
			Name:      "佐藤花子",
			Email:     "sato@volunet.example",
			IconUrl:   "https://images.volunet.example/icons/sato.png",
			Comment:   "担任クラスの生徒に活動を紹介しています。",
			QrCode:    uuid.NewString(),
			IsTeacher: true,
		},
		{
			Name:      "鈴木一郎",
			Email:     "suzuki@volunet.example",
			IconUrl:   "https://images.volunet.example/icons/suzuki.png",
			Comment:   "初めてのボランティアです。",
			QrCode:    uuid.NewString(),
			IsStudent: true,
		},
	}
}
