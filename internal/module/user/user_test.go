package user

import (
	"net/http"
	"testing"
	"time"

	"volunet-backend/internal/global/database"
	"volunet-backend/internal/global/response"
	"volunet-backend/internal/model"
	"volunet-backend/test"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	test.Setup(t)
	(&ModuleUser{}).Init()
}

func TestRegisterUser(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, RegisterUser, http.MethodPost, "/user", UserRegisterReq{
		Name:      "佐藤花子",
		Email:     "sato@volunet.example",
		IsTeacher: true,
	})
	test.NoError(t, resp)
	data := test.Data(t, resp)
	require.NotZero(t, data["userId"])

	var user model.User
	require.NoError(t, database.DB.First(&user, "email = ?", "sato@volunet.example").Error)
	require.True(t, user.IsTeacher)
	require.False(t, user.IsStudent)
	require.False(t, user.IsOrganizer)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	setup(t)

	req := UserRegisterReq{Name: "佐藤花子", Email: "sato@volunet.example"}
	test.NoError(t, test.DoRequest(t, RegisterUser, http.MethodPost, "/user", req))

	// 同一邮箱第二次注册必须失败
	resp := test.DoRequest(t, RegisterUser, http.MethodPost, "/user", req)
	test.ErrorEqual(t, response.ErrAlreadyExists, resp)

	var count int64
	require.NoError(t, database.DB.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestRegisterUserInvalidEmail(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, RegisterUser, http.MethodPost, "/user", UserRegisterReq{
		Name:  "佐藤花子",
		Email: "not-an-email",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestGetUser(t *testing.T) {
	setup(t)
	user := model.User{Name: "佐藤花子", Email: "sato@volunet.example", IsTeacher: true}
	require.NoError(t, database.DB.Create(&user).Error)

	resp := test.DoRequest(t, GetUser, http.MethodGet, "/user/1", nil, test.Param("id", "1"))
	test.NoError(t, resp)
	data := test.Data(t, resp)
	require.Equal(t, "佐藤花子", data["name"])
	require.Equal(t, true, data["isTeacher"])

	resp = test.DoRequest(t, GetUser, http.MethodGet, "/user/42", nil, test.Param("id", "42"))
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestUpdateUserPartial(t *testing.T) {
	setup(t)
	user := model.User{Name: "佐藤花子", Email: "sato@volunet.example"}
	require.NoError(t, database.DB.Create(&user).Error)

	newName := "佐藤はなこ"
	resp := test.DoRequest(t, UpdateUser, http.MethodPut, "/user/1", UserUpdateReq{
		Name: &newName,
	}, test.Param("id", "1"))
	test.NoError(t, resp)

	var got model.User
	require.NoError(t, database.DB.First(&got, "id = ?", user.ID).Error)
	require.Equal(t, newName, got.Name)
	// 未提交的字段保持原值
	require.Equal(t, "sato@volunet.example", got.Email)
	// 任何变更都会刷新 updated_at
	require.False(t, got.UpdatedAt.Before(user.UpdatedAt))
}

func TestDeleteUserCascades(t *testing.T) {
	setup(t)
	user := model.User{Name: "田中太郎", Email: "tanaka@volunet.example", IsOrganizer: true}
	require.NoError(t, database.DB.Create(&user).Error)
	v := model.Volunteer{
		OrganizerName: "Org",
		Category:      model.CategoryCommunityActivity,
		VolunteerName: "夏祭り",
		Location:      "梅田",
		EventDate:     time.Now().UnixMilli(),
		MaxPeople:     25,
	}
	require.NoError(t, database.DB.Create(&v).Error)
	require.NoError(t, database.DB.Create(&model.UserVolunteer{
		UserID: user.ID, VolunteerID: v.ID, Role: model.RoleOrganizer,
	}).Error)

	resp := test.DoRequest(t, DeleteUser, http.MethodDelete, "/user/1", nil, test.Param("id", "1"))
	test.NoError(t, resp)

	// 关联行随用户级联删除
	var linkCount int64
	require.NoError(t, database.DB.Model(&model.UserVolunteer{}).Where("user_id = ?", user.ID).Count(&linkCount).Error)
	require.Zero(t, linkCount)

	// 活动行保留
	var volunteerCount int64
	require.NoError(t, database.DB.Model(&model.Volunteer{}).Count(&volunteerCount).Error)
	require.Equal(t, int64(1), volunteerCount)
}
