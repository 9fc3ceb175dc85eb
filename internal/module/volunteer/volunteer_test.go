package volunteer

import (
	"net/http"
	"testing"
	"time"

	"volunet-backend/internal/global/database"
	"volunet-backend/internal/global/response"
	"volunet-backend/internal/model"
	"volunet-backend/test"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setup(t *testing.T) {
	test.Setup(t)
	(&ModuleVolunteer{}).Init()
}

func createUser(t *testing.T, email string) model.User {
	user := model.User{Name: "田中太郎", Email: email, IsOrganizer: true}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createVolunteer(t *testing.T, name string, eventDate time.Time, shared bool) model.Volunteer {
	v := model.Volunteer{
		OrganizerName:      "Org",
		Category:           model.CategoryEnvironmentProtection,
		VolunteerName:      name,
		Location:           "Park",
		EventDate:          eventDate.UnixMilli(),
		MaxPeople:          10,
		IsSharedToStudents: shared,
	}
	require.NoError(t, database.DB.Create(&v).Error)
	return v
}

func TestCreateVolunteer(t *testing.T) {
	setup(t)
	user := createUser(t, "organizer@volunet.example")

	resp := test.DoRequest(t, CreateVolunteer, http.MethodPost, "/volunteer", VolunteerCreateReq{
		OrganizationName: "Org",
		Category:         model.CategoryEnvironmentProtection,
		VolunteerName:    "Cleanup",
		Location:         "Park",
		EventDate:        "2024-06-01T09:00:00Z",
		MaxPeople:        10,
		Description:      "ごみ拾い",
		UserID:           user.ID,
	})
	test.NoError(t, resp)

	data := test.Data(t, resp)
	require.NotZero(t, data["volunteerId"])

	var v model.Volunteer
	require.NoError(t, database.DB.First(&v, "volunteer_name = ?", "Cleanup").Error)
	require.Equal(t, 0, v.CurrentPeople)
	require.Equal(t, 10, v.MaxPeople)
	require.False(t, v.IsSharedToStudents)

	// 组织者关联行使用插入后返回的活动ID
	var link model.UserVolunteer
	require.NoError(t, database.DB.First(&link, "volunteer_id = ?", v.ID).Error)
	require.Equal(t, user.ID, link.UserID)
	require.Equal(t, model.RoleOrganizer, link.Role)

	// 登记后一览中可见
	listResp := test.DoRequest(t, ListVolunteers, http.MethodGet, "/volunteer-list", nil)
	test.NoError(t, listResp)
	entries := test.DataSlice(t, listResp)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	require.Equal(t, "Cleanup", entry["volunteerName"])
	require.Equal(t, "Org", entry["organizationName"])
}

func TestCreateVolunteerInvalidCategory(t *testing.T) {
	setup(t)
	user := createUser(t, "organizer@volunet.example")

	resp := test.DoRequest(t, CreateVolunteer, http.MethodPost, "/volunteer", VolunteerCreateReq{
		OrganizationName: "Org",
		Category:         "Sports",
		VolunteerName:    "Cleanup",
		Location:         "Park",
		EventDate:        "2024-06-01T09:00:00Z",
		MaxPeople:        10,
		UserID:           user.ID,
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestCreateVolunteerInvalidEventDate(t *testing.T) {
	setup(t)
	user := createUser(t, "organizer@volunet.example")

	resp := test.DoRequest(t, CreateVolunteer, http.MethodPost, "/volunteer", VolunteerCreateReq{
		OrganizationName: "Org",
		Category:         model.CategoryWelfare,
		VolunteerName:    "Cleanup",
		Location:         "Park",
		EventDate:        "2024/06/01 09:00",
		MaxPeople:        10,
		UserID:           user.ID,
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestCreateVolunteerUnknownUser(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, CreateVolunteer, http.MethodPost, "/volunteer", VolunteerCreateReq{
		OrganizationName: "Org",
		Category:         model.CategoryWelfare,
		VolunteerName:    "Cleanup",
		Location:         "Park",
		EventDate:        "2024-06-01T09:00:00Z",
		MaxPeople:        10,
		UserID:           999,
	})
	test.ErrorEqual(t, response.ErrNotFound, resp)

	// 回滚后不残留活动行
	var count int64
	require.NoError(t, database.DB.Model(&model.Volunteer{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestListVolunteersFilters(t *testing.T) {
	setup(t)
	now := time.Now()
	createVolunteer(t, "shared-future", now.Add(24*time.Hour), true)
	createVolunteer(t, "unshared-future", now.Add(48*time.Hour), false)
	createVolunteer(t, "unshared-past", now.Add(-24*time.Hour), false)

	names := func(resp response.ResponseBody) []string {
		var out []string
		for _, e := range test.DataSlice(t, resp) {
			out = append(out, e.(map[string]any)["volunteerName"].(string))
		}
		return out
	}

	// 无参数：全部
	resp := test.DoRequest(t, ListVolunteers, http.MethodGet, "/volunteer-list", nil)
	test.NoError(t, resp)
	require.Len(t, names(resp), 3)

	// student=true：仅已共享
	resp = test.DoRequest(t, ListVolunteers, http.MethodGet, "/volunteer-list?student=true", nil)
	test.NoError(t, resp)
	require.Equal(t, []string{"shared-future"}, names(resp))

	// previous=true：仅已结束
	resp = test.DoRequest(t, ListVolunteers, http.MethodGet, "/volunteer-list?previous=true", nil)
	test.NoError(t, resp)
	require.Equal(t, []string{"unshared-past"}, names(resp))

	// 同时指定时 student 优先
	resp = test.DoRequest(t, ListVolunteers, http.MethodGet, "/volunteer-list?student=true&previous=true", nil)
	test.NoError(t, resp)
	require.Equal(t, []string{"shared-future"}, names(resp))
}

func TestGetVolunteerDetail(t *testing.T) {
	setup(t)
	user := createUser(t, "organizer@volunet.example")
	v := createVolunteer(t, "Cleanup", time.Now().Add(24*time.Hour), false)
	require.NoError(t, database.DB.Create(&model.UserVolunteer{
		UserID:      user.ID,
		VolunteerID: v.ID,
		Role:        model.RoleOrganizer,
	}).Error)

	resp := test.DoRequest(t, GetVolunteer, http.MethodGet, "/volunteer/1", nil, test.Param("id", "1"))
	test.NoError(t, resp)
	data := test.Data(t, resp)
	require.Equal(t, "Cleanup", data["volunteerName"])
	require.Equal(t, "田中太郎", data["organizer"])
}

func TestGetVolunteerMissingActivity(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, GetVolunteer, http.MethodGet, "/volunteer/42", nil, test.Param("id", "42"))
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestGetVolunteerMissingLink(t *testing.T) {
	setup(t)
	createVolunteer(t, "Cleanup", time.Now().Add(24*time.Hour), false)

	// 活动存在但没有组织者关联，必须返回明确的 404 而不是崩溃
	resp := test.DoRequest(t, GetVolunteer, http.MethodGet, "/volunteer/1", nil, test.Param("id", "1"))
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestGetVolunteerMissingOrganizerUser(t *testing.T) {
	setup(t)
	v := createVolunteer(t, "Cleanup", time.Now().Add(24*time.Hour), false)

	// 关闭外键约束后写入指向不存在用户的悬挂关联
	require.NoError(t, database.DB.Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, database.DB.Exec(
		"INSERT INTO users_volunteers (user_id, volunteer_id, role) VALUES (?, ?, ?)",
		999, v.ID, model.RoleOrganizer,
	).Error)
	require.NoError(t, database.DB.Exec("PRAGMA foreign_keys = ON").Error)

	resp := test.DoRequest(t, GetVolunteer, http.MethodGet, "/volunteer/1", nil, test.Param("id", "1"))
	test.ErrorEqual(t, response.ErrNotFound, resp)
	require.Equal(t, "组织者用户不存在", resp.Msg)
}

func TestGetVolunteerInvalidID(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, GetVolunteer, http.MethodGet, "/volunteer/abc", nil, test.Param("id", "abc"))
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestShareVolunteerIdempotent(t *testing.T) {
	setup(t)
	v := createVolunteer(t, "Cleanup", time.Now().Add(24*time.Hour), false)

	resp := test.DoRequest(t, ShareVolunteer, http.MethodPut, "/volunteer/1", nil, test.Param("id", "1"))
	test.NoError(t, resp)

	var got model.Volunteer
	require.NoError(t, database.DB.First(&got, "id = ?", v.ID).Error)
	require.True(t, got.IsSharedToStudents)

	// 重复调用无副作用也不报错
	resp = test.DoRequest(t, ShareVolunteer, http.MethodPut, "/volunteer/1", nil, test.Param("id", "1"))
	test.NoError(t, resp)

	require.NoError(t, database.DB.First(&got, "id = ?", v.ID).Error)
	require.True(t, got.IsSharedToStudents)
}

func TestShareVolunteerUnknownID(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, ShareVolunteer, http.MethodPut, "/volunteer/42", nil, test.Param("id", "42"))
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestListParticipants(t *testing.T) {
	setup(t)
	organizer := createUser(t, "organizer@volunet.example")
	participant := model.User{Name: "鈴木一郎", Email: "suzuki@volunet.example", IsStudent: true}
	require.NoError(t, database.DB.Create(&participant).Error)
	v := createVolunteer(t, "Cleanup", time.Now().Add(24*time.Hour), true)
	require.NoError(t, database.DB.Create(&model.UserVolunteer{
		UserID: organizer.ID, VolunteerID: v.ID, Role: model.RoleOrganizer,
	}).Error)
	require.NoError(t, database.DB.Create(&model.UserVolunteer{
		UserID: participant.ID, VolunteerID: v.ID, Role: model.RoleParticipant,
	}).Error)

	resp := test.DoRequest(t, ListParticipants, http.MethodGet, "/volunteer/1/participants", nil, test.Param("id", "1"))
	test.NoError(t, resp)
	entries := test.DataSlice(t, resp)
	require.Len(t, entries, 1)
	require.Equal(t, "鈴木一郎", entries[0].(map[string]any)["name"])
}

func TestExportVolunteers(t *testing.T) {
	setup(t)
	createVolunteer(t, "Cleanup", time.Now().Add(24*time.Hour), true)

	w := test.DoRawRequest(t, ExportVolunteers, http.MethodGet, "/volunteer-list/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	require.NotZero(t, w.Body.Len())
}

func TestExportVolunteersEmpty(t *testing.T) {
	setup(t)

	w := test.DoRawRequest(t, ExportVolunteers, http.MethodGet, "/volunteer-list/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 无数据时仍然输出带表头的工作表
	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	require.Contains(t, f.GetSheetList(), "volunteers")

	header, err := f.GetCellValue("volunteers", "A1")
	require.NoError(t, err)
	require.Equal(t, "活动ID", header)
}
