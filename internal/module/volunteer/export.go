package volunteer

import (
	"fmt"
	"time"

	"volunet-backend/internal/global/database"
	"volunet-backend/internal/global/response"
	"volunet-backend/internal/model"
	"volunet-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// exportRow 导出表格的行结构，表头取自 excel tag
type exportRow struct {
	ID               uint   `excel:"活动ID"`
	VolunteerName    string `excel:"活动名称"`
	OrganizationName string `excel:"主办团体"`
	Category         string `excel:"类别"`
	Location         string `excel:"地点"`
	EventDate        string `excel:"活动时间"`
	CurrentPeople    int    `excel:"当前人数"`
	MaxPeople        int    `excel:"人数上限"`
	Shared           string `excel:"已共享"`
}

// ExportVolunteers 将活动一览导出为 xlsx
func ExportVolunteers(c *gin.Context) {
	var volunteers []model.Volunteer
	if err := database.DB.Find(&volunteers).Error; err != nil {
		log.Error("查询活动一览失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]exportRow, 0, len(volunteers))
	for i := range volunteers {
		v := &volunteers[i]
		shared := "否"
		if v.IsSharedToStudents {
			shared = "是"
		}
		rows = append(rows, exportRow{
			ID:               v.ID,
			VolunteerName:    v.VolunteerName,
			OrganizationName: v.OrganizerName,
			Category:         v.Category,
			Location:         v.Location,
			EventDate:        formatEventDate(v.EventDate),
			CurrentPeople:    v.CurrentPeople,
			MaxPeople:        v.MaxPeople,
			Shared:           shared,
		})
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := tools.ExportToExcel(f, "volunteers", rows); err != nil {
		log.Error("导出 excel 错误", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	filename := fmt.Sprintf("volunteers_%d.xlsx", time.Now().Unix())
	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Cache-Control", "must-revalidate")
	c.Header("Pragma", "public")
	c.Header("Expires", "0")
	_ = f.Write(c.Writer)
}
