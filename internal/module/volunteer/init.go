package volunteer

import (
	"log/slog"

	"volunet-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleVolunteer struct{}

func (m *ModuleVolunteer) GetName() string {
	return "Volunteer"
}

func (m *ModuleVolunteer) Init() {
	log = logger.New("Volunteer")
}
