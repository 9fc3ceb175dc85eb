package upload

import (
	"log/slog"

	"volunet-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleUpload struct{}

func (m *ModuleUpload) GetName() string {
	return "Upload"
}

func (m *ModuleUpload) Init() {
	log = logger.New("Upload")
}
