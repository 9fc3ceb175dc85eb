package seed

import (
	"log/slog"

	"volunet-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleSeed struct{}

func (m *ModuleSeed) GetName() string {
	return "Seed"
}

func (m *ModuleSeed) Init() {
	log = logger.New("Seed")
}
