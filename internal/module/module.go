package module

import (
	"volunet-backend/internal/module/ping"
	"volunet-backend/internal/module/registration"
	"volunet-backend/internal/module/seed"
	"volunet-backend/internal/module/upload"
	"volunet-backend/internal/module/user"
	"volunet-backend/internal/module/volunteer"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&volunteer.ModuleVolunteer{},
		&registration.ModuleRegistration{},
		&user.ModuleUser{},
		&seed.ModuleSeed{},
		&upload.ModuleUpload{},
	})
}
