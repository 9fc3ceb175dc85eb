package server

import (
	"fmt"
	"log/slog"

	"volunet-backend/config"
	"volunet-backend/internal/global/database"
	"volunet-backend/internal/global/logger"
	"volunet-backend/internal/global/middleware"
	internalSentry "volunet-backend/internal/global/sentry"
	"volunet-backend/internal/module"
	"volunet-backend/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	database.Init()

	if err := internalSentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Metrics())
	r.Use(internalSentry.Middleware())
	r.Use(internalSentry.Report())
	r.Use(middleware.Recovery())

	r.GET("/metrics", middleware.MetricsHandler())

	var group *gin.RouterGroup
	if prefix := config.Get().Prefix; prefix != "" {
		group = r.Group("/" + prefix)
	} else {
		group = r.Group("")
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(group)
	}

	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
