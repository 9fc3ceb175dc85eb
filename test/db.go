package test

import (
	"testing"

	"volunet-backend/config"
	"volunet-backend/internal/global/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Setup 初始化测试环境：内存 SQLite 数据库 + 默认配置
// 每个测试用例独立建库，互不影响
func Setup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err, "打开测试数据库失败")

	// 单连接，保证 :memory: 库在整个用例中可见
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// SQLite 默认关闭外键约束，级联删除依赖它
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, database.AutoMigrate(db), "迁移测试数据库失败")

	database.DB = db

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
}
