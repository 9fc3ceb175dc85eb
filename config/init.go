package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var instance *Config

// Get 获取全局配置，必须先调用 Init
func Get() *Config {
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

// Init 初始化配置，优先级：环境变量 > config.yaml > 默认值
func Init() {
	// .env 文件不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("mode", string(ModeDebug))
	v.SetDefault("log.level", "info")
	v.SetDefault("mysql.host", "127.0.0.1")
	v.SetDefault("mysql.port", "3306")

	if err := v.ReadInConfig(); err != nil {
		// 配置文件缺失时仅依赖默认值和环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("读取配置文件失败: %v", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	// 环境变量覆盖，前缀 VOLUNET，如 VOLUNET_MYSQL_HOST
	if err := envconfig.Process("volunet", cfg); err != nil {
		log.Fatalf("解析环境变量失败: %v", err)
	}

	if cfg.Mode != ModeRelease {
		cfg.Mode = ModeDebug
	}
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")

	instance = cfg
}
