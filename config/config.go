package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port         int
	DataDir      string // 配置持久化目录
	ReminderCron string // 提醒任务cron表达式
	SeedDemoData bool   // 启动时写入演示数据
	Debug        bool
}

// LoadConfig 从环境变量加载配置，存在 .env 文件时先加载
func LoadConfig() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	return &Config{
		Port:         port,
		DataDir:      getEnv("DATA_DIR", "./data"),
		ReminderCron: getEnv("REMINDER_CRON", "0 9 * * *"),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "true") == "true",
		Debug:        getEnv("GIN_MODE", "debug") == "debug",
	}
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
