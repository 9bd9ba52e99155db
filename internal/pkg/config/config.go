package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	App     AppConfig     `mapstructure:"app"`
	Session SessionConfig `mapstructure:"session"`
	Engine  EngineConfig  `mapstructure:"engine"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type AppConfig struct {
	Env   string `mapstructure:"env"`
	Debug bool   `mapstructure:"debug"`
}

// SessionConfig is the stand-in for a real auth layer: one fixed identity
// attributed to every post, comment and message created locally.
type SessionConfig struct {
	UserID string `mapstructure:"user_id"`
}

// EngineConfig tunes the interaction engine itself.
type EngineConfig struct {
	// SimulatedLatencyMs is the artificial delay applied to fetch-like
	// operations (feed load, search, post creation), mimicking a backend
	// round trip. Zero disables it.
	SimulatedLatencyMs int `mapstructure:"simulated_latency_ms"`
}

// SimulatedLatency 模拟网络延迟
func (e EngineConfig) SimulatedLatency() time.Duration {
	return time.Duration(e.SimulatedLatencyMs) * time.Millisecond
}

var GlobalConfig Config

// Validate 验证配置
func (c *Config) Validate() error {
	if c.Session.UserID == "" {
		return errors.New("session user_id is required")
	}
	if c.Engine.SimulatedLatencyMs < 0 {
		return errors.New("engine simulated_latency_ms must not be negative")
	}
	return nil
}

// LoadConfig 加载配置
func LoadConfig() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	configName := "config"
	if env != "" && env != "dev" {
		configName = "config." + env
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("app.env", "dev")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("session.user_id", "1")
	viper.SetDefault("engine.simulated_latency_ms", 300)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Config file not found, using defaults or env vars: %v", err)
	}

	viper.AutomaticEnv()

	if err := viper.Unmarshal(&GlobalConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	// 手动覆盖，以防 viper 无法正确解析环境变量
	if port := os.Getenv("SERVER_PORT"); port != "" {
		GlobalConfig.Server.Port = port
	}
	if uid := os.Getenv("SESSION_USER_ID"); uid != "" {
		GlobalConfig.Session.UserID = uid
	}

	if err := GlobalConfig.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	log.Printf("Configuration loaded and validated successfully. Environment: %s", GlobalConfig.App.Env)
}
