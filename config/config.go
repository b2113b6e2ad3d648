package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigYAML 内置默认配置
//
//go:embed config.yaml
var DefaultConfigYAML []byte

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Budget   BudgetConfig   `mapstructure:"budget"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// RedisConfig Redis 缓存配置，未启用时使用进程内缓存
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Prefix     string `mapstructure:"prefix"`
	Version    string `mapstructure:"version"`
	MaxEntries int    `mapstructure:"max_entries"`
}

// BudgetConfig 预算分配配置
type BudgetConfig struct {
	Currency               string        `mapstructure:"currency"`
	ApplyConcurrency       int           `mapstructure:"apply_concurrency"`
	ApplyRateLimit         int           `mapstructure:"apply_rate_limit"`
	ApplyRateWindowSeconds int           `mapstructure:"apply_rate_window_seconds"`
	ApplyRateWindow        time.Duration `mapstructure:"-"`
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	NotifyTo string `mapstructure:"notify_to"` // 分配失败通知收件人，为空则不发送
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	// .env 文件可选，不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}
	log.Println("已加载内置默认配置")

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("警告: 无法读取指定配置文件 %s: %v", configPath, err)
		} else {
			log.Printf("已合并外部配置文件: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/budget")
		externalViper.AddConfigPath("$HOME/.budget")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("警告: 合并外部配置失败: %v", err)
			} else {
				log.Printf("已合并外部配置文件: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 环境变量覆盖，如 BUDGET_DATABASE_HOST
	v.SetEnvPrefix("BUDGET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	applyDefaults(&cfg)

	GlobalConfig = &cfg

	return &cfg, nil
}

// applyDefaults 补全缺省值
func applyDefaults(cfg *Config) {
	if cfg.Budget.ApplyConcurrency <= 0 {
		cfg.Budget.ApplyConcurrency = 5
	}
	if cfg.Budget.ApplyRateLimit <= 0 {
		cfg.Budget.ApplyRateLimit = 10
	}
	if cfg.Budget.ApplyRateWindowSeconds <= 0 {
		cfg.Budget.ApplyRateWindowSeconds = 60
	}
	cfg.Budget.ApplyRateWindow = time.Duration(cfg.Budget.ApplyRateWindowSeconds) * time.Second

	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = "budget_app_"
	}
	if cfg.Cache.Version == "" {
		cfg.Cache.Version = "1.0"
	}
	if cfg.Cache.MaxEntries <= 0 {
		cfg.Cache.MaxEntries = 256
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 10
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 100
	}
}

// SafeErrorMessage 返回可展示给客户端的错误信息
// release 模式下只返回 fallback，避免暴露内部错误
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("当前配置:")
	log.Printf("  服务器: %s (模式: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  数据库: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	if GlobalConfig.Redis.Enabled {
		log.Printf("  缓存: redis %s (db %d)", GlobalConfig.Redis.Addr, GlobalConfig.Redis.DB)
	} else {
		log.Printf("  缓存: 进程内 (最多 %d 条)", GlobalConfig.Cache.MaxEntries)
	}
	log.Printf("  分配并发: %d", GlobalConfig.Budget.ApplyConcurrency)
	log.Printf("  邮件服务: %v", GlobalConfig.Email.Enabled)
}
