package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/senghong-shop/internal/logger"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Queue    QueueConfig    `mapstructure:"queue"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Security SecurityConfig `mapstructure:"security"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Session  SessionConfig  `mapstructure:"session"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Level:      c.Level,
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// DatabasePoolConfig 数据库连接池配置
type DatabasePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
}

// DatabaseConfig 数据库配置（仅用于结账交接记录）
type DatabaseConfig struct {
	Enabled bool               `mapstructure:"enabled"`
	Driver  string             `mapstructure:"driver"` // sqlite / postgres
	DSN     string             `mapstructure:"dsn"`
	Pool    DatabasePoolConfig `mapstructure:"pool"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// QueueConfig 异步队列配置
type QueueConfig struct {
	Enabled     bool           `mapstructure:"enabled"`
	Host        string         `mapstructure:"host"`
	Port        int            `mapstructure:"port"`
	Password    string         `mapstructure:"password"`
	DB          int            `mapstructure:"db"`
	Concurrency int            `mapstructure:"concurrency"`
	Queues      map[string]int `mapstructure:"queues"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	CheckoutRateLimit   RateLimitConfig `mapstructure:"checkout_rate_limit"`    // 按会话 + IP
	CheckoutIPRateLimit RateLimitConfig `mapstructure:"checkout_ip_rate_limit"` // 按 IP，不受会话轮换影响
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	WindowSeconds int `mapstructure:"window_seconds"`
	MaxRequests   int `mapstructure:"max_requests"`
}

// CatalogConfig 商品目录（表格数据源）配置
type CatalogConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	SheetID          string        `mapstructure:"sheet_id"`
	CategoriesTab    string        `mapstructure:"categories_tab"`
	ProductTabs      []string      `mapstructure:"product_tabs"`
	TimeoutSeconds   int           `mapstructure:"timeout_seconds"`
	PlaceholderImage string        `mapstructure:"placeholder_image"`
	CacheTTLSeconds  int           `mapstructure:"cache_ttl_seconds"`
	Events           []EventConfig `mapstructure:"events"`
}

// Timeout 表格请求超时
func (c CatalogConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// EventConfig 促销活动配置
type EventConfig struct {
	ID                 string `mapstructure:"id"`
	Title              string `mapstructure:"title"`
	Description        string `mapstructure:"description"`
	DiscountPercentage int    `mapstructure:"discount_percentage"`
	Active             bool   `mapstructure:"active"`
	StartAt            string `mapstructure:"start_at"` // RFC3339，可为空
	EndAt              string `mapstructure:"end_at"`   // RFC3339，可为空
}

// CheckoutConfig 结账跳转配置
type CheckoutConfig struct {
	ChatBaseURL string `mapstructure:"chat_base_url"`
	ChatHandle  string `mapstructure:"chat_handle"`
	Timezone    string `mapstructure:"timezone"`
	Currency    string `mapstructure:"currency"`
	StoreName   string `mapstructure:"store_name"`
}

// Location 解析下单时间所用时区，失败时回退 UTC
func (c CheckoutConfig) Location() *time.Location {
	name := strings.TrimSpace(c.Timezone)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warnw("config_timezone_invalid", "timezone", name, "error", err)
		return time.UTC
	}
	return loc
}

// SessionConfig 访客会话配置
type SessionConfig struct {
	TTLSeconds      int    `mapstructure:"ttl_seconds"`
	DefaultCategory string `mapstructure:"default_category"`
}

// TTL 会话有效期
func (c SessionConfig) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

// Load 从 config.yml 加载配置
func Load() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("../")   // 如果从 cmd/server 运行
	v.AddConfigPath("./etc") // etc 文件夹

	setDefaults(v)

	// 环境变量支持，例如 checkout.chat_handle -> CHECKOUT_CHAT_HANDLE
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("配置解析失败: %w", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("log.level", "")
	v.SetDefault("log.dir", "")
	v.SetDefault("log.filename", "app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
	v.SetDefault("database.enabled", true)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./db/senghong.db")
	v.SetDefault("database.pool.max_open_conns", 1)
	v.SetDefault("database.pool.max_idle_conns", 1)
	v.SetDefault("database.pool.conn_max_lifetime_seconds", 0)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "sh")
	v.SetDefault("queue.enabled", false)
	v.SetDefault("queue.host", "127.0.0.1")
	v.SetDefault("queue.port", 6379)
	v.SetDefault("queue.password", "")
	v.SetDefault("queue.db", 1)
	v.SetDefault("queue.concurrency", 5)
	v.SetDefault("queue.queues", map[string]int{
		"default": 1,
	})
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{
		"Content-Type",
		"Content-Length",
		"Accept-Encoding",
		"Accept-Language",
		"Cache-Control",
		"X-Requested-With",
		"X-Session-ID",
	})
	v.SetDefault("cors.exposed_headers", []string{"X-Request-ID", "X-Session-ID"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 600)
	v.SetDefault("security.checkout_rate_limit.window_seconds", 60)
	v.SetDefault("security.checkout_rate_limit.max_requests", 10)
	v.SetDefault("security.checkout_ip_rate_limit.window_seconds", 60)
	v.SetDefault("security.checkout_ip_rate_limit.max_requests", 30)
	v.SetDefault("catalog.base_url", "https://opensheet.elk.sh")
	v.SetDefault("catalog.sheet_id", "1IxeuobNv6Qk7-EbGn4qzTxT4xRwoMqH_1hT2-pRSpPU")
	v.SetDefault("catalog.categories_tab", "Categories")
	v.SetDefault("catalog.product_tabs", []string{"Sheet1", "Products", "Menu"})
	v.SetDefault("catalog.timeout_seconds", 10)
	v.SetDefault("catalog.placeholder_image", "/api/placeholder/300/200")
	v.SetDefault("catalog.cache_ttl_seconds", 300)
	v.SetDefault("catalog.events", []map[string]interface{}{
		{
			"id":                  "new-arrivals-2025",
			"title":               "New Arrivals",
			"description":         "Fresh styles for the new season",
			"discount_percentage": 20,
			"active":              true,
		},
	})
	v.SetDefault("checkout.chat_base_url", "https://t.me")
	v.SetDefault("checkout.chat_handle", "Shong09111")
	v.SetDefault("checkout.timezone", "Asia/Phnom_Penh")
	v.SetDefault("checkout.currency", "USD")
	v.SetDefault("checkout.store_name", "SengHong Store")
	v.SetDefault("session.ttl_seconds", 86400)
	v.SetDefault("session.default_category", "clothes")
}
