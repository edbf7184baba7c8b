package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port" validate:"min=0,max=65535"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
		Format   string `yaml:"format" validate:"omitempty,oneof=text json"`
		Output   string `yaml:"output" validate:"omitempty,oneof=stdout file both"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	Directory struct {
		Seed               int64 `yaml:"seed"`                 // 模拟用户目录的随机种子
		UserCount          int   `yaml:"user_count"`           // 生成的用户数量
		RefreshIntervalSec int   `yaml:"refresh_interval_sec"` // 定时刷新目录的间隔（秒），<=0 表示关闭
	} `yaml:"directory"`
	Matching struct {
		TopN            int `yaml:"top_n" validate:"min=0"`             // 默认返回的匹配数量
		AtRiskThreshold int `yaml:"at_risk_threshold" validate:"min=0"` // 平均技能低于该值视为学习困难
	} `yaml:"matching"`
	Catalog struct {
		FilePath string `yaml:"file_path"` // 学习资源目录文件路径，为空时使用内置资源表
	} `yaml:"catalog"`
}

// 配置默认值
const (
	defaultUserCount       = 22
	defaultDirectorySeed   = 42
	defaultTopN            = 3
	defaultAtRiskThreshold = 40
	defaultServerPort      = 8080
)

func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	var cfg Config

	// 尝试从config.yaml文件加载配置
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")

		applyEnvOverrides(&cfg)
		applyDefaults(&cfg)

		if err := cfg.Validate(); err != nil {
			log.Printf("Invalid config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		return &cfg
	}

	// 如果config.yaml不存在，则完全从环境变量加载配置
	return loadFromEnv()
}

// Validate 校验配置字段的取值范围
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// applyEnvOverrides 从环境变量中覆盖部分配置
func applyEnvOverrides(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cfg.Catalog.FilePath = path
	}
	if seed := os.Getenv("DIRECTORY_SEED"); seed != "" {
		if s, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Directory.Seed = s
		}
	}
}

// applyDefaults 填充缺失配置的默认值并计算派生字段
func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = defaultServerPort
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if cfg.Directory.UserCount <= 0 {
		cfg.Directory.UserCount = defaultUserCount
	}
	if cfg.Directory.Seed == 0 {
		cfg.Directory.Seed = defaultDirectorySeed
	}
	if cfg.Matching.TopN <= 0 {
		cfg.Matching.TopN = defaultTopN
	}
	if cfg.Matching.AtRiskThreshold <= 0 {
		cfg.Matching.AtRiskThreshold = defaultAtRiskThreshold
	}
}

func loadFromEnv() *Config {
	// 当config.yaml加载失败时，创建一个最小配置
	var cfg Config

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	log.Println("配置从环境变量加载，部分配置可能缺失")
	return &cfg
}
