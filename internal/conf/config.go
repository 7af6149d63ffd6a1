package conf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"ucr-mock/internal/domain"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Generator GeneratorConfig
	Homepage  domain.HomepageStats
	Analytics domain.AnalyticsSummary
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level string
}

type GeneratorConfig struct {
	// 0 = 每次請求使用新的亂數；非 0 則固定輸出 (截圖/展示用)
	Seed uint64
	// 空字串 = 每次請求即時產生；否則依 cron 排程刷新快照
	RefreshSchedule string `mapstructure:"refresh_schedule"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.refresh_schedule", "")

	v.SetDefault("homepage.total_ucrs", 1247)
	v.SetDefault("homepage.active_creators", 342)
	v.SetDefault("homepage.sightings_logged", 8923)
	v.SetDefault("homepage.revenue_distributed", "$1.4K USDC")

	v.SetDefault("analytics.total_nfts", 1000)
	v.SetDefault("analytics.total_creators", 500)
	v.SetDefault("analytics.total_revenue", "$1,000,000 USDC")
}

// LoadConfig 讀取 ./config/config.yaml，找不到檔案時只用預設值與環境變數 (UCR_SERVER_PORT 等)
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("UCR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logrus.Warn("找不到設定檔，使用預設值")
	} else {
		logrus.Infof("設定檔讀取成功: %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// LogLevel 無法解析時退回 info
func (c *Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
