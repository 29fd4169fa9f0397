package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.page_ttl", 60)
	viper.SetDefault("cache.globals_ttl", 300)
	viper.SetDefault("cache.product_ttl", 60)
	viper.SetDefault("cache.sweep_interval", 120)
	viper.SetDefault("cache.max_entries", 1024)
	viper.SetDefault("jwt.issuer", "Solarium")
	viper.SetDefault("jwt.expire_hours", 24)
}
