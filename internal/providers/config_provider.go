package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/km1000101/the-Editors-hub/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "HUB_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "HUB_SAVE_INTERVAL")
	viper.BindEnv("news.refreshInterval", "HUB_NEWS_REFRESH_INTERVAL")
	viper.BindEnv("news.apiKey", "HUB_NEWS_API_KEY")
	viper.BindEnv("cache.enabled", "HUB_CACHE_ENABLED")
	viper.BindEnv("cache.size", "HUB_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "TheEditorsHub"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
