package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"sentwatch/internal/structures"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "SENTWATCH_LOG_LEVEL")
	viper.BindEnv("watch.interval", "SENTWATCH_WATCH_INTERVAL")
	viper.BindEnv("notifier.enabled", "SENTWATCH_NOTIFIER_ENABLED")
	viper.BindEnv("notifier.webhookUrl", "SENTWATCH_WEBHOOK_URL")
	viper.BindEnv("capture.devtoolsUrl", "SENTWATCH_DEVTOOLS_URL")
	viper.BindEnv("cache.enabled", "SENTWATCH_CACHE_ENABLED")
	viper.BindEnv("cache.size", "SENTWATCH_CACHE_SIZE")

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

	conf.AppName = "SentWatch"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	conf.Once = flags.Once

	return &conf, nil
}
