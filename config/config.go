package config

import (
	"errors"
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// returns the same instance afterwards. A missing file falls back to the
// defaults; a malformed one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
			log.Println("no config file found, using defaults")
		}
		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
	})

	return config
}
