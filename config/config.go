package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	// Driver selects the gorm dialector: "mysql" or "sqlite".
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type ConsulConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

type Config struct {
	HTTPPort    int            `mapstructure:"http_port"`
	GRPCPort    int            `mapstructure:"grpc_port"`
	LogLevel    string         `mapstructure:"log_level"`
	ServiceName string         `mapstructure:"service_name"`
	JwtSecret   string         `mapstructure:"jwt_secret"`
	Seed        bool           `mapstructure:"seed"`
	Database    DatabaseConfig `mapstructure:"database"`
	Consul      ConsulConfig   `mapstructure:"consul"`
}

var AppConfig Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable overrides, e.g. USERMODEL_DATABASE_DSN
	viper.SetEnvPrefix("USERMODEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("http_port", 8080)
	viper.SetDefault("grpc_port", 50051)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("service_name", "usermodel")
	viper.SetDefault("jwt_secret", "default-very-insecure-secret-key") // CHANGE THIS IN PRODUCTION
	viper.SetDefault("seed", true)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "usermodel.db")
	viper.SetDefault("consul.enabled", false)
	viper.SetDefault("consul.address", "127.0.0.1:8500")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using defaults and environment variables.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		panic(fmt.Errorf("unable to decode config into struct: %w", err))
	}
}
