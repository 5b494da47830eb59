package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Auth            AuthConfig           `mapstructure:"auth"`
	AWS             AWSConfig            `mapstructure:"aws"`
}

type ServiceConfig struct {
	Port string `mapstructure:"port"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Driver           string `mapstructure:"driver"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	UseTLS   bool   `mapstructure:"useTls"`
}

type ExternalClientConfig struct {
	Stocks    StocksConfig    `mapstructure:"stocks"`
	Crypto    CryptoConfig    `mapstructure:"crypto"`
	FX        FXConfig        `mapstructure:"fx"`
	AIGateway AIGatewayConfig `mapstructure:"aiGateway"`
}

type StocksConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
}

type CryptoConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

type FXConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

type AIGatewayConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
	Model   string `mapstructure:"model"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
}

// AWSConfig holds optional Secrets Manager ids used to fill in API keys at
// boot. Empty ids mean the values from the config file are used as-is.
type AWSConfig struct {
	Region             string `mapstructure:"region"`
	StocksAPIKeySecret string `mapstructure:"stocksApiKeySecret"`
	AIAPIKeySecret     string `mapstructure:"aiApiKeySecret"`
	JWTSecretSecret    string `mapstructure:"jwtSecretSecret"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	// Local overrides live in .env; a missing file is fine.
	_ = godotenv.Load()

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
