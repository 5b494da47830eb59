package aws_handler

import (
	"finserver/src/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// NewSecretManagerFromConfig builds a Secrets Manager client for the
// configured region.
func NewSecretManagerFromConfig(cfg *config.Config) (*SecretManager, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
	})
	if err != nil {
		return nil, err
	}
	return NewSecretManager(secretsmanager.New(sess)), nil
}

// ResolveSecrets overwrites config API keys with values from Secrets Manager
// for every secret id that is set. Used in deployed environments where keys
// are not kept in the settings file.
func ResolveSecrets(cfg *config.Config) error {
	if cfg.AWS.StocksAPIKeySecret == "" && cfg.AWS.AIAPIKeySecret == "" && cfg.AWS.JWTSecretSecret == "" {
		return nil
	}

	manager, err := NewSecretManagerFromConfig(cfg)
	if err != nil {
		return err
	}

	if cfg.AWS.StocksAPIKeySecret != "" {
		value, err := manager.GetSecretValue(cfg.AWS.StocksAPIKeySecret)
		if err != nil {
			return err
		}
		cfg.ExternalClients.Stocks.APIKey = value
	}
	if cfg.AWS.AIAPIKeySecret != "" {
		value, err := manager.GetSecretValue(cfg.AWS.AIAPIKeySecret)
		if err != nil {
			return err
		}
		cfg.ExternalClients.AIGateway.APIKey = value
	}
	if cfg.AWS.JWTSecretSecret != "" {
		value, err := manager.GetSecretValue(cfg.AWS.JWTSecretSecret)
		if err != nil {
			return err
		}
		cfg.Auth.JWTSecret = value
	}
	return nil
}
