package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newSecretsManagerClient = func(cfg aws.Config, optFns ...func(*secretsmanager.Options)) SecretsManagerAPI {
		return secretsmanager.NewFromConfig(cfg, optFns...)
	}
)

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// ManagerOptions configures the vault client connection.
//
// AccessKeyID/SecretAccessKey are optional; when empty the default AWS
// credential chain applies. BaseEndpoint is optional and points the client
// at a local emulator.
type ManagerOptions struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BaseEndpoint    string
}

// Manager fetches secrets from AWS Secrets Manager.
type Manager struct {
	client SecretsManagerAPI
}

// NewManager builds a Secrets Manager backed Fetcher.
func NewManager(ctx context.Context, opts ManagerOptions) (*Manager, error) {

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}

	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := newSecretsManagerClient(cfg, func(o *secretsmanager.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
	})

	return &Manager{client: client}, nil
}

// Fetch returns the latest version of the named secret.
func (m *Manager) Fetch(ctx context.Context, name string) (string, error) {

	out, err := m.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("error fetching secret %s: %w", name, err)
	}

	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", name)
	}

	return *out.SecretString, nil
}
