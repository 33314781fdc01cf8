package db

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dmitrijs2005/profilekeeper/internal/server/profiles"
)

// DynamoOptions configures the DynamoDB-backed store.
//
// Credentials and BaseEndpoint are optional; when empty the default AWS
// credential chain and endpoint apply.
type DynamoOptions struct {
	Table           string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BaseEndpoint    string
}

type DynamoRepositoryManager struct {
	profiles profiles.Repository
}

func (m *DynamoRepositoryManager) Profiles() profiles.Repository {
	return m.profiles
}

func (m *DynamoRepositoryManager) Close() error {
	return nil
}

// RunMigrations is a no-op: the table is provisioned outside the service.
func (m *DynamoRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func NewDynamoRepositoryManager(ctx context.Context, opts DynamoOptions) (RepositoryManager, error) {

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}

	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
	})

	repo, err := profiles.NewDynamoRepository(client, opts.Table)
	if err != nil {
		return nil, fmt.Errorf("profile repo creation error: %w", err)
	}

	return &DynamoRepositoryManager{profiles: repo}, nil
}
