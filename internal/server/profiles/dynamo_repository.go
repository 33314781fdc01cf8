package profiles

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
)

// DynamoAPI is the subset of the DynamoDB client the repository needs.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// dynamoProfile is the storage projection of a Profile.
type dynamoProfile struct {
	UserID           string  `dynamodbav:"UserId"`
	ExperiencePoints float64 `dynamodbav:"ExperiencePoints"`
}

type DynamoRepository struct {
	client DynamoAPI
	table  string
}

func NewDynamoRepository(client DynamoAPI, table string) (*DynamoRepository, error) {
	return &DynamoRepository{client: client, table: table}, nil
}

func (r *DynamoRepository) Get(ctx context.Context, userID string) (*Profile, error) {

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error performing dynamo request: %v", err)
	}

	if len(out.Item) == 0 {
		return nil, common.ErrorNotFound
	}

	var rec dynamoProfile
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("error decoding dynamo item: %v", err)
	}

	points := rec.ExperiencePoints
	return &Profile{UserID: rec.UserID, ExperiencePoints: &points}, nil
}

func (r *DynamoRepository) Save(ctx context.Context, profile *Profile) (*Profile, error) {

	item, err := attributevalue.MarshalMap(dynamoProfile{
		UserID:           profile.UserID,
		ExperiencePoints: *profile.ExperiencePoints,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding dynamo item: %v", err)
	}

	// PutItem replaces the whole item, which is exactly the upsert contract.
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return nil, fmt.Errorf("error performing dynamo request: %v", err)
	}

	return profile, nil
}
