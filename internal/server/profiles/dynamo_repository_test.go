package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
)

type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue

	getErr error
	putErr error

	gotTable string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gotTable = aws.ToString(params.TableName)
	if f.getErr != nil {
		return nil, f.getErr
	}
	key := params.Key["UserId"].(*types.AttributeValueMemberS).Value
	item, ok := f.items[key]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.gotTable = aws.ToString(params.TableName)
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := params.Item["UserId"].(*types.AttributeValueMemberS).Value
	f.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoRepository_SaveThenGet(t *testing.T) {
	fake := newFakeDynamo()
	repo, err := NewDynamoRepository(fake, "Profile")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Save(ctx, &Profile{UserID: "u1", ExperiencePoints: points(42)})
	require.NoError(t, err)
	assert.Equal(t, "Profile", fake.gotTable)

	p, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, 42.0, *p.ExperiencePoints)
}

func TestDynamoRepository_Get_NotFound(t *testing.T) {
	repo, err := NewDynamoRepository(newFakeDynamo(), "Profile")
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDynamoRepository_Get_BackendError(t *testing.T) {
	fake := newFakeDynamo()
	fake.getErr = errors.New("throttled")
	repo, err := NewDynamoRepository(fake, "Profile")
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestDynamoRepository_Save_ReplacesItem(t *testing.T) {
	fake := newFakeDynamo()
	repo, err := NewDynamoRepository(fake, "Profile")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Save(ctx, &Profile{UserID: "u1", ExperiencePoints: points(10)})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &Profile{UserID: "u1", ExperiencePoints: points(99)})
	require.NoError(t, err)

	p, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 99.0, *p.ExperiencePoints)
}
