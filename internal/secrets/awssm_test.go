package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsManager struct {
	out     *secretsmanager.GetSecretValueOutput
	err     error
	gotName string
}

func (f *fakeSecretsManager) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.gotName = aws.ToString(params.SecretId)
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func TestManager_Fetch_ReturnsSecretString(t *testing.T) {
	fake := &fakeSecretsManager{
		out: &secretsmanager.GetSecretValueOutput{SecretString: aws.String("secret123")},
	}
	m := &Manager{client: fake}

	v, err := m.Fetch(context.Background(), "api-auth-key")
	require.NoError(t, err)
	assert.Equal(t, "secret123", v)
	assert.Equal(t, "api-auth-key", fake.gotName)
}

func TestManager_Fetch_PropagatesClientError(t *testing.T) {
	fake := &fakeSecretsManager{err: errors.New("access denied")}
	m := &Manager{client: fake}

	_, err := m.Fetch(context.Background(), "api-auth-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestManager_Fetch_NilSecretString(t *testing.T) {
	fake := &fakeSecretsManager{out: &secretsmanager.GetSecretValueOutput{}}
	m := &Manager{client: fake}

	_, err := m.Fetch(context.Background(), "api-auth-key")
	require.Error(t, err)
}
