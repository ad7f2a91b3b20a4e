package secrets

import (
	"context"
	"fmt"

	"rsstweetbot/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type ssmAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

type ssmRepository struct {
	client ssmAPI
}

// NewSSMRepository resolves secrets from SSM Parameter Store using the
// ambient AWS credential chain.
func NewSSMRepository(ctx context.Context) (repository.SecretRepository, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &ssmRepository{client: ssm.NewFromConfig(cfg)}, nil
}

func (r *ssmRepository) Get(ctx context.Context, name string) (string, error) {
	out, err := r.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", repository.ErrSecretUnavailable, name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("%w: %s: no value returned", repository.ErrSecretUnavailable, name)
	}
	return aws.ToString(out.Parameter.Value), nil
}

func (r *ssmRepository) GetMany(ctx context.Context, names []string) (map[string]string, error) {
	out, err := r.client.GetParameters(ctx, &ssm.GetParametersInput{
		Names:          names,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSecretUnavailable, err)
	}
	if len(out.InvalidParameters) > 0 {
		return nil, fmt.Errorf("%w: unknown parameters %v", repository.ErrSecretUnavailable, out.InvalidParameters)
	}

	values := make(map[string]string, len(out.Parameters))
	for _, p := range out.Parameters {
		values[aws.ToString(p.Name)] = aws.ToString(p.Value)
	}
	return values, nil
}
