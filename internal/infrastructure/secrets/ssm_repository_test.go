package secrets

import (
	"context"
	"errors"
	"testing"

	"rsstweetbot/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

type fakeSSM struct {
	parameters map[string]string
	err        error

	lastBatch []string
}

func (f *fakeSSM) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(params.Name)
	value, ok := f.parameters[name]
	if !ok {
		return nil, errors.New("ParameterNotFound")
	}
	return &ssm.GetParameterOutput{
		Parameter: &types.Parameter{Name: params.Name, Value: aws.String(value)},
	}, nil
}

func (f *fakeSSM) GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastBatch = params.Names

	out := &ssm.GetParametersOutput{}
	for _, name := range params.Names {
		value, ok := f.parameters[name]
		if !ok {
			out.InvalidParameters = append(out.InvalidParameters, name)
			continue
		}
		out.Parameters = append(out.Parameters, types.Parameter{
			Name:  aws.String(name),
			Value: aws.String(value),
		})
	}
	return out, nil
}

func TestSSMRepository_Get(t *testing.T) {
	repo := &ssmRepository{client: &fakeSSM{parameters: map[string]string{
		"/app/bitly.login": "someuser",
	}}}

	value, err := repo.Get(context.Background(), "/app/bitly.login")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "someuser" {
		t.Errorf("expected 'someuser', got %q", value)
	}
}

func TestSSMRepository_Get_Unavailable(t *testing.T) {
	repo := &ssmRepository{client: &fakeSSM{err: errors.New("AccessDeniedException")}}

	_, err := repo.Get(context.Background(), "/app/bitly.login")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, repository.ErrSecretUnavailable) {
		t.Errorf("expected ErrSecretUnavailable, got %v", err)
	}
}

func TestSSMRepository_GetMany(t *testing.T) {
	fake := &fakeSSM{parameters: map[string]string{
		"/app/consumer.key":    "ck",
		"/app/consumer.secret": "cs",
	}}
	repo := &ssmRepository{client: fake}

	values, err := repo.GetMany(context.Background(), []string{"/app/consumer.key", "/app/consumer.secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["/app/consumer.key"] != "ck" || values["/app/consumer.secret"] != "cs" {
		t.Errorf("unexpected values: %v", values)
	}
}

func TestSSMRepository_GetMany_UnknownName(t *testing.T) {
	repo := &ssmRepository{client: &fakeSSM{parameters: map[string]string{
		"/app/consumer.key": "ck",
	}}}

	_, err := repo.GetMany(context.Background(), []string{"/app/consumer.key", "/app/missing"})
	if err == nil {
		t.Fatal("expected an error for an unknown parameter name")
	}
	if !errors.Is(err, repository.ErrSecretUnavailable) {
		t.Errorf("expected ErrSecretUnavailable, got %v", err)
	}
}
