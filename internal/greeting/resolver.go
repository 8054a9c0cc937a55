// Package greeting resolves the greeting text served by the hello function.
package greeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog"
)

// ParameterName is the parameter store key holding the greeting.
const ParameterName = "/guild/hello-service/message"

// ParameterAPI captures the subset of the SSM client API we use. This enables
// unit testing with a fake.
type ParameterAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// ClientFactory builds a parameter store client for one invocation.
type ClientFactory func(ctx context.Context) (ParameterAPI, error)

// NewSSMClient loads the default AWS config (region and credentials from the
// Lambda environment) and returns an SSM client.
func NewSSMClient(ctx context.Context) (ParameterAPI, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return ssm.NewFromConfig(cfg), nil
}

var errNoValue = errors.New("parameter has no value")

// Resolver reads the greeting from the parameter store, falling back to a
// caller-supplied string when the store cannot be used.
type Resolver struct {
	newClient ClientFactory
}

// NewResolver returns a Resolver that obtains its client from newClient.
// A nil factory means NewSSMClient.
func NewResolver(newClient ClientFactory) *Resolver {
	if newClient == nil {
		newClient = NewSSMClient
	}
	return &Resolver{newClient: newClient}
}

// Greeting returns the stored greeting, or fallback if the client cannot be
// built, the call fails, or the parameter carries no value. It never fails.
// Log entries go to the logger stored in ctx.
func (r *Resolver) Greeting(ctx context.Context, fallback string) string {
	log := zerolog.Ctx(ctx)

	msg, err := r.fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Str("parameter", ParameterName).Msg("parameter not found, using fallback")
		return fallback
	}
	log.Info().Str("parameter", ParameterName).Msg("retrieved greeting from parameter store")
	return msg
}

func (r *Resolver) fetch(ctx context.Context) (string, error) {
	client, err := r.newClient(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{Name: aws.String(ParameterName)})
	if err != nil {
		return "", fmt.Errorf("ssm get %s: %w", ParameterName, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", errNoValue
	}
	return aws.ToString(out.Parameter.Value), nil
}
