package clientfactory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/iot"
)

// NewConfig returns an [aws.Config] resolved from the environment and
// shared config files. A non-empty region overrides the resolved one.
func NewConfig(ctx context.Context, region string) (aws.Config, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS configuration: %w", err)
	}

	return cfg, nil
}

// IoT returns an IoT service client.
func IoT(ctx context.Context, region string) (*iot.Client, error) {
	cfg, err := NewConfig(ctx, region)
	if err != nil {
		return nil, err
	}

	return iot.NewFromConfig(cfg), nil
}

// CloudFormation returns a CloudFormation service client.
func CloudFormation(ctx context.Context, region string) (*cloudformation.Client, error) {
	cfg, err := NewConfig(ctx, region)
	if err != nil {
		return nil, err
	}

	return cloudformation.NewFromConfig(cfg), nil
}
