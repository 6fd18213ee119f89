package clientfactory_test

import (
	"context"

	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/nimbus/pkg/clientfactory"
)

func TestNewConfigRegionOverride(t *testing.T) {
	cfg, err := clientfactory.NewConfig(context.Background(), "eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestIoTClient(t *testing.T) {
	client, err := clientfactory.IoT(context.Background(), "eu-west-1")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestCloudFormationClient(t *testing.T) {
	client, err := clientfactory.CloudFormation(context.Background(), "eu-west-1")
	require.NoError(t, err)
	assert.NotNil(t, client)
}
