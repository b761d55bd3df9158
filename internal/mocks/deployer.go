// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/mbattoken/mbat-cli/pkg/artifacts"
	"github.com/mbattoken/mbat-cli/pkg/contract"
	"github.com/stretchr/testify/mock"
)

// Deployer is a mock implementation of contract.Deployer
type Deployer struct {
	mock.Mock
}

func (m *Deployer) Deploy(ctx context.Context, artifact *artifacts.Artifact, args ...interface{}) (*contract.Deployment, error) {
	callArgs := append([]interface{}{ctx, artifact}, args...)
	ret := m.Called(callArgs...)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*contract.Deployment), ret.Error(1)
}

// Registry is a mock implementation of artifacts.Registry
type Registry struct {
	mock.Mock
}

func (m *Registry) Require(name string) (*artifacts.Artifact, error) {
	ret := m.Called(name)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*artifacts.Artifact), ret.Error(1)
}
