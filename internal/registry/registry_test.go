package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gridnode.dev/launcher/internal/entity"
	"gridnode.dev/launcher/internal/node"
	"gridnode.dev/launcher/internal/registry"
	"gridnode.dev/launcher/internal/registry/mock"
)

func TestOpenMigrates(t *testing.T) {
	delegate := &mock.MockDelegate{}
	nodeRegistry := registry.NewRegistry(delegate)
	assert.NoError(t, nodeRegistry.Open())
	assert.True(t, delegate.Migrated)
}

func TestFailOpen(t *testing.T) {
	delegate := &mock.MockDelegate{FailOpen: true}
	nodeRegistry := registry.NewRegistry(delegate)
	assert.Error(t, nodeRegistry.Open())
}

func TestRecordStart(t *testing.T) {
	delegate := &mock.MockDelegate{}
	nodeRegistry := registry.NewRegistry(delegate)
	assert.NoError(t, nodeRegistry.Open())

	configuration := node.DefaultConfiguration()
	configuration.Name = "canada-domain"
	configuration.Port = 9081
	record, err := nodeRegistry.RecordStart(configuration, 4321)
	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, entity.NodeStatusRunning, record.Status)
	assert.Equal(t, 4321, record.Pid)

	nodes, err := nodeRegistry.Nodes()
	assert.NoError(t, err)
	if assert.Len(t, nodes, 1) {
		assert.Equal(t, "canada-domain", nodes[0].Name)
		assert.Equal(t, 9081, nodes[0].Port)
		assert.Equal(t, "0.0.0.0", nodes[0].Host)
	}
}

func TestRecordStartFailure(t *testing.T) {
	delegate := &mock.MockDelegate{FailInsert: true}
	nodeRegistry := registry.NewRegistry(delegate)
	assert.NoError(t, nodeRegistry.Open())

	record, err := nodeRegistry.RecordStart(node.DefaultConfiguration(), 4321)
	assert.Error(t, err)
	assert.Nil(t, record)
}

func TestRecordExit(t *testing.T) {
	delegate := &mock.MockDelegate{}
	nodeRegistry := registry.NewRegistry(delegate)
	assert.NoError(t, nodeRegistry.Open())

	record, err := nodeRegistry.RecordStart(node.DefaultConfiguration(), 4321)
	assert.NoError(t, err)
	assert.NoError(t, nodeRegistry.RecordExit(record, 3))

	nodes, err := nodeRegistry.Nodes()
	assert.NoError(t, err)
	if assert.Len(t, nodes, 1) {
		assert.Equal(t, entity.NodeStatusStopped, nodes[0].Status)
		assert.True(t, nodes[0].ExitCode.Valid)
		assert.Equal(t, int32(3), nodes[0].ExitCode.Int32)
		assert.True(t, nodes[0].StoppedDate.Valid)
	}
}

func TestReset(t *testing.T) {
	delegate := &mock.MockDelegate{}
	nodeRegistry := registry.NewRegistry(delegate)
	assert.NoError(t, nodeRegistry.Open())

	_, err := nodeRegistry.RecordStart(node.DefaultConfiguration(), 4321)
	assert.NoError(t, err)
	assert.NoError(t, nodeRegistry.Reset())

	nodes, err := nodeRegistry.Nodes()
	assert.NoError(t, err)
	assert.Len(t, nodes, 0)
}
