package registry

import (
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"gridnode.dev/launcher/internal/entity"
	"gridnode.dev/launcher/internal/node"
	"gridnode.dev/launcher/internal/registry/delegate"
)

// Registry records the nodes this launcher has started in a local database.
// It is bookkeeping only: a failing registry must never block a launch, so
// callers log its errors and carry on.
type Registry struct {
	delegate delegate.RegistryDelegate
}

func NewRegistry(delegate delegate.RegistryDelegate) (instance *Registry) {
	instance = &Registry{
		delegate: delegate,
	}
	return
}

func (registry *Registry) Open() (err error) {
	logrus.Debug("Connecting to the node registry")
	if err = registry.delegate.Open(); err != nil {
		return
	}
	logrus.Debug("Applying node registry migrations")
	if err = registry.delegate.Migrate(); err != nil {
		return
	}
	return
}

func (registry *Registry) Close() error {
	return registry.delegate.Close()
}

// Reset drops every previously recorded node.
func (registry *Registry) Reset() error {
	logrus.Info("Resetting the node registry")
	return registry.delegate.DeleteAll()
}

// RecordStart stores a running entry for the node just spawned and returns
// it so the caller can mark it stopped later.
func (registry *Registry) RecordStart(configuration node.Configuration, pid int) (record *entity.Node, err error) {
	record = &entity.Node{
		Name:      configuration.Name,
		NodeType:  configuration.NodeType,
		SideType:  configuration.SideType,
		Host:      configuration.Host,
		Port:      configuration.Port,
		Processes: configuration.Processes,
		Pid:       pid,
		Status:    entity.NodeStatusRunning,
	}
	if err = registry.delegate.Insert(record); err != nil {
		record = nil
	}
	return
}

// RecordExit marks a previously recorded node as stopped with its exit code.
func (registry *Registry) RecordExit(record *entity.Node, exitCode int) error {
	record.Status = entity.NodeStatusStopped
	record.ExitCode = sql.NullInt32{Int32: int32(exitCode), Valid: true}
	record.StoppedDate = sql.NullTime{Time: time.Now(), Valid: true}
	return registry.delegate.Update(record)
}

// Nodes lists every recorded node.
func (registry *Registry) Nodes() ([]entity.Node, error) {
	return registry.delegate.List()
}
