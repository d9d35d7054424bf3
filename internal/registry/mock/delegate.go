package mock

import (
	"errors"

	"gridnode.dev/launcher/internal/entity"
)

// MockDelegate keeps the registry rows in memory for tests.
type MockDelegate struct {
	FailOpen   bool
	FailInsert bool
	Migrated   bool
	Nodes      []entity.Node

	nextID uint
}

func (m *MockDelegate) Open() error {
	if m.FailOpen {
		return errors.New("failed to open the registry")
	}
	return nil
}

func (m *MockDelegate) Close() error {
	return nil
}

func (m *MockDelegate) Migrate() error {
	m.Migrated = true
	return nil
}

func (m *MockDelegate) Insert(node *entity.Node) error {
	if m.FailInsert {
		return errors.New("failed to insert the node")
	}
	m.nextID++
	node.ID = m.nextID
	m.Nodes = append(m.Nodes, *node)
	return nil
}

func (m *MockDelegate) Update(node *entity.Node) error {
	for index := range m.Nodes {
		if m.Nodes[index].ID == node.ID {
			m.Nodes[index] = *node
			return nil
		}
	}
	return errors.New("unknown node")
}

func (m *MockDelegate) DeleteAll() error {
	m.Nodes = nil
	return nil
}

func (m *MockDelegate) List() ([]entity.Node, error) {
	return m.Nodes, nil
}
