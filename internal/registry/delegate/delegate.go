package delegate

import "gridnode.dev/launcher/internal/entity"

// RegistryDelegate abstracts the storage backing the node registry.
type RegistryDelegate interface {
	Open() error
	Close() error
	Migrate() error
	Insert(node *entity.Node) error
	Update(node *entity.Node) error
	DeleteAll() error
	List() ([]entity.Node, error)
}
