package odimtree

import (
	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
	"github.com/arpa-simc/odimh5/internal/schema"
)

// node is the common base every Object/Dataset/Data/Quality embeds: a
// backend group plus lazily-opened views of its what/where/how attribute
// children. backend.Group already satisfies codec.AttributeStore, so no
// adapter is needed between the two packages.
type node struct {
	group   backend.Group
	version schema.Version

	what  *codec.Group
	where *codec.Group
	how   *codec.Group
}

func newNode(group backend.Group, version schema.Version) *node {
	return &node{group: group, version: version}
}

func (n *node) Version() schema.Version { return n.version }

func (n *node) What() (*codec.Group, error)  { return n.attrGroup(&n.what, schema.GroupWhat) }
func (n *node) Where() (*codec.Group, error) { return n.attrGroup(&n.where, schema.GroupWhere) }
func (n *node) How() (*codec.Group, error)   { return n.attrGroup(&n.how, schema.GroupHow) }

// attrGroup returns the cached *codec.Group for name, opening the child
// lazily on first access and creating it then if it is absent.
func (n *node) attrGroup(cache **codec.Group, name string) (*codec.Group, error) {
	if *cache != nil {
		return *cache, nil
	}
	sub, err := n.ensureChild(name)
	if err != nil {
		return nil, err
	}
	g := codec.NewGroup(name, sub)
	*cache = g
	return g, nil
}

// ensureChild opens an existing child group or creates it if absent.
func (n *node) ensureChild(name string) (backend.Group, error) {
	exists, err := n.group.HasChild(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return n.group.OpenChild(name)
	}
	return n.group.CreateChild(name)
}

// Close does nothing and always returns nil: the cached attribute groups'
// backend handles are not closed here. Safe to call on a node whose
// groups were never opened.
func (n *node) Close() error {
	return nil // attribute child groups are released with the owning group
}
