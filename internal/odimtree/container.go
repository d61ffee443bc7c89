package odimtree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arpa-simc/odimh5/internal/backend"
	"github.com/arpa-simc/odimh5/internal/codec"
)

// container manages one family of densely 1..N numbered children of a
// group, e.g. "dataset1".."datasetN" under an Object, or "data1".."dataN"
// under a Dataset. Removal always compacts the remaining children down by
// one so the numbering stays dense (spec §3 invariant 2, implemented here
// once and shared by every node kind per the root spec's Design Notes).
type container struct {
	group  backend.Group
	prefix string
}

func newContainer(group backend.Group, prefix string) *container {
	return &container{group: group, prefix: prefix}
}

// indices returns the sorted list of existing N values for prefix+N
// children, ignoring anything else under the group (e.g. what/where/how).
func (c *container) indices() ([]int, error) {
	names, err := c.group.ChildNames()
	if err != nil {
		return nil, err
	}
	var out []int
	for _, name := range names {
		if !strings.HasPrefix(name, c.prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(name, c.prefix))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}

func (c *container) Count() (int, error) {
	idx, err := c.indices()
	if err != nil {
		return 0, err
	}
	return len(idx), nil
}

// name returns the 1-based store child name for a 0-based external index
// (spec's get_child(i): "0-based externally, 1-based on store").
func (c *container) name(i int) string { return fmt.Sprintf("%s%d", c.prefix, i+1) }

func (c *container) indexError(i, count int) error {
	return &codec.InvalidArgumentError{
		Arg:    c.prefix + " index",
		Reason: fmt.Sprintf("%d out of range (have %d)", i, count),
	}
}

// Open returns the backend group for the i-th child (0-based).
func (c *container) Open(i int) (backend.Group, error) {
	count, err := c.Count()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= count {
		return nil, c.indexError(i, count)
	}
	return c.group.OpenChild(c.name(i))
}

// Create appends a new child at the end and returns it along with its
// 0-based index.
func (c *container) Create() (backend.Group, int, error) {
	count, err := c.Count()
	if err != nil {
		return nil, 0, err
	}
	idx := count
	g, err := c.group.CreateChild(c.name(idx))
	if err != nil {
		return nil, 0, err
	}
	return g, idx, nil
}

// Remove deletes the i-th child (0-based) and renumbers every following
// child down by one so numbering stays dense.
func (c *container) Remove(i int) error {
	count, err := c.Count()
	if err != nil {
		return err
	}
	if i < 0 || i >= count {
		return c.indexError(i, count)
	}
	if err := c.group.RemoveChild(c.name(i)); err != nil {
		return err
	}
	for k := i + 1; k < count; k++ {
		if err := c.group.RenameChild(c.name(k), c.name(k-1)); err != nil {
			return err
		}
	}
	return nil
}
