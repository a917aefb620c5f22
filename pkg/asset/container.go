package asset

import (
	"context"
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// Container is a folder or any of the administration area containers.
// Its children are read-only.
type Container struct {
	*base
	children []models.Child
}

func newContainer(b *base) (*Container, error) {
	c := &Container{base: b}
	b.rebuild = c.readChildren
	if err := c.readChildren(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) readChildren() error {
	children, err := wire.FromWire(wire.Get(c.bag, "children", "child"), models.ChildFromWire)
	if err != nil {
		return fmt.Errorf("children: %w", err)
	}
	c.children = children.Items()
	return nil
}

// Children returns the listed children in wire order.
func (c *Container) Children() []models.Child {
	out := make([]models.Child, len(c.children))
	copy(out, c.children)
	return out
}

// ChildrenOf returns the children of type t.
func (c *Container) ChildrenOf(t models.Type) []models.Child {
	var out []models.Child
	for _, child := range c.children {
		if child.Type() == t {
			out = append(out, child)
		}
	}
	return out
}

func (c *Container) ParentContainerID() string {
	if c.desc.Type == models.TypeFolder {
		return wire.StringAt(c.bag, "parentFolderId")
	}
	return wire.StringAt(c.bag, "parentContainerId")
}

// ChildAsset reads a listed child.
func (c *Container) ChildAsset(ctx context.Context, child models.Child) (Asset, error) {
	if id := child.ID(); id != "" {
		return c.svc.GetAsset(ctx, child.Type(), id)
	}
	p, ok := child.Path()
	if !ok {
		return nil, fmt.Errorf("%w: child of %s", constants.ErrNullIdentifier, c.Path())
	}
	if p.SiteName == "" {
		return c.svc.GetAsset(ctx, child.Type(), p.Path)
	}
	return c.svc.GetAsset(ctx, child.Type(), p.Path, p.SiteName)
}
