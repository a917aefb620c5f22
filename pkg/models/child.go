package models

import (
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// Child is an entry of a container listing. It is read-only.
type Child struct {
	id       string
	path     *Path
	typ      Type
	recycled bool
}

// ChildFromWire reads one child element. An element with neither id nor
// path is ErrNullIdentifier.
func ChildFromWire(obj wire.Object) (Child, error) {
	id := wire.StringAt(obj, "id")
	pathObj, hasPath := wire.ObjectAt(obj, "path")
	if id == "" && !hasPath {
		return Child{}, fmt.Errorf("%w: child", constants.ErrNullIdentifier)
	}

	c := Child{
		id:       id,
		typ:      Type(wire.StringAt(obj, "type")),
		recycled: wire.Bool(wire.Get(obj, "recycled")),
	}
	if hasPath {
		p := PathFromWire(pathObj)
		c.path = &p
	}
	return c, nil
}

func (c Child) ID() string {
	return c.id
}

func (c Child) Path() (Path, bool) {
	if c.path == nil {
		return Path{}, false
	}
	return *c.path, true
}

func (c Child) PathString() string {
	if c.path == nil {
		return ""
	}
	return c.path.Path
}

func (c Child) Type() Type {
	return c.typ
}

func (c Child) Recycled() bool {
	return c.recycled
}

// Identifier re-addresses the child, preferring its id.
func (c Child) Identifier() (*Identifier, error) {
	if c.id != "" {
		return IdentifierFromID(c.typ, c.id)
	}
	if c.path == nil {
		return nil, fmt.Errorf("%w: child", constants.ErrNullIdentifier)
	}
	return IdentifierFromPath(c.typ, c.path.Path, c.path.SiteName)
}

func (c Child) ToWire() wire.Object {
	obj := wire.Object{
		"type":     string(c.typ),
		"recycled": wire.FormatBool(c.recycled),
	}
	if c.id != "" {
		obj["id"] = c.id
	}
	if c.path != nil {
		obj["path"] = c.path.ToWire()
	}
	return obj
}
