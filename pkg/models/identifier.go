package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/wire"
)

const rootPrefix = "ROOT_"

var hexID = regexp.MustCompile(`^[0-9a-f]{32}$`)

// IsHexID reports whether s is a 32 character lowercase hex asset id.
func IsHexID(s string) bool {
	return hexID.MatchString(s)
}

// Identifier addresses one asset, either by id or by path within a site.
// Exactly one of the two forms is set. Identifiers are immutable.
type Identifier struct {
	typ  Type
	id   string
	path *Path
}

// CreateIdentifier builds the canonical identifier for pathOrID.
//
// The rules apply in order and the first match wins:
//   - input is trimmed, and for anything longer than one character leading
//     and trailing slashes are removed;
//   - a 32 character hex string is an id, whatever site was given;
//   - group, role and user are addressed by name, which is sent as an id,
//     and site is addressed by name as a path without a site;
//   - a ROOT_ prefix marks a literal id;
//   - no site name means a path in the Global area;
//   - otherwise the path lives in the given site, which must not be blank.
func CreateIdentifier(t Type, pathOrID string, siteName ...string) (*Identifier, error) {
	if !IsKnownType(t) {
		return nil, fmt.Errorf("%w: %q", constants.ErrNoSuchType, t)
	}

	s := strings.TrimSpace(pathOrID)
	if len(s) > 1 {
		s = strings.Trim(s, "/")
	}

	if IsHexID(s) {
		return &Identifier{typ: t, id: s}, nil
	}

	if IsNonPathAddressable(t) && s != "" {
		if t == TypeSite {
			return &Identifier{typ: t, path: &Path{Path: s}}, nil
		}
		return &Identifier{typ: t, id: s}, nil
	}

	if strings.HasPrefix(s, rootPrefix) {
		return &Identifier{typ: t, id: s}, nil
	}

	var site string
	hasSite := len(siteName) > 0
	if hasSite {
		site = strings.TrimSpace(siteName[0])
		if site == "" {
			return nil, fmt.Errorf("%w: site name for %s %q", constants.ErrEmptyValue, t, pathOrID)
		}
	}

	if s == "" {
		return nil, fmt.Errorf("%w: path or id for %s is empty", constants.ErrInvalidArgument, t)
	}

	return &Identifier{typ: t, path: &Path{Path: s, SiteName: site}}, nil
}

// IdentifierFromID addresses an asset by id. No normalisation is applied
// beyond trimming.
func IdentifierFromID(t Type, id string) (*Identifier, error) {
	if !IsKnownType(t) {
		return nil, fmt.Errorf("%w: %q", constants.ErrNoSuchType, t)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id for %s is empty", constants.ErrInvalidArgument, t)
	}
	return &Identifier{typ: t, id: id}, nil
}

// IdentifierFromPath addresses an asset by path. An empty siteName is the
// Global area.
func IdentifierFromPath(t Type, path, siteName string) (*Identifier, error) {
	if !IsKnownType(t) {
		return nil, fmt.Errorf("%w: %q", constants.ErrNoSuchType, t)
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path for %s is empty", constants.ErrInvalidArgument, t)
	}
	return &Identifier{typ: t, path: &Path{Path: path, SiteName: strings.TrimSpace(siteName)}}, nil
}

// IdentifierFromWire reads an identifier object as the service returns it,
// for instance a working copy identifier.
func IdentifierFromWire(obj wire.Object) (*Identifier, error) {
	t, err := ParseType(wire.StringAt(obj, "type"))
	if err != nil {
		return nil, err
	}
	if id := wire.StringAt(obj, "id"); id != "" {
		return &Identifier{typ: t, id: id}, nil
	}
	if p, ok := wire.ObjectAt(obj, "path"); ok {
		path := PathFromWire(p)
		if path.Path != "" {
			return &Identifier{typ: t, path: &path}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", constants.ErrNullIdentifier, t)
}

func (i *Identifier) Type() Type {
	return i.typ
}

// ID is empty for path identifiers.
func (i *Identifier) ID() string {
	return i.id
}

func (i *Identifier) IsID() bool {
	return i.path == nil
}

// Path returns the path form. ok is false for id identifiers.
func (i *Identifier) Path() (p Path, ok bool) {
	if i.path == nil {
		return Path{}, false
	}
	return *i.path, true
}

// PathString is the bare path, empty for id identifiers.
func (i *Identifier) PathString() string {
	if i.path == nil {
		return ""
	}
	return i.path.Path
}

// SiteName is empty for id identifiers and Global paths.
func (i *Identifier) SiteName() string {
	if i.path == nil {
		return ""
	}
	return i.path.SiteName
}

// WithType returns a copy of i addressing the same asset as type t.
func (i *Identifier) WithType(t Type) *Identifier {
	c := *i
	c.typ = t
	if i.path != nil {
		p := *i.path
		c.path = &p
	}
	return &c
}

// ToWire renders the identifier as the request parameter the service
// expects.
func (i *Identifier) ToWire() wire.Object {
	obj := wire.Object{"type": string(i.typ)}
	if i.path == nil {
		obj["id"] = i.id
		return obj
	}
	obj["path"] = i.path.ToWire()
	return obj
}

func (i *Identifier) String() string {
	if i.path == nil {
		return fmt.Sprintf("%s:%s", i.typ, i.id)
	}
	return fmt.Sprintf("%s:%s", i.typ, i.path)
}
