package fakecascade

import (
	"fmt"
	"strings"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

func success() wire.Object {
	return wire.Object{"success": constants.True}
}

func failure(message string) wire.Object {
	return wire.Object{"success": constants.False, "message": message}
}

// dispatch runs operation against the store. The caller holds s.mu.
func (s *Server) dispatch(operation string, payload wire.Object) any {
	switch operation {
	case "batch":
		return s.batch(payload)
	case "read":
		return s.read(payload)
	case "edit":
		return s.edit(payload)
	case "create":
		return s.create(payload)
	case "delete":
		return s.delete(payload)
	default:
		return success()
	}
}

// lookup resolves an identifier object against the store.
func (s *Server) lookup(ident wire.Object) (*entry, bool) {
	t := models.Type(wire.StringAt(ident, "type"))
	if id := wire.StringAt(ident, "id"); id != "" {
		e, ok := s.byID[id]
		if !ok || e.typ != t {
			return nil, false
		}
		return e, true
	}
	site := wire.StringAt(ident, "path", "siteName")
	path := strings.Trim(wire.StringAt(ident, "path", "path"), "/")
	id, ok := s.byPath[pathKey(t, site, path)]
	if !ok {
		return nil, false
	}
	return s.byID[id], true
}

func (s *Server) read(payload wire.Object) wire.Object {
	ident, _ := wire.ObjectAt(payload, "identifier")
	e, ok := s.lookup(ident)
	if !ok {
		return failure(MessageNotFound)
	}
	field, _ := models.PropertyFieldFor(e.typ)
	ret := success()
	ret["asset"] = wire.Object{field: wire.CloneObject(e.bag)}
	return ret
}

// envelopeAsset returns the single populated field of an asset envelope.
func envelopeAsset(payload wire.Object) (models.Type, wire.Object, error) {
	envelope, ok := wire.ObjectAt(payload, "asset")
	if !ok {
		return models.TypeUnknown, nil, fmt.Errorf("no asset given")
	}
	t, ok := models.PopulatedType(envelope)
	if !ok {
		return models.TypeUnknown, nil, fmt.Errorf("asset carries no known type")
	}
	field, _ := models.PropertyFieldFor(t)
	bag, _ := envelope[field].(wire.Object)
	return t, wire.CloneObject(bag), nil
}

func (s *Server) edit(payload wire.Object) wire.Object {
	t, bag, err := envelopeAsset(payload)
	if err != nil {
		return failure(err.Error())
	}
	id := wire.StringAt(bag, "id")
	e, ok := s.byID[id]
	if !ok || e.typ != t {
		return failure(MessageNotFound)
	}
	s.put(t, bag)
	return success()
}

func (s *Server) create(payload wire.Object) wire.Object {
	t, bag, err := envelopeAsset(payload)
	if err != nil {
		return failure(err.Error())
	}
	name := wire.StringAt(bag, "name")
	if name == "" {
		return failure("name is required")
	}
	id := NewID()
	bag["id"] = id
	parent := wire.StringAt(bag, "parentFolderPath")
	if parent == "" {
		parent = wire.StringAt(bag, "parentContainerPath")
	}
	if parent = strings.Trim(parent, "/"); parent != "" {
		bag["path"] = parent + "/" + name
	} else {
		bag["path"] = name
	}
	s.put(t, bag)

	ret := success()
	ret["createdAssetId"] = id
	return ret
}

func (s *Server) delete(payload wire.Object) wire.Object {
	ident, _ := wire.ObjectAt(payload, "identifier")
	e, ok := s.lookup(ident)
	if !ok {
		return failure(MessageNotFound)
	}
	delete(s.byPath, pathKey(e.typ, e.site, e.path))
	delete(s.byID, wire.StringAt(e.bag, "id"))
	return success()
}
