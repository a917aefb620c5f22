package fakecascade

import (
	"github.com/cascadews/cascade.go/pkg/wire"
)

// batchSlots maps a batch operation to its handler and the result element
// the service wraps its answer in.
var batchSlots = map[string]struct {
	result string
	handle func(*Server, wire.Object) wire.Object
}{
	"read":    {"readResult", (*Server).read},
	"create":  {"createResult", (*Server).create},
	"edit":    {"operationResult", (*Server).edit},
	"delete":  {"operationResult", (*Server).delete},
	"publish": {"operationResult", func(*Server, wire.Object) wire.Object { return success() }},
}

// batch answers each operation slot in order. The caller holds s.mu.
func (s *Server) batch(payload wire.Object) any {
	ops, err := wire.Objects(payload["operation"])
	if err != nil {
		return failure(err.Error())
	}
	out := make([]any, 0, ops.Len())
	for _, op := range ops.Items() {
		out = append(out, s.batchSlot(op))
	}
	return out
}

func (s *Server) batchSlot(op wire.Object) wire.Object {
	for kind, slot := range batchSlots {
		params, ok := wire.ObjectAt(op, kind)
		if !ok {
			continue
		}
		return wire.Object{slot.result: slot.handle(s, params)}
	}
	return wire.Object{"operationResult": failure("unsupported batch operation")}
}
