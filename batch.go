package cascade

import (
	"context"
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// BatchOperation is one slot of a batch request: an object with a single
// field named after the operation.
type BatchOperation struct {
	kind    string
	payload wire.Object
}

func (o BatchOperation) Kind() string {
	return o.kind
}

func (o BatchOperation) toWire() wire.Object {
	return wire.Object{o.kind: o.payload}
}

func BatchRead(id *models.Identifier) BatchOperation {
	return BatchOperation{kind: opRead, payload: wire.Object{"identifier": id.ToWire()}}
}

func BatchCreate(envelope wire.Object) BatchOperation {
	return BatchOperation{kind: opCreate, payload: wire.Object{"asset": envelope}}
}

func BatchEdit(envelope wire.Object) BatchOperation {
	return BatchOperation{kind: opEdit, payload: wire.Object{"asset": envelope}}
}

func BatchDelete(id *models.Identifier) BatchOperation {
	return BatchOperation{kind: opDelete, payload: wire.Object{"identifier": id.ToWire()}}
}

func BatchPublish(id *models.Identifier, unpublish bool) BatchOperation {
	return BatchOperation{kind: opPublish, payload: wire.Object{
		"identifier": id.ToWire(),
		"unpublish":  unpublish,
	}}
}

// BatchResult is the reply to one batch slot.
type BatchResult struct {
	// Kind is the result element the slot carried: readResult, createResult
	// or operationResult.
	Kind           string
	Success        string
	Message        string
	CreatedAssetID string
	Reply          wire.Object
}

// IsSuccessful compares Success with "true" as a string.
func (r BatchResult) IsSuccessful() bool {
	return r.Success == constants.True
}

// Asset returns the envelope of a read slot.
func (r BatchResult) Asset() (wire.Object, bool) {
	return wire.ObjectAt(r.Reply, "asset")
}

var batchResultKinds = []string{"readResult", "createResult", "operationResult"}

func batchResultFromWire(obj wire.Object) (BatchResult, error) {
	for _, kind := range batchResultKinds {
		res, ok := wire.ObjectAt(obj, kind)
		if !ok {
			continue
		}
		return BatchResult{
			Kind:           kind,
			Success:        successOf(res),
			Message:        wire.StringAt(res, "message"),
			CreatedAssetID: wire.StringAt(res, "createdAssetId"),
			Reply:          res,
		}, nil
	}
	return BatchResult{}, fmt.Errorf("%w: batch slot carries no result", constants.ErrUnexpectedShape)
}

// batchResults reads the slots of a batch reply. A slot that is not a
// result object becomes a failed BatchResult so the other slots survive.
func batchResults(ret any) []BatchResult {
	var slots []any
	switch t := ret.(type) {
	case nil:
		return nil
	case []any:
		slots = t
	default:
		slots = []any{t}
	}

	results := make([]BatchResult, 0, len(slots))
	for i, slot := range slots {
		obj, ok := slot.(wire.Object)
		if !ok || obj == nil {
			results = append(results, BatchResult{
				Message: fmt.Sprintf("%v: slot %d is %T", constants.ErrUnexpectedShape, i, slot),
			})
			continue
		}
		r, err := batchResultFromWire(obj)
		if err != nil {
			r = BatchResult{Message: fmt.Sprintf("slot %d: %v", i, err), Reply: obj}
		}
		results = append(results, r)
	}
	return results
}

// batchOutcome folds the slots of a batch reply into one tracker outcome:
// success only when every slot succeeded, and the message of the first slot
// that did not.
func batchOutcome(ret any) (success, message string) {
	results := batchResults(ret)
	if len(results) == 0 {
		return "", ""
	}
	for _, r := range results {
		if !r.IsSuccessful() {
			return constants.False, r.Message
		}
	}
	return constants.True, ""
}

// Batch sends ops in one round trip. Results are returned in request order;
// a failed slot does not fail the call.
func (s *Service) Batch(ctx context.Context, ops ...BatchOperation) ([]BatchResult, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: batch needs at least one operation", constants.ErrInvalidArgument)
	}
	list := make([]any, 0, len(ops))
	for _, op := range ops {
		if op.kind == "" {
			return nil, fmt.Errorf("%w: empty batch operation", constants.ErrInvalidArgument)
		}
		list = append(list, op.toWire())
	}

	ret, err := s.call(ctx, opBatch, wire.Object{"operation": list})
	if err != nil {
		return nil, err
	}
	results := batchResults(ret)
	if len(results) != len(ops) {
		return results, fmt.Errorf("%w: batch of %d operations answered with %d results",
			constants.ErrUnexpectedShape, len(ops), len(results))
	}
	return results, nil
}
