package cascadedump

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cascadews/cascade.go/pkg/asset"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
)

// DumpFormat is the magic header of a dump file.
const DumpFormat = "CASDUMP01"

// Record is one asset in a dump.
type Record struct {
	Identifier *models.Identifier `cbor:"identifier"`
	Type       string             `cbor:"type"`
	Path       string             `cbor:"path"`
	Property   map[string]any     `cbor:"property"`
}

// Getter reads assets. *cascade.Service implements it.
type Getter interface {
	GetAsset(ctx context.Context, t models.Type, pathOrID string, siteName ...string) (asset.Asset, error)
}

// Dumper walks a container tree and writes every asset it reaches.
type Dumper struct {
	svc       Getter
	marshaler models.CborMarshaler
	// Skipped collects children that could not be read.
	Skipped []models.Child
}

func New(svc Getter) *Dumper {
	return &Dumper{svc: svc}
}

// Root reads the folder at path in site.
func (d *Dumper) Root(ctx context.Context, path, site string) (asset.Asset, error) {
	folder, err := d.svc.GetAsset(ctx, models.TypeFolder, path, site)
	if err != nil {
		return nil, fmt.Errorf("failed to read root folder %s: %w", path, err)
	}
	return folder, nil
}

func childName(c models.Child) string {
	if id := c.ID(); id != "" {
		return id
	}
	return c.PathString()
}

// Walk visits root and then every asset below it, breadth first. Recycled
// children and types that cannot be materialized are skipped.
func (d *Dumper) Walk(ctx context.Context, root asset.Asset, visit func(asset.Asset) error) error {
	queue := []asset.Asset{root}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		a := queue[0]
		queue = queue[1:]

		if err := visit(a); err != nil {
			return err
		}

		c, ok := a.(*asset.Container)
		if !ok {
			continue
		}
		for _, child := range c.Children() {
			if child.Recycled() {
				continue
			}
			if _, err := models.ShapeFor(child.Type()); err != nil {
				d.Skipped = append(d.Skipped, child)
				continue
			}
			next, err := c.ChildAsset(ctx, child)
			if err != nil {
				var opErr *constants.OperationError
				if errors.As(err, &opErr) {
					d.Skipped = append(d.Skipped, child)
					continue
				}
				return fmt.Errorf("failed to read %s %s: %w", child.Type(), childName(child), err)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// Dump writes the magic header followed by one CBOR record per asset and
// returns the number of records written.
func (d *Dumper) Dump(ctx context.Context, w io.Writer, root asset.Asset) (int, error) {
	if _, err := w.Write([]byte(DumpFormat)); err != nil {
		return 0, fmt.Errorf("failed to write magic header: %w", err)
	}
	enc := d.marshaler.NewEncoder(w)
	n := 0
	err := d.Walk(ctx, root, func(a asset.Asset) error {
		rec := Record{
			Identifier: a.Identifier(),
			Type:       string(a.Type()),
			Path:       a.Path(),
			Property:   a.Property(),
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode %s: %w", a.Identifier(), err)
		}
		n++
		return nil
	})
	return n, err
}

// ReadDump decodes every record of a dump.
func ReadDump(r io.Reader) ([]Record, error) {
	magic := make([]byte, len(DumpFormat))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("failed to read magic header: %w", err)
	}
	if string(magic) != DumpFormat {
		return nil, fmt.Errorf("invalid dump format: %q", magic)
	}

	dec := models.CborUnmarshaler{}.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("failed to decode record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
}
