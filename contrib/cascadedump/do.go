package cascadedump

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cascadews/cascade.go"
)

// Do connects using config and dumps the tree under config.Root.
func Do(ctx context.Context, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	svc, err := cascade.FromConfig(config.ServiceConfig())
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer svc.Close()

	manifest, err := Full(ctx, svc, config.Site, config.Root, config.GetOutputPath())
	if err != nil {
		return err
	}
	if config.Verbose {
		fmt.Printf("Dumped %d assets to %s\n", manifest.Assets, manifest.Filename)
	}
	return nil
}

// Full dumps the folder at root in site to path and writes its manifest.
func Full(ctx context.Context, svc Getter, site, root, path string) (*Manifest, error) {
	d := New(svc)
	folder, err := d.Root(ctx, root, site)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create dump file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	n, err := d.Dump(ctx, io.MultiWriter(f, h), folder)
	if err != nil {
		return nil, err
	}
	if err := f.Sync(); err != nil {
		return nil, fmt.Errorf("failed to sync dump file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat dump file: %w", err)
	}

	manifest := &Manifest{
		Filename:  filepath.Base(path),
		CreatedAt: time.Now().UTC(),
		Size:      info.Size(),
		Site:      site,
		Root:      root,
		Assets:    n,
		SHA256:    hex.EncodeToString(h.Sum(nil)),
	}
	if err := WriteManifest(path, manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}
