package cascadedump

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// Manifest describes a dump file.
type Manifest struct {
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
	Size      int64     `json:"size"`

	Site string `json:"site"`
	Root string `json:"root"`
	// Assets is the number of records in the dump.
	Assets int `json:"assets"`

	SHA256 string `json:"sha256,omitempty"`
}

func (m *Manifest) Validate() error {
	if m.Filename == "" {
		return fmt.Errorf("manifest missing filename")
	}
	if m.Site == "" {
		return fmt.Errorf("manifest missing site")
	}
	if m.Assets < 0 {
		return fmt.Errorf("manifest has negative asset count")
	}
	return nil
}

// WriteManifest writes a manifest file alongside the dump
func WriteManifest(dumpPath string, manifest *Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return os.WriteFile(dumpPath+".manifest.json", data, 0600)
}

// ReadManifest reads the manifest of a dump.
func ReadManifest(dumpPath string) (*Manifest, error) {
	data, err := os.ReadFile(dumpPath + ".manifest.json")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("manifest not found for %s", dumpPath)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}
