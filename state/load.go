package state

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sitekit/internal/logging"

	"gopkg.in/yaml.v3"
)

// snapshotFile is the on-disk fixture layout accepted by Load and Decode.
type snapshotFile struct {
	SelectedSiteID int64   `json:"selectedSiteId" yaml:"selectedSiteId"`
	Sites          []*Site `json:"sites" yaml:"sites"`
}

// Load reads a state snapshot fixture from disk. The format is chosen by
// file extension: .json, .yaml, or .yml.
func Load(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("failed to close snapshot file %s: %v", path, err)
		}
	}()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return Decode(file, "json")
	case ".yaml", ".yml":
		return Decode(file, "yaml")
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q (want .json, .yaml, or .yml)", ext)
	}
}

// Decode reads a state snapshot fixture from r in the given format
// ("json" or "yaml").
func Decode(r io.Reader, format string) (*Snapshot, error) {
	var doc snapshotFile

	switch format {
	case "json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode JSON snapshot: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode YAML snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}

	snap := NewSnapshot(doc.Sites, doc.SelectedSiteID)
	logging.Debug("Decoded snapshot: %d sites, selected=%d", snap.Len(), doc.SelectedSiteID)
	return snap, nil
}
