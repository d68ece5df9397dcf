// Package sharedir delivers export artifacts by writing them into a local
// directory, standing in for a platform share target.
package sharedir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"habitlog/internal/domain"
)

// Delivery writes artifacts into a directory.
type Delivery struct {
	dir string
}

// New creates a Delivery targeting dir.
func New(dir string) *Delivery {
	return &Delivery{dir: dir}
}

var _ domain.Delivery = (*Delivery)(nil)

// Available reports whether the target directory is usable, creating it if
// needed.
func (d *Delivery) Available() bool {
	if d.dir == "" {
		return false
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return false
	}
	info, err := os.Stat(d.dir)
	return err == nil && info.IsDir()
}

// Deliver writes data to <dir>/<name>, replacing any previous artifact.
func (d *Delivery) Deliver(ctx context.Context, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("deliver %s: %w", name, err)
	}
	return nil
}

// Path returns where an artifact with the given name ends up.
func (d *Delivery) Path(name string) string {
	return filepath.Join(d.dir, name)
}
