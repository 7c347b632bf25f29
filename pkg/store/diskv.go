// Package store persists the dataset as a single JSON file.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/datekeeper/pkg/dataset"
)

// ErrCorrupt is returned when the data file exists but cannot be decoded
// into a valid dataset.
var ErrCorrupt = errors.New("store: corrupt data file")

// Persistence defines the persistence contract for the dataset.
type Persistence interface {
	Load(ctx context.Context) (dataset.Dataset, error)
	Save(ctx context.Context, ds dataset.Dataset) error
	Path() string
}

// Load creates a Persistence backed by the file named in cfg. A nil cfg is
// resolved with LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	path := strings.TrimSpace(cfg.DataPath())
	if path == "" {
		return nil, errors.New("store: data path required")
	}
	return newPersistence(path, time.Now), nil
}

func newPersistence(path string, now func() time.Time) *persistence {
	dir := filepath.Dir(path)
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath: dir,
			// Writes land in a temp file in the same directory and are
			// renamed over the data file once complete.
			TempDir:  dir,
			FilePerm: 0o644,
			PathPerm: 0o755,
		}),
		key:  filepath.Base(path),
		path: path,
		now:  now,
	}
}

type persistence struct {
	d    *diskv.Diskv
	key  string
	path string
	now  func() time.Time
}

func (p *persistence) Path() string {
	return p.path
}

// Load reads the data file. A missing file is a first run and yields an empty
// dataset. Legacy records are upgraded in memory; they are written back in
// the current format by the next Save.
func (p *persistence) Load(ctx context.Context) (dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Dataset{}, err
	}
	data, err := p.d.Read(p.key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dataset.New(), nil
		}
		return dataset.Dataset{}, fmt.Errorf("store: read %s: %w", p.path, err)
	}
	doc, legacy, err := decode(data)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, p.path, err)
	}
	ds, err := migrate(doc, legacy, p.now())
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, p.path, err)
	}
	return ds, nil
}

// Save replaces the data file with ds.
func (p *persistence) Save(ctx context.Context, ds dataset.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(ds)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := p.d.WriteStream(p.key, bytes.NewReader(data), true); err != nil {
		return fmt.Errorf("store: write %s: %w", p.path, err)
	}
	return nil
}
