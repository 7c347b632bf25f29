package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/store"
)

// Info prints where configuration and dates are read from.
type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	for _, env := range []string{"DATEKEEPER_CONFIG_PATH", "DATEKEEPER_PATH"} {
		if override := os.Getenv(env); override != "" {
			_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", env, override)
		} else {
			_, _ = fmt.Fprintf(out, "%s env var not set\n", env)
		}
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := n.Config.ConfigFile(); f != "" {
		_, _ = fmt.Fprintln(out, "Config.file:", f)
	} else {
		_, _ = fmt.Fprintln(out, "Config.file: none")
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.DataPath())

	if n.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	s := app.Service{Persistence: n.Persistence}
	ds, err := s.Dataset(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Dates: %d\n", len(ds.Entries))
	if ds.Migrated > 0 {
		_, _ = fmt.Fprintf(out, "  %d need migrating, saved on the next change\n", ds.Migrated)
	}
	_, _ = fmt.Fprintf(out, "Categories:\n")
	for _, c := range app.Categories(ds) {
		_, _ = fmt.Fprintf(out, "  %s (%d)\n", c.Name, c.Entries)
	}
	return nil
}
