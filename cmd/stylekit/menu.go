package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stylekit/editor"
	"stylekit/state"
	"stylekit/styles"
)

func renderMenu(ctx context.Context, cmd *cli.Command) (err error) {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	ed := env.PrepareEditor()
	ed.Init()
	tree := editor.StyleFormats(ed)

	fname := cmd.Args().Get(0)
	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer func() {
			if er := out.Close(); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to close destination file '%s': %w", fname, er))
			}
		}()
	} else {
		fname = "STDOUT"
	}

	env.Log.Info("Rendering style menu", zap.Int("entries", len(tree)), zap.String("file", fname))

	if _, err = io.WriteString(out, styles.RenderTree(tree)); err != nil {
		return fmt.Errorf("unable to write style menu: %w", err)
	}
	return nil
}

func listFormats(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	// Menu assembly happens before the engine is up so custom format
	// registration goes through the deferred init path, same as in the
	// editor itself.
	ed := env.PrepareEditor()
	_ = editor.StyleFormats(ed)
	ed.Init()

	names := append([]string(nil), ed.Formatter().Names()...)
	if cmd.Bool("natural") {
		sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	}

	env.Log.Info("Listing registered formats", zap.Int("count", len(names)))

	for _, name := range names {
		def, _ := ed.Formatter().Get(name)
		fmt.Printf("%-24s %s\n", name, formatSummary(def))
	}
	return nil
}

func formatSummary(def styles.Format) string {
	switch v := def.(type) {
	case styles.Inline:
		return "inline <" + v.Tag + ">"
	case styles.Block:
		return "block <" + v.Tag + ">"
	case styles.SelectorStyle:
		return "selector {" + v.Selector + "}"
	case styles.Reference:
		return "reference -> " + v.Name
	default:
		return "unknown"
	}
}
