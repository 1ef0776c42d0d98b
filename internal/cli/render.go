package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	shape "github.com/gogpu/gg-shape"
	"github.com/gogpu/gg-shape/internal/scenefile"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output    string   // PNG path; defaults to the scene path with a .png extension
	highlight bool     // draw every shape in its highlighted state
	only      []string // highlight only these entity IDs
}

func (c *CLI) newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a scene file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "draw shapes with their highlight style")
	cmd.Flags().StringSliceVar(&opts.only, "highlight-id", nil, "highlight only the given shape IDs (comma-separated)")
	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sc, err := scenefile.Load(path)
	if err != nil {
		return err
	}
	fonts, err := sc.FontBook()
	if err != nil {
		return err
	}

	dc := gg.NewContext(sc.Width, sc.Height)
	defer func() { _ = dc.Close() }()
	if sc.Background != "" {
		bg, err := shape.ParseColor(sc.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		dc.ClearWithColor(bg)
	}

	cv := shape.NewCanvas(dc, shape.WithFontBook(fonts))
	entities := sc.Entities()
	for _, e := range entities {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := shape.Draw(cv, e, opts.highlighted(e.ID)); err != nil {
			return fmt.Errorf("shape %q: %w", e.ID, err)
		}
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	if err := dc.SavePNG(out); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d shapes to %s", len(entities), out))
	return nil
}

func (o *renderOpts) highlighted(id string) bool {
	if o.highlight {
		return true
	}
	for _, want := range o.only {
		if want == id {
			return true
		}
	}
	return false
}
