package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
)

// beamInput collects the flags that describe one beam
type beamInput struct {
	file     string
	name     string
	length   float64
	supports []string
	loads    []string
}

func (in *beamInput) addFlags(c *cobra.Command) {
	c.Flags().StringVarP(&in.file, "file", "f", "", "Read the beam from a JSON file")
	c.Flags().StringVar(&in.name, "name", "", "Beam name shown in reports")
	c.Flags().Float64VarP(&in.length, "length", "L", 0, "Beam length (m)")
	c.Flags().StringArrayVarP(&in.supports, "support", "s", nil, "Support as <type>@<position>, e.g. pinned@0 (repeat for each support)")
	c.Flags().StringArrayVarP(&in.loads, "load", "l", nil, "Load in compact notation, e.g. point:10@3 (repeatable)")
}

// build returns the beam from -f, or from the flags when no file is given.
// Flags given alongside -f override the file's name and length.
func (in *beamInput) build() (*beam.Beam, error) {
	var b *beam.Beam
	if in.file != "" {
		loaded, err := beam.LoadFromFile(in.file)
		if err != nil {
			return nil, err
		}
		b = loaded
		if in.length != 0 {
			b.Length = in.length
		}
	} else {
		if in.length == 0 {
			return nil, errors.New("provide a beam file (-f) or --length with --support and --load flags")
		}
		b = beam.New(in.length, nil, nil)
	}

	for _, s := range in.supports {
		sup, err := beam.ParseSupport(s)
		if err != nil {
			return nil, err
		}
		b.Supports = append(b.Supports, sup)
	}
	for _, s := range in.loads {
		l, err := beam.ParseLoad(s)
		if err != nil {
			return nil, err
		}
		b.Loads = append(b.Loads, l)
	}
	if in.name != "" {
		b.Name = in.name
	}
	return b, nil
}

// analysisFlags are the solver options shared by the beam commands
type analysisFlags struct {
	resolution int
	exact      bool
}

func (f *analysisFlags) addFlags(c *cobra.Command) {
	c.Flags().IntVarP(&f.resolution, "resolution", "n", beam.DefaultResolution, "Number of diagram stations")
	c.Flags().BoolVar(&f.exact, "exact", false, "Exact triangular centroids, concentrated moments and RB in the diagrams")
}

// options merges the flags over the configured defaults
func (f *analysisFlags) options(c *cobra.Command) beam.Options {
	opts := beam.Options{Resolution: cfg.Resolution, Exact: cfg.Exact}
	if c.Flags().Changed("resolution") {
		opts.Resolution = f.resolution
	}
	if c.Flags().Changed("exact") {
		opts.Exact = f.exact
	}
	return opts
}

// outputPath places relative output files under the configured output directory
func outputPath(name string) string {
	if name == "" || filepath.IsAbs(name) || cfg.OutputDir == "" {
		return name
	}
	return filepath.Join(cfg.OutputDir, name)
}

// unsupported reports whether err is a support-count rejection and prints
// the notice for it. Such beams are valid input that this tool does not solve.
func unsupported(c *cobra.Command, err error) bool {
	var ce *beam.ConfigurationError
	if !errors.As(err, &ce) {
		return false
	}
	out := c.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ℹ %v\n", err)
	if ce.Indeterminate() {
		fmt.Fprintln(out, "    Statically indeterminate beams are not analyzed; no results were produced.")
	}
	fmt.Fprintln(out)
	return true
}

// diagramData converts an analysis into the drawing input
func diagramData(b *beam.Beam, a *beam.Analysis) diagram.BeamDiagramData {
	data := diagram.BeamDiagramData{
		Title:  b.Name,
		Length: b.Length,
		RA:     a.Reactions.RA,
		RB:     a.Reactions.RB,
		X:      a.X(),
		V:      a.Shear(),
		M:      a.Moment(),
		MaxV:   diagram.Extreme{X: a.MaxAbsV.X, Value: a.MaxAbsV.Value},
		MaxM:   diagram.Extreme{X: a.MaxAbsM.X, Value: a.MaxAbsM.Value},
	}
	for _, s := range b.Supports {
		data.Supports = append(data.Supports, diagram.SupportMarker{Type: string(s.Type), X: s.Position})
	}
	for _, l := range b.Loads {
		data.Loads = append(data.Loads, loadMarker(l))
	}
	return data
}

func loadMarker(l beam.Load) diagram.LoadMarker {
	m := diagram.LoadMarker{Kind: string(l.Kind()), Label: report.Describe(l)}
	switch ld := l.(type) {
	case beam.PointLoad:
		m.Start, m.End, m.W1 = ld.Position, ld.Position, ld.Magnitude
	case beam.Moment:
		m.Start, m.End, m.W1 = ld.Position, ld.Position, ld.Direction.Sign()*ld.Magnitude
	case beam.UDL:
		m.Start, m.End, m.W1, m.W2 = ld.Start, ld.End, ld.Intensity, ld.Intensity
	case beam.TriangularLoad:
		m.Start, m.End, m.W1, m.W2 = ld.Start, ld.End, ld.StartIntensity, ld.EndIntensity
	}
	return m
}
