package io

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/threadart/pkg/art"
	"github.com/matzehuels/threadart/pkg/errors"
)

// WriteOption configures optional, non-semantic output features.
type WriteOption func(*writer)

type writer struct {
	annotate bool
	banner   string
}

// WithAnnotations adds a "# nail N" line comment to every nails entry,
// recording its index as a hand-editing aid.
func WithAnnotations() WriteOption {
	return func(w *writer) { w.annotate = true }
}

// WithBanner prepends the generator's file banner describing the layout.
func WithBanner(count int, shape art.Shape) WriteOption {
	return func(w *writer) {
		w.banner = fmt.Sprintf(
			"Thread Art File\nGenerated with %d nails in %s shape\nShape maximized within unit square (0..1)\nThread path is empty - ready for manual editing",
			count, shape)
	}
}

// Write encodes thread art as YAML and writes it to w.
// The output can be re-read with [Read] for round-trip processing:
// coordinates survive exactly (they are already rounded to six decimal
// digits at generation time) and an empty thread stays empty.
func Write(a art.Art, w io.Writer, opts ...WriteOption) error {
	var cfg writer
	for _, opt := range opts {
		opt(&cfg)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildDocument(a, cfg)); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "encode thread art")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "encode thread art")
	}
	return nil
}

// Export writes thread art to a YAML file at path.
// Any failure to create or write the file is an IO_FAILURE.
func Export(a art.Art, path string, opts ...WriteOption) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "create %s", path)
	}
	if err := Write(a, f, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", path)
	}
	return nil
}

// buildDocument assembles the yaml node tree for one thread art file.
// Working at the node level keeps flow-style pairs and line comments under
// our control, which the plain struct encoder cannot do.
func buildDocument(a art.Art, cfg writer) *yaml.Node {
	nails := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i, n := range a.Nails {
		pair := &yaml.Node{
			Kind:  yaml.SequenceNode,
			Tag:   "!!seq",
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				floatNode(n.X),
				floatNode(n.Y),
			},
		}
		if cfg.annotate {
			pair.LineComment = fmt.Sprintf("# nail %d", i)
		}
		nails.Content = append(nails.Content, pair)
	}

	thread := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, idx := range a.Thread {
		thread.Content = append(thread.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.Itoa(idx),
		})
	}
	if len(a.Thread) == 0 {
		thread.Style = yaml.FlowStyle // emits "thread: []"
	}

	nailsKey := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "nails"}
	if cfg.banner != "" {
		nailsKey.HeadComment = cfg.banner
	}
	threadKey := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "thread"}

	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{nailsKey, nails, threadKey, thread},
	}
}

// floatNode formats a coordinate with an explicit decimal point so whole
// values render as "1.0" rather than "1", keeping output stable and
// unambiguously typed.
func floatNode(v float64) *yaml.Node {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
}
