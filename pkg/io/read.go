package io

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/threadart/pkg/art"
	"github.com/matzehuels/threadart/pkg/errors"
)

// Read decodes thread art YAML from r and validates it.
//
// Structural problems (unparseable text, missing keys, malformed entries)
// and semantic problems (out-of-range coordinates or thread indices) are
// reported as coded errors naming the first offending entry, scanning
// nails before thread, each in order. Read does not close r.
func Read(r io.Reader) (art.Art, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return art.Art{}, errors.Wrap(errors.ErrCodeMalformedFormat, err, "parse yaml")
	}

	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return art.Art{}, errors.New(errors.ErrCodeMalformedFormat,
			"top-level value must be a mapping with 'nails' and 'thread' keys")
	}

	nailsNode := mappingValue(root, "nails")
	threadNode := mappingValue(root, "thread")
	if nailsNode == nil || threadNode == nil {
		return art.Art{}, errors.New(errors.ErrCodeMalformedFormat,
			"file must contain 'nails' and 'thread' keys")
	}

	nails, err := decodeNails(nailsNode)
	if err != nil {
		return art.Art{}, err
	}
	thread, err := decodeThread(threadNode)
	if err != nil {
		return art.Art{}, err
	}

	a := art.Art{Nails: nails, Thread: thread}
	if err := art.Validate(a); err != nil {
		return art.Art{}, err
	}
	return a, nil
}

// Import reads and validates the thread art file at path.
// A path that does not resolve to a readable file is a NOT_FOUND error;
// everything else matches [Read].
func Import(path string) (art.Art, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return art.Art{}, errors.New(errors.ErrCodeNotFound, "file not found: %s", path)
		}
		return art.Art{}, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// documentRoot unwraps the document node produced by decoding into a
// bare yaml.Node.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0]
	}
	return doc
}

// mappingValue returns the value node for key in a mapping, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// isNull reports whether a node is an explicit or implicit YAML null,
// as produced by "nails:" with no value. Nulls are treated as empty
// sequences.
func isNull(n *yaml.Node) bool {
	return n.Tag == "!!null"
}

func decodeNails(node *yaml.Node) ([]art.Point, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, errors.New(errors.ErrCodeMalformedFormat, "'nails' must be a sequence")
	}

	nails := make([]art.Point, 0, len(node.Content))
	for i, entry := range node.Content {
		if entry.Kind != yaml.SequenceNode || len(entry.Content) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidNail,
				"nail %d must be a 2-element numeric pair", i)
		}
		var p art.Point
		if err := entry.Content[0].Decode(&p.X); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidNail,
				"nail %d: %q is not a number", i, entry.Content[0].Value)
		}
		if err := entry.Content[1].Decode(&p.Y); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidNail,
				"nail %d: %q is not a number", i, entry.Content[1].Value)
		}
		nails = append(nails, p)
	}
	return nails, nil
}

func decodeThread(node *yaml.Node) ([]int, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, errors.New(errors.ErrCodeMalformedFormat, "'thread' must be a sequence")
	}

	thread := make([]int, 0, len(node.Content))
	for i, entry := range node.Content {
		// Decode alone would truncate floats ("0.5" -> 0), so require an
		// integer scalar outright.
		if entry.Tag != "!!int" {
			return nil, errors.New(errors.ErrCodeInvalidThreadIndex,
				"thread point %d: %q is not an integer", i, entry.Value)
		}
		var idx int
		if err := entry.Decode(&idx); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidThreadIndex,
				"thread point %d: %q is not an integer", i, entry.Value)
		}
		thread = append(thread, idx)
	}
	return thread, nil
}
