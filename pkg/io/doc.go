// Package io provides YAML import and export for thread art files.
//
// # Overview
//
// This package serializes nail layouts and thread paths to the shared
// thread art format. The format is designed for:
//
//   - Hand-editing: the thread path is typically filled in manually
//   - Round-trip preservation: generate, edit the thread, render
//   - Diffable output: deterministic float formatting and ordering
//
// # YAML Format
//
// The format has two required top-level keys:
//
//	nails:
//	  - [0.0, 0.0]    # nail 0
//	  - [1.0, 0.0]    # nail 1
//	  - [1.0, 1.0]    # nail 2
//	  - [0.0, 1.0]    # nail 3
//	thread: [0, 2, 1, 3]
//
// nails is an ordered sequence of [x, y] pairs in the unit square; the
// position of a pair in the sequence is the nail's identity. thread is an
// ordered sequence of nail indices (possibly empty, possibly repeating).
//
// The "# nail N" line comments are a readability aid for hand-editing the
// thread path. They are emitted by [WithAnnotations], ignored on read, and
// carry no meaning: files round-trip identically with or without them.
//
// # Import
//
// Use [Import] to read a file path, or [Read] to read from any io.Reader.
// Both validate structure and semantics and return coded errors
// (MALFORMED_FORMAT, INVALID_NAIL, INVALID_THREAD_INDEX, NOT_FOUND) that
// name the first offending entry.
//
// # Export
//
// Use [Export] to write a file, or [Write] to write to any io.Writer.
// Write failures are reported as IO_FAILURE; no partial-file cleanup is
// attempted beyond best effort.
package io
