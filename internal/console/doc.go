// Package console reads prompted lines of user input for the intdiv CLI.
//
// A Session owns the input stream for the lifetime of one run: it writes a
// prompt, reads exactly one line per call, and releases the stream when
// Close is called. Close is idempotent so that a deferred Close and an
// explicit Close never release the underlying reader twice.
package console
