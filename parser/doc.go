// Package parser configures and dispatches RDF parses.
//
// A Config describes one parse: where to read (a stream, a file or an IRI),
// where to put the statements (a callback, a Graph or a Dataset), the syntax
// or content type, the base IRI and the term factory. Config is a value:
// every With method returns a modified copy, so configurations can be
// shared, reused and branched freely across goroutines.
//
// Sources and targets are each a single tagged value. Setting one kind of
// source replaces any other, and likewise for targets:
//
//	cfg := parser.NewConfig().
//	    WithSourceStream(r).
//	    WithSourcePath("data.nt") // r is dropped
//
// Parsing itself is done by a Backend. A Dispatcher validates a Config,
// finalizes a private Snapshot of it (fresh term factory, file:// base for
// file sources) and runs the backend on a Scheduler, returning a Handle:
//
//	d := parser.NewDispatcher(backend, parser.DefaultPool())
//	h, err := d.Execute(cfg.WithTargetFunc(func(q rdf.Quad) error {
//	    fmt.Println(q)
//	    return nil
//	}))
//	if err != nil {
//	    // validation failed; nothing was started
//	}
//	if _, err := h.Result(); err != nil {
//	    // the parse failed
//	}
//
// Validation stops at the first failing check, in this order: a source is
// set and, for files, readable; a target is set; a base IRI is present when
// a stream source needs one; the backend accepts the content type.
//
// The target callback runs on a pool worker. Parses have no ordering
// relative to each other and cannot be cancelled once submitted.
package parser
