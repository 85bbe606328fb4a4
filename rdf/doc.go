// Package rdf provides the RDF term model shared by the parse layer and its
// backends.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// It covers four concerns:
//   - Terms: IRI, BlankNode and Literal, combined into Triple and Quad.
//   - Term factories: TermFactory creates terms for one parse session.
//     NewSimpleFactory returns a factory whose blank nodes never collide with
//     those of any other factory.
//   - Syntaxes: Syntax enumerates the recognized serializations and maps them
//     to media types and file extensions in both directions.
//   - Targets: Graph and Dataset receive parsed statements; MemoryGraph and
//     MemoryDataset are in-memory implementations.
//
// Example (syntax registry):
//
//	s, ok := rdf.SyntaxByMediaType("text/turtle; charset=utf-8")
//	if ok {
//	    fmt.Println(s, s.MediaType(), s.Extensions())
//	}
//
// IRIs are validated with ValidateIRI; CheckAbsolute additionally requires a
// scheme. FileIRI turns an absolute filesystem path into a file:// IRI.
package rdf
