package ntriples

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/geoknoesis/rdfparse/rdf"
)

const acceptHeader = "application/n-quads, application/n-triples;q=0.9, text/plain;q=0.1"

// fetch retrieves an IRI source and reports the line-based syntax named by
// the response's media type, if any. Transport failures and non-2xx
// responses are returned as *url.Error.
func (b *Backend) fetch(iri rdf.IRI) (io.ReadCloser, rdf.Syntax, error) {
	req, err := http.NewRequest(http.MethodGet, iri.Value, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, "", &url.Error{Op: "Get", URL: iri.Value, Err: fmt.Errorf("ntriples: unexpected status %s", resp.Status)}
	}
	served, ok := rdf.SyntaxByMediaType(resp.Header.Get("Content-Type"))
	if !ok || !served.LineBased() {
		served = ""
	}
	b.log.Debug("fetched %s (%s)", iri.Value, resp.Header.Get("Content-Type"))
	return resp.Body, served, nil
}
