package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdfparse/parser"
	"github.com/geoknoesis/rdfparse/parser/ntriples"
	"github.com/geoknoesis/rdfparse/rdf"
	"github.com/geoknoesis/rdfparse/store/boltstore"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file|iri|->",
	Short: "Parse a document",
	Long: `Parse a file, an http(s) IRI or stdin ("-") and print the statements
as N-Quads. With --store the statements go into a bbolt database instead.

The syntax comes from --syntax, --content-type or the file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := sourceConfig(args[0])
	if err != nil {
		return describe(err)
	}
	sink, err := openSink(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer sink.close()

	outcome, err := parseOnce(newDispatcher(), sink.bind(cfg))
	if err != nil {
		return err
	}
	if err := sink.flush(); err != nil {
		return err
	}
	if flagStore != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d statements from %s stored in %s (%s)\n",
			sink.count, outcome.Source, flagStore, outcome.Duration())
	}
	return nil
}

// parseOnce executes cfg and waits for it to finish.
func parseOnce(d *parser.Dispatcher, cfg parser.Config) (parser.Outcome, error) {
	h, err := d.Execute(cfg)
	if err != nil {
		return parser.Outcome{}, describe(err)
	}
	outcome, err := h.Result()
	return outcome, describe(err)
}

// sink is where parsed statements end up: an N-Quads writer or a store.
type sink struct {
	writer *ntriples.Writer
	store  *boltstore.Store
	count  int
}

func openSink(out io.Writer) (*sink, error) {
	if flagStore != "" {
		st, err := boltstore.Open(flagStore)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &sink{store: st}, nil
	}
	w, err := ntriples.NewWriter(out, rdf.SyntaxNQuads)
	if err != nil {
		return nil, err
	}
	return &sink{writer: w}, nil
}

// bind sets the target of cfg to the sink.
func (s *sink) bind(cfg parser.Config) parser.Config {
	s.count = 0
	return cfg.WithTargetFunc(func(q rdf.Quad) error {
		s.count++
		if s.store != nil {
			return s.store.Add(q)
		}
		return s.writer.Handle(q)
	})
}

func (s *sink) flush() error {
	if s.store != nil {
		return s.store.Flush()
	}
	return s.writer.Flush()
}

func (s *sink) close() {
	if s.store != nil {
		s.store.Close()
	}
}
