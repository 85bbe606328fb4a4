package cmd

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdfparse/internal/logger"
	"github.com/geoknoesis/rdfparse/parser"
	"github.com/geoknoesis/rdfparse/parser/jsonld"
	"github.com/geoknoesis/rdfparse/parser/ntriples"
	"github.com/geoknoesis/rdfparse/rdf"
)

var (
	flagBase        string
	flagContentType string
	flagSyntax      string
	flagStore       string
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:           "rdfparse",
	Short:         "Parse RDF documents",
	Long:          "Parse N-Triples, N-Quads and JSON-LD from files, URLs or stdin.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.Default().SetLevel(logger.LevelDebug)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")

	for _, c := range []*cobra.Command{parseCmd, watchCmd} {
		c.Flags().StringVar(&flagBase, "base", "", "Base IRI for resolving relative IRIs")
		c.Flags().StringVar(&flagContentType, "content-type", "", "Media type of the source, e.g. application/n-quads")
		c.Flags().StringVar(&flagSyntax, "syntax", "", "Syntax name, e.g. nquads, ntriples, jsonld")
		c.Flags().StringVar(&flagStore, "store", "", "Store statements in this bbolt database instead of printing them")
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(syntaxesCmd)
}

// backends maps each supported syntax to its parser backend.
func backends() map[rdf.Syntax]parser.Backend {
	nt := ntriples.New()
	return map[rdf.Syntax]parser.Backend{
		rdf.SyntaxNTriples: nt,
		rdf.SyntaxNQuads:   nt,
		rdf.SyntaxJSONLD:   jsonld.New(),
	}
}

// newDispatcher routes by syntax; IRIs with no known syntax go to the
// ntriples backend, which reads the served media type.
func newDispatcher() *parser.Dispatcher {
	all := backends()
	mux := parser.NewMux(all, parser.WithFallback(all[rdf.SyntaxNQuads]))
	return parser.NewDispatcher(mux, parser.DefaultPool())
}

// sourceConfig builds the source, syntax and base part of a parse from the
// command line. "-" reads stdin, sniffing the syntax unless one is given;
// anything with a scheme is an IRI.
func sourceConfig(source string) (parser.Config, error) {
	cfg := parser.NewConfig()

	switch {
	case source == "-":
		var in io.Reader = os.Stdin
		if flagSyntax == "" && flagContentType == "" {
			var s rdf.Syntax
			var ok bool
			if s, in, ok = rdf.DetectSyntax(in); ok {
				cfg = cfg.WithSyntax(s)
			}
		}
		cfg = cfg.WithSourceStream(in)
	case strings.Contains(source, "://"):
		var err error
		if cfg, err = cfg.WithSource(source); err != nil {
			return cfg, err
		}
		if flagSyntax == "" && flagContentType == "" {
			if u, err := url.Parse(source); err == nil {
				if s, ok := rdf.SyntaxByPath(u.Path); ok {
					cfg = cfg.WithSyntax(s)
				}
			}
		}
	default:
		cfg = cfg.WithSourcePath(source)
	}

	if flagContentType != "" {
		cfg = cfg.WithContentType(flagContentType)
	}
	if flagSyntax != "" {
		s, ok := rdf.ParseSyntax(flagSyntax)
		if !ok {
			return cfg, fmt.Errorf("unknown syntax %q", flagSyntax)
		}
		cfg = cfg.WithSyntax(s)
	}
	if flagBase != "" {
		var err error
		if cfg, err = cfg.WithBase(flagBase); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// describe prefixes an error with its code.
func describe(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", parser.Code(err), err)
}
