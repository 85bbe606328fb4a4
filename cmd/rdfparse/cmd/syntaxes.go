package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdfparse/rdf"
)

var syntaxesCmd = &cobra.Command{
	Use:   "syntaxes",
	Short: "List known RDF syntaxes",
	Long:  "List the RDF syntaxes known to the registry and whether this build can parse them.",
	Args:  cobra.NoArgs,
	RunE:  runSyntaxes,
}

func runSyntaxes(cmd *cobra.Command, args []string) error {
	supported := backends()

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYNTAX\tMEDIA TYPE\tEXTENSIONS\tPARSER")
	for _, s := range rdf.Syntaxes() {
		mark := "-"
		if _, ok := supported[s]; ok {
			mark = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s, s.MediaType(), strings.Join(s.Extensions(), " "), mark)
	}
	return tw.Flush()
}
