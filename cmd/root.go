package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the coffer command tree.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "coffer",
		Short: "Coffer is a library of in-memory collection structures.",
		Long: `Coffer is a library of in-memory collection structures.

This binary contains supporting tools for exercising the collection
structures, such as benchmarks against the growable vector, linked
list, hash mapping, ordered mapping, and bit set.
`,
	}

	rc.AddCommand(newBenchCommand(stdin, stdout, stderr))

	rc.SetOut(stderr)
	return rc
}
