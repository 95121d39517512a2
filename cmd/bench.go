package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/molecula/coffer/ctl"
)

func newBenchCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	bencher := ctl.NewBenchCommand(stdin, stdout, stderr)
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark collection operations.",
		Long: `
Executes a randomized workload against one of the collection structures
and reports the achieved operation rate.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bencher.Run(cmd.Context())
		},
	}
	flags := benchCmd.Flags()
	flags.StringVarP(&bencher.Structure, "structure", "s", "hashmap", "Structure to benchmark: choose from [vector linkedlist hashmap rbtree bitset]")
	flags.IntVarP(&bencher.N, "num", "n", bencher.N, "Number of operations to perform.")
	flags.Int64VarP(&bencher.Seed, "seed", "", bencher.Seed, "Seed for the randomized workload.")

	return benchCmd
}
