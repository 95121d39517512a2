package ctl

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/molecula/coffer/bitset"
	"github.com/molecula/coffer/errors"
	"github.com/molecula/coffer/hashmap"
	"github.com/molecula/coffer/linkedlist"
	"github.com/molecula/coffer/rbtree"
	"github.com/molecula/coffer/vector"
)

// BenchCommand represents a command for benchmarking collection
// operations.
type BenchCommand struct {
	// Structure to exercise: vector, linkedlist, hashmap, rbtree, bitset.
	Structure string

	// Number of operations to perform.
	N int

	// Seed for the operation mix.
	Seed int64

	// Standard input/output
	*CmdIO
}

// NewBenchCommand returns a new instance of BenchCommand.
func NewBenchCommand(stdin io.Reader, stdout, stderr io.Writer) *BenchCommand {
	return &BenchCommand{
		CmdIO: NewCmdIO(stdin, stdout, stderr),
		N:     1000000,
		Seed:  1,
	}
}

// Run executes the bench command.
func (cmd *BenchCommand) Run(ctx context.Context) error {
	if cmd.N <= 0 {
		return errors.New(errors.InvalidConfiguration, "operation count must be positive")
	}
	rng := rand.New(rand.NewSource(cmd.Seed))

	var run func(*rand.Rand, int) error
	switch cmd.Structure {
	case "vector":
		run = benchVector
	case "linkedlist":
		run = benchLinkedList
	case "hashmap":
		run = benchHashMap
	case "rbtree":
		run = benchRBTree
	case "bitset":
		run = benchBitSet
	case "":
		return errors.New(errors.InvalidConfiguration, "structure required")
	default:
		return errors.Newf(errors.InvalidConfiguration, "unknown structure: %q", cmd.Structure)
	}

	cmd.Logger().Infof("benchmarking %s, n=%d seed=%d", cmd.Structure, cmd.N, cmd.Seed)
	startTime := time.Now()
	if err := run(rng, cmd.N); err != nil {
		return err
	}
	elapsed := time.Since(startTime)
	fmt.Fprintf(cmd.Stdout, "Executed %d %s operations in %s (%0.3f op/sec)\n",
		cmd.N, cmd.Structure, elapsed, float64(cmd.N)/elapsed.Seconds())
	return nil
}

func benchVector(rng *rand.Rand, n int) error {
	v, err := vector.New[int]()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if v.Len() == 0 || rng.Intn(4) != 0 {
			v.Append(i)
			continue
		}
		if _, err := v.RemoveAt(rng.Intn(v.Len())); err != nil {
			return err
		}
	}
	return nil
}

func benchLinkedList(rng *rand.Rand, n int) error {
	l := linkedlist.New[int]()
	for i := 0; i < n; i++ {
		switch {
		case l.Len() == 0 || rng.Intn(4) != 0:
			if rng.Intn(2) == 0 {
				l.AddFirst(i)
			} else {
				l.AddLast(i)
			}
		case rng.Intn(2) == 0:
			if _, err := l.RemoveFirst(); err != nil {
				return err
			}
		default:
			if _, err := l.RemoveLast(); err != nil {
				return err
			}
		}
	}
	return nil
}

func benchHashMap(rng *rand.Rand, n int) error {
	m, err := hashmap.New[int, int](hashmap.IntHash, hashmap.Equal[int])
	if err != nil {
		return err
	}
	keySpace := n/4 + 1
	for i := 0; i < n; i++ {
		k := rng.Intn(keySpace)
		switch rng.Intn(4) {
		case 0:
			m.Remove(k)
		case 1:
			m.Get(k)
		default:
			m.Put(k, i)
		}
	}
	return nil
}

func benchRBTree(rng *rand.Rand, n int) error {
	t := rbtree.New[int, int]()
	keySpace := n/4 + 1
	for i := 0; i < n; i++ {
		k := rng.Intn(keySpace)
		switch rng.Intn(4) {
		case 0:
			t.Delete(k)
		case 1:
			t.Get(k)
		default:
			t.Put(k, i)
		}
	}
	return nil
}

func benchBitSet(rng *rand.Rand, n int) error {
	const universe = 1 << 16
	b, err := bitset.New(universe)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		k := rng.Intn(universe)
		switch rng.Intn(4) {
		case 0:
			if err := b.Remove(k); err != nil {
				return err
			}
		case 1:
			b.Contains(k)
		default:
			if err := b.Add(k); err != nil {
				return err
			}
		}
	}
	return nil
}
