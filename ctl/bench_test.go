package ctl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/molecula/coffer/errors"
)

func TestBenchCommand_Run(t *testing.T) {
	for _, structure := range []string{"vector", "linkedlist", "hashmap", "rbtree", "bitset"} {
		t.Run(structure, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := NewBenchCommand(strings.NewReader(""), &stdout, &stderr)
			cmd.Structure = structure
			cmd.N = 1000
			if err := cmd.Run(context.Background()); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(stdout.String(), "Executed 1000 "+structure+" operations") {
				t.Fatalf("unexpected output: %q", stdout.String())
			}
		})
	}
}

func TestBenchCommand_RunErrors(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		n         int
	}{
		{name: "unknown structure", structure: "skiplist", n: 100},
		{name: "missing structure", structure: "", n: 100},
		{name: "zero ops", structure: "vector", n: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := NewBenchCommand(strings.NewReader(""), &stdout, &stderr)
			cmd.Structure = test.structure
			cmd.N = test.n
			err := cmd.Run(context.Background())
			if !errors.Is(err, errors.InvalidConfiguration) {
				t.Fatalf("expected InvalidConfiguration, got %v", err)
			}
		})
	}
}
