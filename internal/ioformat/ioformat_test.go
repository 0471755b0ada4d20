package ioformat

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cocosip/corblivar3d/internal/cbl"
	"github.com/cocosip/corblivar3d/internal/corberr"
	"github.com/cocosip/corblivar3d/internal/cost"
	"github.com/cocosip/corblivar3d/internal/die"
	"github.com/cocosip/corblivar3d/internal/domain"
)

func TestParseBlocksValid(t *testing.T) {
	arena := domain.NewArena()
	err := ParseBlocks(strings.NewReader("A 2 3\nB 4 1\n# comment\n\nC 1 1\n"), arena)
	if err != nil {
		t.Fatal(err)
	}
	if arena.Len() != 3 {
		t.Fatalf("got %d blocks, want 3", arena.Len())
	}
}

func TestParseBlocksRejectsMalformedLine(t *testing.T) {
	arena := domain.NewArena()
	err := ParseBlocks(strings.NewReader("A 2\n"), arena)
	if !errors.Is(err, corberr.ErrInputMalformed) {
		t.Fatalf("expected ErrInputMalformed, got %v", err)
	}
}

func TestParseNetsValid(t *testing.T) {
	arena := domain.NewArena()
	if err := ParseBlocks(strings.NewReader("A 2 3\nB 4 1\n"), arena); err != nil {
		t.Fatal(err)
	}
	nets, err := ParseNets(strings.NewReader("N1 intra A B\n"), arena)
	if err != nil {
		t.Fatal(err)
	}
	if len(nets) != 1 || len(nets[0].Blocks) != 2 {
		t.Fatalf("unexpected nets: %+v", nets)
	}
}

func TestParseNetsRejectsUnknownBlock(t *testing.T) {
	arena := domain.NewArena()
	if err := ParseBlocks(strings.NewReader("A 2 3\n"), arena); err != nil {
		t.Fatal(err)
	}
	_, err := ParseNets(strings.NewReader("N1 intra A Z\n"), arena)
	if !errors.Is(err, corberr.ErrInputMalformed) {
		t.Fatalf("expected ErrInputMalformed, got %v", err)
	}
}

func TestWriteResultsContainsKeyFields(t *testing.T) {
	var buf bytes.Buffer
	bd := cost.Breakdown{Total: 1.5, MaxDieOccupation: 0.8, TSVCount: 3}
	if err := WriteResults(&buf, "bench1", uuid.New(), true, bd, 2*time.Second); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"benchmark: bench1", "valid_solution: true", "tsv_count: 3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("results output missing %q:\n%s", want, out)
		}
	}
}

func TestWritePlotOneLinePerBlock(t *testing.T) {
	arena := domain.NewArena()
	a, _ := domain.NewBlock("A", 2, 3)
	b, _ := domain.NewBlock("B", 4, 1)
	_ = arena.Add(a)
	_ = arena.Add(b)

	d := die.New(0)
	d.CBL.Push(cbl.Tuple{Block: a, Dir: domain.Horizontal, T: 0})
	d.CBL.Push(cbl.Tuple{Block: b, Dir: domain.Horizontal, T: 0})
	d.Reset()
	for !d.Done {
		d.PlaceCurrent()
		d.Advance()
	}

	var buf bytes.Buffer
	if err := WritePlot(&buf, d); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
}

func TestWriteSolutionFramesWithDataStart(t *testing.T) {
	a, _ := domain.NewBlock("A", 2, 3)
	d := die.New(0)
	d.CBL.Push(cbl.Tuple{Block: a, Dir: domain.Horizontal, T: 0})

	var buf bytes.Buffer
	if err := WriteSolution(&buf, uuid.New(), []*die.Die{d}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "data_start") || !strings.Contains(out, "CBL [ 0 ]") {
		t.Fatalf("solution output missing expected framing:\n%s", out)
	}
}
