// Package ioformat implements the floorplanner's external file formats
// (spec.md §6): blocks/nets input parsing, and results/plot/solution
// output writers. Grounded on spec.md's line-oriented formats and
// original_source/src/CorblivarFP.cpp's finalize() for exactly which
// fields the results file reports.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cocosip/corblivar3d/internal/corberr"
	"github.com/cocosip/corblivar3d/internal/domain"
)

// ParseBlocks reads one block per line: `<id> <w> <h>`.
func ParseBlocks(r io.Reader, arena *domain.Arena) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("blocks file line %d: expected \"id w h\", got %q: %w", lineNo, line, corberr.ErrInputMalformed)
		}
		w, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("blocks file line %d: bad width %q: %w", lineNo, fields[1], corberr.ErrInputMalformed)
		}
		h, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("blocks file line %d: bad height %q: %w", lineNo, fields[2], corberr.ErrInputMalformed)
		}
		b, err := domain.NewBlock(fields[0], w, h)
		if err != nil {
			return fmt.Errorf("blocks file line %d: %v: %w", lineNo, err, corberr.ErrInputMalformed)
		}
		if err := arena.Add(b); err != nil {
			return fmt.Errorf("blocks file line %d: %v: %w", lineNo, err, corberr.ErrInputMalformed)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading blocks file: %w", corberr.ErrIO)
	}
	return nil
}

// ParseNets reads one net per line: `<id> <type> <block_id> <block_id> ...`
// where type is "intra" or "inter".
func ParseNets(r io.Reader, arena *domain.Arena) ([]*domain.Net, error) {
	var nets []*domain.Net
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("nets file line %d: expected \"id type block...\", got %q: %w", lineNo, line, corberr.ErrInputMalformed)
		}

		var typ domain.NetType
		switch fields[1] {
		case "intra":
			typ = domain.IntraLayer
		case "inter":
			typ = domain.InterLayer
		default:
			return nil, fmt.Errorf("nets file line %d: unknown net type %q: %w", lineNo, fields[1], corberr.ErrInputMalformed)
		}

		blocks := make([]*domain.Block, 0, len(fields)-2)
		for _, id := range fields[2:] {
			b, ok := arena.Get(id)
			if !ok {
				return nil, fmt.Errorf("nets file line %d: unknown block id %q: %w", lineNo, id, corberr.ErrInputMalformed)
			}
			blocks = append(blocks, b)
		}

		nets = append(nets, &domain.Net{ID: fields[0], Blocks: blocks, Type: typ})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading nets file: %w", corberr.ErrIO)
	}
	return nets, nil
}
