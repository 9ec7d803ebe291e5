package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/sqids/sqids-go"
)

// Generator hands out short, unique, URL-safe identifiers for the lifetime of
// the process. Identifiers encode a monotonically increasing sequence number.
type Generator struct {
	sqids *sqids.Sqids
	seq   atomic.Uint64
}

func New() (*Generator, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	return &Generator{sqids: s}, nil
}

// Encode returns the identifier for a given sequence number.
func (g *Generator) Encode(seq uint64) (string, error) {
	return g.sqids.Encode([]uint64{seq})
}

// Next returns the identifier for the next sequence number, starting at 1.
func (g *Generator) Next() string {
	seq := g.seq.Add(1)
	id, err := g.Encode(seq)
	if err != nil {
		return strconv.FormatUint(seq, 10)
	}
	return id
}
