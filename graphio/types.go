package graphio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlseg/edgestore"
)

// Sentinel errors for reading and writing.
var (
	// ErrMalformed indicates input that cannot be parsed as a problem.
	ErrMalformed = errors.New("graphio: malformed input")

	// ErrTruncated indicates input that ends before all declared edges were read.
	ErrTruncated = errors.New("graphio: unexpected end of input")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)

// Format names an input or output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatGrid Format = "grid"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatYAML, FormatJSON, FormatGrid:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Problem is a decoded segmentation input.
type Problem struct {
	VertexCount int
	Constant    int64
	Edges       []edgestore.Edge // as read; canonicalized by Store
}

// Store validates the edges and builds the immutable edge store.
func (p *Problem) Store() (*edgestore.Store, error) {
	return edgestore.New(p.VertexCount, p.Edges)
}
