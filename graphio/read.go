package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlseg/edgestore"
	"gopkg.in/yaml.v3"
)

// Read decodes a problem in the given format. FormatGrid needs the constant
// from the caller and is handled by ReadGrid instead.
func Read(r io.Reader, f Format) (*Problem, error) {
	switch f {
	case FormatText:
		return ReadText(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("%w: cannot read problems as %q", ErrUnknownFormat, f)
	}
}

// tokens pulls whitespace-separated integers from a stream.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// next returns the next integer, ErrTruncated at end of input, or ErrMalformed.
func (t *tokens) next(what string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("graphio: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: missing %s", ErrTruncated, what)
	}
	t.pos++
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s) %q is not an integer", ErrMalformed, t.pos, what, t.sc.Text())
	}

	return v, nil
}

// ReadText decodes the whitespace-separated text format:
//
//	vertexCount edgeCount constant
//	v1 v2 weight      (edgeCount times)
//
// Endpoint order inside a triple is free; canonicalization happens when the
// store is built. Anything after the last triple is rejected.
func ReadText(r io.Reader) (*Problem, error) {
	t := newTokens(r)

	vertices, err := t.next("vertex count")
	if err != nil {
		return nil, err
	}
	count, err := t.next("edge count")
	if err != nil {
		return nil, err
	}
	constant, err := t.next("constant")
	if err != nil {
		return nil, err
	}
	if vertices < 0 || count < 0 {
		return nil, fmt.Errorf("%w: negative count (vertices=%d, edges=%d)", ErrMalformed, vertices, count)
	}

	hint := count
	if hint > 1<<16 {
		hint = 1 << 16 // the declared count is untrusted until the triples arrive
	}
	p := &Problem{
		VertexCount: int(vertices),
		Constant:    constant,
		Edges:       make([]edgestore.Edge, 0, hint),
	}
	for i := int64(0); i < count; i++ {
		var triple [3]int64
		for k := range triple {
			if triple[k], err = t.next(fmt.Sprintf("edge #%d", i)); err != nil {
				return nil, err
			}
		}
		p.Edges = append(p.Edges, edgestore.Edge{
			Origin:      int(triple[0]),
			Destination: int(triple[1]),
			Weight:      triple[2],
		})
	}

	if t.sc.Scan() {
		return nil, fmt.Errorf("%w: trailing input %q after %d edges", ErrMalformed, t.sc.Text(), count)
	}
	if err := t.sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading input: %w", err)
	}

	return p, nil
}

// yamlProblem is the YAML document layout.
type yamlProblem struct {
	Vertices int        `yaml:"vertices"`
	Constant int64      `yaml:"constant"`
	Edges    []yamlEdge `yaml:"edges"`
}

// yamlEdge is a [v1, v2, weight] triple, encoded in flow style.
type yamlEdge []int64

// MarshalYAML renders the triple on one line.
func (e yamlEdge) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range e {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)})
	}

	return n, nil
}

// ReadYAML decodes a problem document such as:
//
//	vertices: 3
//	constant: 10
//	edges:
//	  - [0, 1, 2]
//	  - [1, 2, 3]
func ReadYAML(r io.Reader) (*Problem, error) {
	var doc yamlProblem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrTruncated)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Vertices < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrMalformed, doc.Vertices)
	}

	p := &Problem{
		VertexCount: doc.Vertices,
		Constant:    doc.Constant,
		Edges:       make([]edgestore.Edge, 0, len(doc.Edges)),
	}
	for i, e := range doc.Edges {
		if len(e) != 3 {
			return nil, fmt.Errorf("%w: edge #%d has %d fields, want 3", ErrMalformed, i, len(e))
		}
		p.Edges = append(p.Edges, edgestore.Edge{Origin: int(e[0]), Destination: int(e[1]), Weight: e[2]})
	}

	return p, nil
}

// ReadGrid decodes rows of whitespace-separated integers, one row per
// non-blank line. Row length checks are left to gridgraph.NewGridGraph.
func ReadGrid(r io.Reader) ([][]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var rows [][]int
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d %q is not an integer", ErrMalformed, line, i+1, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading grid: %w", err)
	}

	return rows, nil
}
