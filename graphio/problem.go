package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// WriteProblem encodes p in an input format so that Read returns an equal
// problem. Only FormatText and FormatYAML are supported.
func WriteProblem(w io.Writer, p *Problem, f Format) error {
	switch f {
	case FormatText:
		return writeProblemText(w, p)
	case FormatYAML:
		return writeProblemYAML(w, p)
	default:
		return fmt.Errorf("%w: cannot write problems as %q", ErrUnknownFormat, f)
	}
}

func writeProblemText(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d\n", p.VertexCount, len(p.Edges), p.Constant)
	var line []byte
	for _, e := range p.Edges {
		line = strconv.AppendInt(line[:0], int64(e.Origin), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(e.Destination), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, e.Weight, 10)
		line = append(line, '\n')
		bw.Write(line)
	}

	return bw.Flush()
}

func writeProblemYAML(w io.Writer, p *Problem) error {
	doc := yamlProblem{
		Vertices: p.VertexCount,
		Constant: p.Constant,
		Edges:    make([]yamlEdge, 0, len(p.Edges)),
	}
	for _, e := range p.Edges {
		doc.Edges = append(doc.Edges, yamlEdge{int64(e.Origin), int64(e.Destination), e.Weight})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
