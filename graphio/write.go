package graphio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlseg/segment"
	"gopkg.in/yaml.v3"
)

// Write encodes res in the given output format.
func Write(w io.Writer, res *segment.Result, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	default:
		return fmt.Errorf("%w: cannot write results as %q", ErrUnknownFormat, f)
	}
}

// WriteText prints one component per line with member ids in chain order,
// separated by single spaces.
func WriteText(w io.Writer, res *segment.Result) error {
	bw := bufio.NewWriter(w)
	for _, c := range res.Components {
		for i, m := range c.Members {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(m.Vertex))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// resultDoc is the structured (JSON/YAML) view of a result.
type resultDoc struct {
	Vertices   int            `json:"vertices" yaml:"vertices"`
	Constant   int64          `json:"constant" yaml:"constant"`
	Merges     int            `json:"merges" yaml:"merges"`
	Components []componentDoc `json:"components" yaml:"components"`
}

type componentDoc struct {
	Members       []int   `json:"members" yaml:"members,flow"`
	AttachWeights []int64 `json:"attach_weights" yaml:"attach_weights,flow"`
	Confidence    int64   `json:"confidence" yaml:"confidence"`
}

func newResultDoc(res *segment.Result) resultDoc {
	doc := resultDoc{
		Vertices:   res.VertexCount,
		Constant:   res.Constant,
		Merges:     res.Merges,
		Components: make([]componentDoc, len(res.Components)),
	}
	for i, c := range res.Components {
		cd := componentDoc{
			Members:       make([]int, len(c.Members)),
			AttachWeights: make([]int64, len(c.Members)),
			Confidence:    c.Confidence,
		}
		for j, m := range c.Members {
			cd.Members[j] = m.Vertex
			cd.AttachWeights[j] = m.AttachWeight
		}
		doc.Components[i] = cd
	}

	return doc
}

// WriteJSON encodes the full result as indented JSON.
func WriteJSON(w io.Writer, res *segment.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(newResultDoc(res))
}

// WriteYAML encodes the full result as YAML.
func WriteYAML(w io.Writer, res *segment.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newResultDoc(res)); err != nil {
		return err
	}

	return enc.Close()
}
