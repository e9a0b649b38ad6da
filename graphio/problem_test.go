package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlseg/graphio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteProblem_RoundTrip(t *testing.T) {
	orig, err := graphio.ReadText(openFixture(t, "sample.txt"))
	require.NoError(t, err)

	for _, f := range []graphio.Format{graphio.FormatText, graphio.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, graphio.WriteProblem(&buf, orig, f))
			got, err := graphio.Read(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, orig, got)
		})
	}
}

func TestWriteProblem_TextLayout(t *testing.T) {
	p, err := graphio.ReadText(strings.NewReader("3 2 7 0 1 4 2 1 5"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteProblem(&buf, p, graphio.FormatText))
	assert.Equal(t, "3 2 7\n0 1 4\n2 1 5\n", buf.String())
}

func TestWriteProblem_YAMLFlowEdges(t *testing.T) {
	p, err := graphio.ReadText(strings.NewReader("2 1 3 0 1 9"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteProblem(&buf, p, graphio.FormatYAML))
	assert.Contains(t, buf.String(), "[0, 1, 9]")
}

func TestWriteProblem_UnknownFormat(t *testing.T) {
	err := graphio.WriteProblem(&bytes.Buffer{}, &graphio.Problem{}, graphio.FormatJSON)
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}
