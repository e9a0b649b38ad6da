package commands_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlseg/builder"
	"github.com/katalvlaran/lvlseg/cmd/lvlseg/commands"
	"github.com/katalvlaran/lvlseg/config"
	"github.com/katalvlaran/lvlseg/store"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh root command and returns its stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()

	return out.String(), err
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func TestSegment_Golden(t *testing.T) {
	cases := []struct {
		golden string
		args   []string
	}{
		{"segment_text", []string{"segment", fixture("sample.txt")}},
		{"segment_json", []string{"segment", "-f", "json", fixture("sample.txt")}},
		{"segment_text", []string{"segment", "-i", "yaml", "--strategy", "buckets", fixture("sample.yaml")}},
		{"segment_grid", []string{"segment", "-i", "grid", "--constant", "4", fixture("image.grid")}},
	}
	g := goldie.New(t)
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, "", tc.args...)
			require.NoError(t, err)
			g.Assert(t, tc.golden, []byte(out))
		})
	}
}

func TestSegment_StdinAndOverride(t *testing.T) {
	in, err := os.ReadFile(fixture("sample.txt"))
	require.NoError(t, err)

	out, err := run(t, string(in), "segment")
	require.NoError(t, err)
	assert.Equal(t, "1 0 2\n3 5\n4\n", out)

	// With a zero constant no singleton is confident enough to merge.
	out, err = run(t, string(in), "segment", "-", "--constant", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n3\n4\n5\n", out)
}

func TestSegment_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	out, err := run(t, "", "segment", "-f", "json", "-o", path, fixture("sample.txt"))
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := os.ReadFile(fixture("segment_json.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestSegment_Errors(t *testing.T) {
	_, err := run(t, "", "segment", "-i", "grid", fixture("image.grid"))
	assert.ErrorContains(t, err, "--constant")

	_, err = run(t, "", "segment", "--strategy", "heap", fixture("sample.txt"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "", "segment", "--constant", "-3", fixture("sample.txt"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "", "segment", fixture("missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStoredWorkflow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lvlseg.db")

	out, err := run(t, "", "import", "sample", fixture("sample.txt"), "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "imported sample: 6 vertices, 5 edges\n", out)

	out, err = run(t, "", "run", "sample", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "1 0 2\n3 5\n4\n", out)

	out, err = run(t, "", "run", "sample", "--db", db, "--strategy", "buckets", "--constant", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n3\n4\n5\n", out)

	out, err = run(t, "", "runs", "sample", "--db", db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Equal(t, []string{"1", "10", "sorted", "3", "3"}, strings.Fields(lines[1])[:5])
	assert.Equal(t, []string{"2", "0", "buckets", "0", "6"}, strings.Fields(lines[2])[:5])

	_, err = run(t, "", "run", "absent", "--db", db)
	assert.ErrorIs(t, err, store.ErrProblemNotFound)
}

func TestImport_GridWithConstant(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lvlseg.db")

	_, err := run(t, "", "import", "image", fixture("image.grid"), "-i", "grid", "--constant", "4", "--db", db)
	require.NoError(t, err)

	out, err := run(t, "", "run", "image", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "0 1 3 4\n2 5\n", out)
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "lvlseg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: yaml\nconstant: 0\n"), 0o600))

	out, err := run(t, "", "segment", "--config", cfg, fixture("sample.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "merges: 0")

	// An explicit flag beats the file.
	out, err = run(t, "", "segment", "--config", cfg, "-f", "text", fixture("sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n3\n4\n5\n", out)
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "", "generate", "path", "-n", "3", "--constant", "5")
	require.NoError(t, err)
	assert.Equal(t, "3 2 5\n0 1 1\n1 2 1\n", out)

	out, err = run(t, "", "generate", "grid", "-n", "2", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "vertices: 4")
	assert.Contains(t, out, "[0, 1, 1]")

	// Generated text segments like any other problem.
	out, err = run(t, out, "segment", "-i", "yaml", "--constant", "8")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3\n", out)

	_, err = run(t, "", "generate", "torus")
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)

	_, err = run(t, "", "generate", "path", "--min-weight", "5", "--max-weight", "2")
	assert.ErrorContains(t, err, "--min-weight")
}

func TestGenerate_Import(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lvlseg.db")

	out, err := run(t, "", "generate", "random", "-n", "30", "-p", "0.2", "--seed", "9",
		"--max-weight", "20", "--constant", "15", "--import", "rnd", "--db", db)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "imported rnd: 30 vertices"))

	sorted, err := run(t, "", "run", "rnd", "--db", db)
	require.NoError(t, err)
	buckets, err := run(t, "", "run", "rnd", "--db", db, "--strategy", "buckets")
	require.NoError(t, err)
	assert.Equal(t, sorted, buckets)
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "lvlseg.db")
	prom := filepath.Join(dir, "lvlseg.prom")

	_, err := run(t, "", "import", "sample", fixture("sample.txt"), "--db", db)
	require.NoError(t, err)
	_, err = run(t, "", "run", "sample", "--db", db, "--metrics-file", prom)
	require.NoError(t, err)

	body, err := os.ReadFile(prom)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, `lvlseg_runs_total{strategy="sorted"} 1`)
	assert.Contains(t, text, "lvlseg_merges_total 3")
	assert.Contains(t, text, "lvlseg_edges_total 5")
	assert.Contains(t, text, `lvlseg_db_operations_total{operation="save_run",status="ok"} 1`)
}
