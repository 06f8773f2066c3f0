package fixture_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mllab/fixturegen/internal/fixture"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newGenerator(t *testing.T, seed int64, dir string) *fixture.Generator {
	t.Helper()

	g, err := fixture.New(seed, dir, fixture.WithLogger(quietLogger()))
	require.NoError(t, err)
	return g
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(data), "\n"), "file should end with a newline")
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateTestMode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, fixture.Generate([]string{"test"}, 1337, dir))

	lines := readLines(t, filepath.Join(dir, "test.csv"))
	require.Len(t, lines, 101)
	assert.Equal(t, "Index X Y Type", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0 "), "first row: %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[100], "99 "), "last row: %q", lines[100])
}

func TestGenerateRowInvariants(t *testing.T) {
	dir := t.TempDir()
	g := newGenerator(t, fixture.DefaultSeed, dir)

	results, err := g.Generate([]string{"train", "test"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, res := range results {
		t.Run(res.Mode, func(t *testing.T) {
			assert.Equal(t, filepath.Join(dir, res.Mode+".csv"), res.Path)
			assert.Equal(t, fixture.InstanceCount(res.Mode), res.Rows)

			f, err := os.Open(res.Path)
			require.NoError(t, err)
			defer f.Close()

			rows, err := fixture.Decode(f)
			require.NoError(t, err)
			require.NoError(t, fixture.Verify(rows, res.Rows))

			labels := map[int]int{}
			for _, r := range rows {
				labels[r.Type]++
			}
			assert.Len(t, labels, 2, "both labels should appear")
		})
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	_, err := newGenerator(t, 1337, first).Generate([]string{"train"})
	require.NoError(t, err)
	_, err = newGenerator(t, 1337, second).Generate([]string{"train"})
	require.NoError(t, err)

	assert.Equal(t,
		readFile(t, filepath.Join(first, "train.csv")),
		readFile(t, filepath.Join(second, "train.csv")))
}

func TestGenerateSharesStreamAcrossModes(t *testing.T) {
	alone, shared := t.TempDir(), t.TempDir()

	_, err := newGenerator(t, 1337, alone).Generate([]string{"train"})
	require.NoError(t, err)
	_, err = newGenerator(t, 1337, shared).Generate([]string{"test", "train"})
	require.NoError(t, err)

	// test consumed the head of the stream, so train starts further along.
	assert.NotEqual(t,
		readFile(t, filepath.Join(alone, "train.csv")),
		readFile(t, filepath.Join(shared, "train.csv")))
}

func TestGenerateLeadingModeUnaffectedByLaterModes(t *testing.T) {
	alone, both := t.TempDir(), t.TempDir()

	_, err := newGenerator(t, 1337, alone).Generate([]string{"train"})
	require.NoError(t, err)
	_, err = newGenerator(t, 1337, both).Generate([]string{"train", "test"})
	require.NoError(t, err)

	assert.Equal(t,
		readFile(t, filepath.Join(alone, "train.csv")),
		readFile(t, filepath.Join(both, "train.csv")))
}

func TestGenerateDoesNotReseedBetweenCalls(t *testing.T) {
	dir := t.TempDir()
	g := newGenerator(t, 1337, dir)
	path := filepath.Join(dir, "test.csv")

	_, err := g.Generate([]string{"test"})
	require.NoError(t, err)
	first := readFile(t, path)

	_, err = g.Generate([]string{"test"})
	require.NoError(t, err)
	assert.NotEqual(t, first, readFile(t, path))
}

func TestGenerateUnknownTokenFallsBack(t *testing.T) {
	dir := t.TempDir()
	results, err := newGenerator(t, 1337, dir).Generate([]string{"foo"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, fixture.DefaultInstances, results[0].Rows)

	lines := readLines(t, filepath.Join(dir, "foo.csv"))
	assert.Len(t, lines, 1+fixture.DefaultInstances)
}

func TestGenerateTruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 5000)), 0o644))

	_, err := newGenerator(t, 1337, dir).Generate([]string{"test"})
	require.NoError(t, err)

	lines := readLines(t, path)
	assert.Len(t, lines, 101)
	assert.NotContains(t, readFile(t, path), "stale")
}

func TestGenerateMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	results, err := newGenerator(t, 1337, dir).Generate([]string{"train"})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, results)
}

func TestGenerateStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()

	results, err := newGenerator(t, 1337, dir).Generate([]string{"test", "missing/train", "train"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "train.csv")

	require.Len(t, results, 1)
	assert.Equal(t, "test", results[0].Mode)
	assert.FileExists(t, filepath.Join(dir, "test.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "train.csv"))
}

func TestGenerateLogsEachFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	g, err := fixture.New(1337, dir, fixture.WithLogger(logger))
	require.NoError(t, err)
	_, err = g.Generate([]string{"train", "test"})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "Creating data"))
	assert.Contains(t, out, "train.csv")
	assert.Contains(t, out, "test.csv")
}

func TestGenerateUsesClock(t *testing.T) {
	dir := t.TempDir()
	clock := quartz.NewMock(t)

	g, err := fixture.New(1337, dir, fixture.WithLogger(quietLogger()), fixture.WithClock(clock))
	require.NoError(t, err)

	results, err := g.Generate([]string{"test"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Zero(t, results[0].Elapsed, "mock clock does not advance on its own")
}

func TestNewRejectsUnsupportedStrategy(t *testing.T) {
	_, err := fixture.New(1337, t.TempDir(), fixture.WithStrategy(fixture.StrategyHalves))
	assert.ErrorIs(t, err, fixture.ErrUnsupportedStrategy)
}

func TestGenerateNoModes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, fixture.Generate(nil, 1337, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
