package simspace_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/simspace"
	"github.com/hupe1980/simspace/sparse"
	"github.com/hupe1980/simspace/vmath"
	"github.com/hupe1980/simspace/wordembed"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newSparseSpace(t *testing.T) simspace.Space[float32] {
	t.Helper()

	s, err := sparse.New[float32](vmath.MetricCosine)
	require.NoError(t, err)

	return s
}

func TestReadDataset(t *testing.T) {
	path := writeFile(t, "1 0.5 3 1.5\n2 1.0\nlabel:4 7 2.5\n1 1.0 2 2.0\n9 0.25\n")
	s := newSparseSpace(t)

	objects, externIDs, err := simspace.ReadDataset(s, path, 0)
	require.NoError(t, err)
	require.Len(t, objects, 5)
	require.Len(t, externIDs, 5)

	// IDs are assigned sequentially.
	for i, o := range objects {
		assert.Equal(t, simspace.ID(i), o.ID())
	}

	// Inline labels are picked up.
	assert.Equal(t, simspace.Label(4), objects[2].Label())
	assert.Equal(t, simspace.NoLabel, objects[0].Label())
}

func TestReadDatasetMaxObjects(t *testing.T) {
	path := writeFile(t, "1 0.5\n2 1.0\n3 1.5\n4 2.0\n5 2.5\n")
	s := newSparseSpace(t)

	objects, externIDs, err := simspace.ReadDataset(s, path, 2)
	require.NoError(t, err)
	assert.Len(t, objects, 2)
	assert.Len(t, externIDs, 2)
}

func TestReadDatasetParseFailure(t *testing.T) {
	path := writeFile(t, "1 0.5\n2 1.0\n7 1.0 7 2.0\n4 2.0\n")
	s := newSparseSpace(t)

	_, _, err := simspace.ReadDataset(s, path, 0,
		simspace.WithLogger(simspace.NewTextLogger(slog.LevelError)))
	require.Error(t, err)

	var pe *simspace.ErrParse
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, "7 1.0 7 2.0", pe.Content)

	var dup *sparse.ErrDuplicateIndex
	assert.ErrorAs(t, err, &dup)
}

func TestReadDatasetLogsRecordFailure(t *testing.T) {
	// A record the space rejects at read time (no identifier token)
	// must be logged with the offending line, not an empty content.
	path := writeFile(t, "cat 0.1 0.2\ncatwithoutvector\n")

	var s simspace.Space[float32]
	s, err := wordembed.New[float32](vmath.MetricL2)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := simspace.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	_, _, err = simspace.ReadDataset(s, path, 0, simspace.WithLogger(logger))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "catwithoutvector")
	assert.Contains(t, out, "line=2")
	assert.Contains(t, out, path)
	assert.Contains(t, out, "word embeddings")
}

func TestReadDatasetOpenFailure(t *testing.T) {
	s := newSparseSpace(t)

	_, _, err := simspace.ReadDataset(s, filepath.Join(t.TempDir(), "missing.txt"), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteDatasetRoundTrip(t *testing.T) {
	src := writeFile(t, "cat 0.1 0.2 0.3\ndog 0.4 0.5 0.6\nfish 0.7 0.8 0.9\n")

	var s simspace.Space[float32]
	s, err := wordembed.New[float32](vmath.MetricL2)
	require.NoError(t, err)

	objects, externIDs, err := simspace.ReadDataset(s, src, 0)
	require.NoError(t, err)
	require.Len(t, objects, 3)
	assert.Equal(t, []string{"cat", "dog", "fish"}, externIDs)

	dst := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, simspace.WriteDataset(s, objects, externIDs, dst, 0))

	reread, rereadIDs, err := simspace.ReadDataset(s, dst, 0)
	require.NoError(t, err)
	require.Len(t, reread, 3)
	assert.Equal(t, externIDs, rereadIDs)

	for i := range objects {
		assert.True(t, s.ApproxEqual(objects[i], reread[i]))
	}
}

func TestWriteDatasetMaxObjects(t *testing.T) {
	src := writeFile(t, "1 0.5\n2 1.0\n3 1.5\n")
	s := newSparseSpace(t)

	objects, externIDs, err := simspace.ReadDataset(s, src, 0)
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, simspace.WriteDataset(s, objects, externIDs, dst, 2))

	reread, _, err := simspace.ReadDataset(s, dst, 0)
	require.NoError(t, err)
	assert.Len(t, reread, 2)
}

func TestWriteDatasetExternIDMismatch(t *testing.T) {
	s := newSparseSpace(t)

	obj, err := sparse.NewObjFromElems[float32](0, simspace.NoLabel, []sparse.Elem[float32]{{Index: 1, Value: 1}})
	require.NoError(t, err)

	err = simspace.WriteDataset(s, []*simspace.Object{obj}, []string{"a", "b"}, filepath.Join(t.TempDir(), "out.txt"), 0)
	require.Error(t, err)
}

func TestReadCursorEOF(t *testing.T) {
	path := writeFile(t, "1 0.5\n")
	s := newSparseSpace(t)

	cur, err := s.OpenReadHeader(path)
	require.NoError(t, err)
	defer cur.Close()

	_, err = s.ReadNextRecord(cur)
	require.NoError(t, err)
	assert.Equal(t, 1, cur.Line())

	_, err = s.ReadNextRecord(cur)
	assert.True(t, errors.Is(err, io.EOF))
}
