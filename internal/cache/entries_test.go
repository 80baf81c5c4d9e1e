package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(runID string) Entry {
	return Entry{
		SourcePath: "pkg/a.try.go",
		SourceHash: SourceHash([]byte("src")),
		ConfigHash: "cfg",
		OutputPath: "pkg/a_try.go",
		OutputHash: OutputHash([]byte("out")),
		Directives: 3,
		RunID:      runID,
	}
}

func TestLookup_Missing(t *testing.T) {
	s := setupTestStore(t)

	_, ok, err := s.Lookup(context.Background(), "nope.try.go")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecord_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t, "run-1")

	run, err := s.BeginRun(ctx)
	require.NoError(t, err)
	want := testEntry(run)
	require.NoError(t, s.Record(ctx, want))

	got, ok, err := s.Lookup(ctx, want.SourcePath)
	require.NoError(t, err)
	require.True(t, ok)

	assert.False(t, got.UpdatedAt.IsZero())
	want.UpdatedAt = got.UpdatedAt
	assert.Equal(t, want, got)
}

func TestRecord_Replaces(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t, "run-1", "run-2")

	run1, err := s.BeginRun(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, testEntry(run1)))

	run2, err := s.BeginRun(ctx)
	require.NoError(t, err)
	e := testEntry(run2)
	e.Directives = 5
	e.OutputHash = OutputHash([]byte("new"))
	require.NoError(t, s.Record(ctx, e))

	got, ok, err := s.Lookup(ctx, e.SourcePath)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "run-2", got.RunID)
	assert.Equal(t, 5, got.Directives)
	assert.Equal(t, e.OutputHash, got.OutputHash)
}

func TestRecord_UnknownRun(t *testing.T) {
	s := setupTestStore(t)

	err := s.Record(context.Background(), testEntry("missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record pkg/a.try.go")
}

func TestForget(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t, "run-1")

	run, err := s.BeginRun(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, testEntry(run)))
	require.NoError(t, s.Forget(ctx, "pkg/a.try.go"))

	_, ok, err := s.Lookup(ctx, "pkg/a.try.go")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEntry_Fresh(t *testing.T) {
	e := testEntry("run-1")

	assert.True(t, e.Fresh(e.SourceHash, e.ConfigHash, e.OutputHash))
	assert.False(t, e.Fresh(SourceHash([]byte("edited")), e.ConfigHash, e.OutputHash))
	assert.False(t, e.Fresh(e.SourceHash, "other", e.OutputHash))
	assert.False(t, e.Fresh(e.SourceHash, e.ConfigHash, OutputHash([]byte("hand edited"))))
}
