package pins_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecheck/cli/internal/pins"
)

func TestPinUnpin(t *testing.T) {
	s := pins.NewStore(pins.NewMemKV())
	analysisID := uuid.NewString()

	assert.False(t, s.IsPinned(analysisID, "c1"))

	require.NoError(t, s.Pin(analysisID, "c1"))
	assert.True(t, s.IsPinned(analysisID, "c1"))
	assert.False(t, s.IsPinned(analysisID, "c2"))

	require.NoError(t, s.Unpin(analysisID, "c1"))
	assert.False(t, s.IsPinned(analysisID, "c1"))
}

func TestPin_Idempotent(t *testing.T) {
	s := pins.NewStore(pins.NewMemKV())
	analysisID := uuid.NewString()

	require.NoError(t, s.Pin(analysisID, "c1"))
	require.NoError(t, s.Pin(analysisID, "c1"))

	assert.Len(t, s.List(), 1)
}

func TestUnpin_AbsentIsNoop(t *testing.T) {
	s := pins.NewStore(pins.NewMemKV())

	require.NoError(t, s.Unpin(uuid.NewString(), "missing"))
	assert.Empty(t, s.List())
}

func TestList_RoundTrip(t *testing.T) {
	s := pins.NewStore(pins.NewMemKV())
	a1 := uuid.NewString()
	a2 := uuid.NewString()

	require.NoError(t, s.Pin(a1, "c1"))
	require.NoError(t, s.Pin(a1, "c2"))
	require.NoError(t, s.Pin(a2, "c1"))

	got := s.List()
	assert.ElementsMatch(t, []pins.PinnedClause{
		{AnalysisID: a1, ClauseID: "c1"},
		{AnalysisID: a1, ClauseID: "c2"},
		{AnalysisID: a2, ClauseID: "c1"},
	}, got)
}

func TestList_CorruptPayloadReadsEmpty(t *testing.T) {
	kv := pins.NewMemKV()
	require.NoError(t, kv.Set("clause_pinned_clauses", []byte("{not json")))

	s := pins.NewStore(kv)
	assert.Empty(t, s.List())

	// The store recovers: writes replace the corrupt record.
	require.NoError(t, s.Pin(uuid.NewString(), "c1"))
	assert.Len(t, s.List(), 1)
}

func TestClear(t *testing.T) {
	s := pins.NewStore(pins.NewMemKV())
	require.NoError(t, s.Pin(uuid.NewString(), "c1"))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.List())
}

func TestSQLiteKV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.db")

	kv, err := pins.OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", []byte("v1")))
	got, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), got)

	// Upsert replaces.
	require.NoError(t, kv.Set("k", []byte("v2")))
	got, _, err = kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.db")
	analysisID := uuid.NewString()

	kv, err := pins.OpenSQLite(path)
	require.NoError(t, err)
	s := pins.NewStore(kv)
	require.NoError(t, s.Pin(analysisID, "c9"))
	require.NoError(t, kv.Close())

	kv2, err := pins.OpenSQLite(path)
	require.NoError(t, err)
	defer kv2.Close()

	assert.True(t, pins.NewStore(kv2).IsPinned(analysisID, "c9"))
}
