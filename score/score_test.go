package score

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndTopRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	when := time.Date(2020, 3, 7, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{Player: "Anne", Outcome: "dead", Cause: "shark", Score: 15, Turns: 900, PirateLord: "Okeke the Black", FinishedAt: when},
		{Player: "Teach", Outcome: "victory", Score: 120, Turns: 4200, PirateLord: "Okeke the Black", FinishedAt: when.Add(time.Hour)},
		{Player: "Mary", Outcome: "quit", Score: 5, Turns: 60, PirateLord: "Okeke the Black", FinishedAt: when.Add(2 * time.Hour)},
	}
	for _, r := range runs {
		require.NoError(t, s.RecordRun(ctx, r))
	}

	top, err := s.TopRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "Teach", top[0].Player)
	require.Equal(t, 120, top[0].Score)
	require.Equal(t, "Anne", top[1].Player)
	require.Equal(t, "shark", top[1].Cause)
}

func TestTopRunsEmpty(t *testing.T) {
	s := openTestStore(t)
	top, err := s.TopRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, top)
}

func TestReopenKeepsRuns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.RecordRun(ctx, Run{
		Player: "Ned", Outcome: "dead", Cause: "venom", Score: 30,
		Turns: 700, PirateLord: "Delilah Rumbelly", FinishedAt: time.Now().UTC(),
	}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	top, err := s2.TopRuns(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, "Ned", top[0].Player)
}
