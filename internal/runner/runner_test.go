package runner

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osgen/osgen/internal/profile"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRunUntilDeadline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	rows, err := Run(context.Background(), Config{
		OutputPath: path,
		Duration:   300 * time.Millisecond,
		Delay:      10 * time.Millisecond,
		Seed:       42,
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, rows, 1)

	records := readAll(t, path)
	require.Equal(t, profile.Header, records[0])
	require.Len(t, records, rows+1, "every appended row must be complete")

	for _, rec := range records[1:] {
		require.Len(t, rec, len(profile.Header))
		age, err := strconv.Atoi(rec[3])
		require.NoError(t, err)
		require.GreaterOrEqual(t, age, 18)
		require.LessOrEqual(t, age, 70)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(150 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	rows, err := Run(ctx, Config{
		OutputPath: path,
		Duration:   time.Hour,
		Delay:      10 * time.Millisecond,
		Seed:       7,
	})
	require.NoError(t, err, "cancellation is a clean stop, not an error")
	require.Less(t, time.Since(start), 5*time.Second)
	require.GreaterOrEqual(t, rows, 1)

	records := readAll(t, path)
	require.Len(t, records, rows+1, "no partial trailing line after cancel")
}

func TestRunAppendsAcrossInvocations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	first, err := Run(context.Background(), Config{
		OutputPath: path,
		Duration:   100 * time.Millisecond,
		Delay:      10 * time.Millisecond,
		Seed:       1,
	})
	require.NoError(t, err)

	second, err := Run(context.Background(), Config{
		OutputPath: path,
		Duration:   100 * time.Millisecond,
		Delay:      10 * time.Millisecond,
		Seed:       2,
	})
	require.NoError(t, err)

	records := readAll(t, path)
	require.Equal(t, profile.Header, records[0])
	require.Len(t, records, first+second+1, "second run continues without a second header")
}
