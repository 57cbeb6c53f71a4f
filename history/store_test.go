package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adversight/screening/report"
)

func resultFor(entity string) report.ScreeningResult {
	return report.ScreeningResult{
		Entity:          entity,
		SearchMode:      report.ModeBasic,
		RiskLevel:       report.RiskClear,
		Findings:        []report.Finding{},
		Recommendations: []string{},
	}
}

func TestStore_AppendEvictsBeyondCapacity(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 15; i++ {
		s.Append(resultFor(fmt.Sprintf("entity-%d", i)))
	}

	require.Equal(t, 10, s.Len())

	newest, err := s.Select(0)
	require.NoError(t, err)
	assert.Equal(t, "entity-15", newest.Entity)

	oldest, err := s.Select(9)
	require.NoError(t, err)
	assert.Equal(t, "entity-6", oldest.Entity)
}

func TestStore_MostRecentFirst(t *testing.T) {
	s := NewStore()
	s.Append(resultFor("first"))
	s.Append(resultFor("second"))
	s.Append(resultFor("third"))

	recent := s.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "third", recent[0].Entity)
	assert.Equal(t, "second", recent[1].Entity)
	assert.Equal(t, "first", recent[2].Entity)
}

func TestStore_RecentBounds(t *testing.T) {
	s := NewStore()
	s.Append(resultFor("only"))

	assert.Len(t, s.Recent(5), 1)
	assert.Empty(t, s.Recent(0))
	assert.Empty(t, s.Recent(-1))
	assert.Empty(t, NewStore().Recent(3))
}

func TestStore_NoDeduplication(t *testing.T) {
	s := NewStore()
	s.Append(resultFor("Acme Corp"))
	s.Append(resultFor("Acme Corp"))

	assert.Equal(t, 2, s.Len())
}

func TestStore_SelectOutOfRange(t *testing.T) {
	s := NewStore()
	s.Append(resultFor("only"))

	_, err := s.Select(1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Select(-1)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.Select(0)
	require.NoError(t, err)
	assert.Equal(t, "only", got.Entity)
}

func TestStore_RecentReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append(resultFor("a"))
	s.Append(resultFor("b"))

	recent := s.Recent(2)
	recent[0] = resultFor("mutated")

	kept, err := s.Select(0)
	require.NoError(t, err)
	assert.Equal(t, "b", kept.Entity)
}
