package scraper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_RegistersEverySource(t *testing.T) {
	adapters := All()
	require.Len(t, adapters, 6)

	seen := make(map[string]bool)
	for _, a := range adapters {
		assert.False(t, seen[a.Source()], "duplicate source %s", a.Source())
		seen[a.Source()] = true

		batch, err := a.FetchProperties(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, batch)
		for _, p := range batch {
			assert.Equal(t, a.Source(), p.Source)
			assert.NotEmpty(t, p.Title)
			assert.NotEmpty(t, p.Borough)
			assert.NotEmpty(t, p.SourceURL)
			assert.Positive(t, p.RentPrice)
		}
	}
}

func TestStaticAdapter_FetchReturnsACopy(t *testing.T) {
	adapter := NewZoopla()

	first, err := adapter.FetchProperties(context.Background())
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := adapter.FetchProperties(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Title)
}
