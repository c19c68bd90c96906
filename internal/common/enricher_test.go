package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMLEnricher_Enrich(t *testing.T) {
	enricher := NewHTMLEnricher()
	ctx := context.Background()

	t.Run("plain text is unchanged", func(t *testing.T) {
		out, err := enricher.Enrich(ctx, "Find the lost sword")
		require.NoError(t, err)
		require.Equal(t, "Find the lost sword", out)
	})

	t.Run("content link", func(t *testing.T) {
		out, err := enricher.Enrich(ctx, "Talk to @Actor[abc]{Mira}")
		require.NoError(t, err)
		require.Contains(t, out, "Actor.abc")
		require.Contains(t, out, ">Mira</a>")
	})

	t.Run("uuid link without label", func(t *testing.T) {
		out, err := enricher.Enrich(ctx, "@UUID[JournalEntry.xyz]")
		require.NoError(t, err)
		require.Contains(t, out, ">JournalEntry.xyz</a>")
	})

	t.Run("script is removed", func(t *testing.T) {
		out, err := enricher.Enrich(ctx, "<p>hi</p><script>alert(1)</script>")
		require.NoError(t, err)
		require.NotContains(t, out, "<script")
		require.Contains(t, out, "<p>hi</p>")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := enricher.Enrich(cancelled, "text")
		require.Error(t, err)
	})
}
