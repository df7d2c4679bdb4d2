//go:build integration

package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	// The tokenizer vocabulary is downloaded on first use.
	tc, err := gemini.NewTokenCounter(gemini.Model)
	require.NoError(t, err)

	var _ resumedb.TokenCounter = tc

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "Senior Go engineer, 8 years.")

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("empty string returns zero", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("longer text returns more tokens", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		shortCount, err := tc.CountTokens(ctx, "Jane")
		require.NoError(t, err)

		longCount, err := tc.CountTokens(ctx, "Jane Doe led the payments platform team and migrated twelve services to Go.")
		require.NoError(t, err)

		assert.Greater(t, longCount, shortCount)
	})
}
