package gemini_test

import (
	"testing"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenCounter_RejectsUnknownModels(t *testing.T) {
	t.Parallel()

	t.Run("empty model", func(t *testing.T) {
		t.Parallel()

		tc, err := gemini.NewTokenCounter("")

		require.Error(t, err)
		assert.Nil(t, tc)
		assert.Equal(t, resumedb.EINVALID, resumedb.ErrorCode(err))
	})

	t.Run("model without a local tokenizer", func(t *testing.T) {
		t.Parallel()

		tc, err := gemini.NewTokenCounter("resumedb-no-such-model")

		require.Error(t, err)
		assert.Nil(t, tc)
		assert.Equal(t, resumedb.EINVALID, resumedb.ErrorCode(err))
		assert.Contains(t, resumedb.ErrorMessage(err), "resumedb-no-such-model")
	})
}
