package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

func TestAnalysisStorePutGet(t *testing.T) {
	store := NewAnalysisStore()

	require.NoError(t, store.Put(context.Background(), "abc123", "текст предписания"))

	text, err := store.Get(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "текст предписания", text)

	// The id stays valid for repeated generation.
	text, err = store.Get(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "текст предписания", text)
}

func TestAnalysisStoreUnknownID(t *testing.T) {
	store := NewAnalysisStore()

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
}
