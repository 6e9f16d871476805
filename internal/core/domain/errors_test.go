package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidChunkConfig", ErrInvalidChunkConfig},
		{"ErrStoreCreation", ErrStoreCreation},
		{"ErrDocsDirNotFound", ErrDocsDirNotFound},
		{"ErrNoDocuments", ErrNoDocuments},
		{"ErrInsertFailed", ErrInsertFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrStoreCreation, ErrInsertFailed))
	assert.False(t, errors.Is(ErrNoDocuments, ErrDocsDirNotFound))
	assert.False(t, errors.Is(ErrInvalidChunkConfig, ErrInvalidInput))
}

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("create store %q: %w", "rhoai-docs", ErrStoreCreation)

	assert.True(t, errors.Is(err, ErrStoreCreation))
	assert.Contains(t, err.Error(), "vector store creation failed")
}
