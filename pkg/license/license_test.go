package license

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		key, err := Generate()
		require.NoError(t, err)
		assert.Regexp(t, Pattern, key)
	}
}

func TestGenerateYearPrefix(t *testing.T) {
	key, err := Generate()
	require.NoError(t, err)

	year := fmt.Sprintf("%d-", time.Now().Year())
	assert.True(t, strings.HasPrefix(key, year), "expected key %q to start with %q", key, year)
}

func TestGenerateCharset(t *testing.T) {
	for i := 0; i < 100; i++ {
		key, err := Generate()
		require.NoError(t, err)

		random := strings.SplitN(key, "-", 2)[1]
		for _, c := range random {
			assert.Contains(t, charset, string(c))
		}
	}
}

func TestGenerateVaries(t *testing.T) {
	// 4 characters over a 36-symbol alphabet; 50 draws all landing on the
	// same key would mean the generator is broken.
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		key, err := Generate()
		require.NoError(t, err)
		seen[key] = true
	}
	assert.Greater(t, len(seen), 1)
}
