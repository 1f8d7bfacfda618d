package kernel_test

import (
	"fmt"
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingCode(t *testing.T) {
	t.Run("generates 8 uppercase alphanumeric characters", func(t *testing.T) {
		code := kernel.NewTrackingCode()

		require.NoError(t, code.Validate())
		assert.Len(t, code.String(), 8)
		for _, r := range code.String() {
			valid := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z')
			assert.True(t, valid, "unexpected character %q in code %s", r, code)
		}
	})

	t.Run("codes differ between generations", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			code := kernel.NewTrackingCode()
			assert.False(t, seen[code.String()], "duplicate code %s", code)
			seen[code.String()] = true
		}
	})
}

func TestTrackingCodeFromString(t *testing.T) {
	t.Run("accepts a valid code", func(t *testing.T) {
		code, err := kernel.TrackingCodeFromString("ABC12345")

		require.NoError(t, err)
		assert.Equal(t, "ABC12345", code.String())
	})

	t.Run("upper-cases lowercase input", func(t *testing.T) {
		code, err := kernel.TrackingCodeFromString("abc12345")

		require.NoError(t, err)
		assert.Equal(t, "ABC12345", code.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		code, err := kernel.TrackingCodeFromString("  ABC12345 ")

		require.NoError(t, err)
		assert.Equal(t, "ABC12345", code.String())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := kernel.TrackingCodeFromString("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		for _, input := range []string{"ABC", "ABC123456", "A"} {
			t.Run(fmt.Sprintf("length %d", len(input)), func(t *testing.T) {
				_, err := kernel.TrackingCodeFromString(input)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("rejects non-alphanumeric characters", func(t *testing.T) {
		_, err := kernel.TrackingCodeFromString("ABC-1234")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTrackingCode_IsEqual(t *testing.T) {
	a, err := kernel.TrackingCodeFromString("ABC12345")
	require.NoError(t, err)
	b, err := kernel.TrackingCodeFromString("abc12345")
	require.NoError(t, err)
	c := kernel.NewTrackingCode()

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestTrackingCode_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var code kernel.TrackingCode

		err := code.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrTrackingCodeIsNotConstructed, err)
	})
}
