package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Target
	}{
		{"CONTROL[title]", Target{Group: "CONTROL", Name: "title"}},
		{"ATOMIC_SPECIES", Target{Group: "ATOMIC_SPECIES"}},
		{"SYSTEM[Hubbard_U%1]", Target{Group: "SYSTEM", Name: "Hubbard_U%1"}},
		{"lr_input[a%b%c]", Target{Group: "lr_input", Name: "a%b%c"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTarget(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.input, got.String())
			assert.Equal(t, tt.expected.Name == "", got.IsWhole())
		})
	}
}

func TestParseTarget_Invalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "lr_input[max_seconds", "A[]", "A[b]c", "A B", "A[b%]", "[x]"} {
		_, err := ParseTarget(s)
		assert.Error(t, err, s)
	}
}
