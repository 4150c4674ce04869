package version

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "1.2.3", "1.2.3", 0},
		{"first token decides", "2.1", "1.2", 1},
		{"numeric not lexicographic", "1.10", "1.2", 1},
		{"letters sort after numbers", "1.a10", "1.10", 1},
		{"letters compare as strings", "1.b1", "1.a1", 1},
		{"digits after letters are not numeric", "1.a2", "1.a10", 1},
		{"longer wins on common prefix", "1.0.0", "1.0", 1},
		{"single tokens", "10", "2", 1},
		{"same number different spelling", "1.01.5", "1.1.4", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			if tt.want != 0 {
				// The order must be antisymmetric.
				assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
			}
		})
	}
}

func TestCompareSortsSampleList(t *testing.T) {
	versions := []string{
		"0.0", "1.1", "1.10", "10", "2.0", "1.10a",
		"1.a10", "1.b97", "1.10b", "1.2", "1.1.0", "1.1.1",
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) < 0
	})

	assert.Equal(t, []string{
		"0.0", "1.1", "1.1.0", "1.1.1", "1.2", "1.10",
		"1.10a", "1.10b", "1.a10", "1.b97", "2.0", "10",
	}, versions)
}

func TestSplitLeadingDigits(t *testing.T) {
	tests := []struct {
		in     string
		digits string
		rest   string
	}{
		{"12abc34", "12", "abc34"},
		{"10", "10", ""},
		{"a129", "", "a129"},
		{"", "", ""},
	}

	for _, tt := range tests {
		digits, rest := splitLeadingDigits(tt.in)
		assert.Equal(t, tt.digits, digits, "input %q", tt.in)
		assert.Equal(t, tt.rest, rest, "input %q", tt.in)
	}
}
