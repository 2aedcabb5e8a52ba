package phone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentMultipleNumbers(t *testing.T) {
	assert.Equal(t, []string{"+1234", "+5678"}, Segment("+1234,+5678"))
	assert.Equal(t, []string{"+90 532 111 22 33", "0212 444 55 66"},
		Segment("+90 532 111 22 33 / 0212 444 55 66"))
	assert.Equal(t, []string{"+4912345", "+4967890"}, Segment("+4912345\n+4967890"))
	assert.Equal(t, []string{"12345", "67890"}, Segment("12345 & 67890"))
	assert.Equal(t, []string{"12345", "67890"}, Segment("12345|67890"))
}

func TestSegmentDropsNoise(t *testing.T) {
	// Fragments of length <= 3 are never returned.
	for _, raw := range []string{"+1234, ab, +5678", "12 / 34567", ",,,", "tel"} {
		for _, piece := range Segment(raw) {
			assert.Greater(t, len(piece), 3, "raw %q produced noise piece %q", raw, piece)
		}
	}
}

func TestSegmentPreservesOrder(t *testing.T) {
	raw := "+111111, +222222 / +333333"
	got := Segment(raw)

	assert.Equal(t, []string{"+111111", "+222222", "+333333"}, got)

	// Concatenating the pieces reproduces an in-order subsequence of the input.
	idx := 0
	for _, piece := range got {
		at := strings.Index(raw[idx:], piece)
		assert.GreaterOrEqual(t, at, 0)
		idx += at + len(piece)
	}
}

func TestSegmentEmpty(t *testing.T) {
	assert.Empty(t, Segment(""))
	assert.Empty(t, Segment("   "))
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"+90 (532) 111-22-33": "+905321112233",
		"0090 532 111 22 33":  "+905321112233",
		"905321112233":        "+905321112233",
		"00 49 171 1234567":   "+491711234567",
		"+1 (555) 010-9999":   "+15550109999",
		"":                    "+",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestNormalizeAlwaysPlusThenDigits(t *testing.T) {
	inputs := []string{"+1234", "001234", "1234", "tel: 555-1234", "++49 30 1", "a+b"}
	for _, in := range inputs {
		out := Normalize(in)
		assert.True(t, strings.HasPrefix(out, "+"), "input %q gave %q", in, out)
		for _, r := range out[1:] {
			assert.True(t, r >= '0' && r <= '9', "input %q gave non-digit in %q", in, out)
		}
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "905321112233", Digits("0090 532 111 22 33"))
	assert.Equal(t, "15550109999", Digits("+1 555 010 9999"))
}
