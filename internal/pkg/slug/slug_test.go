package slug

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	s := Make("Annual Science Fair 2026")

	assert.True(t, strings.HasPrefix(s, "annual-science-fair-2026-"), s)

	// Suffix is a unix-millisecond timestamp
	suffix := s[strings.LastIndex(s, "-")+1:]
	_, err := strconv.ParseInt(suffix, 10, 64)
	require.NoError(t, err)
}

func TestMakeStripsPunctuation(t *testing.T) {
	s := Make("Hello, World! (Again)")
	assert.True(t, strings.HasPrefix(s, "hello-world-again-"), s)
}

func TestMakeEmptyTitle(t *testing.T) {
	s := Make("   ")
	assert.True(t, strings.HasPrefix(s, "untitled-"), s)
}

func TestMakeKeepsNonLatinLetters(t *testing.T) {
	s := Make("ค่ายวิทยาศาสตร์")
	assert.True(t, strings.HasPrefix(s, "ค"), s)
	assert.NotContains(t, s, " ")
}

func TestMakeCapsLongTitles(t *testing.T) {
	s := Make(strings.Repeat("a", 300))
	// 100 chars of title plus hyphen and timestamp
	idx := strings.LastIndex(s, "-")
	assert.LessOrEqual(t, idx, 100)
}

func TestMakeCapsLongThaiTitleOnRuneBoundary(t *testing.T) {
	// Thai runes are 3 bytes each, so the byte cap falls mid-rune
	s := Make(strings.Repeat("ก", 120))

	assert.True(t, utf8.ValidString(s), s)
	title := s[:strings.LastIndex(s, "-")]
	assert.True(t, utf8.ValidString(title), title)
	assert.LessOrEqual(t, len(title), 100)
	assert.Equal(t, 0, len(title)%3)
}
