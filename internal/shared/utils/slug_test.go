package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"Building a REST API in Go", "building-a-rest-api-in-go"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"multiple...punctuation!!!marks", "multiple-punctuation-marks"},
		{"UPPER CASE 2024", "upper-case-2024"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.title), "title %q", tc.title)
	}
}

func TestGenerateSlugCharset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)

	titles := []string{
		"Hello, World!",
		"Go 1.24: What's New?",
		"C++ vs Go (2024 edition)",
		"a  b\tc\nd",
	}

	for _, title := range titles {
		slug := GenerateSlug(title)
		assert.True(t, valid.MatchString(slug), "slug %q contains invalid characters", slug)
		assert.False(t, len(slug) > 0 && (slug[0] == '-' || slug[len(slug)-1] == '-'),
			"slug %q has leading/trailing hyphen", slug)
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	title := "Stability, Guaranteed!"
	first := GenerateSlug(title)
	assert.Equal(t, first, GenerateSlug(title))
	// slugging a slug is a no-op
	assert.Equal(t, first, GenerateSlug(first))
}
