package substitute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyWholeWordOnly(t *testing.T) {
	r, err := NewReplacer(map[string]string{
		"AUTHOR_NAME": "Jane Doe",
		"YEAR":        "2024",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"standalone token",
			"Copyright YEAR AUTHOR_NAME",
			"Copyright 2024 Jane Doe",
		},
		{
			"token inside a longer identifier is untouched",
			"YEARLY report by AUTHOR_NAMES",
			"YEARLY report by AUTHOR_NAMES",
		},
		{
			"token adjacent to punctuation",
			"(c) YEAR, AUTHOR_NAME.",
			"(c) 2024, Jane Doe.",
		},
		{
			"token with leading letters is untouched",
			"LAST_YEAR stays",
			"LAST_YEAR stays",
		},
		{
			"no tokens",
			"nothing to do here",
			"nothing to do here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Apply(tt.input))
		})
	}
}

func TestApplySinglePass(t *testing.T) {
	// The value of one token contains another token; a naive sequential
	// replace would substitute it again.
	r, err := NewReplacer(map[string]string{
		"FIRST":  "has SECOND inside",
		"SECOND": "oops",
	})
	require.NoError(t, err)

	assert.Equal(t, "has SECOND inside and oops", r.Apply("FIRST and SECOND"))
}

func TestApplyPrefixTokens(t *testing.T) {
	// One token is a prefix of another; both must resolve correctly.
	r, err := NewReplacer(map[string]string{
		"MODULE":      "widget",
		"MODULE_NAME": "gadget",
	})
	require.NoError(t, err)

	assert.Equal(t, "widget gadget", r.Apply("MODULE MODULE_NAME"))
}

func TestApplyCaseSensitive(t *testing.T) {
	r, err := NewReplacer(map[string]string{
		"pythontemplate": "widget",
		"PythonTemplate": "Widget",
	})
	require.NoError(t, err)

	assert.Equal(t, "class Widget in widget.py", r.Apply("class PythonTemplate in pythontemplate.py"))
}

func TestNewReplacerRejectsBadMappings(t *testing.T) {
	_, err := NewReplacer(nil)
	assert.Error(t, err)

	_, err = NewReplacer(map[string]string{"": "x"})
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	r, err := NewReplacer(map[string]string{"AB": "1", "ABCD": "2", "XY": "3"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ABCD", "AB", "XY"}, r.Tokens())
}
