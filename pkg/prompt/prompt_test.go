package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
)

func TestReaderPrompterAcceptsValidInput(t *testing.T) {
	p := NewReaderPrompter(strings.NewReader("widget\n"), &strings.Builder{})

	got, err := p.Prompt(Field{Title: "Module name", Validate: ModuleName})
	require.NoError(t, err)
	assert.Equal(t, "widget", got)
}

func TestReaderPrompterSubstitutesDefault(t *testing.T) {
	var out strings.Builder
	p := NewReaderPrompter(strings.NewReader("\n"), &out)

	got, err := p.Prompt(Field{Title: "Author", Default: "Jane Doe", Validate: NonEmpty})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got)
	assert.Contains(t, out.String(), "[Jane Doe]")
}

func TestReaderPrompterRetriesUntilValid(t *testing.T) {
	var out strings.Builder
	p := NewReaderPrompter(strings.NewReader("Bad_Name\nstill bad\nwidget\n"), &out)

	got, err := p.Prompt(Field{Title: "Module name", Validate: ModuleName})
	require.NoError(t, err)
	assert.Equal(t, "widget", got)
	// the rejection message echoes the offending input
	assert.Contains(t, out.String(), "Bad_Name")
}

func TestReaderPrompterNoValidatorAcceptsEmpty(t *testing.T) {
	p := NewReaderPrompter(strings.NewReader("\n"), &strings.Builder{})

	got, err := p.Prompt(Field{Title: "Anything"})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestReaderPrompterEOF(t *testing.T) {
	p := NewReaderPrompter(strings.NewReader("bad\n"), &strings.Builder{})

	// first response is rejected and input runs out before a valid one arrives
	_, err := p.Prompt(Field{Title: "Module name", Validate: ModuleName})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrPromptRead))
}

func TestReaderPrompterDefaultIsValidated(t *testing.T) {
	var out strings.Builder
	p := NewReaderPrompter(strings.NewReader("\nWidget\n"), &out)

	// empty response takes the default, which the validator then rejects
	got, err := p.Prompt(Field{Title: "Class name", Default: "widget", Validate: ClassName})
	require.NoError(t, err)
	assert.Equal(t, "Widget", got)
	assert.Contains(t, out.String(), "widget")
}
