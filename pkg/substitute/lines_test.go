package substitute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
)

func TestFilterLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		remove   []string
		expected string
	}{
		{
			"removes line and strips trailing blanks",
			"A\nB\n\n\n",
			[]string{"B"},
			"A\n",
		},
		{
			"keeps unrelated lines",
			"Pipfile.lock\n*.pyc\n__pycache__/\n",
			[]string{"Pipfile.lock"},
			"*.pyc\n__pycache__/\n",
		},
		{
			"no matching line",
			"A\nB\n",
			[]string{"C"},
			"A\nB\n",
		},
		{
			"interior blank lines survive",
			"A\n\nB\nX\n",
			[]string{"X"},
			"A\n\nB\n",
		},
		{
			"missing final terminator",
			"A\nB",
			[]string{"B"},
			"A\n",
		},
		{
			"windows line endings",
			"A\r\nB\r\n\r\n",
			[]string{"B"},
			"A\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterLines(tt.content, tt.remove)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFilterLinesEmptyResult(t *testing.T) {
	_, err := FilterLines("Pipfile.lock\n\n", []string{"Pipfile.lock"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrFileEmpty))
}
