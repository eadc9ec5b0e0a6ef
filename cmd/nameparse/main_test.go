package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("prints a table for arguments", func(t *testing.T) {
		t.Parallel()
		var out, errOut bytes.Buffer
		failed, err := run(options{}, []string{"Dr. John R. Doe, Jr."}, nil, &out, &errOut)
		require.NoError(t, err)
		assert.Equal(t, 0, failed)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, []string{"INPUT", "SALUTATION", "FIRST", "MIDDLE", "LAST", "SUFFIX"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"Dr.", "John", "R.", "Doe,", "Jr.", "Dr.", "John", "R.", "Doe", "Jr"}, strings.Fields(lines[1]))
	})

	t.Run("reads names from stdin", func(t *testing.T) {
		t.Parallel()
		var out, errOut bytes.Buffer
		in := strings.NewReader("Jane Doe\n\n   \nDoe, John\n")
		failed, err := run(options{JSON: true}, nil, in, &out, &errOut)
		require.NoError(t, err)
		assert.Equal(t, 0, failed)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], `"first_name":"Jane"`)
		assert.Contains(t, lines[0], `"sort_name":"Doe, Jane"`)
		assert.Contains(t, lines[1], `"first_name":"John"`)
	})

	t.Run("reports names that can't be parsed", func(t *testing.T) {
		t.Parallel()
		var out, errOut bytes.Buffer
		failed, err := run(options{}, []string{"(nobody)", "Jane Doe"}, nil, &out, &errOut)
		require.NoError(t, err)
		assert.Equal(t, 1, failed)
		assert.Equal(t, "(nobody): name is empty\n", errOut.String())
		assert.Contains(t, out.String(), "Jane")
	})

	t.Run("prints sort names in collation order", func(t *testing.T) {
		t.Parallel()
		var out, errOut bytes.Buffer
		failed, err := run(options{Sort: true}, []string{"Stephen King", "Ludwig van Beethoven", "Martin Luther King Jr."}, nil, &out, &errOut)
		require.NoError(t, err)
		assert.Equal(t, 0, failed)
		assert.Equal(t, "Beethoven, Ludwig van\nKing, Martin Luther, Jr\nKing, Stephen\n", out.String())
	})

	t.Run("classifies words", func(t *testing.T) {
		t.Parallel()
		var out, errOut bytes.Buffer
		_, err := run(options{Classify: true, JSON: true}, []string{"von", "PhD"}, nil, &out, &errOut)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], `"compound_last_name":true`)
		assert.Contains(t, lines[1], `"suffix":"PhD"`)
	})
}
