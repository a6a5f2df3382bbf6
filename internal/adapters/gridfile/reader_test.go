package gridfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = `3 3
R 0 0
0 0 A
0 B 0
`

func TestParse(t *testing.T) {
	g, err := ParseString(scenario)
	require.NoError(t, err)

	assert.Equal(t, 3, g.DeclaredRows)
	assert.Equal(t, 3, g.DeclaredCols)
	assert.Equal(t, [][]string{
		{"R", "0", "0"},
		{"0", "0", "A"},
		{"0", "B", "0"},
	}, g.Cells)
	assert.Empty(t, g.DimensionWarnings())
}

func TestParseDimensionMismatchIsNotFatal(t *testing.T) {
	g, err := ParseString("4 2\nR 0 0\n0 A 0\n")
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Len(t, g.DimensionWarnings(), 2)
}

func TestParseSkipsBlankLines(t *testing.T) {
	g, err := ParseString("\n2 2\n\nR A\n  \n0 B\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty input", "", ErrInvalidHeader},
		{"one dimension", "3\nR A\n", ErrInvalidHeader},
		{"non numeric", "3 x\nR A\n", ErrInvalidHeader},
		{"negative", "-1 2\nR A\n", ErrInvalidHeader},
		{"no rows", "2 2\n", ErrEmptyGrid},
		{"short row", "2 2\nR A\n0\n", ErrRaggedGrid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matriz.txt")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o600))

	g, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
