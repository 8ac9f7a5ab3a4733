package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "good.txt", []byte("CREATE USER a\nEXIT\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "bad.txt", []byte("# header\nGET USERS now\nCREATE USER a\nPING a\n"), 0644))
	out := &bytes.Buffer{}

	problems := checkFiles(fs, out, []string{"good.txt", "bad.txt", "missing.txt"})

	assert.Equal(t, 3, problems)
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "bad.txt:2:10: Unexpected input after command", string(lines[0]))
	assert.Contains(t, string(lines[1]), "bad.txt:4:")
	assert.Contains(t, string(lines[2]), "missing.txt: cannot open file missing.txt")
}

func TestCheckFiles_Clean(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "good.txt", []byte("GET GROUPS\n"), 0644))
	out := &bytes.Buffer{}

	assert.Equal(t, 0, checkFiles(fs, out, []string{"good.txt"}))
	assert.Empty(t, out.String())
}
