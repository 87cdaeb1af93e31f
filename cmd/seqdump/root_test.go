package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/performancecopilot/seqbuffer"
	"github.com/performancecopilot/seqbuffer/layout"
)

func writeRecords(t *testing.T) string {
	t.Helper()

	b := seqbuffer.MustNewSequentialBuffer(8, seqbuffer.WithAutoGrow(true))
	b.MustWriteString("HDR!")

	l := layout.MustParse("u16le,str:4,i8")
	for i, name := range []string{"ab", "cd", "efgh"} {
		require.NoError(t, l.Encode(b, []interface{}{i + 1, name, -i}))
	}

	loc := filepath.Join(t.TempDir(), "records.bin")
	require.NoError(t, os.WriteFile(loc, b.Finalize(), 0644))
	return loc
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func TestDump(t *testing.T) {
	loc := writeRecords(t)

	out, err := execute(loc, "--layout", "u16le,str:4,i8", "--offset", "4")
	require.NoError(t, err)
	assert.Equal(t, "[4] 1 \"ab\" 0\n[11] 2 \"cd\" -1\n[18] 3 \"efgh\" -2\n", out)
}

func TestDumpCount(t *testing.T) {
	loc := writeRecords(t)

	out, err := execute(loc, "-l", "u16le,str:4,i8", "--offset", "4", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "[4] 1 \"ab\" 0\n", out)
}

func TestDumpOrder(t *testing.T) {
	loc := writeRecords(t)

	out, err := execute(loc, "-l", "u16,skip:5", "--offset", "4", "--order", "le", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "[4] 1\n[11] 2\n", out)

	out, err = execute(loc, "-l", "u16,skip:5", "--offset", "4", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "[4] 256\n", out)
}

func TestDumpErrors(t *testing.T) {
	loc := writeRecords(t)

	cases := [][]string{
		{loc},
		{loc, "-l", "u24"},
		{loc, "-l", "u8", "--order", "middle"},
		{loc, "-l", "str:0"},
		{loc, "-l", "u8", "-n", "-1"},
		{loc, "-l", "u8", "--offset", "1000"},
		{filepath.Join(t.TempDir(), "missing"), "-l", "u8"},
		{"-l", "u8"},
	}

	for _, args := range cases {
		_, err := execute(args...)
		assert.Error(t, err, "args %v", args)
	}
}
