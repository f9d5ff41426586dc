package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/oriumgames/nbtsync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBag() nbtsync.Bag {
	b := nbtsync.NewBag()
	b.PutInt32("Count", 5)
	b.PutString("id", "minecraft:chest")
	b.PutCompound("Pos", nbtsync.Bag{"x": int32(1)})
	return b
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render(&out, testBag(), "json"))
	assert.JSONEq(t, `{"Count":5,"Pos":{"x":1},"id":"minecraft:chest"}`, out.String())

	out.Reset()
	require.NoError(t, render(&out, testBag(), "yaml"))
	assert.YAMLEq(t, "Count: 5\nPos:\n  x: 1\nid: minecraft:chest\n", out.String())

	assert.Error(t, render(&out, testBag(), "toml"))
}

func TestDumpCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.dat")
	require.NoError(t, nbtsync.WriteFile(path, testBag(), nbtsync.FileOptions{}))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"dump", path})
	require.NoError(t, root.Execute())
	assert.JSONEq(t, `{"Count":5,"Pos":{"x":1},"id":"minecraft:chest"}`, out.String())
}

func TestConvertCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "level.dat")
	out := filepath.Join(dir, "level.nbt")
	require.NoError(t, nbtsync.WriteFile(in, testBag(), nbtsync.FileOptions{}))

	root := newRootCmd()
	root.SetArgs([]string{"convert", in, out, "--out-encoding", "little", "--out-gzip", "off"})
	require.NoError(t, root.Execute())

	got, err := nbtsync.ReadFile(out, nbtsync.FileOptions{Encoding: nbtsync.LittleEndian, Compress: nbtsync.CompressNone})
	require.NoError(t, err)
	assert.Equal(t, testBag(), got)
}

func TestConvertCmd_BadEncoding(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"convert", "a", "b", "--in-encoding", "middle"})
	assert.Error(t, root.Execute())
}
