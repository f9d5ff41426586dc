package nbtsync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBag() Bag {
	return Bag{
		"Byte":   uint8(1),
		"Short":  int16(-2),
		"Int":    int32(3),
		"Long":   int64(1 << 40),
		"Float":  float32(1.5),
		"Double": 2.5,
		"String": "minecraft:chest",
		"Compound": map[string]any{
			"x": int32(4),
		},
		"List": []any{"a", "b"},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	encodings := map[string]Encoding{
		"big":     BigEndian,
		"little":  LittleEndian,
		"network": NetworkLittleEndian,
	}

	for name, enc := range encodings {
		t.Run(name, func(t *testing.T) {
			data, err := Marshal(sampleBag(), enc)
			require.NoError(t, err)

			got, err := Unmarshal(data, enc)
			require.NoError(t, err)
			assert.Equal(t, sampleBag(), got)
		})
	}
}

func TestCodec_NilBag(t *testing.T) {
	data, err := Marshal(nil, BigEndian)
	require.NoError(t, err)

	got, err := Unmarshal(data, BigEndian)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCodec_DecodeGarbage(t *testing.T) {
	_, err := Unmarshal([]byte{0xff, 0x00}, BigEndian)
	assert.Error(t, err)
}

func TestFile_GzipAuto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "level.dat")

	require.NoError(t, WriteFile(path, sampleBag(), FileOptions{}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, gzipMagic, raw[:2], "java files are gzipped by default")

	got, err := ReadFile(path, FileOptions{})
	require.NoError(t, err)
	assert.Equal(t, sampleBag(), got)
}

func TestFile_Uncompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.nbt")
	opts := FileOptions{Encoding: LittleEndian}

	require.NoError(t, WriteFile(path, sampleBag(), opts))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, gzipMagic, raw[:2])

	got, err := ReadFile(path, opts)
	require.NoError(t, err)
	assert.Equal(t, sampleBag(), got)

	got, err = ReadFile(path, FileOptions{Encoding: LittleEndian, Compress: CompressNone})
	require.NoError(t, err)
	assert.Equal(t, sampleBag(), got)
}

func TestFile_ForcedGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packet.bin")
	opts := FileOptions{Encoding: NetworkLittleEndian, Compress: CompressGzip}

	require.NoError(t, WriteFile(path, sampleBag(), opts))

	got, err := ReadFile(path, opts)
	require.NoError(t, err)
	assert.Equal(t, sampleBag(), got)

	_, err = ReadFile(path, FileOptions{Encoding: NetworkLittleEndian, Compress: CompressNone})
	assert.Error(t, err)
}

func TestFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.dat"), FileOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseEncoding(t *testing.T) {
	for in, want := range map[string]Encoding{
		"big":     BigEndian,
		"Java":    BigEndian,
		"little":  LittleEndian,
		"bedrock": LittleEndian,
		"network": NetworkLittleEndian,
	} {
		got, err := ParseEncoding(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseEncoding("middle")
	assert.Error(t, err)
}

func TestParseCompression(t *testing.T) {
	for in, want := range map[string]Compression{
		"":     CompressAuto,
		"auto": CompressAuto,
		"on":   CompressGzip,
		"gzip": CompressGzip,
		"off":  CompressNone,
	} {
		got, err := ParseCompression(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCompression("zstd")
	assert.Error(t, err)
	assert.Equal(t, "gzip", CompressGzip.String())
}
