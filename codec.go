package nbtsync

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Encoding is a binary NBT variant.
type Encoding = nbt.Encoding

var (
	// BigEndian is the Java Edition encoding, used by level.dat and region files.
	BigEndian Encoding = nbt.BigEndian
	// LittleEndian is the Bedrock Edition disk encoding.
	LittleEndian Encoding = nbt.LittleEndian
	// NetworkLittleEndian is the Bedrock Edition network encoding, with varint
	// lengths.
	NetworkLittleEndian Encoding = nbt.NetworkLittleEndian
)

// ParseEncoding returns the encoding named by s: "big" (or "java"),
// "little" (or "bedrock") and "network".
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "bigendian", "java":
		return BigEndian, nil
	case "little", "littleendian", "bedrock":
		return LittleEndian, nil
	case "network", "networklittleendian":
		return NetworkLittleEndian, nil
	}
	return nil, fmt.Errorf("nbtsync: unknown encoding %q", s)
}

// Encode writes b to w as a root compound.
func Encode(w io.Writer, b Bag, enc Encoding) error {
	if b == nil {
		b = NewBag()
	}
	if err := nbt.NewEncoderWithEncoding(w, enc).Encode(map[string]any(b)); err != nil {
		return fmt.Errorf("nbtsync: encode: %w", err)
	}
	return nil
}

// Decode reads a root compound from r.
func Decode(r io.Reader, enc Encoding) (Bag, error) {
	m := make(map[string]any)
	if err := nbt.NewDecoderWithEncoding(r, enc).Decode(&m); err != nil {
		return nil, fmt.Errorf("nbtsync: decode: %w", err)
	}
	return Bag(m), nil
}

// Marshal returns the encoded form of b.
func Marshal(b Bag, enc Encoding) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, b, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data into a bag.
func Unmarshal(data []byte, enc Encoding) (Bag, error) {
	return Decode(bytes.NewReader(data), enc)
}

// Compression selects how NBT files are compressed.
type Compression int

const (
	// CompressAuto sniffs the gzip header when reading, and gzips Java
	// (BigEndian) files when writing.
	CompressAuto Compression = iota
	// CompressNone reads and writes raw NBT.
	CompressNone
	// CompressGzip reads and writes gzip compressed NBT.
	CompressGzip
)

// String returns the string representation of Compression.
func (c Compression) String() string {
	switch c {
	case CompressAuto:
		return "auto"
	case CompressNone:
		return "none"
	case CompressGzip:
		return "gzip"
	default:
		return "unknown"
	}
}

// ParseCompression returns the compression named by s: "auto", "off" (or
// "none") and "on" (or "gzip").
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CompressAuto, nil
	case "off", "none":
		return CompressNone, nil
	case "on", "gzip":
		return CompressGzip, nil
	}
	return CompressAuto, fmt.Errorf("nbtsync: unknown compression %q", s)
}

// FileOptions configures ReadFile and WriteFile.
type FileOptions struct {
	// Encoding defaults to BigEndian
	Encoding Encoding
	// Compress defaults to CompressAuto
	Compress Compression
}

func (o FileOptions) encoding() Encoding {
	if o.Encoding == nil {
		return BigEndian
	}
	return o.Encoding
}

var gzipMagic = []byte{0x1f, 0x8b}

// ReadFile decodes the NBT file at path.
func ReadFile(path string, opts FileOptions) (Bag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	compressed := opts.Compress == CompressGzip
	if opts.Compress == CompressAuto {
		head, _ := br.Peek(len(gzipMagic))
		compressed = bytes.Equal(head, gzipMagic)
	}

	var r io.Reader = br
	if compressed {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("nbtsync: read %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	b, err := Decode(r, opts.encoding())
	if err != nil {
		return nil, fmt.Errorf("nbtsync: read %s: %w", path, err)
	}
	return b, nil
}

// WriteFile encodes b to the file at path, creating parent directories.
func WriteFile(path string, b Bag, opts FileOptions) (err error) {
	enc := opts.encoding()
	compressed := opts.Compress == CompressGzip ||
		opts.Compress == CompressAuto && enc == BigEndian

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if compressed {
		zw := gzip.NewWriter(bw)
		if err := Encode(zw, b, enc); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	} else if err := Encode(bw, b, enc); err != nil {
		return err
	}
	return bw.Flush()
}
