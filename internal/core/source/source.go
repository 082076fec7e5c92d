package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrIsDir = errors.New("is a directory")

// Document is the full decoded text of one file.
type Document struct {
	Path     string
	Text     string
	Encoding string
	Binary   bool
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Load reads path into memory. Files starting with a UTF-16 byte order mark
// are decoded to UTF-8 and a UTF-8 byte order mark is dropped; any other
// content is kept byte for byte.
func Load(path string) (Document, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	if st.IsDir() {
		return Document{}, fmt.Errorf("read %s: %w", path, ErrIsDir)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := Decode(b)
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

func Decode(b []byte) (Document, error) {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return newDocument(b[len(bomUTF8):], "utf-8-bom"), nil
	case bytes.HasPrefix(b, bomUTF16BE):
		return decodeUTF16(b, unicode.BigEndian, "utf-16be")
	case bytes.HasPrefix(b, bomUTF16LE):
		return decodeUTF16(b, unicode.LittleEndian, "utf-16le")
	default:
		return newDocument(b, "utf-8"), nil
	}
}

func decodeUTF16(b []byte, order unicode.Endianness, name string) (Document, error) {
	dec := unicode.UTF16(order, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return Document{}, err
	}
	return newDocument(out, name), nil
}

func newDocument(b []byte, encoding string) Document {
	return Document{
		Text:     string(b),
		Encoding: encoding,
		Binary:   isBinary(b),
	}
}

func isBinary(b []byte) bool {
	return bytes.IndexByte(b, 0) >= 0
}
