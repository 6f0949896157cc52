package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile reads a subtitle document and decodes it to UTF-8.
//
// A byte order mark always wins. Without one, charset names the source
// encoding (IANA name such as "GBK", "Big5" or "UTF-16LE"); an empty
// charset means UTF-8.
func ReadFile(path, charset string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Decode(file, charset)
}

// Decode reads r fully and converts it to UTF-8 using the rules of ReadFile.
func Decode(r io.Reader, charset string) (string, error) {
	enc, err := lookupEncoding(charset)
	if err != nil {
		return "", err
	}

	decoder := unicode.BOMOverride(enc.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("failed to decode subtitle file: %w", err)
	}
	return string(data), nil
}

func lookupEncoding(charset string) (encoding.Encoding, error) {
	charset = strings.TrimSpace(charset)
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", charset)
	}
	return enc, nil
}

// checks if the path has a subtitle extension this tool reads
func IsSubtitleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), GetExtensionForFormat(FormatSRT))
}
