package subtitle

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFileUTF8(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\n你好，世界\n"
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	got, err := ReadFile(srtPath, "")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != content {
		t.Errorf("ReadFile: got %q, want %q", got, content)
	}
}

func TestDecodeGBK(t *testing.T) {
	// "中文" in GBK
	raw := []byte("1\n00:00:01,000 --> 00:00:02,000\n\xd6\xd0\xce\xc4\n")

	got, err := Decode(bytes.NewReader(raw), "GBK")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !strings.Contains(got, "中文") {
		t.Errorf("expected decoded text to contain 中文, got %q", got)
	}
}

func TestDecodeUTF16BOM(t *testing.T) {
	// "1\n" as UTF-16LE with a byte order mark
	raw := []byte{0xff, 0xfe, '1', 0x00, '\n', 0x00}

	got, err := Decode(bytes.NewReader(raw), "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "1\n" {
		t.Errorf("Decode: got %q, want %q", got, "1\n")
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := Decode(strings.NewReader("x"), "not-a-charset")
	if err == nil {
		t.Fatal("expected error for unknown encoding")
	}
	if !strings.Contains(err.Error(), "encoding") {
		t.Errorf("expected 'encoding' in error, got: %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.srt"), "")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "nested", "dir", "out.srt")
	if err := WriteFile(outPath, "1\n"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "1\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestDerivedPath(t *testing.T) {
	tests := []struct {
		input  string
		suffix string
		want   string
	}{
		{"movie.srt", "resegmented", "movie.resegmented.srt"},
		{"dir/movie.mkv", "resegmented", "dir/movie.resegmented.srt"},
		{"movie.srt", "", "movie.srt"},
	}
	for _, tt := range tests {
		if got := DerivedPath(tt.input, tt.suffix); got != tt.want {
			t.Errorf("DerivedPath(%q, %q) = %q, want %q", tt.input, tt.suffix, got, tt.want)
		}
	}
}

func TestIsSubtitleFile(t *testing.T) {
	if !IsSubtitleFile("a.SRT") {
		t.Error("expected .SRT to be recognized")
	}
	if IsSubtitleFile("a.vtt") {
		t.Error("expected .vtt to be rejected")
	}
}
