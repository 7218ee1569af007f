package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		filename string
		expected Category
	}{
		{"photo.jpg", CategoryImage},
		{"photo.JPEG", CategoryImage},
		{"diagram.Svg", CategoryImage},
		{"clip.mp4", CategoryVideo},
		{"clip.WEBM", CategoryVideo},
		{"song.mp3", CategoryAudio},
		{"voice.wav", CategoryAudio},
		{"track.ogg", CategoryVideo}, // video is checked before audio
		{"index.html", CategoryDocument},
		{"main.CPP", CategoryDocument},
		{"query.sql", CategoryDocument},
		{"notes.md", CategoryDocument},
		{"archive.zip", CategoryUnknown},
		{"README", CategoryUnknown},
		{"", CategoryUnknown},
		{"trailing.", CategoryUnknown},
		{".gitignore", CategoryUnknown},
		{"multi.part.name.png", CategoryImage},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := Classify(tt.filename)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %v, expected %v", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	names := []string{"a.png", "a.mp4", "a.mp3", "a.py", "a.bin"}
	for _, name := range names {
		lower := Classify(name)
		upper := Classify(name[:2] + toUpperASCII(name[2:]))
		if lower != upper {
			t.Errorf("Classify differs by case for %q: %v vs %v", name, lower, upper)
		}
	}
}

func TestIsPreviewable(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"a.png", true},
		{"a.gif", true},
		{"a.webm", true},
		{"a.ogg", true},
		{"a.wav", true},
		{"a.txt", false},
		{"a.html", false},
		{"a.zip", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsPreviewable(tt.filename); got != tt.expected {
			t.Errorf("IsPreviewable(%q) = %v, expected %v", tt.filename, got, tt.expected)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryDocument.String() != "document" {
		t.Errorf("expected 'document', got %q", CategoryDocument.String())
	}
	if Category(42).String() != "unknown" {
		t.Errorf("expected 'unknown' for out-of-range category, got %q", Category(42).String())
	}
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 32
		}
	}
	return string(b)
}
