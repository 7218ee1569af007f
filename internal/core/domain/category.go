package domain

// Category is the rendering category of a file, derived from its extension
type Category int

const (
	CategoryUnknown Category = iota
	CategoryImage
	CategoryVideo
	CategoryAudio
	CategoryDocument
)

var (
	imageExtensions = map[string]bool{
		"jpg": true, "jpeg": true, "png": true, "gif": true, "bmp": true, "svg": true,
	}
	videoExtensions = map[string]bool{
		"mp4": true, "webm": true, "ogg": true,
	}
	audioExtensions = map[string]bool{
		"mp3": true, "wav": true, "ogg": true,
	}
	documentExtensions = map[string]bool{
		"html": true, "htm": true, "txt": true, "md": true,
		"ts": true, "tsx": true, "js": true, "jsx": true,
		"c": true, "cpp": true, "java": true,
		"css": true, "scss": true, "sql": true,
		"py": true, "rb": true, "php": true,
	}
)

// String returns the lowercase category name
func (c Category) String() string {
	switch c {
	case CategoryImage:
		return "image"
	case CategoryVideo:
		return "video"
	case CategoryAudio:
		return "audio"
	case CategoryDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Classify maps a filename to its rendering category.
// "ogg" appears in both the video and audio sets; video wins.
func Classify(filename string) Category {
	ext := ExtensionOf(filename)
	if ext == "" {
		return CategoryUnknown
	}

	switch {
	case imageExtensions[ext]:
		return CategoryImage
	case videoExtensions[ext]:
		return CategoryVideo
	case audioExtensions[ext]:
		return CategoryAudio
	case documentExtensions[ext]:
		return CategoryDocument
	default:
		return CategoryUnknown
	}
}

// IsPreviewable reports whether a file can be opened without a download prompt.
// Images, video and audio are previewable; documents are not.
func IsPreviewable(filename string) bool {
	switch Classify(filename) {
	case CategoryImage, CategoryVideo, CategoryAudio:
		return true
	default:
		return false
	}
}
