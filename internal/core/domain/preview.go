package domain

// PreviewMode selects between the grid tile and the modal rendering
type PreviewMode int

const (
	ModeCompact PreviewMode = iota
	ModeLarge
)

// PreviewKind is the element a renderer should produce
type PreviewKind int

const (
	PreviewUnavailable PreviewKind = iota
	PreviewImage
	PreviewVideoPlaceholder
	PreviewVideo
	PreviewAudio
	PreviewFrame
)

// FrameSandbox is the only sandbox policy ever applied to embedded documents.
// Scripts and same-origin are allowed; navigation and popups are not.
const FrameSandbox = "allow-scripts allow-same-origin"

const (
	OverlayClickToView = "Click to view"
	TextUnavailable    = "Preview unavailable"
	PlayGlyph          = "▶"
)

// Preview is a render instruction for one file in one mode
type Preview struct {
	Kind     PreviewKind
	Category Category
	URL      string
	Title    string
	Blurred  bool
	Overlay  string
	Sandbox  string
	Width    string
	Height   string
}

// HasMedia reports whether the preview mounts a playable element
func (p Preview) HasMedia() bool {
	return p.Kind == PreviewVideo || p.Kind == PreviewAudio
}

// RenderPreview decides how record should be shown at assetURL in mode.
func RenderPreview(record FileRecord, assetURL string, mode PreviewMode) Preview {
	category := Classify(record.Name)
	p := Preview{
		Category: category,
		URL:      assetURL,
		Title:    record.Name,
	}

	large := mode == ModeLarge

	switch category {
	case CategoryImage:
		p.Kind = PreviewImage
		if large {
			p.Width, p.Height = "90vw", "90vh"
		} else {
			p.Width = "100%"
		}

	case CategoryVideo:
		if large {
			p.Kind = PreviewVideo
			p.Width, p.Height = "90vw", "90vh"
		} else {
			// no media element inside a tile
			p.Kind = PreviewVideoPlaceholder
			p.Overlay = OverlayClickToView
			p.Width, p.Height = "100%", "150px"
		}

	case CategoryAudio:
		p.Kind = PreviewAudio
		if large {
			p.Width = "90vw"
		} else {
			p.Width = "100%"
		}

	case CategoryDocument:
		p.Kind = PreviewFrame
		p.Sandbox = FrameSandbox
		if large {
			p.Width, p.Height = "90vw", "80vh"
		} else {
			p.Blurred = true
			p.Overlay = OverlayClickToView
			p.Width, p.Height = "100%", "150px"
		}

	default:
		p.Kind = PreviewUnavailable
		p.Overlay = TextUnavailable
		if large {
			p.Height = "200px"
		} else {
			p.Height = "150px"
		}
	}

	return p
}
