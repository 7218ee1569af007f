package ports

import (
	"context"

	"github.com/kamal-hamza/updeck/internal/core/domain"
)

// FileClient defines the port for the upload server's file API
type FileClient interface {
	// List returns every uploaded file
	List(ctx context.Context) ([]domain.FileRecord, error)

	// Remove deletes a stored file by its backend filename.
	// It reports false when the server did not confirm the deletion.
	Remove(ctx context.Context, filename string) (bool, error)

	// AssetURL returns the public URL of a stored file
	AssetURL(filename string) string

	// Fetch downloads at most limit bytes of a stored file
	Fetch(ctx context.Context, filename string, limit int64) ([]byte, error)
}

// Clipboard defines the port for writing to the system clipboard
type Clipboard interface {
	WriteText(text string) error
}

// URLOpener defines the port for opening URLs with the default application
type URLOpener interface {
	// Open opens target (a URL or a local path) outside the terminal
	Open(ctx context.Context, target string) error
}

// Notifier receives user-facing notices produced by view actions
type Notifier interface {
	Notify(notice domain.Notice)
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(message string) bool
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(domain.Notice)

// Notify calls f(notice)
func (f NotifierFunc) Notify(notice domain.Notice) { f(notice) }

// ConfirmerFunc adapts a function to the Confirmer interface
type ConfirmerFunc func(string) bool

// Confirm calls f(message)
func (f ConfirmerFunc) Confirm(message string) bool { return f(message) }
