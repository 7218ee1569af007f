package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamal-hamza/updeck/internal/core/domain"
)

// MockFileClient is an in-memory implementation of ports.FileClient for testing
type MockFileClient struct {
	mu       sync.RWMutex
	records  []domain.FileRecord
	contents map[string][]byte

	listErr      error
	removeErr    error
	removeResult bool

	listCalls int
	removed   []string
}

// NewMockFileClient creates a client serving the given records
func NewMockFileClient(records ...domain.FileRecord) *MockFileClient {
	return &MockFileClient{
		records:      records,
		contents:     make(map[string][]byte),
		removeResult: true,
	}
}

// SetListError makes List fail with err
func (m *MockFileClient) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

// SetRemoveResult controls what Remove reports
func (m *MockFileClient) SetRemoveResult(ok bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeResult = ok
	m.removeErr = err
}

// SetContent registers the body returned by Fetch for filename
func (m *MockFileClient) SetContent(filename string, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents[filename] = body
}

// List returns a copy of the configured records
func (m *MockFileClient) List(ctx context.Context) ([]domain.FileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}

	out := make([]domain.FileRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Remove records the call and drops the file when the configured result is true
func (m *MockFileClient) Remove(ctx context.Context, filename string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removed = append(m.removed, filename)
	if m.removeErr != nil {
		return false, m.removeErr
	}
	if !m.removeResult {
		return false, nil
	}

	for i, r := range m.records {
		if r.Filename == filename {
			m.records = append(m.records[:i:i], m.records[i+1:]...)
			break
		}
	}
	return true, nil
}

// AssetURL returns a fake uploads URL
func (m *MockFileClient) AssetURL(filename string) string {
	return "http://mock.local/uploads/" + filename
}

// Fetch returns up to limit bytes of the registered content
func (m *MockFileClient) Fetch(ctx context.Context, filename string, limit int64) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	body, ok := m.contents[filename]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", filename)
	}
	if limit > 0 && int64(len(body)) > limit {
		body = body[:limit]
	}
	return body, nil
}

// ListCalls returns how many times List was called
func (m *MockFileClient) ListCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listCalls
}

// Removed returns the filenames passed to Remove, in order
func (m *MockFileClient) Removed() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.removed))
	copy(out, m.removed)
	return out
}

// --- MockClipboard ---

type MockClipboard struct {
	mu         sync.Mutex
	text       string
	writes     int
	shouldFail bool
}

func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

func (m *MockClipboard) SetShouldFail(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
}

func (m *MockClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.shouldFail {
		return fmt.Errorf("clipboard unavailable")
	}
	m.text = text
	return nil
}

func (m *MockClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *MockClipboard) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// --- MockOpener ---

type MockOpener struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func NewMockOpener() *MockOpener {
	return &MockOpener{}
}

func (m *MockOpener) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockOpener) Open(ctx context.Context, target string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, target)
	return nil
}

func (m *MockOpener) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.opened))
	copy(out, m.opened)
	return out
}

// --- MockNotifier ---

type MockNotifier struct {
	mu      sync.Mutex
	notices []domain.Notice
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Notify(notice domain.Notice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, notice)
}

func (m *MockNotifier) Notices() []domain.Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Notice, len(m.notices))
	copy(out, m.notices)
	return out
}

// --- MockConfirmer ---

// MockConfirmer answers every question with a fixed reply and records the prompts
type MockConfirmer struct {
	mu      sync.Mutex
	answer  bool
	prompts []string
}

func NewMockConfirmer(answer bool) *MockConfirmer {
	return &MockConfirmer{answer: answer}
}

func (m *MockConfirmer) Confirm(message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, message)
	return m.answer
}

func (m *MockConfirmer) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
