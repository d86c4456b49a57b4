package console

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultCopyWindow is how long an item stays marked as copied.
const DefaultCopyWindow = 2 * time.Second

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter func(text string) error

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll ClipboardWriter = clipboard.WriteAll

// ClipboardError is a failed clipboard write.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("failed to copy to clipboard: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }

// CopyFeedback writes to the clipboard and keeps a single "just copied"
// mark that clears itself after a fixed window. Marking a new item
// unmarks the previous one.
type CopyFeedback struct {
	write  ClipboardWriter
	window time.Duration

	mu     sync.Mutex
	copied string
	gen    uint64
	timer  *time.Timer
	notify func(itemID string)
}

// NewCopyFeedback creates a helper. A nil writer uses the system clipboard;
// a non-positive window uses DefaultCopyWindow.
func NewCopyFeedback(write ClipboardWriter, window time.Duration) *CopyFeedback {
	if write == nil {
		write = clipboardWriteAll
	}
	if window <= 0 {
		window = DefaultCopyWindow
	}
	return &CopyFeedback{write: write, window: window}
}

// OnExpire registers fn to be called, from the timer goroutine, with the
// id whose mark just cleared.
func (f *CopyFeedback) OnExpire(fn func(itemID string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notify = fn
}

// Window returns the mark duration.
func (f *CopyFeedback) Window() time.Duration {
	return f.window
}

// Copy writes text to the clipboard and marks itemID as copied. If the write
// fails the mark is left as it was and a *ClipboardError is returned.
func (f *CopyFeedback) Copy(text, itemID string) error {
	if err := f.write(text); err != nil {
		return &ClipboardError{Err: err}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
	}
	f.gen++
	gen := f.gen
	f.copied = itemID
	f.timer = time.AfterFunc(f.window, func() { f.expire(gen) })
	return nil
}

func (f *CopyFeedback) expire(gen uint64) {
	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		return
	}
	id := f.copied
	f.copied = ""
	f.timer = nil
	notify := f.notify
	f.mu.Unlock()

	if notify != nil {
		notify(id)
	}
}

// Copied returns the currently marked id, or "".
func (f *CopyFeedback) Copied() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copied
}

// IsCopied reports whether itemID carries the mark.
func (f *CopyFeedback) IsCopied(itemID string) bool {
	return itemID != "" && f.Copied() == itemID
}

// Stop clears the mark and cancels the pending reset.
func (f *CopyFeedback) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
	f.copied = ""
}
