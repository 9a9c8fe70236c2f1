package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/muesli/cancelreader"
)

// ErrReaderClosed is returned by ReadLine after Close.
var ErrReaderClosed = errors.New("line reader closed")

// LineReader reads input one line at a time.
//
// A LineReader buffers its source, so every Input reading from the same
// stream should share one LineReader. At most one read of the source is in
// flight: when ReadLine gives up on a canceled context the read keeps going,
// and the next ReadLine receives its line. Nothing typed is lost between a
// canceled prompt and the next one.
//
// ReadLine must not be called concurrently.
type LineReader struct {
	buf      *bufio.Reader
	canceler cancelreader.CancelReader

	mu      sync.Mutex
	pending chan lineResult
	closed  bool
}

type lineResult struct {
	line string
	err  error
}

// NewLineReader wraps r. The caller keeps ownership of r.
// For an *os.File, Close unblocks a read that is still waiting on r.
func NewLineReader(r io.Reader) *LineReader {
	if f, ok := r.(*os.File); ok {
		if cr, err := cancelreader.NewReader(f); err == nil {
			return &LineReader{buf: bufio.NewReader(cr), canceler: cr}
		}
	}
	return &LineReader{buf: bufio.NewReader(r)}
}

var (
	stdinOnce   sync.Once
	stdinReader *LineReader
)

// Stdin returns the process-wide LineReader for os.Stdin.
func Stdin() *LineReader {
	stdinOnce.Do(func() {
		stdinReader = NewLineReader(os.Stdin)
	})
	return stdinReader
}

// ReadLine returns the next line with its terminator, or io.EOF once the
// source has no more data. A final line without a terminator is returned
// before io.EOF.
//
// If ctx is done before a line arrives, ReadLine returns ctx.Err().
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	resCh, err := l.inFlight()
	if err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resCh:
		l.mu.Lock()
		l.pending = nil
		l.mu.Unlock()
		return res.line, res.err
	}
}

// inFlight returns the channel of the current read, starting one if needed.
func (l *LineReader) inFlight() (chan lineResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrReaderClosed
	}
	if l.pending == nil {
		resCh := make(chan lineResult, 1)
		go func() {
			line, err := l.read()
			resCh <- lineResult{line: line, err: err}
		}()
		l.pending = resCh
	}
	return l.pending, nil
}

func (l *LineReader) read() (string, error) {
	line, err := l.buf.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, cancelreader.ErrCanceled) {
			return "", ErrReaderClosed
		}
		return "", err
	}
	return line, nil
}

// Close stops the LineReader. A read still waiting on an *os.File is
// unblocked. The wrapped stream stays open.
func (l *LineReader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	if l.canceler == nil {
		return nil
	}
	l.canceler.Cancel()
	return l.canceler.Close()
}
