// Package prefixer provides a line-oriented writer that emits a fixed prefix
// before every line of output.
package prefixer

import (
	"bytes"
	"io"
)

// Writer prefixes each line written through it before forwarding to the
// underlying writer. Partial lines are buffered until their terminator
// arrives; Flush forces out an unterminated trailing line.
type Writer struct {
	prefix  []byte
	w       io.Writer
	pending []byte
}

// New creates a prefixing writer around w.
func New(w io.Writer, prefix string) *Writer {
	return &Writer{
		prefix: []byte(prefix),
		w:      w,
	}
}

// Write implements io.Writer. It reports the full input length on success;
// the prefix bytes are not counted.
func (p *Writer) Write(buf []byte) (int, error) {
	rest := buf
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			p.pending = append(p.pending, rest...)
			return len(buf), nil
		}
		if err := p.emit(rest[:i+1]); err != nil {
			return 0, err
		}
		rest = rest[i+1:]
	}
}

// Flush writes any buffered partial line, prefixed but unterminated.
// It is a no-op when nothing is pending.
func (p *Writer) Flush() error {
	if len(p.pending) == 0 {
		return nil
	}
	return p.emit(nil)
}

// emit writes prefix + pending + tail as one line and resets the buffer.
func (p *Writer) emit(tail []byte) error {
	line := make([]byte, 0, len(p.prefix)+len(p.pending)+len(tail))
	line = append(line, p.prefix...)
	line = append(line, p.pending...)
	line = append(line, tail...)
	p.pending = p.pending[:0]

	_, err := p.w.Write(line)
	return err
}
