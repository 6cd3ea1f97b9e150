// Package rw provides small read and seek helpers.
package rw

import "io"

// ReadAtMost reads from r until buf is full or the stream ends. Unlike
// io.ReadFull, hitting the end of the stream early is not an error; the
// number of bytes actually read is returned with a nil error.
func ReadAtMost(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}

// StreamLen returns the total byte length of a seekable stream without
// disturbing its current position.
func StreamLen(s io.Seeker) (int64, error) {
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}
