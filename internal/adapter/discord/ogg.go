package discord

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	oggHeaderLen   = 27
	oggMaxSegment  = 255
	oggCapture     = "OggS"
	oggVersion     = 0
	oggSegmentsPos = 26
)

var (
	errOggCapture   = errors.New("ogg: missing capture pattern")
	errOggTruncated = errors.New("ogg: truncated page")
)

// oggReader splits an Ogg stream into packets. Packets may span segments
// and pages; a segment shorter than 255 bytes ends a packet.
type oggReader struct {
	r       io.Reader
	header  [oggHeaderLen]byte
	queue   [][]byte
	partial []byte
}

func newOggReader(r io.Reader) *oggReader {
	return &oggReader{r: r}
}

// Next returns the next complete packet. io.EOF is returned only at a page
// boundary; a stream cut inside a page returns errOggTruncated.
func (o *oggReader) Next() ([]byte, error) {
	for len(o.queue) == 0 {
		if err := o.readPage(); err != nil {
			return nil, err
		}
	}
	p := o.queue[0]
	o.queue = o.queue[1:]
	return p, nil
}

func (o *oggReader) readPage() error {
	if _, err := io.ReadFull(o.r, o.header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return errOggTruncated
		}
		return err
	}
	if string(o.header[:4]) != oggCapture {
		return errOggCapture
	}
	if o.header[4] != oggVersion {
		return fmt.Errorf("ogg: unsupported version %d", o.header[4])
	}

	table := make([]byte, o.header[oggSegmentsPos])
	if _, err := io.ReadFull(o.r, table); err != nil {
		return errOggTruncated
	}

	size := 0
	for _, l := range table {
		size += int(l)
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(o.r, data); err != nil {
		return errOggTruncated
	}

	off := 0
	for _, l := range table {
		o.partial = append(o.partial, data[off:off+int(l)]...)
		off += int(l)
		if l < oggMaxSegment {
			if len(o.partial) > 0 {
				o.queue = append(o.queue, o.partial)
			}
			o.partial = nil
		}
	}
	return nil
}

// isOpusHeader reports whether p is one of the two Opus stream headers that
// precede the audio packets.
func isOpusHeader(p []byte) bool {
	return bytes.HasPrefix(p, []byte("OpusHead")) || bytes.HasPrefix(p, []byte("OpusTags"))
}
