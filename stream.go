package gopenflow

import (
	"bufio"
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/ofwire/gopenflow/ofp4"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var logger = logging.MustGetLogger("gopenflow")

const headerLen = 8

// Stream frames openflow messages over a byte stream such as a TCP
// connection. Reads and writes may run concurrently with each other.
// A Stream over a plain io.Reader is read-only.
type Stream struct {
	channel io.Reader
	xids    Xids

	reader struct {
		mutex   sync.Mutex
		rd      *bufio.Reader
		timeout time.Duration
	}

	writer struct {
		mutex   sync.Mutex
		timeout time.Duration
	}
}

type deadline interface {
	SetReadDeadline(time.Time) error
	SetWriteDeadline(time.Time) error
}

func NewStream(channel io.Reader, bufSize int) *Stream {
	s := &Stream{channel: channel}
	s.reader.rd = bufio.NewReaderSize(channel, bufSize)
	return s
}

// SetReadTimeout bounds each read when the channel supports deadlines.
// Zero disables the bound.
func (obj *Stream) SetReadTimeout(t time.Duration) {
	obj.reader.mutex.Lock()
	defer obj.reader.mutex.Unlock()
	obj.reader.timeout = t
}

func (obj *Stream) SetWriteTimeout(t time.Duration) {
	obj.writer.mutex.Lock()
	defer obj.writer.mutex.Unlock()
	obj.writer.timeout = t
}

func (obj *Stream) setDeadline(read bool) {
	d, ok := obj.channel.(deadline)
	if !ok {
		return
	}
	if read {
		var t time.Time
		if obj.reader.timeout > 0 {
			t = time.Now().Add(obj.reader.timeout)
		}
		d.SetReadDeadline(t)
	} else {
		var t time.Time
		if obj.writer.timeout > 0 {
			t = time.Now().Add(obj.writer.timeout)
		}
		d.SetWriteDeadline(t)
	}
}

// FrameLength checks the first 8 bytes of a frame and returns the
// length its header declares.
func FrameLength(header []byte) (int, error) {
	if len(header) < headerLen {
		return 0, io.ErrUnexpectedEOF
	}
	if header[0] != ofp4.OFP_VERSION {
		return 0, errors.Wrapf(ErrVersion, "version %d", header[0])
	}
	length := int(binary.BigEndian.Uint16(header[2:4]))
	if length < headerLen {
		return 0, errors.Wrapf(ErrFrameLength, "length %d", length)
	}
	return length, nil
}

// ReadFrame returns the bytes of the next message, header included.
// io.EOF is returned only at a clean frame boundary; a stream that
// ends inside a frame yields io.ErrUnexpectedEOF.
func (obj *Stream) ReadFrame() ([]byte, error) {
	obj.reader.mutex.Lock()
	defer obj.reader.mutex.Unlock()

	obj.setDeadline(true)
	header, err := obj.reader.rd.Peek(headerLen)
	if err != nil {
		if err == io.EOF && len(header) > 0 {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	length, err := FrameLength(header)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, length)
	if _, err := io.ReadFull(obj.reader.rd, frame); err != nil {
		return nil, errors.Wrap(err, "failed to read a frame")
	}
	logger.Debugf("frame type=%d length=%d", frame[1], length)
	return frame, nil
}

// ReadMessage reads and decodes the next message. A frame that fails
// to decode has still been consumed, so the stream stays in sync.
func (obj *Stream) ReadMessage() (*ofp4.Message, error) {
	frame, err := obj.ReadFrame()
	if err != nil {
		return nil, err
	}
	msg, err := ofp4.Decode(frame)
	if err != nil {
		logger.Warningf("undecodable %s: %v", ofp4.TypeName(frame[1]), err)
		return nil, errors.Wrapf(err, "xid=%d", binary.BigEndian.Uint32(frame[4:8]))
	}
	return msg, nil
}

// WriteMessage validates and encodes msg and writes it as one frame.
func (obj *Stream) WriteMessage(msg *ofp4.Message) error {
	frame, err := ofp4.Encode(msg)
	if err != nil {
		return errors.Wrap(err, "failed to encode a message")
	}

	w, ok := obj.channel.(io.Writer)
	if !ok {
		return errors.New("stream is read-only")
	}

	obj.writer.mutex.Lock()
	defer obj.writer.mutex.Unlock()

	obj.setDeadline(false)
	if _, err := w.Write(frame); err != nil {
		return errors.Wrap(err, "failed to write a frame")
	}
	return nil
}

// Send writes body under a fresh transaction id and returns the id.
func (obj *Stream) Send(body ofp4.Body) (uint32, error) {
	xid := obj.xids.Next()
	return xid, obj.WriteMessage(ofp4.NewMessage(xid, body))
}
