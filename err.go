package gopenflow

import (
	"github.com/pkg/errors"
)

var (
	// ErrVersion is returned for frames of a protocol version other than 1.3.
	ErrVersion = errors.New("unsupported openflow version")
	// ErrFrameLength is returned when a header declares fewer bytes than itself.
	ErrFrameLength = errors.New("frame length shorter than the header")
)
