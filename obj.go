package gopenflow

import (
	"github.com/ofwire/gopenflow/ofp4"
	"github.com/pkg/errors"
)

// Parse decodes one complete frame. Bytes past the declared length
// are an error, as ofp4.Decode reports them.
func Parse(data []byte) (*ofp4.Message, error) {
	if len(data) > 0 && data[0] != ofp4.OFP_VERSION {
		return nil, errors.Wrapf(ErrVersion, "version %d", data[0])
	}
	return ofp4.Decode(data)
}
