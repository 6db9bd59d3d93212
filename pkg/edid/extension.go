package edid

import (
	"github.com/backkem/displayinfo/pkg/bits"
	"github.com/backkem/displayinfo/pkg/diag"
)

// Extension is an EDID extension block. Its payload is not interpreted by
// this package. Blocks with an unknown tag are kept too, so Extensions[i]
// is always block i+1 of the blob.
type Extension struct {
	tag  ExtensionTag
	data [BlockSize]byte
}

// Tag returns the extension block tag.
func (x *Extension) Tag() ExtensionTag {
	return x.tag
}

// Data returns a copy of the raw 128-byte extension block.
func (x *Extension) Data() []byte {
	out := make([]byte, BlockSize)
	copy(out, x.data[:])
	return out
}

func (e *EDID) parseExtension(data []byte, log *diag.Scope) error {
	if bits.Checksum(data) != 0 {
		return ErrExtensionChecksum
	}

	tag := ExtensionTag(data[0])
	if !tag.IsValid() {
		log.AddFailureUntil(4, "Unknown Extension Block.")
	}

	x := Extension{tag: tag}
	copy(x.data[:], data)
	e.Extensions = append(e.Extensions, x)
	return nil
}
