package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// Write emits a complete .narr stream: magic, version, JSON header,
// checksum, and the element data bytes. elemData must already be in
// canonical index order, little-endian.
func Write(w io.Writer, hdr Header, elemData []byte) error {
	hdr.FormatVersion = FormatVersion

	headerJSON, err := json.Marshal(hdr)
	if err != nil {
		return fmt.Errorf("marshaling header: %w", err)
	}

	if _, err := w.Write([]byte(MagicBytes)); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("writing version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("writing header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	sum := ComputeChecksum(elemData)
	if _, err := w.Write(sum[:]); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := w.Write(elemData); err != nil {
		return fmt.Errorf("writing element data: %w", err)
	}
	return nil
}
