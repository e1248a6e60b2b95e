package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// ReadHeader consumes and validates the stream prefix through the JSON
// header, leaving the reader positioned at the checksum.
func ReadHeader(r io.Reader) (Header, error) {
	var hdr Header

	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return hdr, fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != MagicBytes {
		return hdr, ErrBadMagic
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return hdr, fmt.Errorf("reading version: %w", err)
	}
	if version != FormatVersion {
		return hdr, fmt.Errorf("%w: %d", ErrVersion, version)
	}

	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return hdr, fmt.Errorf("reading header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return hdr, fmt.Errorf("%w: header size %d", ErrHeader, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return hdr, fmt.Errorf("reading header: %w", err)
	}
	if err := json.Unmarshal(headerJSON, &hdr); err != nil {
		return hdr, fmt.Errorf("%w: %v", ErrHeader, err)
	}
	for _, s := range hdr.Sizes {
		if s < 0 {
			return hdr, fmt.Errorf("%w: negative size", ErrHeader)
		}
	}
	return hdr, nil
}

// ReadData consumes the checksum and exactly n element data bytes,
// validating the data against the checksum. The data is read
// incrementally, so a header whose sizes overstate the stream fails
// with a read error rather than exhausting memory up front.
func ReadData(r io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative data length", ErrHeader)
	}
	var stored [ChecksumSize]byte
	if _, err := io.ReadFull(r, stored[:]); err != nil {
		return nil, fmt.Errorf("reading checksum: %w", err)
	}

	var data bytes.Buffer
	if _, err := io.CopyN(&data, r, int64(n)); err != nil {
		return nil, fmt.Errorf("reading element data: %w", err)
	}
	if err := ValidateChecksum(ComputeChecksum(data.Bytes()), stored); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}
