package serialization

import "time"

// Format constants.
const (
	MagicBytes    = "NARR"
	FormatVersion = 1
	ChecksumSize  = 32 // SHA-256

	// MaxHeaderSize bounds the JSON header on read, so a corrupt length
	// field cannot trigger an enormous allocation.
	MaxHeaderSize = 1 << 20
)

// Header is the JSON metadata block of a .narr file.
type Header struct {
	FormatVersion int       `json:"format_version"` // Version of the .narr format
	ElementType   string    `json:"element_type"`   // Go element type, e.g. "int64"
	Sizes         []int     `json:"sizes"`          // Dimension sizes, canonical order
	CreatedAt     time.Time `json:"created_at"`     // When the file was written
}
