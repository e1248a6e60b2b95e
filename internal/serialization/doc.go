// Package serialization provides the native .narr format for saving and
// loading arrays.
//
//	Format Structure:
//	  [4 bytes: Magic "NARR"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata]
//	  [32 bytes: SHA-256 checksum of the element data]
//	  [Element data: little-endian, canonical index order]
//
// Element data is always written in canonical index order, so a loaded
// array is contiguous and aligned regardless of the view it was saved
// from.
package serialization
