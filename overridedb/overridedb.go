// Package overridedb is a persistent per-game color-override table for
// Game-Boy-family cartridges. Some games render wrongly under the model
// their header self-declares; an override entry, keyed by the CRC32 of the
// cartridge header window, forces CGB colorization, SGB enhancement, or
// both. The table is read-only once loaded and is consulted by model
// resolution at ROM-load time.
package overridedb

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/user-none/gbcore/engine"
)

// Kind identifies which enhancement an entry forces. The kinds are
// independent: one game may carry both.
type Kind int

const (
	KindColor Kind = iota // force CGB colorization
	KindSuper             // force SGB enhancement
)

// Compile-time interface check.
var _ engine.Overrides = (*DB)(nil)

// DB holds override entries indexed by header CRC32 for O(1) lookup.
type DB struct {
	color map[uint32]bool
	super map[uint32]bool
}

// New creates an empty override database.
func New() *DB {
	return &DB{
		color: make(map[uint32]bool),
		super: make(map[uint32]bool),
	}
}

// Add registers an override for the given header CRC.
func (db *DB) Add(headerCRC uint32, kind Kind) {
	switch kind {
	case KindColor:
		db.color[headerCRC] = true
	case KindSuper:
		db.super[headerCRC] = true
	}
}

// HasColorOverride reports whether the game is forced CGB-colorized.
func (db *DB) HasColorOverride(headerCRC uint32) bool {
	return db.color[headerCRC]
}

// HasSuperOverride reports whether the game is forced SGB-enhanced.
func (db *DB) HasSuperOverride(headerCRC uint32) bool {
	return db.super[headerCRC]
}

// Len returns the number of distinct header CRCs with at least one override.
func (db *DB) Len() int {
	n := len(db.color)
	for crc := range db.super {
		if !db.color[crc] {
			n++
		}
	}
	return n
}

// Parse reads override entries from a simple line-based format:
//
//	# comment
//	89a3b1c2 = color
//	0f12d34e = super
//	7cc01234 = color, super
//
// Keys are header CRC32 values in hex; values list the forced kinds.
// Unknown kind names are ignored so newer files stay loadable.
func Parse(data []byte) (*DB, error) {
	db := New()

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: missing '='", lineNo)
		}

		crc, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid CRC32: %w", lineNo, err)
		}

		for _, kind := range strings.Split(parts[1], ",") {
			switch strings.ToLower(strings.TrimSpace(kind)) {
			case "color", "cgb":
				db.Add(uint32(crc), KindColor)
			case "super", "sgb":
				db.Add(uint32(crc), KindSuper)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return db, nil
}

// LoadFile reads and parses an override file from disk.
func LoadFile(path string) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file: %w", err)
	}
	return Parse(data)
}
