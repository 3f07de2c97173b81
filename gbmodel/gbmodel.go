// Package gbmodel resolves which Game-Boy-family hardware variant a
// cartridge should run on. Resolution is heuristic and header-driven: the
// cartridge self-declares which variants it is enhanced for, and a
// persistent engine-owned override table can force colorization for games
// the header undersells. The result is computed once per ROM load, before
// the engine resets.
package gbmodel

import (
	"hash/crc32"

	gbcore "github.com/user-none/gbcore/api"
	"github.com/user-none/gbcore/engine"
)

// Cartridge header window. The CRC32 of exactly this byte range keys the
// override table.
const (
	headerStart = 0x100
	headerEnd   = 0x150
)

// Header field offsets within the ROM.
const (
	cgbFlagOffset     = 0x143
	sgbFlagOffset     = 0x146
	oldLicenseeOffset = 0x14B
)

// CGB flag bits: 0x80 = runs enhanced on CGB, 0xC0 = requires CGB.
const (
	cgbSupportBit = 0x80
	cgbOnlyFlag   = 0xC0
)

// SGB enhancement requires both the SGB flag and the new-licensee marker
// in the old-licensee field.
const (
	sgbFlagEnhanced    = 0x03
	oldLicenseeNewCode = 0x33
)

// ModelSet is the set of hardware variants a cartridge self-declares
// compatible with, derived from header flags.
type ModelSet uint8

const (
	SetDMG ModelSet = 1 << iota
	SetMGB
	SetSGB
	SetCGB
	SetAGB
)

// Has reports whether the set contains all variants in m.
func (s ModelSet) Has(m ModelSet) bool {
	return s&m == m
}

// HeaderCRC returns the CRC32 over the cartridge header window, and false
// when the ROM is too short to contain one.
func HeaderCRC(rom []byte) (uint32, bool) {
	if len(rom) < headerEnd {
		return 0, false
	}
	return crc32.ChecksumIEEE(rom[headerStart:headerEnd]), true
}

// ValidModels derives the self-declared compatibility set from the header
// flags. Callers must have verified the ROM covers the header window.
func ValidModels(rom []byte) ModelSet {
	var set ModelSet

	cgbFlag := rom[cgbFlagOffset]
	switch {
	case cgbFlag&cgbOnlyFlag == cgbOnlyFlag:
		set = SetCGB
	case cgbFlag&cgbSupportBit != 0:
		set = SetMGB | SetCGB
	default:
		set = SetMGB
	}

	if rom[sgbFlagOffset] == sgbFlagEnhanced && rom[oldLicenseeOffset] == oldLicenseeNewCode {
		set |= SetSGB
	}

	return set
}

// classify maps a compatibility set onto the two enhancement kinds. The
// four cases are matched exactly, in order; unknown combinations count as
// neither. Do not reorder or merge these branches.
func classify(set ModelSet) (sgbEnhanced, cgbEnhanced bool) {
	switch set {
	case SetSGB | SetMGB:
		return true, false
	case SetSGB | SetCGB, SetMGB | SetSGB | SetCGB:
		return true, true
	case SetCGB, SetMGB | SetCGB:
		return false, true
	default:
		return false, false
	}
}

// Resolve selects the hardware variant and color mode for a ROM load.
//
// A fixed request maps straight through the model table without touching
// the ROM. An automatic request inspects the header: a ROM too short to
// hold the header window cannot be enhanced and falls back to DMG; for
// everything else the self-declared compatibility set plus two independent
// override queries (color-forcing and super-forcing, keyed by header CRC)
// feed the tie-break below. ov may be nil, meaning no override table.
//
// The tie-break order is load-bearing: conflicting self-declared
// enhancement and conflicting override entries deliberately share the
// first branch, resolved by the request's preference.
func Resolve(rom []byte, req gbcore.ModelRequest, ov engine.Overrides) gbcore.ResolvedModel {
	if m, ok := req.IsFixed(); ok {
		return gbcore.ResolvedModel{Model: m, ColorMode: gbcore.ColorModeFor(m)}
	}

	if len(rom) < headerEnd {
		return gbcore.ResolvedModel{Model: gbcore.ModelDMG, ColorMode: gbcore.ColorModeNone}
	}

	sgbEnhanced, cgbEnhanced := classify(ValidModels(rom))

	var colorOverride, superOverride bool
	if ov != nil {
		crc := crc32.ChecksumIEEE(rom[headerStart:headerEnd])
		colorOverride = ov.HasColorOverride(crc)
		superOverride = ov.HasSuperOverride(crc)
	}

	var model gbcore.Model
	switch {
	case (sgbEnhanced && cgbEnhanced) || (colorOverride && superOverride):
		if req.PrefersColor() {
			model = gbcore.ModelCGB
		} else {
			model = gbcore.ModelSGB
		}
	case sgbEnhanced || (superOverride && !cgbEnhanced):
		model = gbcore.ModelSGB
	case cgbEnhanced || colorOverride:
		model = gbcore.ModelCGB
	default:
		model = gbcore.ModelDMG
	}

	return gbcore.ResolvedModel{Model: model, ColorMode: gbcore.ColorModeFor(model)}
}
