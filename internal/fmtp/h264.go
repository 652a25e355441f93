// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"errors"
	"fmt"
	"strconv"
)

type h264FMTP struct {
	parameters map[string]string
}

func (h *h264FMTP) MimeType() string {
	return "video/h264"
}

func (h *h264FMTP) Parameter(key string) (string, bool) {
	v, ok := h.parameters[key]

	return v, ok
}

// H264Profile is a capability profile an RFC 6184 profile-level-id can
// encode. Only a subset of the profiles defined by H264 itself is
// expressible in SDP.
type H264Profile int

// Profiles in RFC 6184 order.
const (
	H264ProfileConstrainedBaseline H264Profile = iota + 1
	H264ProfileBaseline
	H264ProfileMain
	H264ProfileConstrainedHigh
	H264ProfileHigh
	H264ProfilePredictiveHigh444
)

func (p H264Profile) String() string {
	switch p {
	case H264ProfileConstrainedBaseline:
		return "constrained-baseline"
	case H264ProfileBaseline:
		return "baseline"
	case H264ProfileMain:
		return "main"
	case H264ProfileConstrainedHigh:
		return "constrained-high"
	case H264ProfileHigh:
		return "high"
	case H264ProfilePredictiveHigh444:
		return "predictive-high-444"
	default:
		return "unknown"
	}
}

// H264Level is a level_idc value. Level 1b is represented by the
// out-of-band value 0 because its wire encoding overlaps level 1.1 and is
// distinguished by the constraint_set3_flag instead.
type H264Level uint8

// Levels defined for H264, as level_idc values.
const (
	H264Level1b  H264Level = 0
	H264Level1   H264Level = 10
	H264Level1_1 H264Level = 11
	H264Level1_2 H264Level = 12
	H264Level1_3 H264Level = 13
	H264Level2   H264Level = 20
	H264Level2_1 H264Level = 21
	H264Level2_2 H264Level = 22
	H264Level3   H264Level = 30
	H264Level3_1 H264Level = 31
	H264Level3_2 H264Level = 32
	H264Level4   H264Level = 40
	H264Level4_1 H264Level = 41
	H264Level4_2 H264Level = 42
	H264Level5   H264Level = 50
	H264Level5_1 H264Level = 51
	H264Level5_2 H264Level = 52
)

// H264ProfileLevelID is the parsed form of a profile-level-id parameter.
type H264ProfileLevelID struct {
	Profile H264Profile
	Level   H264Level
}

// DefaultH264ProfileLevelID is assumed for an H264 payload that carries no
// profile-level-id parameter at all.
var DefaultH264ProfileLevelID = H264ProfileLevelID{H264ProfileConstrainedBaseline, H264Level3_1}

var (
	errProfileLevelIDMalformed = errors.New("malformed profile-level-id")
	errProfileLevelIDLevel     = errors.New("profile-level-id carries an unknown level")
	errProfileLevelIDProfile   = errors.New("profile-level-id carries an unknown profile")
	errLevel1bProfile          = errors.New("level 1b cannot be encoded for profile")
)

// constraintSet3 is the constraint_set3_flag bit of profile_iop.
const constraintSet3 = 0x10

// iopPattern matches a profile_iop byte in which some bits must be set,
// some must be clear and the rest carry no meaning.
type iopPattern struct {
	mask uint8
	bits uint8
}

// newIOPPattern builds an iopPattern from an 8 character string of '1'
// (bit must be set), '0' (bit must be clear) and 'x' (bit is ignored),
// most significant bit first.
func newIOPPattern(pattern string) iopPattern {
	var p iopPattern
	for _, c := range pattern {
		p.mask <<= 1
		p.bits <<= 1
		switch c {
		case '1':
			p.mask |= 1
			p.bits |= 1
		case '0':
			p.mask |= 1
		}
	}

	return p
}

func (p iopPattern) match(iop uint8) bool {
	return iop&p.mask == p.bits
}

type profilePattern struct {
	idc     uint8
	iop     iopPattern
	profile H264Profile
}

// The (profile_idc, profile_iop) combinations RFC 6184 defines for each
// expressible profile.
var profilePatterns = []profilePattern{
	{0x42, newIOPPattern("x1xx0000"), H264ProfileConstrainedBaseline},
	{0x4d, newIOPPattern("1xxx0000"), H264ProfileConstrainedBaseline},
	{0x58, newIOPPattern("11xx0000"), H264ProfileConstrainedBaseline},
	{0x42, newIOPPattern("x0xx0000"), H264ProfileBaseline},
	{0x58, newIOPPattern("10xx0000"), H264ProfileBaseline},
	{0x4d, newIOPPattern("0x0x0000"), H264ProfileMain},
	{0x64, newIOPPattern("00000000"), H264ProfileHigh},
	{0x64, newIOPPattern("00001100"), H264ProfileConstrainedHigh},
	{0xf4, newIOPPattern("00000000"), H264ProfilePredictiveHigh444},
}

// ParseH264ProfileLevelID parses the 6 character hexadecimal form of a
// profile-level-id into its profile and level.
func ParseH264ProfileLevelID(profileLevelID string) (H264ProfileLevelID, error) {
	if len(profileLevelID) != 6 {
		return H264ProfileLevelID{}, fmt.Errorf("%w: %q", errProfileLevelIDMalformed, profileLevelID)
	}

	numeric, err := strconv.ParseUint(profileLevelID, 16, 32)
	if err != nil || numeric == 0 {
		return H264ProfileLevelID{}, fmt.Errorf("%w: %q", errProfileLevelIDMalformed, profileLevelID)
	}

	levelIDC := uint8(numeric & 0xff)
	iop := uint8((numeric >> 8) & 0xff)
	idc := uint8((numeric >> 16) & 0xff)

	var level H264Level
	switch H264Level(levelIDC) {
	case H264Level1_1:
		if iop&constraintSet3 != 0 {
			level = H264Level1b
		} else {
			level = H264Level1_1
		}
	case H264Level1, H264Level1_2, H264Level1_3,
		H264Level2, H264Level2_1, H264Level2_2,
		H264Level3, H264Level3_1, H264Level3_2,
		H264Level4, H264Level4_1, H264Level4_2,
		H264Level5, H264Level5_1, H264Level5_2:
		level = H264Level(levelIDC)
	default:
		return H264ProfileLevelID{}, fmt.Errorf("%w: %q", errProfileLevelIDLevel, profileLevelID)
	}

	for _, pattern := range profilePatterns {
		if pattern.idc == idc && pattern.iop.match(iop) {
			return H264ProfileLevelID{pattern.profile, level}, nil
		}
	}

	return H264ProfileLevelID{}, fmt.Errorf("%w: %q", errProfileLevelIDProfile, profileLevelID)
}

// Marshal encodes the profile and level back into the 6 character
// hexadecimal form. Level 1b has dedicated encodings and exists only for
// the baseline and main profiles.
func (p H264ProfileLevelID) Marshal() (string, error) {
	if p.Level == H264Level1b {
		switch p.Profile {
		case H264ProfileConstrainedBaseline:
			return "42f00b", nil
		case H264ProfileBaseline:
			return "42100b", nil
		case H264ProfileMain:
			return "4d100b", nil
		default:
			return "", fmt.Errorf("%w %s", errLevel1bProfile, p.Profile)
		}
	}

	var idcIOP string
	switch p.Profile {
	case H264ProfileConstrainedBaseline:
		idcIOP = "42e0"
	case H264ProfileBaseline:
		idcIOP = "4200"
	case H264ProfileMain:
		idcIOP = "4d00"
	case H264ProfileConstrainedHigh:
		idcIOP = "640c"
	case H264ProfileHigh:
		idcIOP = "6400"
	case H264ProfilePredictiveHigh444:
		idcIOP = "f400"
	default:
		return "", fmt.Errorf("%w: %d", errProfileLevelIDProfile, p.Profile)
	}

	return fmt.Sprintf("%s%02x", idcIOP, uint8(p.Level)), nil
}
