// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"sort"
)

// VideoCodecKind identifies one receivable video codec configuration. H264
// appears twice because the constrained baseline and constrained high
// profiles negotiate independently.
type VideoCodecKind int

// The codec configurations a description can carry.
const (
	VideoCodecVP8 VideoCodecKind = iota + 1
	VideoCodecVP9
	VideoCodecH264ConstrainedBaseline
	VideoCodecH264ConstrainedHigh
)

func (k VideoCodecKind) String() string {
	switch k {
	case VideoCodecVP8:
		return "VP8"
	case VideoCodecVP9:
		return "VP9"
	case VideoCodecH264ConstrainedBaseline:
		return "H264 constrained baseline"
	case VideoCodecH264ConstrainedHigh:
		return "H264 constrained high"
	default:
		return ErrUnknownType.Error()
	}
}

// VideoCodec is one entry of a ranked codec list. Level is the H264
// level_idc for the two H264 kinds and zero otherwise.
type VideoCodec struct {
	Kind  VideoCodecKind
	Level uint32
}

// Lower ranks are offered first.
func (k VideoCodecKind) priority() int {
	switch k {
	case VideoCodecVP9:
		return 0
	case VideoCodecH264ConstrainedHigh:
		return 1
	case VideoCodecH264ConstrainedBaseline:
		return 2
	case VideoCodecVP8:
		return 3
	default:
		return 4
	}
}

// sortVideoCodecsByPriority orders codecs VP9 first, then H264 constrained
// high, H264 constrained baseline and VP8, keeping the relative order of
// entries that rank equally.
func sortVideoCodecsByPriority(codecs []VideoCodec) {
	sort.SliceStable(codecs, func(i, j int) bool {
		return codecs[i].Kind.priority() < codecs[j].Kind.priority()
	})
}
