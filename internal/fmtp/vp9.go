// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"errors"
	"fmt"
	"strconv"
)

type vp9FMTP struct {
	parameters map[string]string
}

func (v *vp9FMTP) MimeType() string {
	return "video/vp9"
}

func (v *vp9FMTP) Parameter(key string) (string, bool) {
	p, ok := v.parameters[key]

	return p, ok
}

// The VP9 bitstream profiles a profile-id parameter can select.
//
// RTP Payload Format for VP9 Video - draft-ietf-payload-vp9-16
// https://datatracker.ietf.org/doc/html/draft-ietf-payload-vp9-16
// If no profile-id is present, Profile 0 MUST be inferred.
const (
	VP9Profile0 uint8 = iota
	VP9Profile1
	VP9Profile2
	VP9Profile3
)

var errVP9ProfileIDInvalid = errors.New("invalid VP9 profile-id")

// ParseVP9Profile parses a profile-id parameter value into one of the
// four VP9 bitstream profiles.
func ParseVP9Profile(profileID string) (uint8, error) {
	p, err := strconv.ParseUint(profileID, 10, 8)
	if err != nil || p > uint64(VP9Profile3) {
		return 0, fmt.Errorf("%w: %q", errVP9ProfileIDInvalid, profileID)
	}

	return uint8(p), nil
}
