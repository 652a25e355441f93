// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"errors"
)

var (
	// ErrUnknownType indicates an enum value with no string representation.
	ErrUnknownType = errors.New("unknown")

	// ErrNilSessionDescription indicates an operation was invoked on a nil
	// session description.
	ErrNilSessionDescription = errors.New("session description is nil")

	// ErrNoMediaSections indicates a session description without a single
	// media section, which leaves the keying material nowhere to go.
	ErrNoMediaSections = errors.New("session description has no media sections")

	// ErrUnsupportedProtectionProfile indicates an SRTP protection profile
	// that has no SDES crypto-suite name.
	ErrUnsupportedProtectionProfile = errors.New("unsupported SRTP protection profile")

	// ErrSRTPKeyLength indicates a key that does not match the length the
	// protection profile requires.
	ErrSRTPKeyLength = errors.New("SRTP key length does not match protection profile")

	// ErrSRTPSaltLength indicates a salt that does not match the length the
	// protection profile requires.
	ErrSRTPSaltLength = errors.New("SRTP salt length does not match protection profile")
)
