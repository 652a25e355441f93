// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package calldesc builds and reduces the session descriptions of a
// constrained calling protocol. Callers never exchange SDP: they exchange
// a compact summary of it and both sides synthesize the full description
// locally, with SRTP keys distributed out of band instead of a DTLS
// handshake.
package calldesc

// ConnectionParameters is the negotiable core of a session description:
// the ICE credentials of its transport and the ranked list of video
// codecs the sender is willing to receive. Two parties exchange only
// this; each side then synthesizes the full description locally.
type ConnectionParameters struct {
	ICE         ICEParameters
	VideoCodecs []VideoCodec
}
