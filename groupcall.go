// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/logging"
	"github.com/pion/sdp/v3"
)

// NewGroupCallLocalDescription synthesizes the local description of a
// group call member: its audio stream and three simulcast video layers
// with RTX, all derived from the member's demux id. The SRTP key is
// embedded as a crypto attribute; nothing DTLS related is emitted. A
// demux id of zero means the SFU has not assigned one yet and produces a
// description without streams.
func NewGroupCallLocalDescription(log logging.LeveledLogger, ice ICEParameters, key SRTPKey, demuxID uint32) *sdp.SessionDescription {
	return newGroupCallLocalDescription(log, ice, key, demuxID, groupCallDefaultCodecs())
}

// NewGroupCallLocalDescriptionWithCodecs is NewGroupCallLocalDescription
// with the fixed VP8 profile replaced by a caller supplied codec list,
// ranked and rendered identically to the direct call table.
func NewGroupCallLocalDescriptionWithCodecs(log logging.LeveledLogger, ice ICEParameters, key SRTPKey, demuxID uint32, codecs []VideoCodec) *sdp.SessionDescription {
	return newGroupCallLocalDescription(log, ice, key, demuxID, codecs)
}

// NewGroupCallRemoteDescription synthesizes the remote description that
// stands in for every other member of a group call: one audio stream and
// one video layer with RTX per demux id. Remote video never advertises
// simulcast; layer selection happens at the SFU.
func NewGroupCallRemoteDescription(log logging.LeveledLogger, ice ICEParameters, key SRTPKey, demuxIDs []uint32) *sdp.SessionDescription {
	return newGroupCallRemoteDescription(log, ice, key, demuxIDs, groupCallDefaultCodecs())
}

// NewGroupCallRemoteDescriptionWithCodecs is NewGroupCallRemoteDescription
// with a caller supplied codec list.
func NewGroupCallRemoteDescriptionWithCodecs(log logging.LeveledLogger, ice ICEParameters, key SRTPKey, demuxIDs []uint32, codecs []VideoCodec) *sdp.SessionDescription {
	return newGroupCallRemoteDescription(log, ice, key, demuxIDs, codecs)
}

// Group calls pin VP8 unless the caller negotiates otherwise.
func groupCallDefaultCodecs() []VideoCodec {
	return []VideoCodec{{Kind: VideoCodecVP8}}
}

func newGroupCallLocalDescription(log logging.LeveledLogger, ice ICEParameters, key SRTPKey, demuxID uint32, codecs []VideoCodec) *sdp.SessionDescription {
	desc, audio, video := newGroupCallDescription(ice, key, codecs)

	if demuxID == 0 {
		log.Warnf("skipping local streams: no demux id assigned yet")
	} else {
		video.WithValueAttribute("x-google-flag", "conference")
		addLocalGroupStreams(audio, video, demuxID)
	}

	audio.WithPropertyAttribute(sdp.AttrKeySendRecv)
	video.WithPropertyAttribute(sdp.AttrKeySendRecv)

	return desc.WithMedia(audio).WithMedia(video)
}

func newGroupCallRemoteDescription(log logging.LeveledLogger, ice ICEParameters, key SRTPKey, demuxIDs []uint32, codecs []VideoCodec) *sdp.SessionDescription {
	desc, audio, video := newGroupCallDescription(ice, key, codecs)

	valid := make([]uint32, 0, len(demuxIDs))
	for _, demuxID := range demuxIDs {
		if demuxID == 0 {
			log.Warnf("skipping streams for demux id 0")

			continue
		}
		valid = append(valid, demuxID)
	}

	if len(valid) > 0 {
		video.WithValueAttribute("x-google-flag", "conference")
	}
	for _, demuxID := range valid {
		addRemoteGroupStreams(audio, video, demuxID)
	}

	audio.WithPropertyAttribute(sdp.AttrKeySendRecv)
	video.WithPropertyAttribute(sdp.AttrKeySendRecv)

	return desc.WithMedia(audio).WithMedia(video)
}

// newGroupCallDescription builds the side independent frame of a group
// call description: audio and video sections carrying the crypto
// attribute, codecs and extensions. Stream attributes are attached by the
// caller, which knows which side it describes.
func newGroupCallDescription(ice ICEParameters, key SRTPKey, codecs []VideoCodec) (desc *sdp.SessionDescription, audio, video *sdp.MediaDescription) {
	desc = newSessionDescription(groupCallBundle)

	crypto := key.cryptoAttributeValue()

	audio = newMediaSection(mediaKindAudio, audioMID, ice, iceOptionsGroupCall)
	audio.WithValueAttribute(attrKeyCrypto, crypto)
	audio.WithCodec(payloadTypeOpus, codecNameOpus, opusClockRate, opusChannels, opusGroupCallFmtp)
	withRTCPFeedback(audio, payloadTypeOpus, audioRTCPFeedback)
	withExtMaps(audio, audioExtensions(true))

	video = newMediaSection(mediaKindVideo, videoMID, ice, iceOptionsGroupCall)
	video.WithPropertyAttribute(sdp.AttrKeyRTCPRsize)
	video.WithValueAttribute(attrKeyCrypto, crypto)
	withVideoCodecs(video, codecs, false)
	withExtMaps(video, videoExtensions())

	return desc, audio, video
}

// addLocalGroupStreams derives the local member's streams from its demux
// id: audio at the id itself, three simulcast video layers two apart with
// their RTX SSRCs one above each layer. The SIM group precedes the FID
// groups, which precede the per-SSRC attributes.
func addLocalGroupStreams(audio, video *sdp.MediaDescription, demuxID uint32) {
	cname := strconv.FormatUint(uint64(demuxID), 10)

	audio.WithMediaSource(demuxID+demuxOffsetAudio, cname, audioTrackID, audioTrackID)

	primaries := make([]string, 0, groupCallSimulcastLayers)
	for layer := uint32(0); layer < groupCallSimulcastLayers; layer++ {
		ssrc := demuxID + demuxOffsetVideo + 2*layer
		primaries = append(primaries, strconv.FormatUint(uint64(ssrc), 10))
	}
	video.WithValueAttribute(sdp.AttrKeySSRCGroup, "SIM "+strings.Join(primaries, " "))

	for layer := uint32(0); layer < groupCallSimulcastLayers; layer++ {
		ssrc := demuxID + demuxOffsetVideo + 2*layer
		video.WithValueAttribute(sdp.AttrKeySSRCGroup, fmt.Sprintf("%s %d %d", sdp.SemanticTokenFlowIdentification, ssrc, ssrc+1))
	}

	for layer := uint32(0); layer < groupCallSimulcastLayers; layer++ {
		ssrc := demuxID + demuxOffsetVideo + 2*layer
		video.WithMediaSource(ssrc, cname, videoTrackID, videoTrackID)
		video.WithMediaSource(ssrc+1, cname, videoTrackID, videoTrackID)
	}
}

// addRemoteGroupStreams derives one remote member's streams from its
// demux id: audio at the id itself and a single video layer with RTX. The
// demux id doubles as the stream identity everywhere a name is needed.
func addRemoteGroupStreams(audio, video *sdp.MediaDescription, demuxID uint32) {
	id := strconv.FormatUint(uint64(demuxID), 10)

	audio.WithMediaSource(demuxID+demuxOffsetAudio, id, id, id)
	withRTXMediaSource(video, demuxID+demuxOffsetVideo, demuxID+demuxOffsetVideoRTX, id, id)
}
