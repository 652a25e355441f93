// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"github.com/pion/sdp/v3"
)

// NewDirectCallDescription synthesizes the complete offer or answer of a
// two party call from its negotiated connection parameters. The document
// bundles an audio, a video and a signaling data section on one RTCP
// multiplexed transport and is fully deterministic: the offerer and the
// answerer draw their SSRCs from disjoint fixed blocks, so the streams of
// the two sides can never collide. DTLS stays disabled; keying material
// is installed afterwards by DisableDTLSAndSetSRTPKey.
func NewDirectCallDescription(isOffer bool, params ConnectionParameters) *sdp.SessionDescription {
	baseSSRC := answererSSRCBase
	if isOffer {
		baseSSRC = offererSSRCBase
	}

	desc := newSessionDescription(directCallBundle)

	audio := newMediaSection(mediaKindAudio, audioMID, params.ICE, iceOptionsDirectCall)
	audio.WithCodec(payloadTypeOpus, codecNameOpus, opusClockRate, opusChannels, opusDirectCallFmtp)
	withRTCPFeedback(audio, payloadTypeOpus, audioRTCPFeedback)
	withExtMaps(audio, audioExtensions(false))
	audio.WithMediaSource(baseSSRC+ssrcOffsetAudio, localCNAME, audioTrackID, audioTrackID)
	audio.WithPropertyAttribute(sdp.AttrKeySendRecv)

	video := newMediaSection(mediaKindVideo, videoMID, params.ICE, iceOptionsDirectCall)
	video.WithPropertyAttribute(sdp.AttrKeyRTCPRsize)
	withVideoCodecs(video, params.VideoCodecs, true)
	withExtMaps(video, videoExtensions())
	withRTXMediaSource(video, baseSSRC+ssrcOffsetVideo, baseSSRC+ssrcOffsetVideoRTX, localCNAME, videoTrackID)
	video.WithPropertyAttribute(sdp.AttrKeySendRecv)

	data := newMediaSection(mediaKindApplication, dataMID, params.ICE, iceOptionsDirectCall)
	data.Bandwidth = []sdp.Bandwidth{{Type: "AS", Bandwidth: dataChannelBandwidth}}
	data.WithCodec(payloadTypeData, codecNameData, dataClockRate, 0, "")
	data.WithMediaSource(baseSSRC+ssrcOffsetData, localCNAME, dataStreamLabel, dataStreamLabel)
	data.WithPropertyAttribute(sdp.AttrKeySendRecv)

	return desc.WithMedia(audio).WithMedia(video).WithMedia(data)
}
