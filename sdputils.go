// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"fmt"
	"net/url"

	"github.com/pion/sdp/v3"

	"github.com/pion/calldesc/internal/fmtp"
)

// newSessionDescription returns the session level framing shared by every
// description this package builds. The origin is constant because the
// documents are synthesized fresh on both sides and never renegotiated.
func newSessionDescription(bundle string) *sdp.SessionDescription {
	return (&sdp.SessionDescription{
		Origin: sdp.Origin{
			Username:       "-",
			SessionID:      1,
			SessionVersion: 1,
			NetworkType:    "IN",
			AddressType:    "IP4",
			UnicastAddress: "0.0.0.0",
		},
		SessionName:      "-",
		TimeDescriptions: []sdp.TimeDescription{{}},
	}).
		WithValueAttribute(sdp.AttrKeyGroup, bundle).
		WithValueAttribute(sdp.AttrKeyMsidSemantic, msidSemanticWMS)
}

// newMediaSection starts one bundled, RTCP multiplexed media section with
// its transport attributes in place.
func newMediaSection(kind, mid string, ice ICEParameters, iceOptions string) *sdp.MediaDescription {
	media := &sdp.MediaDescription{
		MediaName: sdp.MediaName{
			Media:  kind,
			Port:   sdp.RangedPort{Value: 9},
			Protos: []string{"RTP", "SAVPF"},
		},
		ConnectionInformation: &sdp.ConnectionInformation{
			NetworkType: "IN",
			AddressType: "IP4",
			Address: &sdp.Address{
				Address: "0.0.0.0",
			},
		},
	}

	return media.
		WithValueAttribute(sdp.AttrKeyMID, mid).
		WithICECredentials(ice.UsernameFragment, ice.Password).
		WithValueAttribute(attrKeyICEOptions, iceOptions).
		WithPropertyAttribute(sdp.AttrKeyRTCPMux)
}

func extMap(id int, uri string) sdp.ExtMap {
	extURL, _ := url.Parse(uri)

	return sdp.ExtMap{Value: id, URI: extURL}
}

// audioExtensions lists the audio header extensions in wire order. Group
// calls add the audio level extension, which lets the SFU rank speakers
// without decrypting media.
func audioExtensions(withAudioLevel bool) []sdp.ExtMap {
	extensions := []sdp.ExtMap{extMap(extensionIDTransportCC, sdp.TransportCCURI)}
	if withAudioLevel {
		extensions = append(extensions, extMap(extensionIDAudioLevel, audioLevelURI))
	}

	return append(extensions, extMap(extensionIDAbsSendTime, sdp.ABSSendTimeURI))
}

func videoExtensions() []sdp.ExtMap {
	return []sdp.ExtMap{
		extMap(extensionIDTransportCC, sdp.TransportCCURI),
		extMap(extensionIDVideoOrientation, videoOrientationURI),
		extMap(extensionIDAbsSendTime, sdp.ABSSendTimeURI),
		extMap(extensionIDTransmissionOffset, transmissionOffsetURI),
	}
}

func withExtMaps(media *sdp.MediaDescription, extensions []sdp.ExtMap) {
	for _, extension := range extensions {
		media.WithExtMap(extension)
	}
}

func withRTCPFeedback(media *sdp.MediaDescription, payloadType uint8, feedback []string) {
	for _, fb := range feedback {
		media.WithValueAttribute("rtcp-fb", fmt.Sprintf("%d %s", payloadType, fb))
	}
}

// videoPayloadTypes maps a codec kind to its fixed primary and RTX
// payload types.
func videoPayloadTypes(kind VideoCodecKind) (pt, rtxPT uint8, ok bool) {
	switch kind {
	case VideoCodecVP8:
		return payloadTypeVP8, payloadTypeVP8RTX, true
	case VideoCodecVP9:
		return payloadTypeVP9, payloadTypeVP9RTX, true
	case VideoCodecH264ConstrainedBaseline:
		return payloadTypeH264ConstrainedBaseline, payloadTypeH264ConstrainedBaselineRTX, true
	case VideoCodecH264ConstrainedHigh:
		return payloadTypeH264ConstrainedHigh, payloadTypeH264ConstrainedHighRTX, true
	default:
		return 0, 0, false
	}
}

func videoCodecName(kind VideoCodecKind) string {
	switch kind {
	case VideoCodecVP9:
		return codecNameVP9
	case VideoCodecH264ConstrainedBaseline, VideoCodecH264ConstrainedHigh:
		return codecNameH264
	default:
		return codecNameVP8
	}
}

func videoCodecFmtp(codec VideoCodec) string {
	switch codec.Kind {
	case VideoCodecH264ConstrainedBaseline:
		return h264Fmtp(fmtp.H264ProfileConstrainedBaseline, codec.Level)
	case VideoCodecH264ConstrainedHigh:
		return h264Fmtp(fmtp.H264ProfileConstrainedHigh, codec.Level)
	default:
		return ""
	}
}

// h264Fmtp renders the fixed H264 parameter set. A level with no
// profile-level-id encoding leaves the parameter out, which receivers
// read back as the default profile.
func h264Fmtp(profile fmtp.H264Profile, level uint32) string {
	plid := fmtp.H264ProfileLevelID{Profile: profile, Level: fmtp.H264Level(level)}

	encoded, err := plid.Marshal()
	if err != nil {
		return "level-asymmetry-allowed=1;packetization-mode=1"
	}

	return "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=" + encoded
}

// withVideoCodecs emits the ranked codec list followed by the redundancy
// codecs, pairing every primary payload type with its RTX companion. The
// input is re-ranked, never trusted to arrive in priority order.
func withVideoCodecs(media *sdp.MediaDescription, codecs []VideoCodec, withULPFEC bool) {
	ranked := append([]VideoCodec(nil), codecs...)
	sortVideoCodecsByPriority(ranked)

	for _, codec := range ranked {
		pt, rtxPT, ok := videoPayloadTypes(codec.Kind)
		if !ok {
			continue
		}

		media.WithCodec(pt, videoCodecName(codec.Kind), videoClockRate, 0, videoCodecFmtp(codec))
		withRTCPFeedback(media, pt, videoRTCPFeedback)
		media.WithCodec(rtxPT, codecNameRTX, videoClockRate, 0, fmt.Sprintf("apt=%d", pt))
	}

	media.WithCodec(payloadTypeRED, codecNameRED, videoClockRate, 0, "")
	media.WithCodec(payloadTypeREDRTX, codecNameRTX, videoClockRate, 0, fmt.Sprintf("apt=%d", payloadTypeRED))

	if withULPFEC {
		media.WithCodec(payloadTypeULPFEC, codecNameULPFEC, videoClockRate, 0, "")
	}
}

// withRTXMediaSource emits one video stream and its retransmission
// companion: the FID group first, then the source attributes of both
// SSRCs.
func withRTXMediaSource(media *sdp.MediaDescription, ssrc, rtxSSRC uint32, cname, label string) {
	media.WithValueAttribute(sdp.AttrKeySSRCGroup, fmt.Sprintf("%s %d %d", sdp.SemanticTokenFlowIdentification, ssrc, rtxSSRC))
	media.WithMediaSource(ssrc, cname, label, label)
	media.WithMediaSource(rtxSSRC, cname, label, label)
}
