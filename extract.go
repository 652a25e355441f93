// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"strconv"
	"strings"

	"github.com/pion/logging"
	"github.com/pion/sdp/v3"

	"github.com/pion/calldesc/internal/fmtp"
)

// ExtractConnectionParameters reduces a session description to the
// negotiable core the signaling protocol exchanges: the ICE credentials
// of its first transport and the ranked video codecs of its first video
// section. It returns nil when the description carries no ICE
// credentials; unrecognized or unacceptable codecs are logged and
// skipped, never fatal.
func ExtractConnectionParameters(log logging.LeveledLogger, desc *sdp.SessionDescription) *ConnectionParameters {
	if desc == nil {
		return nil
	}

	ice, ok := extractICECredentials(desc)
	if !ok {
		return nil
	}

	params := &ConnectionParameters{ICE: ice}
	if video := firstVideoSection(desc); video != nil {
		params.VideoCodecs = videoCodecsFromMediaDescription(log, video)
	}

	sortVideoCodecsByPriority(params.VideoCodecs)

	return params
}

// extractICECredentials returns the first ufrag and pwd pair, session
// level attributes counting before per-media ones.
func extractICECredentials(desc *sdp.SessionDescription) (ICEParameters, bool) {
	ufrag, haveUfrag := desc.Attribute("ice-ufrag")
	pwd, havePwd := desc.Attribute("ice-pwd")
	if haveUfrag && havePwd {
		return ICEParameters{UsernameFragment: ufrag, Password: pwd}, true
	}

	for _, media := range desc.MediaDescriptions {
		ufrag, haveUfrag := media.Attribute("ice-ufrag")
		pwd, havePwd := media.Attribute("ice-pwd")
		if haveUfrag && havePwd {
			return ICEParameters{UsernameFragment: ufrag, Password: pwd}, true
		}
	}

	return ICEParameters{}, false
}

func firstVideoSection(desc *sdp.SessionDescription) *sdp.MediaDescription {
	for _, media := range desc.MediaDescriptions {
		if media.MediaName.Media == mediaKindVideo {
			return media
		}
	}

	return nil
}

// videoCodecsFromMediaDescription walks the video section's formats in
// document order and keeps every codec that passes the receive rules, at
// most one entry per kind.
func videoCodecsFromMediaDescription(log logging.LeveledLogger, media *sdp.MediaDescription) []VideoCodec {
	scoped := &sdp.SessionDescription{
		MediaDescriptions: []*sdp.MediaDescription{media},
	}

	var codecs []VideoCodec
	seen := map[VideoCodecKind]bool{}

	add := func(codec VideoCodec) {
		if seen[codec.Kind] {
			log.Infof("ignoring duplicate %s codec", codec.Kind)

			return
		}
		seen[codec.Kind] = true
		codecs = append(codecs, codec)
	}

	for _, payloadStr := range media.MediaName.Formats {
		payloadType, err := strconv.Atoi(payloadStr)
		if err != nil || payloadType < 0 || payloadType > 255 {
			continue
		}

		codec, err := scoped.GetCodecForPayloadType(uint8(payloadType))
		if err != nil {
			continue
		}

		switch {
		case strings.EqualFold(codec.Name, codecNameVP8):
			add(VideoCodec{Kind: VideoCodecVP8})

		case strings.EqualFold(codec.Name, codecNameVP9):
			if vp9, ok := vp9CodecFromFmtp(log, codec.Fmtp); ok {
				add(vp9)
			}

		case strings.EqualFold(codec.Name, codecNameH264):
			if h264, ok := h264CodecFromFmtp(log, codec.Fmtp); ok {
				add(h264)
			}
		}
	}

	return codecs
}

// h264CodecFromFmtp applies the H264 receive rules: level asymmetry and
// packetization mode must be 1 when present, and the profile must be
// constrained baseline or constrained high.
func h264CodecFromFmtp(log logging.LeveledLogger, raw string) (VideoCodec, bool) {
	parsed := fmtp.Parse(mimeTypeH264, raw)

	if v, ok := parsed.Parameter("level-asymmetry-allowed"); ok && v != "1" {
		log.Warnf("ignoring H264 codec with level-asymmetry-allowed %q", v)

		return VideoCodec{}, false
	}

	if v, ok := parsed.Parameter("packetization-mode"); ok && v != "1" {
		// Software encoders routinely offer mode 0, so no warning.
		log.Infof("ignoring H264 codec with packetization-mode %q", v)

		return VideoCodec{}, false
	}

	plid := fmtp.DefaultH264ProfileLevelID
	if v, ok := parsed.Parameter("profile-level-id"); ok {
		var err error
		if plid, err = fmtp.ParseH264ProfileLevelID(v); err != nil {
			log.Warnf("ignoring H264 codec with profile-level-id %q", v)

			return VideoCodec{}, false
		}
	}

	switch plid.Profile {
	case fmtp.H264ProfileConstrainedHigh:
		return VideoCodec{Kind: VideoCodecH264ConstrainedHigh, Level: uint32(plid.Level)}, true
	case fmtp.H264ProfileConstrainedBaseline:
		return VideoCodec{Kind: VideoCodecH264ConstrainedBaseline, Level: uint32(plid.Level)}, true
	default:
		log.Infof("ignoring H264 codec with %s profile", plid.Profile)

		return VideoCodec{}, false
	}
}

// vp9CodecFromFmtp accepts only VP9 profile 0. A missing profile-id
// parameter means profile 0.
func vp9CodecFromFmtp(log logging.LeveledLogger, raw string) (VideoCodec, bool) {
	parsed := fmtp.Parse(mimeTypeVP9, raw)

	profile := fmtp.VP9Profile0
	if v, ok := parsed.Parameter("profile-id"); ok {
		var err error
		if profile, err = fmtp.ParseVP9Profile(v); err != nil {
			log.Infof("ignoring VP9 codec with profile-id %q", v)

			return VideoCodec{}, false
		}
	}

	if profile != fmtp.VP9Profile0 {
		log.Infof("ignoring VP9 codec with profile %d", profile)

		return VideoCodec{}, false
	}

	return VideoCodec{Kind: VideoCodecVP9}, true
}
