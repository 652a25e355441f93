// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

// Media section kinds as they appear in the m= line.
const (
	mediaKindAudio       = "audio"
	mediaKindVideo       = "video"
	mediaKindApplication = "application"
)

// MIDs of the bundled sections. Direct calls carry all three, group calls
// drop the data section.
const (
	audioMID = "audio"
	videoMID = "video"
	dataMID  = "data"

	directCallBundle = "BUNDLE audio video data"
	groupCallBundle  = "BUNDLE audio video"
)

// Codec names as they appear in rtpmap attributes.
const (
	codecNameOpus   = "opus"
	codecNameVP8    = "VP8"
	codecNameVP9    = "VP9"
	codecNameH264   = "H264"
	codecNameRTX    = "rtx"
	codecNameRED    = "red"
	codecNameULPFEC = "ulpfec"
	codecNameData   = "google-data"
)

// MIME types handed to the fmtp parser.
const (
	mimeTypeH264 = "video/H264"
	mimeTypeVP9  = "video/VP9"
)

const (
	opusClockRate  uint32 = 48000
	opusChannels   uint16 = 2
	videoClockRate uint32 = 90000
	dataClockRate  uint32 = 90000
)

// Payload type assignments, fixed for every description this package
// produces so an answer never renumbers the offer it replies to.
const (
	payloadTypeData                    uint8 = 101
	payloadTypeOpus                    uint8 = 102
	payloadTypeH264ConstrainedBaseline uint8 = 103
	payloadTypeH264ConstrainedHigh     uint8 = 104
	payloadTypeVP8                     uint8 = 108
	payloadTypeVP9                     uint8 = 109

	payloadTypeH264ConstrainedBaselineRTX uint8 = 113
	payloadTypeH264ConstrainedHighRTX     uint8 = 114
	payloadTypeVP8RTX                     uint8 = 118
	payloadTypeVP9RTX                     uint8 = 119

	payloadTypeRED    uint8 = 120
	payloadTypeREDRTX uint8 = 121
	payloadTypeULPFEC uint8 = 122
)

// Each side of a direct call takes its SSRCs from its own block, so the
// streams of the two sides can never collide.
const (
	offererSSRCBase  uint32 = 1000
	answererSSRCBase uint32 = 2000

	ssrcOffsetData     uint32 = 1
	ssrcOffsetAudio    uint32 = 2
	ssrcOffsetVideo    uint32 = 3
	ssrcOffsetVideoRTX uint32 = 13
)

// A group call member's SSRCs derive from its demux id, which the SFU
// allocates in multiples of 16. Consecutive simulcast layers are two
// apart, each followed by its RTX SSRC.
const (
	demuxOffsetAudio    uint32 = 0
	demuxOffsetVideo    uint32 = 2
	demuxOffsetVideoRTX uint32 = 3

	groupCallSimulcastLayers uint32 = 3
)

// RTP header extension ids, stable across every description.
const (
	extensionIDTransportCC        = 1
	extensionIDVideoOrientation   = 4
	extensionIDAudioLevel         = 5
	extensionIDAbsSendTime        = 12
	extensionIDTransmissionOffset = 13
)

// Extension URIs pion/sdp does not export.
const (
	videoOrientationURI   = "urn:3gpp:video-orientation"
	transmissionOffsetURI = "urn:ietf:params:rtp-hdrext:toffset"
	audioLevelURI         = "urn:ietf:params:rtp-hdrext:ssrc-audio-level"
)

// Attribute keys pion/sdp does not export.
const (
	attrKeyCrypto      = "crypto"
	attrKeyICEOptions  = "ice-options"
	attrKeyFingerprint = "fingerprint"
)

// ice-options values. The controlling side of a direct call may
// renominate; group calls stay with plain trickle.
const (
	iceOptionsDirectCall = "trickle renomination"
	iceOptionsGroupCall  = "trickle"
)

// Fixed identifiers stamped into every local stream.
const (
	audioTrackID    = "audio1"
	videoTrackID    = "video1"
	dataStreamLabel = "signaling"
	localCNAME      = "CNAMECNAMECNAME!"
)

// Opus parameter sets. Group calls cap the average bitrate lower and let
// DTX thin out silence between talk spurts.
const (
	opusDirectCallFmtp = "cbr=1;maxaveragebitrate=40000;maxptime=120;minptime=10;ptime=20;stereo=0;usedtx=0;useinbandfec=1"
	opusGroupCallFmtp  = "cbr=1;maxaveragebitrate=32000;maxptime=120;minptime=10;ptime=20;stereo=0;usedtx=1;useinbandfec=1"
)

// rtcp-fb entries every primary video codec carries; opus only asks for
// transport-wide congestion control.
var (
	videoRTCPFeedback = []string{"transport-cc", "ccm fir", "nack", "nack pli", "goog-remb"}
	audioRTCPFeedback = []string{"transport-cc"}
)

// dataChannelBandwidth caps the signaling data section, in kilobits.
const dataChannelBandwidth uint64 = 30

// sdesCryptoTag tags the single crypto attribute each media section
// carries once DTLS is disabled.
const sdesCryptoTag = 0

const msidSemanticWMS = "WMS*"
