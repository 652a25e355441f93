// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractConnectionParameters(t *testing.T) {
	t.Run("FullOffer", func(t *testing.T) {
		const raw = `v=0
o=- 4596489990601351948 2 IN IP4 127.0.0.1
s=-
t=0 0
a=group:BUNDLE audio video
a=msid-semantic: WMS stream
m=audio 9 UDP/TLS/RTP/SAVPF 111
c=IN IP4 0.0.0.0
a=mid:audio
a=ice-ufrag:f4Xw
a=ice-pwd:D8cS2HhEKw0Zg8GK1CGOs9Ah
a=fingerprint:sha-256 19:E2:1C:3B:4B:9F:81:E6:B8:5C:F4:A5:A8:D8:73:04:BB:05:2F:70:9F:04:A9:0E:05:E9:26:33:E8:70:88:A2
a=setup:actpass
a=sendrecv
a=rtcp-mux
a=rtpmap:111 opus/48000/2
a=fmtp:111 minptime=10;useinbandfec=1
m=video 9 UDP/TLS/RTP/SAVPF 96 97 98 99 100
c=IN IP4 0.0.0.0
a=mid:video
a=ice-ufrag:f4Xw
a=ice-pwd:D8cS2HhEKw0Zg8GK1CGOs9Ah
a=fingerprint:sha-256 19:E2:1C:3B:4B:9F:81:E6:B8:5C:F4:A5:A8:D8:73:04:BB:05:2F:70:9F:04:A9:0E:05:E9:26:33:E8:70:88:A2
a=setup:actpass
a=sendrecv
a=rtcp-mux
a=rtpmap:96 VP8/90000
a=rtcp-fb:96 nack
a=rtpmap:97 rtx/90000
a=fmtp:97 apt=96
a=rtpmap:98 H264/90000
a=fmtp:98 level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42E01F
a=rtpmap:99 rtx/90000
a=fmtp:99 apt=98
a=rtpmap:100 red/90000
`
		log := &testLogger{}
		params := ExtractConnectionParameters(log, mustParse(t, raw))
		require.NotNil(t, params)

		assert.Equal(t, ICEParameters{UsernameFragment: "f4Xw", Password: "D8cS2HhEKw0Zg8GK1CGOs9Ah"}, params.ICE)
		assert.Equal(t, []VideoCodec{
			{Kind: VideoCodecH264ConstrainedBaseline, Level: 31},
			{Kind: VideoCodecVP8},
		}, params.VideoCodecs)
	})

	t.Run("SessionLevelCredentials", func(t *testing.T) {
		const raw = `v=0
o=- 1 1 IN IP4 0.0.0.0
s=-
t=0 0
a=ice-ufrag:sess
a=ice-pwd:sessionpassword0123456
m=audio 9 UDP/TLS/RTP/SAVPF 111
c=IN IP4 0.0.0.0
a=ice-ufrag:med
a=ice-pwd:mediapassword012345678
a=rtpmap:111 opus/48000/2
`
		params := ExtractConnectionParameters(&testLogger{}, mustParse(t, raw))
		require.NotNil(t, params)
		assert.Equal(t, ICEParameters{UsernameFragment: "sess", Password: "sessionpassword0123456"}, params.ICE)
	})

	t.Run("NoCredentials", func(t *testing.T) {
		const raw = `v=0
o=- 1 1 IN IP4 0.0.0.0
s=-
t=0 0
m=audio 9 UDP/TLS/RTP/SAVPF 111
c=IN IP4 0.0.0.0
a=rtpmap:111 opus/48000/2
`
		assert.Nil(t, ExtractConnectionParameters(&testLogger{}, mustParse(t, raw)))
	})

	t.Run("NilDescription", func(t *testing.T) {
		assert.Nil(t, ExtractConnectionParameters(&testLogger{}, nil))
	})

	t.Run("NoVideoSection", func(t *testing.T) {
		const raw = `v=0
o=- 1 1 IN IP4 0.0.0.0
s=-
t=0 0
m=audio 9 UDP/TLS/RTP/SAVPF 111
c=IN IP4 0.0.0.0
a=ice-ufrag:f4Xw
a=ice-pwd:D8cS2HhEKw0Zg8GK1CGOs9Ah
a=rtpmap:111 opus/48000/2
`
		params := ExtractConnectionParameters(&testLogger{}, mustParse(t, raw))
		require.NotNil(t, params)
		assert.Equal(t, "f4Xw", params.ICE.UsernameFragment)
		assert.Empty(t, params.VideoCodecs)
	})

	t.Run("PacketizationMode", func(t *testing.T) {
		const raw = `v=0
o=- 1 1 IN IP4 0.0.0.0
s=-
t=0 0
m=video 9 UDP/TLS/RTP/SAVPF 96 97 98
c=IN IP4 0.0.0.0
a=ice-ufrag:f4Xw
a=ice-pwd:D8cS2HhEKw0Zg8GK1CGOs9Ah
a=rtpmap:96 H264/90000
a=fmtp:96 packetization-mode=0;profile-level-id=42e01f
a=rtpmap:97 H264/90000
a=fmtp:97 packetization-mode=1;profile-level-id=640c1f
a=rtpmap:98 H264/90000
a=fmtp:98 profile-level-id=42e01f
`
		log := &testLogger{}
		params := ExtractConnectionParameters(log, mustParse(t, raw))
		require.NotNil(t, params)

		// mode 0 is refused, mode 1 and an absent mode are accepted
		assert.Equal(t, []VideoCodec{
			{Kind: VideoCodecH264ConstrainedHigh, Level: 31},
			{Kind: VideoCodecH264ConstrainedBaseline, Level: 31},
		}, params.VideoCodecs)
		assert.Contains(t, log.infos, `ignoring H264 codec with packetization-mode "0"`)
		assert.Empty(t, log.warnings)
	})

	t.Run("LevelAsymmetry", func(t *testing.T) {
		const raw = `v=0
o=- 1 1 IN IP4 0.0.0.0
s=-
t=0 0
m=video 9 UDP/TLS/RTP/SAVPF 96
c=IN IP4 0.0.0.0
a=ice-ufrag:f4Xw
a=ice-pwd:D8cS2HhEKw0Zg8GK1CGOs9Ah
a=rtpmap:96 H264/90000
a=fmtp:96 level-asymmetry-allowed=0;packetization-mode=1;profile-level-id=42e01f
`
		log := &testLogger{}
		params := ExtractConnectionParameters(log, mustParse(t, raw))
		require.NotNil(t, params)

		assert.Empty(t, params.VideoCodecs)
		assert.Contains(t, log.warnings, `ignoring H264 codec with level-asymmetry-allowed "0"`)
	})

	t.Run("H264Profiles", func(t *testing.T) {
		const raw = `v=0
o=- 1 1 IN IP4 0.0.0.0
s=-
t=0 0
m=video 9 UDP/TLS/RTP/SAVPF 96 97 98 99
c=IN IP4 0.0.0.0
a=ice-ufrag:f4Xw
a=ice-pwd:D8cS2HhEKw0Zg8GK1CGOs9Ah
a=rtpmap:96 H264/90000
a=fmtp:96 level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=64001f
a=rtpmap:97 H264/90000
a=fmtp:97 level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=4d401f
a=rtpmap:98 H264/90000
a=fmtp:98 level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=zzzzzz
a=rtpmap:99 H264/90000
`
		log := &testLogger{}
		params := ExtractConnectionParameters(log, mustParse(t, raw))
		require.NotNil(t, params)

		// only the parameterless H264 survives, as the default profile
		assert.Equal(t, []VideoCodec{
			{Kind: VideoCodecH264ConstrainedBaseline, Level: 31},
		}, params.VideoCodecs)
		assert.Contains(t, log.infos, "ignoring H264 codec with high profile")
		assert.Contains(t, log.infos, "ignoring H264 codec with main profile")
		assert.Contains(t, log.warnings, `ignoring H264 codec with profile-level-id "zzzzzz"`)
	})

	t.Run("Duplicates", func(t *testing.T) {
		const raw = `v=0
o=- 1 1 IN IP4 0.0.0.0
s=-
t=0 0
m=video 9 UDP/TLS/RTP/SAVPF 96 97 98 99
c=IN IP4 0.0.0.0
a=ice-ufrag:f4Xw
a=ice-pwd:D8cS2HhEKw0Zg8GK1CGOs9Ah
a=rtpmap:96 VP8/90000
a=rtpmap:97 VP8/90000
a=rtpmap:98 H264/90000
a=fmtp:98 level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f
a=rtpmap:99 H264/90000
a=fmtp:99 level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e034
`
		log := &testLogger{}
		params := ExtractConnectionParameters(log, mustParse(t, raw))
		require.NotNil(t, params)

		// first appearance wins, later duplicates of a kind are dropped
		assert.Equal(t, []VideoCodec{
			{Kind: VideoCodecH264ConstrainedBaseline, Level: 31},
			{Kind: VideoCodecVP8},
		}, params.VideoCodecs)
		assert.Contains(t, log.infos, "ignoring duplicate VP8 codec")
		assert.Contains(t, log.infos, "ignoring duplicate H264 constrained baseline codec")
	})

	t.Run("VP9Profiles", func(t *testing.T) {
		const raw = `v=0
o=- 1 1 IN IP4 0.0.0.0
s=-
t=0 0
m=video 9 UDP/TLS/RTP/SAVPF 96 97 98
c=IN IP4 0.0.0.0
a=ice-ufrag:f4Xw
a=ice-pwd:D8cS2HhEKw0Zg8GK1CGOs9Ah
a=rtpmap:96 VP9/90000
a=fmtp:96 profile-id=2
a=rtpmap:97 VP9/90000
a=fmtp:97 profile-id=x
a=rtpmap:98 VP9/90000
a=fmtp:98 profile-id=0
`
		log := &testLogger{}
		params := ExtractConnectionParameters(log, mustParse(t, raw))
		require.NotNil(t, params)

		assert.Equal(t, []VideoCodec{{Kind: VideoCodecVP9}}, params.VideoCodecs)
		assert.Contains(t, log.infos, "ignoring VP9 codec with profile 2")
		assert.Contains(t, log.infos, `ignoring VP9 codec with profile-id "x"`)
	})

	t.Run("UnknownFormats", func(t *testing.T) {
		const raw = `v=0
o=- 1 1 IN IP4 0.0.0.0
s=-
t=0 0
m=video 9 UDP/TLS/RTP/SAVPF 35 96 49 120 121 122
c=IN IP4 0.0.0.0
a=ice-ufrag:f4Xw
a=ice-pwd:D8cS2HhEKw0Zg8GK1CGOs9Ah
a=rtpmap:96 VP8/90000
a=rtpmap:49 flexfec-03/90000
a=rtpmap:120 red/90000
a=rtpmap:121 rtx/90000
a=fmtp:121 apt=120
a=rtpmap:122 ulpfec/90000
`
		log := &testLogger{}
		params := ExtractConnectionParameters(log, mustParse(t, raw))
		require.NotNil(t, params)

		// 35 has no rtpmap, the rest are not acceptable video codecs
		assert.Equal(t, []VideoCodec{{Kind: VideoCodecVP8}}, params.VideoCodecs)
		assert.Empty(t, log.infos)
		assert.Empty(t, log.warnings)
	})
}
