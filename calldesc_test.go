// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pion/sdp/v3"
	"github.com/pion/srtp/v3"
	"github.com/stretchr/testify/require"
)

// testLogger records what the package logs so tests can assert on it.
type testLogger struct {
	infos    []string
	warnings []string
	errs     []string
}

func (l *testLogger) Trace(string)                  {}
func (l *testLogger) Tracef(string, ...interface{}) {}
func (l *testLogger) Debug(string)                  {}
func (l *testLogger) Debugf(string, ...interface{}) {}

func (l *testLogger) Info(msg string) { l.infos = append(l.infos, msg) }
func (l *testLogger) Infof(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *testLogger) Warn(msg string) { l.warnings = append(l.warnings, msg) }
func (l *testLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *testLogger) Error(msg string) { l.errs = append(l.errs, msg) }
func (l *testLogger) Errorf(format string, args ...interface{}) {
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

func mustParse(t *testing.T, raw string) *sdp.SessionDescription {
	t.Helper()

	parsed := &sdp.SessionDescription{}
	require.NoError(t, parsed.Unmarshal([]byte(raw)))

	return parsed
}

func mustMarshal(t *testing.T, desc *sdp.SessionDescription) string {
	t.Helper()

	out, err := desc.Marshal()
	require.NoError(t, err)

	return string(out)
}

// attributeValues collects the values of every attribute with the key, in
// document order.
func attributeValues(media *sdp.MediaDescription, key string) []string {
	var values []string
	for _, attribute := range media.Attributes {
		if attribute.Key == key {
			values = append(values, attribute.Value)
		}
	}

	return values
}

// distinctSSRCs returns each SSRC of the section once, in first
// appearance order.
func distinctSSRCs(media *sdp.MediaDescription) []string {
	seen := map[string]bool{}

	var ssrcs []string
	for _, value := range attributeValues(media, sdp.AttrKeySSRC) {
		id := strings.Fields(value)[0]
		if !seen[id] {
			seen[id] = true
			ssrcs = append(ssrcs, id)
		}
	}

	return ssrcs
}

// testSRTPKey returns fixed keying material so crypto attributes are
// predictable in assertions.
func testSRTPKey() SRTPKey {
	return SRTPKey{
		Profile: srtp.ProtectionProfileAes128CmHmacSha1_80,
		Key:     []byte("0123456789abcdef"),
		Salt:    []byte("0123456789abcd"),
	}
}

// testSRTPKey rendered as a crypto attribute value.
const testCryptoValue = "0 AES_CM_128_HMAC_SHA1_80 inline:MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNk"
