// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"github.com/pion/sdp/v3"
)

// DisableDTLSAndSetSRTPKey rewrites a session description for a call
// whose keys travel out of band: every trace of the DTLS handshake goes
// away and a single crypto attribute carries the key into each media
// section. The pass is idempotent; reapplying it with the same key leaves
// the document byte-identical.
//
// The description is modified in place. On error it is left untouched.
func DisableDTLSAndSetSRTPKey(desc *sdp.SessionDescription, key SRTPKey) error {
	if desc == nil {
		return ErrNilSessionDescription
	}
	if len(desc.MediaDescriptions) == 0 {
		return ErrNoMediaSections
	}
	if err := key.Validate(); err != nil {
		return err
	}

	desc.Attributes = removeAttributes(desc.Attributes, attrKeyFingerprint, sdp.AttrKeyConnectionSetup)

	crypto := key.cryptoAttributeValue()
	for _, media := range desc.MediaDescriptions {
		media.MediaName.Protos = []string{"RTP", "SAVPF"}
		media.Attributes = removeAttributes(media.Attributes, attrKeyFingerprint, sdp.AttrKeyConnectionSetup, attrKeyCrypto)
		media.WithValueAttribute(attrKeyCrypto, crypto)
	}

	return nil
}

// removeAttributes drops every attribute whose key matches one of keys,
// preserving the order of the rest.
func removeAttributes(attributes []sdp.Attribute, keys ...string) []sdp.Attribute {
	kept := make([]sdp.Attribute, 0, len(attributes))

	for _, attribute := range attributes {
		remove := false
		for _, key := range keys {
			if attribute.Key == key {
				remove = true

				break
			}
		}
		if !remove {
			kept = append(kept, attribute)
		}
	}

	return kept
}
