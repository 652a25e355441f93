// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/pion/srtp/v3"
)

// SRTPKey is explicit keying material for one direction of a call. It is
// distributed out of band and stamped into the session description as a
// crypto attribute instead of being negotiated by a handshake.
type SRTPKey struct {
	Profile srtp.ProtectionProfile
	Key     []byte
	Salt    []byte
}

// sdesCryptoSuiteName returns the RFC 4568 crypto-suite name for a
// protection profile, or "" when the profile has no SDES spelling.
func sdesCryptoSuiteName(profile srtp.ProtectionProfile) string {
	switch profile {
	case srtp.ProtectionProfileAes128CmHmacSha1_80:
		return "AES_CM_128_HMAC_SHA1_80"
	case srtp.ProtectionProfileAes128CmHmacSha1_32:
		return "AES_CM_128_HMAC_SHA1_32"
	case srtp.ProtectionProfileAeadAes128Gcm:
		return "AEAD_AES_128_GCM"
	case srtp.ProtectionProfileAeadAes256Gcm:
		return "AEAD_AES_256_GCM"
	default:
		return ""
	}
}

// Validate reports whether the profile can be written as a crypto
// attribute and the key and salt have the lengths it requires.
func (k SRTPKey) Validate() error {
	if sdesCryptoSuiteName(k.Profile) == "" {
		return fmt.Errorf("%w: %v", ErrUnsupportedProtectionProfile, k.Profile)
	}

	keyLen, err := k.Profile.KeyLen()
	if err != nil {
		return err
	}
	saltLen, err := k.Profile.SaltLen()
	if err != nil {
		return err
	}

	if len(k.Key) != keyLen {
		return fmt.Errorf("%w: have %d, want %d", ErrSRTPKeyLength, len(k.Key), keyLen)
	}
	if len(k.Salt) != saltLen {
		return fmt.Errorf("%w: have %d, want %d", ErrSRTPSaltLength, len(k.Salt), saltLen)
	}

	return nil
}

// keyParams encodes the concatenated key and salt the way a crypto
// attribute carries them.
func (k SRTPKey) keyParams() string {
	material := make([]byte, 0, len(k.Key)+len(k.Salt))
	material = append(material, k.Key...)
	material = append(material, k.Salt...)

	return "inline:" + base64.StdEncoding.EncodeToString(material)
}

// cryptoAttributeValue renders the value of the single crypto attribute a
// media section carries: tag, suite name and key parameters.
func (k SRTPKey) cryptoAttributeValue() string {
	return fmt.Sprintf("%d %s %s", sdesCryptoTag, sdesCryptoSuiteName(k.Profile), k.keyParams())
}

// GenerateSRTPKey creates random keying material sized for the profile.
func GenerateSRTPKey(profile srtp.ProtectionProfile) (SRTPKey, error) {
	keyLen, err := profile.KeyLen()
	if err != nil {
		return SRTPKey{}, err
	}
	saltLen, err := profile.SaltLen()
	if err != nil {
		return SRTPKey{}, err
	}

	material := make([]byte, keyLen+saltLen)
	if _, err := rand.Read(material); err != nil {
		return SRTPKey{}, err
	}

	return SRTPKey{Profile: profile, Key: material[:keyLen], Salt: material[keyLen:]}, nil
}
