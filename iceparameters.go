// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package calldesc

import (
	"github.com/pion/randutil"
)

// ICEParameters are the username fragment and password that authenticate
// connectivity checks for one call.
type ICEParameters struct {
	UsernameFragment string
	Password         string
}

// Credential lengths and alphabet. The alphabet stays strictly
// alphanumeric so the credentials survive being embedded in URLs and
// HTTP headers on the way to the SFU.
const (
	iceUsernameFragmentLen = 4
	icePasswordLen         = 22

	runesAlpha = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	runesDigit = "0123456789"
)

// GenerateICEParameters creates the random credentials a client offers
// when joining a group call.
func GenerateICEParameters() (ICEParameters, error) {
	ufrag, err := randutil.GenerateCryptoRandomString(iceUsernameFragmentLen, runesAlpha+runesDigit)
	if err != nil {
		return ICEParameters{}, err
	}

	pwd, err := randutil.GenerateCryptoRandomString(icePasswordLen, runesAlpha+runesDigit)
	if err != nil {
		return ICEParameters{}, err
	}

	return ICEParameters{UsernameFragment: ufrag, Password: pwd}, nil
}
