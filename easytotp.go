// Copyright 2026 The easytotp Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package easytotp provisions TOTP keys and renders their QR setup
codes, as terminal art or as PNG.
*/
package easytotp

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTP parameters used for all keys.
const (
	period = 30 // seconds per code
	skew   = 1  // accepted clock skew in periods
)

var validateOpts = totp.ValidateOpts{
	Period:    period,
	Skew:      skew,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA512,
}

// A Key is a provisioned TOTP key for one account.
type Key struct {
	// Level is the QR error correction level used by QR, PNG and
	// Render.  The default is M.
	Level Level

	key *otp.Key
}

// New creates a TOTP key for account at issuer.  secret is the raw
// (not base32 encoded) shared secret; if empty, a random secret is
// generated.  Codes are six digits of SHA-512 HMAC over 30 second
// periods.
func New(secret, issuer, account string) (*Key, error) {
	k, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
		Secret:      []byte(secret),
		Period:      period,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA512,
	})
	if err != nil {
		return nil, fmt.Errorf("easytotp: creating key: %w", err)
	}
	return &Key{Level: M, key: k}, nil
}

// Secret returns the base32 encoded secret.
//
// BEWARE: anyone holding the secret can generate codes.
func (k *Key) Secret() string { return k.key.Secret() }

// URL returns the otpauth URL for provisioning the key manually.
func (k *Key) URL() string { return k.key.URL() }

// Code returns the one-time code for the current time.
func (k *Key) Code() (string, error) { return k.CodeAt(time.Now()) }

// CodeAt returns the one-time code for time t.
func (k *Key) CodeAt(t time.Time) (string, error) {
	s, err := totp.GenerateCodeCustom(k.key.Secret(), t, validateOpts)
	if err != nil {
		return "", fmt.Errorf("easytotp: generating code: %w", err)
	}
	return s, nil
}

// Validate reports whether code is valid now, allowing one period of
// clock skew either way.
func (k *Key) Validate(code string) bool {
	ok, _ := totp.ValidateCustom(code, k.key.Secret(), time.Now(),
		validateOpts)
	return ok
}
