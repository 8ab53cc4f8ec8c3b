// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftforge/crafting/account"
	"github.com/craftforge/crafting/fault"
)

func makeIdentity(fill byte) account.Identity {
	var identity account.Identity
	for i := range identity {
		identity[i] = fill
	}
	return identity
}

func TestBase58RoundTrip(t *testing.T) {
	testData := []account.Identity{
		{},
		makeIdentity(0x01),
		makeIdentity(0xff),
		{0x9f, 0x01, 0x33, 0x07, 0x81, 0xfa, 0x2e, 0x6b,
			0x5a, 0x26, 0x42, 0xd0, 0x91, 0xbc, 0x0e, 0xd4,
			0x84, 0x55, 0x69, 0x2c, 0x95, 0x2d, 0x50, 0xd2,
			0x7f, 0xa8, 0x9a, 0x31, 0x9d, 0x0a, 0x3c, 0x11},
	}

	for i, expected := range testData {
		s := expected.String()
		actual, err := account.IdentityFromBase58(s)
		assert.Nil(t, err, "%d: decode error", i)
		assert.Equal(t, expected, actual, "%d: wrong identity", i)
	}
}

func TestBase58Checksum(t *testing.T) {
	identity := makeIdentity(0x42)
	s := identity.String()

	// flip one character so the checksum no longer matches
	c := []byte(s)
	if 'z' == c[3] {
		c[3] = 'x'
	} else {
		c[3] = 'z'
	}

	_, err := account.IdentityFromBase58(string(c))
	assert.NotNil(t, err, "corrupted text decoded without error")
}

func TestBase58WrongLength(t *testing.T) {
	_, err := account.IdentityFromBase58("3yZe7d")
	assert.Equal(t, fault.NotIdentity, err, "wrong error")
}

func TestIdentityFromBytes(t *testing.T) {
	buffer := make([]byte, account.IdentitySize)
	buffer[0] = 0x7a

	var identity account.Identity
	err := account.IdentityFromBytes(&identity, buffer)
	assert.Nil(t, err, "convert error")
	assert.Equal(t, byte(0x7a), identity[0], "wrong first byte")

	err = account.IdentityFromBytes(&identity, buffer[1:])
	assert.Equal(t, fault.NotIdentity, err, "wrong error for short buffer")
}

func TestMarshalText(t *testing.T) {
	identity := makeIdentity(0x37)

	text, err := identity.MarshalText()
	assert.Nil(t, err, "marshal error")

	var restored account.Identity
	err = restored.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, identity, restored, "wrong identity")
}

func TestIsZero(t *testing.T) {
	var zero account.Identity
	assert.True(t, zero.IsZero(), "zero identity not detected")
	assert.False(t, makeIdentity(0x01).IsZero(), "non-zero identity detected as zero")
}
