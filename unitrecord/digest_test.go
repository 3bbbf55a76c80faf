// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unitrecord_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/unitrecord"
)

// digest of the packed record from TestPackUnitIssue
func TestMakeDigest(t *testing.T) {

	r := unitrecord.UnitIssue{
		Id:        5,
		Owner:     makeAccount(buyerPublicKey),
		Origin:    unitrecord.PreSaleOrigin,
		Price:     250,
		Timestamp: 1600000000,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	digest := packed.MakeDigest()

	expected := "9a16b42feac57a5ddc83d2a2a0d971b9b97dd4e84609046b6db0884abcb2f2fb"
	if expected != digest.String() {
		t.Errorf("digest: %s  expected: %s", digest, expected)
	}

	// hex text round trip
	text, err := digest.MarshalText()
	if nil != err {
		t.Fatalf("marshal text error: %s", err)
	}
	var back unitrecord.Digest
	err = back.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal text error: %s", err)
	}
	if digest != back {
		t.Errorf("digest: %#v  expected: %#v", back, digest)
	}

	// binary round trip
	err = unitrecord.DigestFromBytes(&back, digest.Bytes())
	if nil != err {
		t.Fatalf("digest from bytes error: %s", err)
	}
	if !bytes.Equal(digest.Bytes(), back.Bytes()) {
		t.Errorf("digest: %x  expected: %x", back.Bytes(), digest.Bytes())
	}

	// truncated forms are rejected
	err = back.UnmarshalText(text[2:])
	if fault.NotDigest != err {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	err = unitrecord.DigestFromBytes(&back, digest.Bytes()[1:])
	if fault.NotDigest != err {
		t.Fatalf("unexpected from bytes error: %v", err)
	}
}
