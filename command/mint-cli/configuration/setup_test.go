// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
)

func makeTestSeed(t *testing.T) string {
	seed, err := account.NewBase58EncodedSeedV2(true)
	if nil != err {
		t.Fatalf("make seed error: %s", err)
	}
	return seed
}

func TestAddIdentity(t *testing.T) {

	seed := makeTestSeed(t)

	config := &Configuration{
		TestNet:    true,
		Identities: make(map[string]Identity),
	}

	err := config.AddIdentity("alice", "first identity", seed, "password one")
	if nil != err {
		t.Fatalf("add identity error: %s", err)
	}

	private, err := config.Private("password one", "alice")
	if nil != err {
		t.Fatalf("private error: %s", err)
	}
	if seed != private.Seed {
		t.Errorf("seed: expected: %s", seed)
		t.Errorf("seed: actual:   %s", private.Seed)
	}

	acc, err := config.Account("alice")
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	if acc.String() != private.PrivateKey.Account().String() {
		t.Errorf("account mismatch: %s != %s", acc, private.PrivateKey.Account())
	}

	_, err = config.Private("wrong password", "alice")
	if fault.WrongPassword != err {
		t.Fatalf("wrong password: unexpected error: %s", err)
	}

	err = config.AddIdentity("alice", "again", seed, "password two")
	if fault.IdentityNameAlreadyExists != err {
		t.Fatalf("duplicate identity: unexpected error: %s", err)
	}
}

func TestAddReceiveOnlyIdentity(t *testing.T) {

	seed := makeTestSeed(t)
	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	accountText := private.Account().String()

	config := &Configuration{
		TestNet:    true,
		Identities: make(map[string]Identity),
	}

	err = config.AddReceiveOnlyIdentity("bob", "receive only", accountText)
	if nil != err {
		t.Fatalf("add identity error: %s", err)
	}

	acc, err := config.Account("bob")
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	if accountText != acc.String() {
		t.Errorf("account: expected: %s", accountText)
		t.Errorf("account: actual:   %s", acc)
	}

	_, err = config.Private("any password", "bob")
	if fault.NotPrivateKey != err {
		t.Fatalf("receive only private: unexpected error: %s", err)
	}
}

func TestChangePassword(t *testing.T) {

	seed := makeTestSeed(t)

	config := &Configuration{
		TestNet:    true,
		Identities: make(map[string]Identity),
	}

	err := config.AddIdentity("alice", "first identity", seed, "old password")
	if nil != err {
		t.Fatalf("add identity error: %s", err)
	}

	err = config.ChangePassword("alice", "old password", "new password")
	if nil != err {
		t.Fatalf("change password error: %s", err)
	}

	private, err := config.Private("new password", "alice")
	if nil != err {
		t.Fatalf("private error: %s", err)
	}
	if seed != private.Seed {
		t.Errorf("seed: expected: %s", seed)
		t.Errorf("seed: actual:   %s", private.Seed)
	}

	_, err = config.Private("old password", "alice")
	if fault.WrongPassword != err {
		t.Fatalf("old password: unexpected error: %s", err)
	}
}

func TestSaveLoad(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	seed := makeTestSeed(t)

	config := &Configuration{
		DefaultIdentity: "alice",
		TestNet:         true,
		Connections:     []string{"127.0.0.1:2230"},
		Fingerprint:     "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20",
		Identities:      make(map[string]Identity),
	}
	err = config.AddIdentity("alice", "first identity", seed, "password one")
	if nil != err {
		t.Fatalf("add identity error: %s", err)
	}

	fileName := filepath.Join(dir, "test-mint-cli.json")
	err = Save(fileName, config)
	if nil != err {
		t.Fatalf("save error: %s", err)
	}

	loaded, err := Load(fileName)
	if nil != err {
		t.Fatalf("load error: %s", err)
	}

	if config.DefaultIdentity != loaded.DefaultIdentity {
		t.Errorf("default identity: expected: %s  actual: %s", config.DefaultIdentity, loaded.DefaultIdentity)
	}
	if config.TestNet != loaded.TestNet {
		t.Errorf("testnet: expected: %t  actual: %t", config.TestNet, loaded.TestNet)
	}
	if config.Fingerprint != loaded.Fingerprint {
		t.Errorf("fingerprint: expected: %s  actual: %s", config.Fingerprint, loaded.Fingerprint)
	}
	if 1 != len(loaded.Connections) || config.Connections[0] != loaded.Connections[0] {
		t.Errorf("connections: expected: %v  actual: %v", config.Connections, loaded.Connections)
	}

	private, err := loaded.Private("password one", "alice")
	if nil != err {
		t.Fatalf("private error: %s", err)
	}
	if seed != private.Seed {
		t.Errorf("seed: expected: %s", seed)
		t.Errorf("seed: actual:   %s", private.Seed)
	}
}
