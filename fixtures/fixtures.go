// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// test network accounts, the keys are fixed so that expected values
// can be pasted into tests
var (
	OperatorAccount  *account.Account
	BuyerAccount     *account.Account
	CollectorAccount *account.Account
	StrangerAccount  *account.Account
)

func init() {
	OperatorAccount = MakeAccount("f1e93108cd88a1923ac66e4b9d8fa22dd12303e5bcb4ab46c23e0a53b29bf1d8")
	BuyerAccount = MakeAccount("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db")
	CollectorAccount = MakeAccount("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e")
	StrangerAccount = MakeAccount("9cd1b246e0bf281215a2a2af34b93bbdd83ba2102b523d3e08c8b09e5b4d5e28")
}

// MakeAccount - create a test network account from a hex public key
func MakeAccount(publicKey string) *account.Account {
	k, err := hex.DecodeString(publicKey)
	if nil != err {
		panic(err)
	}
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: k,
		},
	}
}

var certificateData struct {
	sync.Once
	certificatePEM string
	keyPEM         string
}

// Certificate - PEM encoded self signed certificate for listener tests
func Certificate() string {
	makeCertificate()
	return certificateData.certificatePEM
}

// Key - PEM encoded private key matching Certificate
func Key() string {
	makeCertificate()
	return certificateData.keyPEM
}

func makeCertificate() {
	certificateData.Do(func() {
		org := "mintd self signed cert for: testing"
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair(org, validUntil, true, nil)
		if nil != err {
			panic(err)
		}
		certificateData.certificatePEM = string(cert)
		certificateData.keyPEM = string(key)
	})
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
