// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/authority"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/fixtures"
)

func TestHasCapability(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := authority.Initialise(
		fixtures.OperatorAccount,
		[]*account.Account{fixtures.CollectorAccount},
		[]*account.Account{fixtures.BuyerAccount},
	)
	assert.Nil(t, err, "wrong Initialise")
	defer authority.Finalise()

	// the operator holds every capability
	assert.True(t, authority.HasCapability(fixtures.OperatorAccount, authority.Admin), "operator missing Admin")
	assert.True(t, authority.HasCapability(fixtures.OperatorAccount, authority.ProjectAdmin), "operator missing ProjectAdmin")

	// configured accounts hold only their own capability
	assert.True(t, authority.HasCapability(fixtures.CollectorAccount, authority.Admin), "collector missing Admin")
	assert.False(t, authority.HasCapability(fixtures.CollectorAccount, authority.ProjectAdmin), "collector has ProjectAdmin")
	assert.True(t, authority.HasCapability(fixtures.BuyerAccount, authority.ProjectAdmin), "buyer missing ProjectAdmin")
	assert.False(t, authority.HasCapability(fixtures.BuyerAccount, authority.Admin), "buyer has Admin")

	// everyone else holds nothing
	assert.False(t, authority.HasCapability(fixtures.StrangerAccount, authority.Admin), "stranger has Admin")
	assert.False(t, authority.HasCapability(fixtures.StrangerAccount, authority.ProjectAdmin), "stranger has ProjectAdmin")
	assert.False(t, authority.HasCapability(nil, authority.Admin), "nil account has Admin")

	assert.Equal(t, fixtures.OperatorAccount, authority.Operator(), "wrong operator")
}

func TestInitialiseWithNilOperator(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := authority.Initialise(nil, nil, nil)
	assert.Equal(t, fault.InvalidRecipient, err, "wrong Initialise error")
}

func TestInitialiseTwice(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := authority.Initialise(fixtures.OperatorAccount, nil, nil)
	assert.Nil(t, err, "wrong Initialise")
	defer authority.Finalise()

	err = authority.Initialise(fixtures.OperatorAccount, nil, nil)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong second Initialise error")
}
