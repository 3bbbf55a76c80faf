// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Save - write the configuration back, keeping the previous version
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	os.Remove(tempFile)

	file, err := os.Create(tempFile)
	if nil != err {
		return err
	}

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		file.Close()
		return err
	}

	_, err = fmt.Fprintf(file, "%s\n", b)
	file.Close()
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !strings.Contains(err.Error(), "no such file") {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !strings.Contains(err.Error(), "no such file") {
		return err
	}
	err = os.Rename(tempFile, filename)
	if nil != err {
		return err
	}

	return nil
}
