// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// FormatBytes - render a byte slice as Go source
//
// the record pack tests dump a freshly generated unit record this
// way when the expected bytes need regenerating
func FormatBytes(name string, data []byte) string {
	hexBytes := strings.Split(fmt.Sprintf("% #x", data), " ")

	var s strings.Builder
	s.WriteString(name + " := []byte{")

	column := 8
	for _, h := range hexBytes {
		column += 1
		if column >= 8 {
			s.WriteString("\n\t")
			column = 0
		}
		s.WriteString(h + ", ")
	}
	s.WriteString("\n}")
	return s.String()
}
