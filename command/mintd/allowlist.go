package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/common/log"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/authority"
	"github.com/bitmark-inc/mintd/sale"
)

// one line of the allowlist file
type allowlistEntry struct {
	account *account.Account
	quota   uint64
}

// parseAllowlistFile - read and check an allowlist file
//
// each non-blank line is:  <base58-account> <quota>
// comments run from "#" to end of line
func parseAllowlistFile(fileName string) ([]allowlistEntry, error) {

	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	entries := make([]allowlistEntry, 0, 64)
	seen := make(map[string]struct{})

	lineNumber := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNumber += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if "" == line {
			continue
		}

		fields := strings.Fields(line)
		if 2 != len(fields) {
			return nil, fmt.Errorf("line: %d expected: account and quota", lineNumber)
		}

		acc, err := account.AccountFromBase58(fields[0])
		if nil != err {
			return nil, fmt.Errorf("line: %d account: %q error: %s", lineNumber, fields[0], err)
		}

		quota, err := strconv.ParseUint(fields[1], 10, 64)
		if nil != err {
			return nil, fmt.Errorf("line: %d quota: %q error: %s", lineNumber, fields[1], err)
		}
		if 0 == quota {
			return nil, fmt.Errorf("line: %d quota cannot be zero", lineNumber)
		}

		if _, ok := seen[fields[0]]; ok {
			return nil, fmt.Errorf("line: %d duplicate account: %q", lineNumber, fields[0])
		}
		seen[fields[0]] = struct{}{}

		entries = append(entries, allowlistEntry{
			account: acc,
			quota:   quota,
		})
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	return entries, nil
}

// applyAllowlist - store the pre-sale allocations from a file
//
// the entries are grouped by quota to reduce the store calls and a
// file that fails to parse leaves the current allocations intact
func applyAllowlist(fileName string) error {

	entries, err := parseAllowlistFile(fileName)
	if nil != err {
		msg := fmt.Errorf("allowlist: %q error: %s", fileName, err)
		log.Errorf("%s", msg)
		return msg
	}

	groups := make(map[uint64][]*account.Account)
	for _, entry := range entries {
		groups[entry.quota] = append(groups[entry.quota], entry.account)
	}

	operator := authority.Operator()
	engine := sale.Get()
	for quota, participants := range groups {
		err = engine.SetAllocation(operator, participants, quota)
		if nil != err {
			msg := fmt.Errorf("allowlist: set allocation of: %d error: %s", quota, err)
			log.Errorf("%s", msg)
			return msg
		}
	}

	log.Infof("allowlist: %q applied: %d participants", fileName, len(entries))
	return nil
}
