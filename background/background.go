// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - setup and run a group of background processes
package background

// Process - the method needed by this library
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for later stopping
type T struct {
	finished chan struct{}
	s        []chan struct{}
}

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finished: make(chan struct{}),
		s:        make([]chan struct{}, len(processes)),
	}

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		register.s[i] = shutdown
		go func(p Process, shutdown <-chan struct{}) {
			p.Run(args, shutdown)
			register.finished <- struct{}{}
		}(p, shutdown)
	}
	return register
}

// Stop - stop a set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, shutdown := range t.s {
		close(shutdown)
	}

	// wait for finished
	for range t.s {
		<-t.finished
	}
}
