// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Message - message to put into a queue
type Message struct {
	Command    string   // the type of the packed data
	Parameters [][]byte // array of parameters
}

// size of queue if no tag is present
const defaultQueueSize = 1000

// commands that only need to be broadcast when their data changes;
// repeated identical announcements are suppressed
var cacheableCommands = map[string]bool{
	"phase":      true,
	"price":      true,
	"baseuri":    true,
	"provenance": true,
}

// a 1:1 queue
type queue struct {
	c    chan Message
	size int
}

// a 1:M queue
// out is a list of subscriber channels
type broadcaster struct {
	sync.RWMutex
	in    chan Message
	out   []chan Message
	size  int
	cache map[string]string
}

// Bus - the list of messagebus queues
//
// note all must be exported (i.e. initial capital) or initialisation will panic
var Bus struct {
	Broadcast *broadcaster `size:"1000"`
	TestQueue *queue       `size:"50"`
}

// initialise all queues with queue sizes from the struct tags
func init() {

	busValue := reflect.ValueOf(&Bus).Elem()
	busType := busValue.Type()

	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)
		sizeTag := fieldInfo.Tag.Get("size")

		queueSize := defaultQueueSize
		if "" != sizeTag {
			s, err := strconv.Atoi(sizeTag)
			if nil != err {
				panic(fmt.Sprintf("queue: %v has invalid size: %q", fieldInfo.Name, sizeTag))
			}
			queueSize = s
		}

		switch busValue.Field(i).Interface().(type) {
		case *queue:
			q := &queue{
				c:    make(chan Message, queueSize),
				size: queueSize,
			}
			busValue.Field(i).Set(reflect.ValueOf(q))

		case *broadcaster:
			b := &broadcaster{
				in:    make(chan Message, queueSize),
				size:  queueSize,
				cache: make(map[string]string),
			}
			busValue.Field(i).Set(reflect.ValueOf(b))
			go b.run()

		default:
			panic(fmt.Sprintf("queue: %v has invalid type", fieldInfo.Name))
		}
	}
}

// Send - send a message to a 1:1 queue
func (q *queue) Send(command string, parameters ...[]byte) {
	q.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from a 1:1 queue
func (q *queue) Chan() <-chan Message {
	return q.c
}

// Release - discard any pending messages
//
// so a later reader starts from a clean queue
func (q *queue) Release() {
drain:
	for {
		select {
		case <-q.c:
		default:
			break drain
		}
	}
}

// Send - send a message to a 1:M queue
//
// cacheable messages identical to the previous broadcast of the
// same command are dropped
func (b *broadcaster) Send(command string, parameters ...[]byte) {

	if cacheableCommands[command] {
		data := command
		for _, p := range parameters {
			data += string(p)
		}

		b.Lock()
		if b.cache[command] == data {
			b.Unlock()
			return
		}
		b.cache[command] = data
		b.Unlock()
	}

	b.in <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - get a new channel to read from a 1:M queue
//
// each call gets a distinct channel receiving all subsequent messages
// size of zero gets the default size from the queue declaration
func (b *broadcaster) Chan(size int) <-chan Message {
	b.Lock()
	defer b.Unlock()

	if size <= 0 {
		size = b.size
	}
	c := make(chan Message, size)
	b.out = append(b.out, c)
	return c
}

// Release - drop the most recently obtained channel
//
// the caller must no longer read from the channel
func (b *broadcaster) Release() {
	b.Lock()
	defer b.Unlock()

	n := len(b.out) - 1
	if n < 0 {
		return
	}
	close(b.out[n])
	b.out = b.out[:n]
}

// DropCache - remove a message from the broadcast cache so an
// identical message can be sent again
func DropCache(m Message) {
	b := Bus.Broadcast
	b.Lock()
	delete(b.cache, m.Command)
	b.Unlock()
}

// fan out messages to all subscribers, dropping messages for any
// subscriber whose channel is full
func (b *broadcaster) run() {
	for m := range b.in {
		b.RLock()
		for _, out := range b.out {
			select {
			case out <- m:
			default:
			}
		}
		b.RUnlock()
	}
}
