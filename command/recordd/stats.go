// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log heap usage
type memoryStats struct {
	log *logger.L
}

// Run - args is the reporting interval as a time.Duration
func (m *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {

	delay, ok := args.(time.Duration)
	if !ok || delay <= 0 {
		delay = statsDelay
	}

	m.log.Info("starting…")

loop:
	for {
		m.report()

		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
		}
	}

	m.log.Info("shutting down…")
}

func (m *memoryStats) report() {
	var s runtime.MemStats
	runtime.ReadMemStats(&s)

	text, err := json.Marshal(s)
	if nil != err {
		m.log.Errorf("marshal error: %s", err)
	} else {
		m.log.Debugf("stats: %s", text)
	}
	m.log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d",
		s.Alloc/mega, s.TotalAlloc/mega, s.Sys/mega, runtime.NumGoroutine())
}
