// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/staterecord/background"
	"github.com/bitmark-inc/staterecord/runtime"
)

const watchedConfiguration = `
local M = {}
M.data_directory = "."
M.chain = "testnet"
M.faucet = {
  enabled = %s,
  maximum = 25,
}
return M
`

type fakeLedger struct {
	sync.Mutex
	settings []runtime.FaucetConfiguration
}

func (f *fakeLedger) SetFaucet(faucet runtime.FaucetConfiguration) {
	f.Lock()
	f.settings = append(f.settings, faucet)
	f.Unlock()
}

func (f *fakeLedger) last() (runtime.FaucetConfiguration, bool) {
	f.Lock()
	defer f.Unlock()
	if 0 == len(f.settings) {
		return runtime.FaucetConfiguration{}, false
	}
	return f.settings[len(f.settings)-1], true
}

func TestConfigurationWatcherReload(t *testing.T) {
	dir, fileName := writeConfiguration(t, sprintfConfiguration("false"))
	defer os.RemoveAll(dir)

	ledger := &fakeLedger{}
	w, err := newConfigurationWatcher(fileName, logger.New("watcher"), ledger)
	assert.Nil(t, err, "new watcher")

	p := background.Start(background.Processes{w}, nil)
	defer p.Stop()

	err = ioutil.WriteFile(fileName, []byte(sprintfConfiguration("true")), 0600)
	assert.Nil(t, err, "rewrite configuration")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f, ok := ledger.last(); ok && f.Enabled {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	f, ok := ledger.last()
	assert.True(t, ok, "no reload")
	assert.True(t, f.Enabled, "faucet not enabled")
	assert.Equal(t, uint64(25), f.Maximum, "wrong maximum")
}

func TestConfigurationWatcherMissingFile(t *testing.T) {
	_, err := newConfigurationWatcher(filepath.Join(os.TempDir(), "no-such-recordd.conf"), logger.New("watcher"), &fakeLedger{})
	assert.NotNil(t, err, "missing file accepted")
}

func TestWatcherEvents(t *testing.T) {
	assert.True(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Write}), "write")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Create}), "create")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Chmod}), "chmod")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Op: fsnotify.Rename}), "rename")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Op: fsnotify.Write}), "write")
}

func sprintfConfiguration(enabled string) string {
	return fmt.Sprintf(watchedConfiguration, enabled)
}
