// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

// Pack - selector | owner(32) | data(32)
func (initialise *Initialise) Pack() Packed {
	buffer := make(Packed, 0, 1+InitialisePayloadSize)
	buffer = append(buffer, byte(initialise.Selector()))
	buffer = append(buffer, initialise.Owner[:]...)
	return append(buffer, initialise.Data[:]...)
}

// Pack - selector | data(32)
func (update *Update) Pack() Packed {
	buffer := make(Packed, 0, 1+UpdatePayloadSize)
	buffer = append(buffer, byte(update.Selector()))
	return append(buffer, update.Data[:]...)
}
