// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Chain           string              `json:"chain"`
	Connect         string              `json:"connect"`
	ProgramID       address.Address     `json:"program_id"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string          `json:"description"`
	Account     address.Address `json:"account"`
	Data        string          `json:"data"`
	Salt        string          `json:"salt"`
}

// IdentityInfo - restricted view of an identity (excludes private items)
type IdentityInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Account     address.Address `json:"account"`
	Private     bool            `json:"private"`
}

// New - an empty configuration
func New(chain string, connect string, programID address.Address) *Configuration {
	return &Configuration{
		Chain:      chain,
		Connect:    connect,
		ProgramID:  programID,
		Identities: make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - replace the configuration file keeping the previous one as a backup
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	buffer, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(tempFile, append(buffer, '\n'), 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}
	return &id, nil
}

// Account - the account key of a named identity or a literal base58 key
func (config *Configuration) Account(nameOrKey string) (address.Address, error) {
	id, err := config.Identity(nameOrKey)
	if nil == err {
		return id.Account, nil
	}
	if "" == nameOrKey {
		return address.Address{}, err
	}
	return address.FromBase58(nameOrKey)
}

// KeyPair - decrypt the signing key of an identity
func (config *Configuration) KeyPair(password string, name string) (*account.KeyPair, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
//
// the first identity added becomes the default
func (config *Configuration) AddIdentity(name string, description string, keyPair *account.KeyPair, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(hex.EncodeToString(keyPair.Seed()), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     keyPair.Address(),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, key address.Address) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     key,
	}

	return nil
}

// Info - all identities without private data, sorted by name
func (config *Configuration) Info() []IdentityInfo {
	info := make([]IdentityInfo, 0, len(config.Identities))
	for name, id := range config.Identities {
		info = append(info, IdentityInfo{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			Private:     "" != id.Data,
		})
	}
	sort.Slice(info, func(i, j int) bool {
		return info[i].Name < info[j].Name
	})
	return info
}
