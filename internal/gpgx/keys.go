// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package gpgx

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
	_ "golang.org/x/crypto/ripemd160"
)

const messageType = "PGP MESSAGE"

// ReadArmoredKeyFile attempts to read the filepath and parses an armored GPG key
func ReadArmoredKeyFile(path string) (openpgp.EntityList, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	keys, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s: no keys found", path)
	}
	return keys, nil
}

// ReadPrivateKeyFile attempts to read the filepath and parses an armored GPG private key
func ReadPrivateKeyFile(path string, password []byte) (openpgp.EntityList, error) {
	entityList, err := ReadArmoredKeyFile(path)
	if err != nil {
		return nil, err
	}
	entity := entityList[0]
	if entity.PrivateKey == nil {
		return nil, fmt.Errorf("%s: not a private key", path)
	}

	if err := entity.PrivateKey.Decrypt(password); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	for _, subkey := range entity.Subkeys {
		if subkey.PrivateKey == nil {
			continue
		}
		if err := subkey.PrivateKey.Decrypt(password); err != nil {
			return nil, fmt.Errorf("%s: subkey: %v", path, err)
		}
	}

	return entityList, nil
}

// Encrypt returns msg encrypted for every public key, armored as a PGP MESSAGE.
func Encrypt(msg []byte, pubkeys openpgp.EntityList) ([]byte, error) {
	if len(pubkeys) == 0 {
		return nil, errors.New("no public keys")
	}

	var armorbuf bytes.Buffer
	armorCloser, err := armor.Encode(&armorbuf, messageType, nil)
	if err != nil {
		return nil, err
	}
	encCloser, err := openpgp.Encrypt(armorCloser, pubkeys, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	if _, err := encCloser.Write(msg); err != nil {
		return nil, err
	}
	if err := encCloser.Close(); err != nil {
		return nil, err
	}
	if err := armorCloser.Close(); err != nil {
		return nil, err
	}
	return armorbuf.Bytes(), nil
}

func Decrypt(cipherArmored []byte, keys openpgp.EntityList) ([]byte, error) {
	if !(len(keys) == 1 && keys[0].PrivateKey != nil) {
		return nil, errors.New("requires a single private key")
	}

	result, err := armor.Decode(bytes.NewReader(cipherArmored))
	if err != nil {
		return nil, err
	}
	if result.Type != messageType {
		return nil, fmt.Errorf("unexpected armor type %q", result.Type)
	}

	md, err := openpgp.ReadMessage(result.Body, keys, nil, nil)
	if err != nil {
		return nil, err
	}
	bs, err := ioutil.ReadAll(md.UnverifiedBody)
	if err != nil {
		return nil, err
	}
	if md.SignatureError != nil {
		return nil, md.SignatureError
	}
	return bs, nil
}
