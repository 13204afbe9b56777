// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/crypto"
	"github.com/MKhiriev/go-minichat/models"
)

//go:generate mockgen -source=file_savedata.go -destination=../mock/savedata_store_mock.go -package=mock

// SaveDataStore persists the client state document.
type SaveDataStore interface {
	// Load reads the state file. It returns [ErrSaveDataNotFound] when the
	// file does not exist yet.
	Load() (*models.SaveData, error)
	// Save replaces the state file atomically.
	Save(data *models.SaveData) error
	// Path returns the state file location.
	Path() string
}

// ErrSaveDataEncrypted is returned when the file is sealed but no passphrase
// is configured.
var ErrSaveDataEncrypted = errors.New("savedata is encrypted, passphrase required")

// fileSaveDataStore writes the document to "<path>.tmp" and renames it over
// path, so a crash never leaves a half-written file behind.
type fileSaveDataStore struct {
	path   string
	cipher crypto.SaveDataCipher

	mu sync.Mutex
}

// NewSaveDataStore builds the store described by cfg. A non-empty passphrase
// enables encryption.
func NewSaveDataStore(cfg config.SaveData) SaveDataStore {
	var cipher crypto.SaveDataCipher
	if cfg.Passphrase != "" {
		cipher = crypto.NewSaveDataCipher(cfg.Passphrase)
	}
	return NewFileSaveDataStore(cfg.Path, cipher)
}

// NewFileSaveDataStore builds a store at path. cipher may be nil for a plain
// JSON file.
func NewFileSaveDataStore(path string, cipher crypto.SaveDataCipher) SaveDataStore {
	return &fileSaveDataStore{path: path, cipher: cipher}
}

func (s *fileSaveDataStore) Path() string {
	return s.path
}

func (s *fileSaveDataStore) Load() (*models.SaveData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSaveDataNotFound
		}
		return nil, fmt.Errorf("read savedata file: %w", err)
	}

	if crypto.LooksSealed(data) {
		if s.cipher == nil {
			return nil, ErrSaveDataEncrypted
		}
		if data, err = s.cipher.Open(data); err != nil {
			return nil, fmt.Errorf("open savedata: %w", err)
		}
	}

	var sd models.SaveData
	if err = json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveDataCorrupted, err)
	}

	return &sd, nil
}

func (s *fileSaveDataStore) Save(sd *models.SaveData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create savedata dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(sd, "", "  ")
	if err != nil {
		return fmt.Errorf("encode savedata: %w", err)
	}

	if s.cipher != nil {
		if payload, err = s.cipher.Seal(payload); err != nil {
			return fmt.Errorf("seal savedata: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write savedata file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace savedata file: %w", err)
	}

	return nil
}
