// Package mocks provides in-memory implementations of the domain ports for tests.
package mocks

import (
	"context"
	"slices"
)

// KeyValueStore is a mock implementation of ports.KeyValueStore.
type KeyValueStore struct {
	Data map[string][]byte
	// Err is returned by every call when set.
	Err error
	// PutErr is returned by Put only, for simulating a full medium.
	PutErr error
	// Puts counts successful writes.
	Puts int
}

// NewKeyValueStore creates a new mock KeyValueStore.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		Data: make(map[string][]byte),
	}
}

// Get returns the value stored under key.
func (m *KeyValueStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.Err != nil {
		return nil, false, m.Err
	}
	v, ok := m.Data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Put stores value under key.
func (m *KeyValueStore) Put(_ context.Context, key string, value []byte) error {
	if m.Err != nil {
		return m.Err
	}
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Data[key] = slices.Clone(value)
	m.Puts++
	return nil
}

// Delete removes key.
func (m *KeyValueStore) Delete(_ context.Context, key string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Data, key)
	return nil
}

// Close is a no-op.
func (m *KeyValueStore) Close() error {
	return nil
}
