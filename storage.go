// storage.go

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStateNotFound is returned by Load when a namespace has never been saved.
var ErrStateNotFound = errors.New("state not found")

// StateStore is the persistence port for the cart, wishlist and admin stores.
// Keys are namespaces like "cart:<session>"; blobs are small JSON snapshots,
// written whole on every mutation and read back once on rehydration.
type StateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
}

// ----- In-memory -----

type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore returns a StateStore that keeps blobs in process memory.
// Used in tests and as a fallback when no durable backend is configured.
func NewMemoryStore() StateStore {
	return &memoryStore{blobs: make(map[string][]byte)}
}

func (m *memoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, ErrStateNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (m *memoryStore) Save(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(blob))
	copy(cp, blob)
	m.blobs[key] = cp
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

// ----- File-backed -----

type fileStore struct {
	dir string
}

// NewFileStore persists each namespace as one JSON file under dir. This is
// the default backend and the server-side analog of the browser's local
// storage: one key, one value, rewritten whole on every save.
func NewFileStore(dir string) (StateStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileStore{dir: dir}, nil
}

var keySanitizer = strings.NewReplacer(":", "_", "/", "_", "\\", "_", "..", "_")

func (f *fileStore) path(key string) string {
	return filepath.Join(f.dir, keySanitizer.Replace(key)+".json")
}

func (f *fileStore) Load(_ context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrStateNotFound
	}
	return blob, err
}

func (f *fileStore) Save(_ context.Context, key string, blob []byte) error {
	// Write-then-rename so a crash mid-write never leaves a torn snapshot.
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *fileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ----- MongoDB -----

type stateDoc struct {
	ID   string `bson:"_id"`
	Blob []byte `bson:"blob"`
}

type mongoStore struct {
	col *mongo.Collection
}

// NewMongoStore keeps one document per namespace in the "state" collection,
// upserted on save.
func NewMongoStore(db *mongo.Database) StateStore {
	return &mongoStore{col: db.Collection("state")}
}

func (m *mongoStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc stateDoc
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Blob, nil
}

func (m *mongoStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := m.col.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"blob": blob}},
		options.Update().SetUpsert(true))
	return err
}

func (m *mongoStore) Delete(ctx context.Context, key string) error {
	_, err := m.col.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
