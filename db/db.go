package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"datasense/models"
)

const historyPrefix = "history:"

// DB persists the query history in a badger key/value store.
type DB struct {
	badgerDB *badger.DB
}

func New(dbPath string) (*DB, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Disable badger logging for cleaner output

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{badgerDB: badgerDB}, nil
}

func (d *DB) Close() error {
	return d.badgerDB.Close()
}

// AppendHistory records one executed query. Keys are ordered by insertion
// time so iteration returns entries oldest-first.
func (d *DB) AppendHistory(prompt, sqlQuery string, rowCount int) (models.HistoryEntry, error) {
	entry := models.HistoryEntry{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		SQLQuery:  sqlQuery,
		RowCount:  rowCount,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	err := d.badgerDB.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%020d:%s", historyPrefix, time.Now().UnixNano(), entry.ID))

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}

		return txn.Set(key, data)
	})
	if err != nil {
		return models.HistoryEntry{}, err
	}

	return entry, nil
}

func (d *DB) GetHistory() ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry

	err := d.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(historyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()

			err := item.Value(func(val []byte) error {
				var entry models.HistoryEntry
				if err := json.Unmarshal(val, &entry); err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return entries, err
}

// ClearHistory removes every stored entry. There is no undo.
func (d *DB) ClearHistory() error {
	return d.badgerDB.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(historyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
