package prefs

import (
	"os"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BadgerBackend stores preferences in a badger database on disk.
type BadgerBackend struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger database in dir.
func OpenBadger(dir string, log *zap.Logger) (*BadgerBackend, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "failed to create preference dir %s", dir)
	}

	opts := badger.DefaultOptions(dir).WithLogger(badgerLogger{log: zapOrNop(log).Sugar()})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open preference store")
	}
	return &BadgerBackend{db: db}, nil
}

// Close closes the database.
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}

func (b *BadgerBackend) Get(key string) (string, error) {
	var value string
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", key)
	}
	return value, nil
}

func (b *BadgerBackend) Set(key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	return errors.Wrapf(err, "failed to write %s", key)
}

// badgerLogger routes badger's internal logging into zap.
type badgerLogger struct {
	log *zap.SugaredLogger
}

func (l badgerLogger) Errorf(format string, args ...interface{})   { l.log.Errorf(format, args...) }
func (l badgerLogger) Warningf(format string, args ...interface{}) { l.log.Warnf(format, args...) }
func (l badgerLogger) Infof(format string, args ...interface{})    { l.log.Debugf(format, args...) }
func (l badgerLogger) Debugf(format string, args ...interface{})   { l.log.Debugf(format, args...) }

func zapOrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
