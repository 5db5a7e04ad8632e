// Package journal provides a disk backed, append only record log,
// which can be consumed back as a sequence.
package journal

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"

	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"

	"github.com/adamluzsi/streams"
	"github.com/adamluzsi/streams/consterr"
	"github.com/adamluzsi/streams/sequences"
)

// errAbandoned is used to unwind the bucket walk when the consumer closed the sequence early.
const errAbandoned consterr.Error = "journal:abandoned"

// Record is the persisted envelope around an appended value.
type Record[T any] struct {
	ID    string
	Value T
}

// Open opens or creates the journal file at the given path.
// The journal holds the file lock until it is closed.
func Open[T any](path string, name string) (*Journal[T], error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Journal[T]{db: db, name: []byte(name)}, nil
}

type Journal[T any] struct {
	db   *bolt.DB
	name []byte
}

// Close the journal database and release the file lock
func (j *Journal[T]) Close() error {
	return j.db.Close()
}

// Append stores the given value at the end of the journal and returns the persisted record.
func (j *Journal[T]) Append(v T) (Record[T], error) {
	record := Record[T]{ID: uuid.NewV4().String(), Value: v}

	err := j.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(j.name)
		if err != nil {
			return err
		}

		uIntID, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		value, err := encode(record)
		if err != nil {
			return err
		}

		return bucket.Put(uintToBytes(uIntID), value)
	})

	return record, err
}

// Records streams back every stored record in append order.
// The records are produced lazily from a read transaction,
// and closing the returned sequence mid stream abandons the walk cleanly.
func (j *Journal[T]) Records() streams.Sequence[Record[T]] {
	in, out := sequences.Pipe[Record[T]]()

	go func() {
		defer in.Close()

		err := j.db.View(func(tx *bolt.Tx) error {
			bucket := tx.Bucket(j.name)
			if bucket == nil {
				return nil
			}

			return bucket.ForEach(func(key, encoded []byte) error {
				record, err := decode[T](encoded)
				if err != nil {
					return err
				}
				if !in.Value(record) {
					return errAbandoned // receiver closed, cancels the ForEach execution
				}
				return nil
			})
		})

		if err != nil && err != errAbandoned {
			in.Error(err)
		}
	}()

	return out
}

// Values streams back every stored value in append order.
func (j *Journal[T]) Values() streams.Sequence[T] {
	return sequences.Map[Record[T], T](j.Records(), func(r Record[T]) T {
		return r.Value
	})
}

func encode[T any](record Record[T]) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(record); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode[T any](encoded []byte) (Record[T], error) {
	var record Record[T]
	err := gob.NewDecoder(bytes.NewReader(encoded)).Decode(&record)
	return record, err
}

func uintToBytes(v uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, v)
	return key
}
