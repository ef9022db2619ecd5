package store

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionBlob is the durable mirror of one collection: one row per
// storage key, holding the JSON-encoded array of records. The table is the
// Go-side stand-in for the browser localStorage the web build used, so the
// keys keep their crm_ prefix and a localStorage export can be imported
// verbatim.
type collectionBlob struct {
	Key       string `gorm:"primaryKey;size:64"`
	Data      []byte
	UpdatedAt time.Time
}

func (collectionBlob) TableName() string { return "collection_blobs" }

// loadCollection reads one durable key into dst. A missing key and a value
// that fails to decode are treated the same way: the seed dataset is used
// and the process keeps going. Durable reads are never fatal.
func loadCollection[T any](db *gorm.DB, key string, dst *[]T, seed func() []T) {
	var blob collectionBlob
	if err := db.First(&blob, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] read %s: %v, using seed data", key, err)
		}
		*dst = seed()
		return
	}
	var records []T
	if err := json.Unmarshal(blob.Data, &records); err != nil {
		log.Printf("[store] decode %s: %v, using seed data", key, err)
		*dst = seed()
		return
	}
	*dst = records
}

// persist mirrors a whole collection to its durable key. Persistence is
// collection-granular: there is no per-record write and no log, the row is
// simply overwritten after every mutation.
//
// Empty-collection policy: a collection that has transitioned to zero
// records is not written. The durable copy keeps its last non-empty state,
// so a runaway caller cannot wipe the mirror. There is no clear operation.
func persist[T any](db *gorm.DB, key string, records []T) {
	if len(records) == 0 {
		return
	}
	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("[store] encode %s: %v", key, err)
		return
	}
	writeBlob(db, key, data)
}

func writeBlob(db *gorm.DB, key string, data []byte) {
	blob := collectionBlob{Key: key, Data: data, UpdatedAt: time.Now()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		// Memory stays canonical; the mirror catches up on the next write.
		log.Printf("[store] write %s: %v", key, err)
	}
}

// loadSeq reads a persisted sequence counter, falling back when the key is
// absent or unreadable.
func loadSeq(db *gorm.DB, key string, fallback int64) int64 {
	var blob collectionBlob
	if err := db.First(&blob, "key = ?", key).Error; err != nil {
		return fallback
	}
	n, err := strconv.ParseInt(string(blob.Data), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func saveSeq(db *gorm.DB, key string, n int64) {
	writeBlob(db, key, []byte(strconv.FormatInt(n, 10)))
}
