package query

import (
	"strconv"

	"gorm.io/gorm"
)

// ByKey matches a row by numeric id or by document id.
func ByKey(table, key string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id, err := strconv.ParseUint(key, 10, 64); err == nil {
			return db.Where(table+".id = ?", id)
		}
		return db.Where(table+".document_id = ?", key)
	}
}

func Preload(db *gorm.DB, preloads []string) *gorm.DB {
	for _, p := range preloads {
		db = db.Preload(p)
	}
	return db
}
