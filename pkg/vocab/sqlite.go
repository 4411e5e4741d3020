package vocab

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	_ "github.com/mattn/go-sqlite3"
)

// LoadKnownDB reads known vocabulary from a SQLite database, the format
// SRS review tools export to. The database must contain a vocab table
// with a word column:
//
//	CREATE TABLE vocab (word TEXT NOT NULL);
//
// A missing database file degrades the same way as a missing vocab list:
// empty set, no startup failure.
func LoadKnownDB(path string) (KnownSet, error) {
	set := NewKnownSet()
	if path == "" {
		return set, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Warnf("Vocab database %s not found, skipping", path)
		return set, nil
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open vocab database %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word FROM vocab`)
	if err != nil {
		return nil, fmt.Errorf("query vocab database %s: %w", path, err)
	}
	defer rows.Close()

	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("scan vocab row: %w", err)
		}
		set.Add(word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read vocab database %s: %w", path, err)
	}

	log.Debugf("Loaded %d known words from %s", len(set), path)
	return set, nil
}
