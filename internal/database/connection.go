package database

import "database/sql"

func (db *DB) exec(query string, args ...any) (sql.Result, error) {
	conn, err := db.Acquire()
	if err != nil {
		return nil, err
	}
	return conn.Exec(query, args...)
}

func (db *DB) get(dest any, query string, args ...any) error {
	conn, err := db.Acquire()
	if err != nil {
		return err
	}
	return conn.Get(dest, query, args...)
}

func (db *DB) selectRows(dest any, query string, args ...any) error {
	conn, err := db.Acquire()
	if err != nil {
		return err
	}
	return conn.Select(dest, query, args...)
}
