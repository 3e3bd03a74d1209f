package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Selected column order is the mapping contract for workerRow.
const workerColumns = "id, name, surname, lastname, age, city, position"

// workerRow mirrors a workers row. Text and age columns are nullable in the
// schema, so they are scanned through sql.Null* and flattened afterwards.
type workerRow struct {
	ID       int64          `db:"id"`
	Name     sql.NullString `db:"name"`
	Surname  sql.NullString `db:"surname"`
	Lastname sql.NullString `db:"lastname"`
	Age      sql.NullInt64  `db:"age"`
	City     sql.NullString `db:"city"`
	Position sql.NullString `db:"position"`
}

func (r workerRow) toWorker() Worker {
	return Worker{
		ID:       r.ID,
		Name:     nullStringValue(r.Name),
		Surname:  nullStringValue(r.Surname),
		Lastname: nullStringValue(r.Lastname),
		Age:      nullIntValue(r.Age),
		City:     nullStringValue(r.City),
		Position: nullStringValue(r.Position),
	}
}

func toWorkers(rows []workerRow) []Worker {
	workers := make([]Worker, 0, len(rows))
	for _, r := range rows {
		workers = append(workers, r.toWorker())
	}
	return workers
}

// WorkerRepository provides CRUD and search over the workers table.
type WorkerRepository struct {
	db *DB
}

// NewWorkerRepository creates a repository on top of db.
func NewWorkerRepository(db *DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// FindByID retrieves a worker by ID. Returns nil, nil when no row matches.
func (r *WorkerRepository) FindByID(id int64) (*Worker, error) {
	var row workerRow
	err := r.db.get(&row, `SELECT `+workerColumns+` FROM workers WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, queryFailed(fmt.Sprintf("find worker %d", id), err)
	}
	w := row.toWorker()
	return &w, nil
}

// FindAll retrieves every worker in storage order.
func (r *WorkerRepository) FindAll() ([]Worker, error) {
	var rows []workerRow
	if err := r.db.selectRows(&rows, `SELECT `+workerColumns+` FROM workers`); err != nil {
		return nil, queryFailed("list workers", err)
	}
	return toWorkers(rows), nil
}

// Save inserts w as a new row and writes the assigned ID back into w.
// The ID already set on w is ignored.
func (r *WorkerRepository) Save(w *Worker) (*Worker, error) {
	if w == nil {
		return nil, fmt.Errorf("save worker: nil worker")
	}

	log.Debug().Str("surname", w.Surname).Msg("Saving worker")

	result, err := r.db.exec(`
		INSERT INTO workers (name, surname, lastname, age, city, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`, w.Name, w.Surname, w.Lastname, w.Age, w.City, w.Position)
	if err != nil {
		return w, queryFailed("save worker", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return w, queryFailed("save worker: read id", err)
	}
	w.ID = id

	log.Info().Int64("worker_id", id).Msg("Worker saved")
	return w, nil
}

// Update overwrites every non-ID column of the row matching w.ID.
// A missing row is not an error; it is logged and nothing changes.
func (r *WorkerRepository) Update(w *Worker) (*Worker, error) {
	if w == nil {
		return nil, fmt.Errorf("update worker: nil worker")
	}

	log.Debug().Int64("worker_id", w.ID).Msg("Updating worker")

	result, err := r.db.exec(`
		UPDATE workers
		SET name = ?, surname = ?, lastname = ?, age = ?, city = ?, position = ?
		WHERE id = ?
	`, w.Name, w.Surname, w.Lastname, w.Age, w.City, w.Position, w.ID)
	if err != nil {
		return w, queryFailed(fmt.Sprintf("update worker %d", w.ID), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return w, queryFailed(fmt.Sprintf("update worker %d: rows affected", w.ID), err)
	}
	if affected == 0 {
		log.Warn().Int64("worker_id", w.ID).Msg("Worker not found, nothing updated")
	} else {
		log.Info().Int64("worker_id", w.ID).Msg("Worker updated")
	}

	return w, nil
}

// Delete removes the row for w. A nil worker is a no-op.
func (r *WorkerRepository) Delete(w *Worker) error {
	if w == nil {
		return nil
	}
	return r.DeleteByID(w.ID)
}

// DeleteByID removes the row with the given ID. A missing row is a no-op.
func (r *WorkerRepository) DeleteByID(id int64) error {
	log.Debug().Int64("worker_id", id).Msg("Deleting worker")

	result, err := r.db.exec("DELETE FROM workers WHERE id = ?", id)
	if err != nil {
		return queryFailed(fmt.Sprintf("delete worker %d", id), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return queryFailed(fmt.Sprintf("delete worker %d: rows affected", id), err)
	}
	if affected == 0 {
		log.Warn().Int64("worker_id", id).Msg("Worker not found, nothing deleted")
	} else {
		log.Info().Int64("worker_id", id).Msg("Worker deleted")
	}

	return nil
}

// FindBySurnameOrGroupName returns workers whose surname or position contains
// value. An empty value matches every row.
func (r *WorkerRepository) FindBySurnameOrGroupName(value string) ([]Worker, error) {
	log.Debug().Str("query", value).Msg("Searching workers")

	pattern := "%" + value + "%"

	var rows []workerRow
	err := r.db.selectRows(&rows, `
		SELECT `+workerColumns+`
		FROM workers
		WHERE surname LIKE ? OR position LIKE ?
	`, pattern, pattern)
	if err != nil {
		return nil, queryFailed(fmt.Sprintf("search workers %q", value), err)
	}

	workers := toWorkers(rows)
	log.Debug().Int("count", len(workers)).Msg("Worker search complete")
	return workers, nil
}

// Count returns the number of stored workers.
func (r *WorkerRepository) Count() (int, error) {
	var count int
	if err := r.db.get(&count, "SELECT COUNT(*) FROM workers"); err != nil {
		return 0, queryFailed("count workers", err)
	}
	return count, nil
}
