package database

// Manager is the approved entrypoint for database access across the app.
// It pairs the connection with a ready schema and the worker repository.
type Manager struct {
	*DB
	workers *WorkerRepository
}

func newManager(db *DB) *Manager {
	return &Manager{
		DB:      db,
		workers: NewWorkerRepository(db),
	}
}

// Open creates the connection manager for path and ensures the schema exists.
// Any error here means the process cannot continue.
func Open(path string, opts Options) (*Manager, error) {
	db := New(path, opts)
	if err := db.EnsureSchema(); err != nil {
		_ = db.Release()
		return nil, err
	}
	return newManager(db), nil
}

// Workers returns the worker repository.
func (m *Manager) Workers() *WorkerRepository {
	return m.workers
}

// Close releases the underlying connection.
func (m *Manager) Close() error {
	return m.Release()
}
