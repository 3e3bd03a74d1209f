package database

// Worker is one employee record in the roster.
// An ID of 0 means the worker has not been saved yet.
type Worker struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Surname  string `json:"surname" yaml:"surname"`
	Lastname string `json:"lastname" yaml:"lastname"`
	Age      int    `json:"age" yaml:"age"`
	City     string `json:"city" yaml:"city"`
	Position string `json:"position" yaml:"position"`
}

// NewWorker returns an unsaved worker.
func NewWorker(name, surname, lastname string, age int, city, position string) *Worker {
	return &Worker{
		Name:     name,
		Surname:  surname,
		Lastname: lastname,
		Age:      age,
		City:     city,
		Position: position,
	}
}

// Persisted reports whether the worker has been assigned an ID by the store.
func (w *Worker) Persisted() bool {
	return w != nil && w.ID > 0
}
