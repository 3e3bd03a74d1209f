package database

// Repository is the CRUD and search surface shared by entity repositories.
// FindByID reports an absent row as a nil entity with a nil error.
type Repository[T any, ID comparable] interface {
	FindByID(id ID) (*T, error)
	FindAll() ([]T, error)
	Save(entity *T) (*T, error)
	Update(entity *T) (*T, error)
	Delete(entity *T) error
	DeleteByID(id ID) error
	FindBySurnameOrGroupName(value string) ([]T, error)
}

var _ Repository[Worker, int64] = (*WorkerRepository)(nil)
