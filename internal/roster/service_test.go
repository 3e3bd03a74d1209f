package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltyorg/roster/internal/database"
)

var errBroken = errors.New("disk I/O error")

// brokenStore fails every call.
type brokenStore struct {
	calls []string
}

func (b *brokenStore) FindByID(id int64) (*database.Worker, error) {
	b.calls = append(b.calls, "FindByID")
	return nil, errBroken
}

func (b *brokenStore) FindAll() ([]database.Worker, error) {
	b.calls = append(b.calls, "FindAll")
	return nil, errBroken
}

func (b *brokenStore) Save(w *database.Worker) (*database.Worker, error) {
	b.calls = append(b.calls, "Save")
	return w, errBroken
}

func (b *brokenStore) Update(w *database.Worker) (*database.Worker, error) {
	b.calls = append(b.calls, "Update")
	return w, errBroken
}

func (b *brokenStore) Delete(w *database.Worker) error {
	b.calls = append(b.calls, "Delete")
	return errBroken
}

func (b *brokenStore) DeleteByID(id int64) error {
	b.calls = append(b.calls, "DeleteByID")
	return errBroken
}

func (b *brokenStore) FindBySurnameOrGroupName(value string) ([]database.Worker, error) {
	b.calls = append(b.calls, "FindBySurnameOrGroupName")
	return nil, errBroken
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	mgr, err := database.Open(filepath.Join(t.TempDir(), "worker.db"), database.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = mgr.Close() })
	return NewService(mgr.Workers())
}

func TestService_BrokenStoreNeverFails(t *testing.T) {
	store := &brokenStore{}
	svc := NewService(store)

	list := svc.List()
	assert.NotNil(t, list)
	assert.Empty(t, list)

	w, ok := svc.Get(1)
	assert.Nil(t, w)
	assert.False(t, ok)

	added := svc.Add(database.NewWorker("Ann", "Smith", "A", 30, "Riga", "Clerk"))
	require.NotNil(t, added)
	assert.Zero(t, added.ID)

	edited, ok := svc.Edit(&database.Worker{ID: 3, Surname: "Smith"})
	assert.False(t, ok, "failed update is reported")
	assert.Equal(t, int64(3), edited.ID)

	assert.False(t, svc.Remove(3), "failed lookup is reported")
	svc.RemoveWorker(edited)

	found := svc.Search("ov")
	assert.NotNil(t, found)
	assert.Empty(t, found)

	assert.Equal(t, []string{
		"FindAll", "FindByID", "Save", "Update", "FindByID", "Delete", "FindBySurnameOrGroupName",
	}, store.calls)
}

func TestService_LogsStoreFailures(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	svc := NewService(&brokenStore{})
	_, ok := svc.Edit(&database.Worker{ID: 7, Surname: "Smith"})
	require.False(t, ok)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "edit", entry["op"])
	assert.Equal(t, float64(7), entry["worker_id"])
	assert.Equal(t, errBroken.Error(), entry["error"])
}

func TestService_SearchEmptyResetsToList(t *testing.T) {
	store := &brokenStore{}
	svc := NewService(store)

	svc.Search("")

	assert.Equal(t, []string{"FindAll"}, store.calls)
}

func TestService_Lifecycle(t *testing.T) {
	svc := newTestService(t)

	ann := svc.Add(database.NewWorker("Ann", "Smith", "A", 30, "Riga", "Clerk"))
	require.True(t, ann.Persisted())
	bob := svc.Add(database.NewWorker("Bob", "Ivanov", "B", 44, "Riga", "Driver"))
	require.True(t, bob.Persisted())

	got, ok := svc.Get(ann.ID)
	require.True(t, ok)
	assert.Equal(t, *ann, *got)

	ann.Position = "Senior-Clerk"
	_, ok = svc.Edit(ann)
	require.True(t, ok)
	got, ok = svc.Get(ann.ID)
	require.True(t, ok)
	assert.Equal(t, "Senior-Clerk", got.Position)

	assert.Len(t, svc.Search("Clerk"), 1)
	assert.Len(t, svc.Search(""), 2)

	svc.RemoveWorker(bob)
	_, ok = svc.Get(bob.ID)
	assert.False(t, ok)

	assert.True(t, svc.Remove(ann.ID))
	assert.False(t, svc.Remove(ann.ID), "second remove finds nothing")
	assert.False(t, svc.Remove(9999))
	assert.Empty(t, svc.List())
}
