package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analisai/analisai/internal/api"
	"github.com/analisai/analisai/internal/models"
)

// fakeUploader answers uploads from a per-path table and can hold a call
// until release is closed.
type fakeUploader struct {
	mu      sync.Mutex
	calls   []string
	fail    map[string]error
	release chan struct{}
	started chan string
}

func (f *fakeUploader) UploadPath(ctx context.Context, path string) (*api.UploadResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, path)
	err := f.fail[filepath.Base(path)]
	f.mu.Unlock()

	if f.started != nil {
		f.started <- path
	}
	if f.release != nil {
		<-f.release
	}
	if err != nil {
		return nil, err
	}
	return &api.UploadResponse{Message: "Arquivo carregado com sucesso", Filename: filepath.Base(path)}, nil
}

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("status,modalidade\nA,Pregão\n"), 0644))
	return path
}

// statusRecorder collects the status sequence of every item.
type statusRecorder struct {
	mu   sync.Mutex
	seen map[string][]models.UploadStatus
}

func newStatusRecorder(uc *UploadController) *statusRecorder {
	r := &statusRecorder{seen: make(map[string][]models.UploadStatus)}
	uc.OnChange(func(item models.UploadItem) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.seen[item.ID] = append(r.seen[item.ID], item.Status)
	})
	return r
}

func (r *statusRecorder) sequence(item models.UploadItem) []models.UploadStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.UploadStatus{models.UploadIdle}, r.seen[item.ID]...)
}

func TestUploadController_AddFiles(t *testing.T) {
	uc := NewUploadController(&fakeUploader{})

	added := uc.AddFiles("/data/contratos.csv", "/data/contratos.csv")
	require.Len(t, added, 2)
	assert.NotEqual(t, added[0].ID, added[1].ID)

	items := uc.Items()
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "contratos.csv", item.Name)
		assert.Equal(t, models.UploadIdle, item.Status)
	}
}

func TestUploadController_SuccessSequence(t *testing.T) {
	uc := NewUploadController(&fakeUploader{})
	rec := newStatusRecorder(uc)

	var succeeded []string
	uc.OnSuccess(func(item models.UploadItem, resp *api.UploadResponse) {
		succeeded = append(succeeded, resp.Filename)
	})

	item := uc.AddFiles(writeTempFile(t, "contratos.xlsx"))[0]
	require.NoError(t, uc.Upload(context.Background(), item.ID))

	assert.Equal(t, []models.UploadStatus{models.UploadIdle, models.UploadUploading, models.UploadSuccess}, rec.sequence(item))
	assert.Equal(t, []string{"contratos.xlsx"}, succeeded)
	assert.Equal(t, models.UploadSuccess, uc.Items()[0].Status)

	// A finished item never goes back to uploading.
	err := uc.Upload(context.Background(), item.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, []models.UploadStatus{models.UploadIdle, models.UploadUploading, models.UploadSuccess}, rec.sequence(item))
}

func TestUploadController_FailureRecordsDetail(t *testing.T) {
	up := &fakeUploader{fail: map[string]error{
		"notas.txt": &api.Error{StatusCode: 400, Path: "/upload", Message: "Formato de arquivo não suportado"},
	}}
	uc := NewUploadController(up)
	rec := newStatusRecorder(uc)

	successCalled := false
	uc.OnSuccess(func(models.UploadItem, *api.UploadResponse) { successCalled = true })

	item := uc.AddFiles(writeTempFile(t, "notas.txt"))[0]
	err := uc.Upload(context.Background(), item.ID)
	require.Error(t, err)

	assert.Equal(t, []models.UploadStatus{models.UploadIdle, models.UploadUploading, models.UploadError}, rec.sequence(item))
	got := uc.Items()[0]
	assert.Equal(t, models.UploadError, got.Status)
	assert.Equal(t, "Formato de arquivo não suportado", got.Err)
	assert.False(t, successCalled)
}

func TestUploadController_InvalidFile(t *testing.T) {
	up := &fakeUploader{}
	uc := NewUploadController(up)
	rec := newStatusRecorder(uc)

	missing := uc.AddFiles(filepath.Join(t.TempDir(), "missing.csv"))[0]
	dir := uc.AddFiles(t.TempDir())[0]

	assert.ErrorIs(t, uc.Upload(context.Background(), missing.ID), ErrInvalidFile)
	assert.ErrorIs(t, uc.Upload(context.Background(), dir.ID), ErrInvalidFile)

	assert.Empty(t, up.calls)
	assert.Equal(t, []models.UploadStatus{models.UploadIdle}, rec.sequence(missing))
	for _, item := range uc.Items() {
		assert.Equal(t, models.UploadIdle, item.Status)
	}
}

func TestUploadController_UnknownID(t *testing.T) {
	uc := NewUploadController(&fakeUploader{})
	assert.ErrorIs(t, uc.Upload(context.Background(), "nope"), ErrNotFound)
	assert.ErrorIs(t, uc.Remove(0), ErrNotFound)
}

func TestUploadController_RemoveDuringUpload(t *testing.T) {
	up := &fakeUploader{release: make(chan struct{}), started: make(chan string, 1)}
	uc := NewUploadController(up)

	first := uc.AddFiles(writeTempFile(t, "a.csv"))[0]
	second := uc.AddFiles(writeTempFile(t, "b.csv"))[0]

	done := make(chan error, 1)
	go func() { done <- uc.Upload(context.Background(), first.ID) }()
	<-up.started

	require.NoError(t, uc.Remove(0))
	close(up.release)
	require.NoError(t, <-done)

	items := uc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, models.UploadIdle, items[0].Status)
	assert.Empty(t, items[0].Err)
}

func TestUploadController_UploadAll(t *testing.T) {
	up := &fakeUploader{fail: map[string]error{"bad.csv": errors.New("connection refused")}}
	uc := NewUploadController(up)

	uc.AddFiles(writeTempFile(t, "a.csv"), writeTempFile(t, "bad.csv"), writeTempFile(t, "c.json"))

	err := uc.UploadAll(context.Background())
	require.Error(t, err)

	statuses := map[string]models.UploadStatus{}
	for _, item := range uc.Items() {
		statuses[item.Name] = item.Status
	}
	assert.Equal(t, models.UploadSuccess, statuses["a.csv"])
	assert.Equal(t, models.UploadError, statuses["bad.csv"])
	assert.Equal(t, models.UploadSuccess, statuses["c.json"])
	assert.Len(t, up.calls, 3)
}
