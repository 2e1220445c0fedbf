package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/analisai/analisai/internal/api"
	"github.com/analisai/analisai/internal/logging"
	"github.com/analisai/analisai/internal/models"
)

// Uploader sends one local file to the backend.
type Uploader interface {
	UploadPath(ctx context.Context, path string) (*api.UploadResponse, error)
}

// UploadController owns the upload queue. Each item moves
// idle -> uploading -> success|error and never back.
type UploadController struct {
	mu        sync.RWMutex
	items     []models.UploadItem
	uploader  Uploader
	onChange  func(models.UploadItem)
	onSuccess func(models.UploadItem, *api.UploadResponse)
}

func NewUploadController(uploader Uploader) *UploadController {
	return &UploadController{
		items:    make([]models.UploadItem, 0),
		uploader: uploader,
	}
}

// OnChange registers a callback invoked after every status transition of an item still in the queue.
func (uc *UploadController) OnChange(fn func(models.UploadItem)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.onChange = fn
}

// OnSuccess registers the completion callback fired once an upload succeeds.
func (uc *UploadController) OnSuccess(fn func(models.UploadItem, *api.UploadResponse)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.onSuccess = fn
}

// AddFiles appends every path as a new idle item. The same file may be added twice.
func (uc *UploadController) AddFiles(paths ...string) []models.UploadItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	added := make([]models.UploadItem, 0, len(paths))
	for _, p := range paths {
		item := models.UploadItem{
			ID:     uuid.New().String(),
			Name:   filepath.Base(p),
			Path:   p,
			Status: models.UploadIdle,
		}
		uc.items = append(uc.items, item)
		added = append(added, item)
	}
	return added
}

// Items returns a copy of the queue.
func (uc *UploadController) Items() []models.UploadItem {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	result := make([]models.UploadItem, len(uc.items))
	copy(result, uc.items)
	return result
}

// Remove deletes the item at index. An in-flight upload for it keeps running
// but its outcome is discarded.
func (uc *UploadController) Remove(index int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if index < 0 || index >= len(uc.items) {
		return fmt.Errorf("upload index %d: %w", index, ErrNotFound)
	}
	uc.items = append(uc.items[:index], uc.items[index+1:]...)
	return nil
}

// Upload sends the item identified by id. The returned error mirrors the
// failure recorded on the item.
func (uc *UploadController) Upload(ctx context.Context, id string) error {
	item, err := uc.begin(id)
	if err != nil {
		return err
	}
	uc.notify(item)

	log := logging.With("file", item.Name)
	log.Info("upload started")

	resp, err := uc.uploader.UploadPath(ctx, item.Path)
	if err != nil {
		log.Warn("upload failed", "err", err)
		if updated, ok := uc.finish(id, models.UploadError, api.Message(err)); ok {
			uc.notify(updated)
		}
		return err
	}

	log.Info("upload finished", "filename", resp.Filename)
	updated, ok := uc.finish(id, models.UploadSuccess, "")
	if !ok {
		log.Debug("upload outcome discarded, item was removed")
		return nil
	}
	uc.notify(updated)

	uc.mu.RLock()
	onSuccess := uc.onSuccess
	uc.mu.RUnlock()
	if onSuccess != nil {
		onSuccess(updated, resp)
	}
	return nil
}

// UploadAll starts every idle item concurrently and waits for all of them.
// It returns the first upload error, after every upload has settled.
func (uc *UploadController) UploadAll(ctx context.Context) error {
	var ids []string
	for _, item := range uc.Items() {
		if item.Status == models.UploadIdle {
			ids = append(ids, item.ID)
		}
	}

	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return uc.Upload(ctx, id)
		})
	}
	return g.Wait()
}

// begin validates the item and atomically moves it to uploading.
func (uc *UploadController) begin(id string) (models.UploadItem, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexOf(id)
	if idx < 0 {
		return models.UploadItem{}, fmt.Errorf("upload %s: %w", id, ErrNotFound)
	}
	item := &uc.items[idx]

	info, err := os.Stat(item.Path)
	if err != nil || !info.Mode().IsRegular() {
		return *item, fmt.Errorf("%s: %w", item.Path, ErrInvalidFile)
	}
	if item.Status != models.UploadIdle {
		return *item, fmt.Errorf("%s is %s: %w", item.Name, item.Status, ErrInvalidTransition)
	}

	item.Status = models.UploadUploading
	return *item, nil
}

// finish records the outcome if the item is still queued.
func (uc *UploadController) finish(id string, status models.UploadStatus, msg string) (models.UploadItem, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexOf(id)
	if idx < 0 {
		return models.UploadItem{}, false
	}
	item := &uc.items[idx]
	if item.Status != models.UploadUploading {
		return *item, false
	}
	item.Status = status
	item.Err = msg
	return *item, true
}

func (uc *UploadController) indexOf(id string) int {
	for i := range uc.items {
		if uc.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (uc *UploadController) notify(item models.UploadItem) {
	uc.mu.RLock()
	onChange := uc.onChange
	uc.mu.RUnlock()
	if onChange != nil {
		onChange(item)
	}
}
