package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/analisai/analisai/internal/api"
	"github.com/analisai/analisai/internal/logging"
	"github.com/analisai/analisai/internal/models"
)

// Aggregation fetch strategies.
const (
	ModeCombined = "combined"
	ModeParallel = "parallel"
)

// Fetcher retrieves all four chart slots, or fails as a whole.
type Fetcher interface {
	Fetch(ctx context.Context) (models.ChartData, error)
}

// CombinedSource serves the single combined aggregation route.
type CombinedSource interface {
	Analysis(ctx context.Context) (*api.CombinedAnalysis, error)
}

// ContractSource serves the four per-chart aggregation routes.
type ContractSource interface {
	ContractStatus(ctx context.Context) (*api.CategoryAnalysis, error)
	ContractModalidade(ctx context.Context) (*api.CategoryAnalysis, error)
	ContractTemporal(ctx context.Context) (*api.TemporalAnalysis, error)
	ContractResponsavel(ctx context.Context) (*api.CategoryAnalysis, error)
}

// CombinedFetcher issues one GET /analise.
type CombinedFetcher struct {
	Source CombinedSource
}

func (f CombinedFetcher) Fetch(ctx context.Context) (models.ChartData, error) {
	a, err := f.Source.Analysis(ctx)
	if err != nil {
		return models.ChartData{}, err
	}
	return a.ChartData(), nil
}

// ParallelFetcher issues the four aggregation GETs concurrently.
type ParallelFetcher struct {
	Source ContractSource
}

func (f ParallelFetcher) Fetch(ctx context.Context) (models.ChartData, error) {
	var (
		status, modalidade, responsavel *api.CategoryAnalysis
		temporal                        *api.TemporalAnalysis
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		status, err = f.Source.ContractStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		modalidade, err = f.Source.ContractModalidade(gctx)
		return err
	})
	g.Go(func() (err error) {
		temporal, err = f.Source.ContractTemporal(gctx)
		return err
	})
	g.Go(func() (err error) {
		responsavel, err = f.Source.ContractResponsavel(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.ChartData{}, err
	}

	return models.ChartData{
		Status:      status.Data,
		Modalidade:  modalidade.Data,
		Temporal:    temporal.Data,
		Responsavel: responsavel.Data,
	}, nil
}

// NewFetcher picks the fetch strategy for mode. An empty mode means combined.
func NewFetcher(mode string, client *api.Client) (Fetcher, error) {
	switch mode {
	case "", ModeCombined:
		return CombinedFetcher{Source: client}, nil
	case ModeParallel:
		return ParallelFetcher{Source: client}, nil
	default:
		return nil, fmt.Errorf("unsupported aggregation mode: %s (supported: %s, %s)", mode, ModeCombined, ModeParallel)
	}
}

// ChartController owns the four chart slots. A new Load cancels the one in
// flight; only the latest load writes state.
type ChartController struct {
	mu         sync.RWMutex
	fetcher    Fetcher
	data       models.ChartData
	loading    bool
	lastError  string
	updatedAt  time.Time
	generation uint64
	cancel     context.CancelFunc
	onChange   func(models.ChartSnapshot)
	now        func() time.Time
}

func NewChartController(fetcher Fetcher) *ChartController {
	return &ChartController{
		fetcher: fetcher,
		now:     time.Now,
	}
}

// OnChange registers a callback receiving every state change.
func (cc *ChartController) OnChange(fn func(models.ChartSnapshot)) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.onChange = fn
}

// Snapshot returns the current chart state.
func (cc *ChartController) Snapshot() models.ChartSnapshot {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.snapshotLocked()
}

// Load refreshes every slot. On failure the previous data stays and the
// error message is recorded.
func (cc *ChartController) Load(ctx context.Context) error {
	cc.mu.Lock()
	if cc.cancel != nil {
		cc.cancel()
	}
	cc.generation++
	gen := cc.generation
	loadCtx, cancel := context.WithCancel(ctx)
	cc.cancel = cancel
	cc.loading = true
	cc.lastError = ""
	cc.mu.Unlock()
	defer cancel()

	cc.notify()
	logging.Debug("loading aggregations", "generation", gen)

	data, err := cc.fetcher.Fetch(loadCtx)

	cc.mu.Lock()
	if gen != cc.generation {
		cc.mu.Unlock()
		logging.Debug("discarding superseded aggregation load", "generation", gen)
		return ErrSuperseded
	}
	cc.loading = false
	cc.cancel = nil
	if err != nil {
		cc.lastError = api.Message(err)
	} else {
		cc.data = normalizeChartData(data)
		cc.updatedAt = cc.now()
	}
	cc.mu.Unlock()

	cc.notify()
	if err != nil {
		logging.Warn("aggregation load failed", "err", err)
	}
	return err
}

func (cc *ChartController) snapshotLocked() models.ChartSnapshot {
	return models.ChartSnapshot{
		Data:      cc.data,
		Loading:   cc.loading,
		Err:       cc.lastError,
		UpdatedAt: cc.updatedAt,
	}
}

func (cc *ChartController) notify() {
	cc.mu.RLock()
	onChange := cc.onChange
	snap := cc.snapshotLocked()
	cc.mu.RUnlock()
	if onChange != nil {
		onChange(snap)
	}
}

// normalizeChartData substitutes empty slices for missing arrays.
func normalizeChartData(d models.ChartData) models.ChartData {
	if d.Status == nil {
		d.Status = []models.ChartPoint{}
	}
	if d.Modalidade == nil {
		d.Modalidade = []models.ChartPoint{}
	}
	if d.Temporal == nil {
		d.Temporal = []models.TemporalPoint{}
	}
	if d.Responsavel == nil {
		d.Responsavel = []models.ChartPoint{}
	}
	return d
}
