package engine

import (
	"sync"

	"github.com/csvdeck/csvdeck-api/internal/tabular"
)

// Engine is the process-wide holder of the current dataset and the query
// logic over it. The table reference is the only shared mutable state in the
// service: uploads swap it wholesale under the write lock, queries take the
// reference under the read lock and then work on the immutable snapshot.
type Engine struct {
	rwMutex      sync.RWMutex
	table        *tabular.Table
	datasetID    string
	maxPageLimit int
}

type Config struct {
	// MaxPageLimit caps the limit a single query may request.
	MaxPageLimit int
}

func New(cfg *Config) (*Engine, error) {
	maxLimit := 0
	if cfg != nil {
		maxLimit = cfg.MaxPageLimit
	}
	if maxLimit <= 0 {
		maxLimit = 1000 // default value
	}
	return &Engine{
		rwMutex:      sync.RWMutex{},
		maxPageLimit: maxLimit,
	}, nil
}

// current returns the live table snapshot, or ErrNoData before the first
// successful upload. Queries matching zero rows are a normal success and
// never reach this error.
func (e *Engine) current() (*tabular.Table, error) {
	e.rwMutex.RLock()
	t := e.table
	e.rwMutex.RUnlock()
	if t == nil {
		return nil, tabular.ErrNoData
	}
	return t, nil
}

// clampPage bounds skip and limit to sane values. Negative offsets collapse
// to zero and the limit is capped; the actual end-of-data clamping happens in
// the view.
func (e *Engine) clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if limit > e.maxPageLimit {
		limit = e.maxPageLimit
	}
	return skip, limit
}

// ResultSet is one page of query results. Total is the filtered row count
// before pagination.
type ResultSet struct {
	Total int              `json:"total"`
	Skip  int              `json:"skip"`
	Limit int              `json:"limit"`
	Data  []map[string]any `json:"data"`
}

// Start implements the app dependency interface. The engine starts empty:
// there is nothing to replay or warm.
func (e *Engine) Start() error {
	return nil
}

func (e *Engine) Stop() error {
	return nil
}

func (e *Engine) Name() string {
	return "CSVDeck Engine"
}
