package fulfillment

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	"github.com/huynhtrandev/brewpoint-backend/internal/geocode"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
	"github.com/huynhtrandev/brewpoint-backend/pkg/metrics"
	redisclient "github.com/huynhtrandev/brewpoint-backend/pkg/redis"
	"github.com/huynhtrandev/brewpoint-backend/pkg/snapshot"
	"github.com/huynhtrandev/brewpoint-backend/pkg/types"
)

// Resolver turns free-text addresses into approximate coordinates.
// Implementations may call out to an external service and suspend; ok=false
// means "insufficient information", not "address does not exist".
type Resolver interface {
	Resolve(ctx context.Context, text string) (types.Coordinate, bool, error)
}

// KeywordResolver adapts the in-process locality table to the Resolver
// surface.
type KeywordResolver struct {
	inner *geocode.Resolver
}

// NewKeywordResolver wraps the default locality table.
func NewKeywordResolver() *KeywordResolver {
	return &KeywordResolver{inner: geocode.NewResolver()}
}

func (r *KeywordResolver) Resolve(_ context.Context, text string) (types.Coordinate, bool, error) {
	coord, ok := r.inner.Resolve(text)
	return coord, ok, nil
}

type deps struct {
	directory   *branches.Directory
	resolver    Resolver
	store       snapshot.Store
	metrics     *metrics.FulfillmentMetrics
	logg        *logger.Logger
	now         func() time.Time
	defaultMode enums.OrderMode
}

// Manager hands out per-customer sessions. Each session is hydrated from its
// snapshot synchronously before it is first returned, so callers never
// observe a partially loaded state: route guards reading SelectedBranch get
// the persisted value or a definitive nil, never a pre-hydration blank.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	deps     *deps
}

// ManagerParams collects the manager's collaborators.
type ManagerParams struct {
	Directory   *branches.Directory
	Resolver    Resolver
	Store       snapshot.Store
	Metrics     *metrics.FulfillmentMetrics
	Logger      *logger.Logger
	DefaultMode enums.OrderMode
}

// NewManager builds the session registry.
func NewManager(params ManagerParams) (*Manager, error) {
	if params.Directory == nil {
		return nil, fmt.Errorf("branch directory required")
	}
	if params.Resolver == nil {
		return nil, fmt.Errorf("address resolver required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	mode := params.DefaultMode
	if !mode.IsValid() {
		mode = enums.OrderModeDelivery
	}
	return &Manager{
		sessions: map[string]*Session{},
		deps: &deps{
			directory:   params.Directory,
			resolver:    params.Resolver,
			store:       params.Store,
			metrics:     params.Metrics,
			logg:        params.Logger,
			now:         time.Now,
			defaultMode: mode,
		},
	}, nil
}

// WithClock overrides the wall clock, for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.deps.now = now
	return m
}

// Session returns the customer's session, creating and hydrating it on
// first use. The snapshot load completes before the session is visible to
// any caller.
func (m *Manager) Session(ctx context.Context, customerID string) (*Session, error) {
	if customerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[customerID]; ok {
		return existing, nil
	}

	session := &Session{
		customerID: customerID,
		deps:       m.deps,
		mode:       m.deps.defaultMode,
	}
	session.recomputeLocked()

	blob, ok, err := m.deps.store.Get(ctx, redisclient.FulfillmentKey(customerID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load fulfillment snapshot")
	}
	if ok {
		var snap sessionSnapshot
		if err := json.Unmarshal(blob, &snap); err != nil {
			// A snapshot we cannot decode is treated as absent rather
			// than blocking the customer; they start from defaults.
			if m.deps.logg != nil {
				m.deps.logg.Warn(m.deps.logg.WithCustomerID(ctx, customerID), "fulfillment snapshot corrupt, starting fresh")
			}
		} else {
			session.hydrateLocked(snap)
		}
	}

	m.sessions[customerID] = session
	return session, nil
}

// Drop removes the in-memory session, e.g. after Reset on logout. The
// persisted snapshot is left to its TTL.
func (m *Manager) Drop(customerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, customerID)
}
