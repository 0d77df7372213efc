package fulfillment

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	"github.com/huynhtrandev/brewpoint-backend/internal/matching"
	"github.com/huynhtrandev/brewpoint-backend/internal/pricing"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	redisclient "github.com/huynhtrandev/brewpoint-backend/pkg/redis"
	"github.com/huynhtrandev/brewpoint-backend/pkg/types"
)

// DeliveryAddress is the customer's free-text address plus its resolved
// coordinate. Editing the text always drops the coordinate.
type DeliveryAddress struct {
	RawAddress string            `json:"raw_address"`
	Coord      *types.Coordinate `json:"coord,omitempty"`
}

// State is the read surface of a session: the primary fields plus derived
// fields that are always a pure function of them. Consumers of the checkout
// gate read IsReadyToOrder and, when it is false, the mode/branch/validation
// trio to render the right remediation.
type State struct {
	OrderMode             enums.OrderMode  `json:"order_mode"`
	SelectedBranch        *branches.Branch `json:"selected_branch,omitempty"`
	DeliveryAddress       DeliveryAddress  `json:"delivery_address"`
	ValidationResult      *matching.Result `json:"validation_result,omitempty"`
	IsValidating          bool             `json:"is_validating"`
	IsReadyToOrder        bool             `json:"is_ready_to_order"`
	CurrentDeliveryFee    int              `json:"current_delivery_fee"`
	EstimatedPrepMins     int              `json:"estimated_prep_mins"`
	EstimatedDeliveryMins int              `json:"estimated_delivery_mins"`
}

// Session is the per-customer fulfillment orchestrator. All access goes
// through its operations; the mutex serializes text edits against the
// completion of an in-flight address validation.
type Session struct {
	mu         sync.Mutex
	customerID string
	deps       *deps

	mode           enums.OrderMode
	selectedBranch *branches.Branch
	rawAddress     string
	coord          *types.Coordinate
	validation     *matching.Result
	isValidating   bool

	// validationToken keys the in-flight validation; a completion whose
	// token no longer matches is stale and must be discarded.
	validationToken string

	readyToOrder bool
	deliveryFee  int
	prepMins     int
	deliveryMins int
}

// sessionSnapshot is the persisted blob shape. Only the branch id is stored;
// the directory stays the single source of branch truth on rehydrate.
type sessionSnapshot struct {
	OrderMode        enums.OrderMode   `json:"order_mode"`
	SelectedBranchID string            `json:"selected_branch_id,omitempty"`
	RawAddress       string            `json:"raw_address"`
	Coord            *types.Coordinate `json:"coord,omitempty"`
	ValidationResult *matching.Result  `json:"validation_result,omitempty"`
}

// State assembles the current snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	return State{
		OrderMode:             s.mode,
		SelectedBranch:        s.selectedBranch,
		DeliveryAddress:       DeliveryAddress{RawAddress: s.rawAddress, Coord: s.coord},
		ValidationResult:      s.validation,
		IsValidating:          s.isValidating,
		IsReadyToOrder:        s.readyToOrder,
		CurrentDeliveryFee:    s.deliveryFee,
		EstimatedPrepMins:     s.prepMins,
		EstimatedDeliveryMins: s.deliveryMins,
	}
}

// SetOrderMode switches between delivery and pickup. Fee, ETA, and readiness
// are recomputed from the existing branch and validation; nothing is
// re-resolved.
func (s *Session) SetOrderMode(ctx context.Context, mode enums.OrderMode) (State, error) {
	if !mode.IsValid() {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid order mode")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.recomputeLocked()
	if err := s.persistLocked(ctx); err != nil {
		return State{}, err
	}
	return s.stateLocked(), nil
}

// SetSelectedBranch binds the session to a branch. When a different branch
// was already selected, onBranchChanged runs before the new branch is
// committed: items priced under the old branch's menu must never survive
// the switch.
func (s *Session) SetSelectedBranch(ctx context.Context, branchID string, onBranchChanged func(context.Context) error) (State, error) {
	branch := s.deps.directory.FindByID(branchID)
	if branch == nil {
		return State{}, pkgerrors.New(pkgerrors.CodeNotFound, "branch not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commitBranchLocked(ctx, branch, onBranchChanged); err != nil {
		return State{}, err
	}
	s.recomputeLocked()
	if err := s.persistLocked(ctx); err != nil {
		return State{}, err
	}
	return s.stateLocked(), nil
}

func (s *Session) commitBranchLocked(ctx context.Context, branch *branches.Branch, onBranchChanged func(context.Context) error) error {
	switched := s.selectedBranch != nil && s.selectedBranch.ID != branch.ID
	if switched && onBranchChanged != nil {
		if err := onBranchChanged(ctx); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart on branch switch")
		}
		s.deps.metrics.IncCartClear()
	}
	s.selectedBranch = branch
	return nil
}

// SetDeliveryAddress replaces the address text. Any prior resolution and
// validation is dropped unconditionally, even when the text is unchanged;
// re-validation is always explicit. An in-flight validation is superseded.
func (s *Session) SetDeliveryAddress(ctx context.Context, rawAddress string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rawAddress = rawAddress
	s.coord = nil
	s.validation = nil
	s.isValidating = false
	s.validationToken = ""
	s.recomputeLocked()
	s.readyToOrder = false
	if err := s.persistLocked(ctx); err != nil {
		return State{}, err
	}
	return s.stateLocked(), nil
}

// ValidateAddress resolves the current address text, matches a branch, and
// recomputes pricing and readiness. It suspends on the resolver; mode
// toggles and text edits proceed meanwhile, and a result arriving for a
// superseded request is discarded. A blank address is a no-op.
//
// When matching selects a branch different from the current one, the
// address-driven selection wins and onBranchChanged runs before commit,
// same as SetSelectedBranch.
func (s *Session) ValidateAddress(ctx context.Context, onBranchChanged func(context.Context) error) (State, error) {
	s.mu.Lock()
	text := s.rawAddress
	if strings.TrimSpace(text) == "" {
		state := s.stateLocked()
		s.mu.Unlock()
		return state, nil
	}
	token := uuid.NewString()
	s.validationToken = token
	s.isValidating = true
	s.mu.Unlock()

	started := s.deps.now()
	coord, resolved, err := s.deps.resolver.Resolve(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.validationToken != token {
		// A newer edit or validation superseded this request.
		s.deps.metrics.ObserveValidation("superseded", s.deps.now().Sub(started))
		return s.stateLocked(), nil
	}
	s.isValidating = false
	s.validationToken = ""

	if err != nil {
		s.deps.metrics.ObserveValidation("error", s.deps.now().Sub(started))
		return State{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve address")
	}

	if !resolved {
		s.coord = nil
		s.validation = &matching.Result{IsValid: false, Message: "cannot determine address"}
		s.recomputeLocked()
		s.readyToOrder = false
		s.deliveryFee = 0
		if err := s.persistLocked(ctx); err != nil {
			return State{}, err
		}
		s.deps.metrics.ObserveValidation("unresolved", s.deps.now().Sub(started))
		return s.stateLocked(), nil
	}

	s.coord = &coord
	result := matching.Match(coord, s.deps.directory)
	s.validation = &result
	if result.IsValid {
		if err := s.commitBranchLocked(ctx, result.NearestBranch, onBranchChanged); err != nil {
			return State{}, err
		}
	}
	s.recomputeLocked()
	if err := s.persistLocked(ctx); err != nil {
		return State{}, err
	}
	s.deps.metrics.ObserveValidation(validationOutcome(result), s.deps.now().Sub(started))
	return s.stateLocked(), nil
}

// Reset restores the primary fields to their defaults, e.g. on logout.
func (s *Session) Reset(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = s.deps.defaultMode
	s.selectedBranch = nil
	s.rawAddress = ""
	s.coord = nil
	s.validation = nil
	s.isValidating = false
	s.validationToken = ""
	s.recomputeLocked()
	if err := s.persistLocked(ctx); err != nil {
		return State{}, err
	}
	return s.stateLocked(), nil
}

// recomputeLocked rederives every derived field from the primary fields.
// Callers must never expose a derived field without having run this after
// a primary mutation.
func (s *Session) recomputeLocked() {
	s.deliveryFee = 0
	s.prepMins = 0
	s.deliveryMins = 0

	if s.selectedBranch != nil {
		var distance float64
		if s.validation != nil && s.validation.DistanceKm != nil {
			distance = *s.validation.DistanceKm
		}
		est := pricing.ETA(*s.selectedBranch, s.mode, distance)
		s.prepMins = est.PrepMins
		s.deliveryMins = est.DeliveryMins

		if s.mode == enums.OrderModeDelivery && s.validation != nil && s.validation.IsValid && s.validation.EstimatedFee != nil {
			s.deliveryFee = *s.validation.EstimatedFee
		}
	}

	s.readyToOrder = s.readinessLocked()
}

// readinessLocked is the single readiness rule: a selected, currently open
// branch, and for delivery additionally a valid address validation.
func (s *Session) readinessLocked() bool {
	if s.selectedBranch == nil {
		return false
	}
	if !branches.IsOpen(*s.selectedBranch, s.deps.now()) {
		return false
	}
	if s.mode == enums.OrderModeDelivery {
		return s.validation != nil && s.validation.IsValid
	}
	return true
}

func (s *Session) persistLocked(ctx context.Context) error {
	snap := sessionSnapshot{
		OrderMode:        s.mode,
		RawAddress:       s.rawAddress,
		Coord:            s.coord,
		ValidationResult: s.validation,
	}
	if s.selectedBranch != nil {
		snap.SelectedBranchID = s.selectedBranch.ID
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode fulfillment snapshot")
	}
	if err := s.deps.store.Set(ctx, redisclient.FulfillmentKey(s.customerID), blob); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist fulfillment snapshot")
	}
	return nil
}

func (s *Session) hydrateLocked(snap sessionSnapshot) {
	if snap.OrderMode.IsValid() {
		s.mode = snap.OrderMode
	}
	s.rawAddress = snap.RawAddress
	s.coord = snap.Coord
	s.validation = snap.ValidationResult
	if snap.SelectedBranchID != "" {
		// Unknown ids (directory changed between runs) degrade to no
		// branch selected.
		s.selectedBranch = s.deps.directory.FindByID(snap.SelectedBranchID)
	}
	s.recomputeLocked()
}

func validationOutcome(result matching.Result) string {
	switch {
	case result.IsValid:
		return "valid"
	case result.NearestBranch != nil:
		return "out_of_radius"
	default:
		return "no_active_branches"
	}
}
