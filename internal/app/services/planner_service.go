package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pathwayplanner/planner/internal/pkg/apperrors"
	"github.com/pathwayplanner/planner/internal/planner"
)

// PlannerService defines the interface for schedule verification
type PlannerService interface {
	VerifyPlan(ctx context.Context, req planner.Request) (*planner.Result, error)
}

// Verifier is the engine operation PlannerService delegates to
type Verifier interface {
	Verify(ctx context.Context, req planner.Request) (*planner.Result, error)
}

// plannerServiceImpl implements the PlannerService interface
type plannerServiceImpl struct {
	engine  Verifier
	timeout time.Duration
	logger  zerolog.Logger
}

// NewPlannerService creates a new planner service. A zero timeout disables the deadline.
func NewPlannerService(engine Verifier, timeout time.Duration, logger zerolog.Logger) PlannerService {
	return &plannerServiceImpl{
		engine:  engine,
		timeout: timeout,
		logger:  logger,
	}
}

// VerifyPlan runs one verification under the configured deadline
func (s *plannerServiceImpl) VerifyPlan(ctx context.Context, req planner.Request) (*planner.Result, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := s.engine.Verify(ctx, req)
	if err != nil {
		var storeErr *planner.StoreError
		switch {
		case errors.Is(err, planner.ErrInvalidInput):
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidPlannerInput, err.Error())
		case errors.Is(err, context.DeadlineExceeded):
			s.logger.Warn().Dur("timeout", s.timeout).Msg("Plan verification timed out")
			return nil, fmt.Errorf("%w: %v", apperrors.ErrRequestTimeout, err)
		case errors.As(err, &storeErr):
			s.logger.Error().Err(err).Str("op", storeErr.Op).Msg("Plan verification could not read catalog data")
			return nil, fmt.Errorf("%w: %v", apperrors.ErrPlannerDataAccess, err)
		default:
			return nil, fmt.Errorf("error verifying plan: %w", err)
		}
	}

	s.logger.Info().
		Int("scheduled", len(req.Schedule)).
		Int("violations", len(result.Violations)).
		Int("advisories", len(result.Advisories)).
		Bool("cycle", result.Details.CycleDetected).
		Dur("elapsed", time.Since(start)).
		Msg("Plan verified")
	return result, nil
}
