package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"memeboard-api/internal/domain"
	"memeboard-api/internal/dto"
	"memeboard-api/internal/response"
)

// CompleteLaunch finalizes a project launch: the project flips to
// launched on the launch stage, the full launch checklist is marked
// done, and the PNL record is written with the reported amounts. The
// writes are atomic; a failure leaves the project untouched.
func (s *projectServiceImpl) CompleteLaunch(ctx context.Context, id uuid.UUID, req *dto.CompleteLaunchRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err, "project not found")
	}

	if project.Status == domain.StatusArchived {
		return nil, response.NewAppError(response.ErrCodeConflict, "cannot launch an archived project", "")
	}
	if project.Status == domain.StatusLaunched {
		return nil, response.NewAppError(response.ErrCodeConflict, "project is already launched", "")
	}

	if req.InitialSol.IsNegative() || req.CurrentValueSol.IsNegative() {
		return nil, response.NewValidationError("SOL amounts must be non-negative", "")
	}
	realized := decimal.Zero
	if req.RealizedSol != nil {
		if req.RealizedSol.IsNegative() {
			return nil, response.NewValidationError("SOL amounts must be non-negative", "")
		}
		realized = *req.RealizedSol
	}

	launchDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.LaunchDate != "" {
		launchDate, err = parseDate(req.LaunchDate)
		if err != nil {
			return nil, response.NewValidationError("invalid launch date, expected YYYY-MM-DD", req.LaunchDate)
		}
	}

	launchUpdates := map[string]interface{}{
		"ticker":          req.Ticker,
		"launch_date":     launchDate,
		"token_deployed":  true,
		"liquidity_added": true,
		"site_live":       true,
		"x_live":          true,
		"tg_live":         true,
	}
	if req.ContractAddress != "" {
		launchUpdates["contract_address"] = req.ContractAddress
	}
	if req.Chain != "" {
		launchUpdates["chain"] = req.Chain
	}

	pnl := &domain.ProjectPnl{
		InitialSol:      *req.InitialSol,
		CurrentValueSol: *req.CurrentValueSol,
		RealizedSol:     realized,
		Notes:           req.Notes,
	}

	if err := s.projectRepo.CompleteLaunch(ctx, id, launchUpdates, pnl); err != nil {
		s.logger.Error("failed to complete launch", zap.String("project_id", id.String()), zap.Error(err))
		return nil, s.wrapNotFound(err, "project not found")
	}

	s.metrics.IncrementLaunchCompleted()
	s.stats.Invalidate(ctx)
	s.logger.Info("launch completed",
		zap.String("project_id", id.String()),
		zap.String("ticker", req.Ticker))

	return s.loadResponse(ctx, id)
}

// UpdatePnl adjusts the PNL record of a launched project, for example
// to track the current position value after launch
func (s *projectServiceImpl) UpdatePnl(ctx context.Context, id uuid.UUID, req *dto.UpdatePnlRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err, "project not found")
	}
	if project.Pnl == nil {
		return nil, response.NewAppError(response.ErrCodeConflict, "project has no PNL record yet", "")
	}

	updates := map[string]interface{}{}
	if req.InitialSol != nil {
		if req.InitialSol.IsNegative() {
			return nil, response.NewValidationError("SOL amounts must be non-negative", "")
		}
		updates["initial_sol"] = *req.InitialSol
	}
	if req.CurrentValueSol != nil {
		if req.CurrentValueSol.IsNegative() {
			return nil, response.NewValidationError("SOL amounts must be non-negative", "")
		}
		updates["current_value_sol"] = *req.CurrentValueSol
	}
	if req.RealizedSol != nil {
		if req.RealizedSol.IsNegative() {
			return nil, response.NewValidationError("SOL amounts must be non-negative", "")
		}
		updates["realized_sol"] = *req.RealizedSol
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.projectRepo.UpdatePnl(ctx, id, updates); err != nil {
			s.logger.Error("failed to update pnl", zap.String("project_id", id.String()), zap.Error(err))
			return nil, err
		}
		s.stats.Invalidate(ctx)
	}

	return s.loadResponse(ctx, id)
}
