package scheduler

import (
	"context"

	"github.com/school-office/backend/internal/application/usecase/costgen"
	"github.com/school-office/backend/internal/application/usecase/sessiongen"
)

// Job names used for registration and manual triggers.
const (
	JobGenerateCosts    = "generate_costs"
	JobGenerateSessions = "generate_sessions"
)

// CostJob adapts the cost generator use case to the Job interface.
type CostJob struct {
	uc *costgen.GenerateUseCase
}

// NewCostJob creates a new CostJob instance.
func NewCostJob(uc *costgen.GenerateUseCase) *CostJob {
	return &CostJob{uc: uc}
}

// Name implements the Job interface.
func (j *CostJob) Name() string { return JobGenerateCosts }

// Run implements the Job interface.
func (j *CostJob) Run(ctx context.Context) error {
	_, err := j.uc.Execute(ctx)
	return err
}

// SessionJob adapts the session generator use case to the Job interface.
type SessionJob struct {
	uc *sessiongen.GenerateUseCase
}

// NewSessionJob creates a new SessionJob instance.
func NewSessionJob(uc *sessiongen.GenerateUseCase) *SessionJob {
	return &SessionJob{uc: uc}
}

// Name implements the Job interface.
func (j *SessionJob) Name() string { return JobGenerateSessions }

// Run implements the Job interface.
func (j *SessionJob) Run(ctx context.Context) error {
	_, err := j.uc.Execute(ctx)
	return err
}
