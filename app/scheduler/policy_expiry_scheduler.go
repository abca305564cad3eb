// Package scheduler
package scheduler

import (
	"context"
	"log"
	"time"

	businessflow "github.com/amirphl/Simorgh/business_flow"
	"github.com/amirphl/Simorgh/utils"
)

// PolicyExpiryScheduler periodically deactivates policies whose term has
// ended. Issued policies carry a fixed end date; nothing flips them inactive
// at that moment, so this loop sweeps the book on an interval.
type PolicyExpiryScheduler struct {
	policyFlow businessflow.PolicyFlow
	logger     *log.Logger
	interval   time.Duration
}

func NewPolicyExpiryScheduler(
	policyFlow businessflow.PolicyFlow,
	logger *log.Logger,
	interval time.Duration,
) *PolicyExpiryScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = log.Default()
	}

	return &PolicyExpiryScheduler{
		policyFlow: policyFlow,
		logger:     logger,
		interval:   interval,
	}
}

// Start launches the sweep loop and returns a cancel function.
func (s *PolicyExpiryScheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()

	return cancel
}

func (s *PolicyExpiryScheduler) runOnce(ctx context.Context) {
	deactivated, err := s.policyFlow.DeactivateExpiredPolicies(ctx, utils.UTCNow())
	if err != nil {
		s.logger.Printf("scheduler: policy expiry sweep failed: %v", err)
		return
	}
	if deactivated > 0 {
		s.logger.Printf("scheduler: deactivated %d expired policies", deactivated)
	}
}
