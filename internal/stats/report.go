package stats

import (
	"context"

	"github.com/verte-zerg/cryptodet/internal/model"
	"github.com/verte-zerg/cryptodet/internal/store"
)

// Report contains precomputed journal data for one session.
type Report struct {
	Aggregates []model.KindAggregate
	Totals     Totals
	Recent     []model.Attempt
}

// BuildReport loads a session's journal and keeps the last recent attempts.
func BuildReport(ctx context.Context, st *store.Store, sessionID string, recent int) (Report, error) {
	aggs, err := st.KindAggregates(ctx, sessionID)
	if err != nil {
		return Report{}, err
	}
	attempts, err := st.ListAttempts(ctx, sessionID)
	if err != nil {
		return Report{}, err
	}
	if recent > 0 && len(attempts) > recent {
		attempts = attempts[len(attempts)-recent:]
	}
	return Report{
		Aggregates: aggs,
		Totals:     Summarize(aggs),
		Recent:     attempts,
	}, nil
}
