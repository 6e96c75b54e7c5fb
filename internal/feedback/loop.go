package feedback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"qexpand/internal/domain"
	"qexpand/internal/index"
	"qexpand/internal/order"
)

// StopReason says why the loop halted. Every reason is an expected
// terminal state, not a failure.
type StopReason string

const (
	// StopTargetReached: precision met or exceeded the target.
	StopTargetReached StopReason = "target precision reached"
	// StopTooFewResults: the first iteration returned fewer results
	// than requested.
	StopTooFewResults StopReason = "fewer than the requested results in the first iteration"
	// StopNoResults: a later iteration returned nothing.
	StopNoResults StopReason = "no results retrieved"
	// StopZeroPrecision: nothing in the batch was judged relevant.
	StopZeroPrecision StopReason = "zero precision"
	// StopNoNewTerms: the selector ran out of candidate terms.
	StopNoNewTerms StopReason = "no new terms to add"
	// StopAborted: the user abandoned judging.
	StopAborted StopReason = "aborted by user"
)

// Result is the outcome of a completed feedback session.
type Result struct {
	Query      []string
	Precision  float64
	Iterations int
	Reason     StopReason
}

// Loop is the RETRIEVE -> JUDGE -> EVALUATE -> {STOP | EXPAND} state
// machine. One iteration is fully synchronous; nothing carries over
// between iterations except the query itself.
type Loop struct {
	searcher domain.SearchProvider
	judge    domain.Judge
	indexer  *index.Indexer
	selector domain.TermSelector
	orderer  *order.Orderer
	target   float64
	log      *slog.Logger
}

// NewLoop wires the collaborators into a feedback loop targeting the
// given precision.
func NewLoop(searcher domain.SearchProvider, judge domain.Judge, indexer *index.Indexer, sel domain.TermSelector, orderer *order.Orderer, target float64) *Loop {
	return &Loop{
		searcher: searcher,
		judge:    judge,
		indexer:  indexer,
		selector: sel,
		orderer:  orderer,
		target:   target,
		log:      slog.Default().With("component", "loop"),
	}
}

// Run iterates until a stop condition fires and returns the final
// expanded query. The returned error is non-nil only for user abort;
// algorithmic dead-ends are reported through Result.Reason. There is no
// iteration cap: termination rests entirely on the stop conditions.
func (l *Loop) Run(ctx context.Context, initial []string) (Result, error) {
	session := uuid.NewString()
	log := l.log.With("session", session, "strategy", l.selector.Name())
	query := append([]string(nil), initial...)

	for iteration := 1; ; iteration++ {
		queryStr := strings.Join(query, " ")
		log.Info("retrieving", "iteration", iteration, "query", queryStr)

		batch := l.searcher.Search(ctx, queryStr, domain.MaxResults)
		if iteration == 1 && len(batch) < domain.MaxResults {
			log.Info("stopping", "reason", StopTooFewResults, "results", len(batch))
			return Result{Query: query, Iterations: iteration, Reason: StopTooFewResults}, nil
		}
		if len(batch) == 0 {
			log.Info("stopping", "reason", StopNoResults)
			return Result{Query: query, Iterations: iteration, Reason: StopNoResults}, nil
		}

		judgments, err := l.judge.Judge(ctx, iteration, queryStr, batch)
		if err != nil {
			log.Info("stopping", "reason", StopAborted, "error", err)
			return Result{Query: query, Iterations: iteration, Reason: StopAborted}, err
		}

		precision := Precision(batch, judgments)
		log.Info("evaluated", "iteration", iteration, "precision", precision, "target", l.target)
		if precision >= l.target {
			return Result{Query: query, Precision: precision, Iterations: iteration, Reason: StopTargetReached}, nil
		}
		if precision == 0.0 {
			return Result{Query: query, Precision: precision, Iterations: iteration, Reason: StopZeroPrecision}, nil
		}

		idx := l.indexer.Build(ctx, batch)
		newTerms := l.selector.SelectTerms(query, idx, judgments)
		if len(newTerms) == 0 {
			return Result{Query: query, Precision: precision, Iterations: iteration, Reason: StopNoNewTerms}, nil
		}
		newTerms = l.orderer.Order(newTerms)
		log.Info("expanding", "iteration", iteration, "new_terms", strings.Join(newTerms, " "))
		query = append(query, newTerms...)
	}
}
