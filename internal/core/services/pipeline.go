package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rkabera/momotrack/internal/apperrors"
	"github.com/rkabera/momotrack/internal/core/domain"
	portsrepo "github.com/rkabera/momotrack/internal/core/ports/repositories"
)

const defaultChunkSize = 100

// BatchPipeline drives a sequence of raw messages through the
// TransactionBuilder and hands the results to the store sinks. Messages are
// independent: any per-message failure is counted and logged, and processing
// continues with the next message. Chunking exists only for log cadence and
// periodic log flushing; chunk boundaries carry no semantics.
type BatchPipeline struct {
	rawRepo   portsrepo.RawMessageRepository
	txnRepo   portsrepo.TransactionRepository
	logRepo   portsrepo.ProcessingLogRepository
	builder   *TransactionBuilder
	recorder  *RunRecorder
	logger    *slog.Logger
	chunkSize int
}

// NewBatchPipeline creates a pipeline over the given sinks.
func NewBatchPipeline(
	rawRepo portsrepo.RawMessageRepository,
	txnRepo portsrepo.TransactionRepository,
	logRepo portsrepo.ProcessingLogRepository,
	logger *slog.Logger,
	chunkSize int,
) *BatchPipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	recorder := NewRunRecorder(logger)
	return &BatchPipeline{
		rawRepo:   rawRepo,
		txnRepo:   txnRepo,
		logRepo:   logRepo,
		builder:   NewTransactionBuilder(recorder),
		recorder:  recorder,
		logger:    logger,
		chunkSize: chunkSize,
	}
}

// Run processes all messages and returns the aggregated run summary. The
// summary always satisfies Processed + Ignored + Errors == Total. Run itself
// fails only on context cancellation; sink failures stay per-message.
func (p *BatchPipeline) Run(ctx context.Context, messages []domain.RawMessage) (domain.RunSummary, error) {
	summary := domain.RunSummary{
		RunID: uuid.NewString(),
		Total: len(messages),
	}
	p.recorder.Info("processing", "starting sms data processing",
		map[string]any{"run_id": summary.RunID, "total": summary.Total})

	for start := 0; start < len(messages); start += p.chunkSize {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		end := start + p.chunkSize
		if end > len(messages) {
			end = len(messages)
		}
		p.recorder.Info("processing", fmt.Sprintf("processing batch %d", start/p.chunkSize+1),
			map[string]int{"start": start, "end": end})

		for _, msg := range messages[start:end] {
			outcome := p.processOne(ctx, msg)
			switch outcome.Kind {
			case domain.OutcomePersisted:
				summary.Processed++
			case domain.OutcomeSkipped:
				summary.Ignored++
			case domain.OutcomeFailed:
				summary.Errors++
			}
		}

		p.flushLogs(ctx, summary.RunID)
	}

	p.recorder.Info("processing", "sms data processing completed", map[string]int{
		"total":     summary.Total,
		"processed": summary.Processed,
		"ignored":   summary.Ignored,
		"errors":    summary.Errors,
	})
	p.flushLogs(ctx, summary.RunID)

	return summary, nil
}

// processOne runs a single message through build and both store sinks.
func (p *BatchPipeline) processOne(ctx context.Context, msg domain.RawMessage) domain.Outcome {
	record, buildErr := p.builder.Build(msg)

	if err := p.rawRepo.SaveRawMessage(ctx, msg, buildErr == nil); err != nil {
		p.recorder.Error("db_insert", "error inserting raw sms",
			map[string]string{"address": msg.Address, "error": err.Error()})
		return domain.Outcome{Kind: domain.OutcomeFailed, Reason: fmt.Sprintf("%v: %v", apperrors.ErrPersistence, err)}
	}

	if buildErr != nil {
		p.recorder.Warn("processing", "skipped invalid transaction",
			map[string]string{"address": msg.Address, "readable_date": msg.ReadableDate})
		return domain.Outcome{Kind: domain.OutcomeSkipped, Reason: buildErr.Error()}
	}

	if err := p.txnRepo.SaveTransaction(ctx, *record); err != nil {
		p.recorder.Error("db_insert", "error inserting transaction",
			map[string]string{"transaction_type": string(record.TransactionType), "error": err.Error()})
		return domain.Outcome{Kind: domain.OutcomeFailed, Reason: fmt.Sprintf("%v: %v", apperrors.ErrPersistence, err)}
	}

	return domain.Outcome{Kind: domain.OutcomePersisted, Record: record}
}

// flushLogs drains the recorder into the log sink. A failing log sink must not
// take down the run, so the entries are re-logged and dropped on error.
func (p *BatchPipeline) flushLogs(ctx context.Context, runID string) {
	entries := p.recorder.Drain()
	if len(entries) == 0 {
		return
	}
	if err := p.logRepo.SaveLogEntries(ctx, runID, entries); err != nil {
		p.logger.Error("failed to persist processing logs",
			slog.String("run_id", runID),
			slog.Int("entries", len(entries)),
			slog.String("error", err.Error()))
	}
}
