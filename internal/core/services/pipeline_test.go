package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkabera/momotrack/internal/core/domain"
	"github.com/rkabera/momotrack/internal/core/services"
)

// --- in-memory sinks ---

type fakeRawStore struct {
	saved   []domain.RawMessage
	flags   []bool
	failFor func(msg domain.RawMessage) error
}

func (f *fakeRawStore) SaveRawMessage(_ context.Context, msg domain.RawMessage, processed bool) error {
	if f.failFor != nil {
		if err := f.failFor(msg); err != nil {
			return err
		}
	}
	f.saved = append(f.saved, msg)
	f.flags = append(f.flags, processed)
	return nil
}

type fakeTransactionStore struct {
	saved   []domain.TransactionRecord
	failFor func(record domain.TransactionRecord) error
}

func (f *fakeTransactionStore) SaveTransaction(_ context.Context, record domain.TransactionRecord) error {
	if f.failFor != nil {
		if err := f.failFor(record); err != nil {
			return err
		}
	}
	f.saved = append(f.saved, record)
	return nil
}

type fakeLogStore struct {
	entries []domain.LogEntry
	runIDs  map[string]bool
	err     error
}

func (f *fakeLogStore) SaveLogEntries(_ context.Context, runID string, entries []domain.LogEntry) error {
	if f.err != nil {
		return f.err
	}
	if f.runIDs == nil {
		f.runIDs = map[string]bool{}
	}
	f.runIDs[runID] = true
	f.entries = append(f.entries, entries...)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func incomingMessage(i int) domain.RawMessage {
	return domain.RawMessage{
		Body:    fmt.Sprintf("You have received 1,000 RWF from Sender %d (*********%03d). TxId: %d", i, i%1000, i),
		Date:    1715000000000 + int64(i),
		Address: "M-Money",
	}
}

func TestPipelineCountsAndSummary(t *testing.T) {
	messages := make([]domain.RawMessage, 0, 250)
	for i := 0; i < 250; i++ {
		msg := incomingMessage(i)
		if i%50 == 0 { // 5 messages with no body
			msg.Body = ""
		}
		messages = append(messages, msg)
	}

	rawStore := &fakeRawStore{}
	txnStore := &fakeTransactionStore{}
	logStore := &fakeLogStore{}
	p := services.NewBatchPipeline(rawStore, txnStore, logStore, quietLogger(), 100)

	summary, err := p.Run(context.Background(), messages)
	require.NoError(t, err)

	assert.Equal(t, 250, summary.Total)
	assert.Equal(t, 5, summary.Ignored)
	assert.Equal(t, 245, summary.Processed)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, summary.Total, summary.Processed+summary.Ignored+summary.Errors)

	// Every message lands in the raw store, body or not.
	assert.Len(t, rawStore.saved, 250)
	assert.Len(t, txnStore.saved, 245)

	// Exactly one final summary entry.
	var summaries int
	for _, entry := range logStore.entries {
		if entry.Message == "sms data processing completed" {
			summaries++
		}
	}
	assert.Equal(t, 1, summaries)
}

func TestPipelineSinkFailureIsPerMessage(t *testing.T) {
	messages := []domain.RawMessage{
		incomingMessage(1),
		incomingMessage(2),
		incomingMessage(3),
	}

	sinkErr := errors.New("connection reset")
	rawStore := &fakeRawStore{}
	txnStore := &fakeTransactionStore{
		failFor: func(record domain.TransactionRecord) error {
			if record.TransactionID != nil && *record.TransactionID == "2" {
				return sinkErr
			}
			return nil
		},
	}
	logStore := &fakeLogStore{}
	p := services.NewBatchPipeline(rawStore, txnStore, logStore, quietLogger(), 100)

	summary, err := p.Run(context.Background(), messages)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 0, summary.Ignored)
	assert.Len(t, txnStore.saved, 2, "messages after the failing one still process")
}

func TestPipelineRawStoreFailureIsPerMessage(t *testing.T) {
	messages := []domain.RawMessage{
		incomingMessage(1),
		incomingMessage(2),
	}

	rawStore := &fakeRawStore{
		failFor: func(msg domain.RawMessage) error {
			if msg.Date == messages[0].Date {
				return errors.New("disk full")
			}
			return nil
		},
	}
	txnStore := &fakeTransactionStore{}
	p := services.NewBatchPipeline(rawStore, txnStore, &fakeLogStore{}, quietLogger(), 100)

	summary, err := p.Run(context.Background(), messages)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 1, summary.Processed)
}

func TestPipelineProcessedFlagTracksBuildOutcome(t *testing.T) {
	messages := []domain.RawMessage{
		incomingMessage(1),
		{Date: 1715000000001}, // no body
	}

	rawStore := &fakeRawStore{}
	p := services.NewBatchPipeline(rawStore, &fakeTransactionStore{}, &fakeLogStore{}, quietLogger(), 100)

	_, err := p.Run(context.Background(), messages)
	require.NoError(t, err)

	require.Len(t, rawStore.flags, 2)
	assert.True(t, rawStore.flags[0])
	assert.False(t, rawStore.flags[1])
}

func TestPipelineLogSinkFailureDoesNotAbort(t *testing.T) {
	messages := []domain.RawMessage{incomingMessage(1)}

	logStore := &fakeLogStore{err: errors.New("log table missing")}
	p := services.NewBatchPipeline(&fakeRawStore{}, &fakeTransactionStore{}, logStore, quietLogger(), 100)

	summary, err := p.Run(context.Background(), messages)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
}

func TestPipelineEmptyInput(t *testing.T) {
	logStore := &fakeLogStore{}
	p := services.NewBatchPipeline(&fakeRawStore{}, &fakeTransactionStore{}, logStore, quietLogger(), 100)

	summary, err := p.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Processed)

	// The completion summary is still emitted.
	var summaries int
	for _, entry := range logStore.entries {
		if entry.Message == "sms data processing completed" {
			summaries++
		}
	}
	assert.Equal(t, 1, summaries)
}

func TestPipelineChunkingHasNoSemanticEffect(t *testing.T) {
	messages := make([]domain.RawMessage, 0, 25)
	for i := 0; i < 25; i++ {
		messages = append(messages, incomingMessage(i))
	}

	run := func(chunkSize int) domain.RunSummary {
		p := services.NewBatchPipeline(&fakeRawStore{}, &fakeTransactionStore{}, &fakeLogStore{}, quietLogger(), chunkSize)
		summary, err := p.Run(context.Background(), messages)
		require.NoError(t, err)
		return summary
	}

	small := run(3)
	large := run(100)
	assert.Equal(t, small.Processed, large.Processed)
	assert.Equal(t, small.Ignored, large.Ignored)
	assert.Equal(t, small.Errors, large.Errors)
}
