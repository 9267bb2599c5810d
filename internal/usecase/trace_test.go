package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type recordingSpan struct {
	trace.Span
	recorded []error
	status   codes.Code
	ended    bool
}

func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) {
	s.recorded = append(s.recorded, err)
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) {
	s.status = code
}

func (s *recordingSpan) End(...trace.SpanEndOption) {
	s.ended = true
}

func TestFinishSpan(t *testing.T) {
	t.Run("records failure", func(t *testing.T) {
		span := &recordingSpan{Span: trace.SpanFromContext(context.Background())}
		err := errors.New("boom")

		finishSpan(span, &err)

		assert.True(t, span.ended)
		assert.Equal(t, codes.Error, span.status)
		assert.Equal(t, []error{err}, span.recorded)
	})

	t.Run("success only ends", func(t *testing.T) {
		span := &recordingSpan{Span: trace.SpanFromContext(context.Background())}
		var err error

		finishSpan(span, &err)

		assert.True(t, span.ended)
		assert.Empty(t, span.recorded)
		assert.Equal(t, codes.Unset, span.status)
	})
}

func TestStartUsecaseSpan_UntracedContextIsNoop(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := startUsecaseSpan(ctx, "usecase.Test")

	assert.Equal(t, ctx, gotCtx)
	assert.False(t, span.SpanContext().IsValid())
}
