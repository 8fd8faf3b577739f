package observe

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/snnyvrz/bookstore/internal/model"
	"github.com/snnyvrz/bookstore/internal/service"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/snnyvrz/bookstore/internal/observe"

	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusError    = "error"

	OpCreate  = "addBook"
	OpListAll = "getAllBooks"
	OpGetByID = "getBookById"
	OpUpdate  = "updateBook"
	OpDelete  = "deleteBook"
)

// Service wraps a service.BookService and records, for every call, a start
// and completion log line, a span, a duration histogram sample and a call
// counter increment. Results and errors pass through untouched.
type Service struct {
	next     service.BookService
	logger   *slog.Logger
	tracer   trace.Tracer
	duration metric.Float64Histogram
	calls    metric.Int64Counter
}

type Option func(*options)

type options struct {
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

func NewService(next service.BookService, opts ...Option) (*Service, error) {
	o := options{
		logger:         slog.Default(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	meter := o.meterProvider.Meter(instrumentationName)

	duration, err := meter.Float64Histogram(
		"bookstore.service.duration",
		metric.WithDescription("Duration of book service operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	calls, err := meter.Int64Counter(
		"bookstore.service.calls",
		metric.WithDescription("Number of book service operations"),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		next:     next,
		logger:   o.logger,
		tracer:   o.tracerProvider.Tracer(instrumentationName),
		duration: duration,
		calls:    calls,
	}, nil
}

func (s *Service) Create(ctx context.Context, book model.Book) (model.Book, error) {
	ctx, call := s.start(ctx, OpCreate, slog.String("title", book.Title))

	created, err := s.next.Create(ctx, book)
	if err == nil {
		call.attrs = append(call.attrs, slog.Uint64("book_id", created.ID))
	}

	s.finish(ctx, call, err)
	return created, err
}

func (s *Service) ListAll(ctx context.Context) ([]model.Book, error) {
	ctx, call := s.start(ctx, OpListAll)

	books, err := s.next.ListAll(ctx)
	if err == nil {
		call.attrs = append(call.attrs, slog.Int("count", len(books)))
	}

	s.finish(ctx, call, err)
	return books, err
}

func (s *Service) GetByID(ctx context.Context, id uint64) (model.Book, error) {
	ctx, call := s.start(ctx, OpGetByID, slog.Uint64("book_id", id))

	book, err := s.next.GetByID(ctx, id)
	if err == nil {
		call.attrs = append(call.attrs, slog.String("title", book.Title))
	}

	s.finish(ctx, call, err)
	return book, err
}

func (s *Service) Update(ctx context.Context, id uint64, patch model.Book) (model.Book, error) {
	ctx, call := s.start(ctx, OpUpdate, slog.Uint64("book_id", id))

	updated, err := s.next.Update(ctx, id, patch)
	if err == nil {
		call.attrs = append(call.attrs, slog.String("title", updated.Title))
	}

	s.finish(ctx, call, err)
	return updated, err
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	ctx, call := s.start(ctx, OpDelete, slog.Uint64("book_id", id))

	err := s.next.Delete(ctx, id)

	s.finish(ctx, call, err)
	return err
}

type call struct {
	operation string
	started   time.Time
	span      trace.Span
	attrs     []slog.Attr
}

func (s *Service) start(ctx context.Context, operation string, attrs ...slog.Attr) (context.Context, *call) {
	ctx, span := s.tracer.Start(ctx, "bookstore."+operation,
		trace.WithAttributes(attribute.String("operation", operation)),
	)

	c := &call{
		operation: operation,
		started:   time.Now(),
		span:      span,
		attrs:     attrs,
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "operation started",
		append([]slog.Attr{slog.String("operation", operation)}, attrs...)...,
	)

	return ctx, c
}

func (s *Service) finish(ctx context.Context, c *call, err error) {
	elapsed := time.Since(c.started)
	status := statusOf(err)

	attrs := []slog.Attr{
		slog.String("operation", c.operation),
		slog.String("status", status),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
	}
	attrs = append(attrs, c.attrs...)

	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", err.Error()))
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, err.Error())
	} else {
		c.span.SetStatus(codes.Ok, "")
	}
	c.span.SetAttributes(attribute.String("status", status))
	c.span.End()

	metricAttrs := metric.WithAttributes(
		attribute.String("operation", c.operation),
		attribute.String("status", status),
	)
	s.duration.Record(ctx, elapsed.Seconds(), metricAttrs)
	s.calls.Add(ctx, 1, metricAttrs)

	s.logger.LogAttrs(ctx, level, "operation completed", attrs...)
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, service.ErrNotFound):
		return StatusNotFound
	default:
		return StatusError
	}
}

var _ service.BookService = (*Service)(nil)
