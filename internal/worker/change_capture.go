package worker

import (
	"context"
	"sort"
	"sync"
	"time"

	"estate_erp/internal/conf"
	"estate_erp/internal/dao/mongodb"
	"estate_erp/internal/dao/repository"
	"estate_erp/internal/logic"
	"estate_erp/internal/metrics"
	"estate_erp/internal/models"
	"estate_erp/internal/mq"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// PipelineState is the lifecycle state of the change-capture pipeline.
type PipelineState int32

const (
	StateStopped PipelineState = iota
	StateStarting
	StateRunning
	StateBackoff
)

func (s PipelineState) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateBackoff:
		return "backoff"
	default:
		return "stopped"
	}
}

// Sequencer hands out increasing audit sequence numbers.
type Sequencer interface {
	Next() (uint64, error)
}

// ChangeCapture mirrors every insert, update and replace on the watched collections into the
// audit log. It owns the process's single change stream and restarts it forever on failure.
type ChangeCapture struct {
	feed        repository.ChangeFeed
	sink        repository.AuditLogRepository
	publisher   mq.Publisher
	sequencer   Sequencer
	builder     *logic.AuditBuilder
	metrics     *metrics.Metrics
	logger      *zap.Logger
	collections []string

	errorBackoff time.Duration
	startBackoff time.Duration

	mu          sync.Mutex
	active      bool
	state       PipelineState
	resumeToken bson.Raw
	listeners   []func(PipelineState)
}

func NewChangeCapture(feed repository.ChangeFeed, sink repository.AuditLogRepository, publisher mq.Publisher, sequencer Sequencer, m *metrics.Metrics, collections []string, cfg *conf.ChangeCaptureConfig, logger *zap.Logger) (*ChangeCapture, error) {
	errorBackoff, startBackoff, err := cfg.Backoffs()
	if err != nil {
		return nil, err
	}

	builder := logic.NewAuditBuilder(collections)
	watched := builder.Watched()
	sort.Strings(watched)

	return &ChangeCapture{
		feed:         feed,
		sink:         sink,
		publisher:    publisher,
		sequencer:    sequencer,
		builder:      builder,
		metrics:      m,
		logger:       logger.Named("ChangeCapture"),
		collections:  watched,
		errorBackoff: errorBackoff,
		startBackoff: startBackoff,
	}, nil
}

// OnStateChange registers fn to be called on every state transition.
func (c *ChangeCapture) OnStateChange(fn func(PipelineState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *ChangeCapture) State() PipelineState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start runs the pipeline until ctx is cancelled. A Start while another is running returns at once.
func (c *ChangeCapture) Start(ctx context.Context) {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		c.logger.Debug("change capture already running")
		return
	}
	c.active = true
	c.mu.Unlock()

	c.logger.Info("change capture started",
		zap.Int("collections", len(c.collections)),
		zap.Duration("errorBackoff", c.errorBackoff),
		zap.Duration("startBackoff", c.startBackoff))

	defer func() {
		c.mu.Lock()
		c.active = false
		c.mu.Unlock()
		c.setState(StateStopped)
		c.logger.Info("change capture stopped")
	}()

	c.supervise(ctx)
}

func (c *ChangeCapture) supervise(ctx context.Context) {
	for {
		c.setState(StateStarting)
		stream, err := c.feed.Watch(ctx, c.collections, c.token())
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.forgetTokenIfLost(err)
			c.metrics.IncPipelineRestart("subscribe")
			c.logger.Error("change stream subscription failed", zap.Error(err), zap.Duration("retryIn", c.startBackoff))
			if !c.backoff(ctx, c.startBackoff) {
				return
			}
			continue
		}

		c.setState(StateRunning)
		err = c.consume(ctx, stream)
		c.closeStream(stream)
		if ctx.Err() != nil {
			return
		}

		cause := "closed"
		if err != nil {
			cause = "error"
			c.forgetTokenIfLost(err)
		}
		c.metrics.IncPipelineRestart(cause)
		c.logger.Warn("change stream ended, restarting", zap.Error(err), zap.String("cause", cause), zap.Duration("retryIn", c.errorBackoff))
		if !c.backoff(ctx, c.errorBackoff) {
			return
		}
	}
}

// consume processes events until the stream ends and returns the stream's error, if any.
func (c *ChangeCapture) consume(ctx context.Context, stream repository.ChangeStream) error {
	for stream.Next(ctx) {
		var ev models.ChangeEvent
		if err := stream.Decode(&ev); err != nil {
			c.metrics.IncAuditDropped("undecodable")
		} else {
			c.handle(ctx, &ev)
		}
		c.saveToken(stream.ResumeToken())
	}
	return stream.Err()
}

// handle derives, persists and fans out one audit record. Nothing here reaches the writer
// of the original change: failures are logged, counted and dropped.
func (c *ChangeCapture) handle(ctx context.Context, ev *models.ChangeEvent) {
	record, reason := c.builder.Build(ev)
	if reason != logic.DropNone {
		c.metrics.IncAuditDropped(string(reason))
		return
	}

	seq, err := c.sequencer.Next()
	if err != nil {
		c.logger.Warn("audit sequence unavailable", zap.Error(err))
	}
	record.Sequence = seq

	if err := c.sink.Create(ctx, record); err != nil {
		c.metrics.IncPersistFailures()
		c.logger.Error("audit record dropped", zap.Error(err),
			zap.String("collection", record.CollectionName),
			zap.String("operation", record.OperationType),
			zap.Any("documentID", record.DocumentID))
		return
	}
	c.metrics.IncAuditEvent(record.CollectionName, record.OperationType)
	c.publish(ctx, record)
}

func (c *ChangeCapture) publish(ctx context.Context, record *models.AuditLog) {
	body, err := bson.MarshalExtJSON(record, false, false)
	if err != nil {
		c.metrics.IncPublishFailures()
		c.logger.Warn("audit record not encodable for fan-out", zap.Error(err))
		return
	}
	if err := c.publisher.Publish(ctx, mq.AuditRoutingKey(record.CollectionName, record.OperationType), body); err != nil {
		c.metrics.IncPublishFailures()
		c.logger.Warn("audit fan-out failed", zap.Error(err), zap.String("collection", record.CollectionName))
	}
}

func (c *ChangeCapture) backoff(ctx context.Context, d time.Duration) bool {
	c.setState(StateBackoff)
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *ChangeCapture) closeStream(stream repository.ChangeStream) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := stream.Close(ctx); err != nil {
		c.logger.Debug("change stream close failed", zap.Error(err))
	}
}

func (c *ChangeCapture) setState(s PipelineState) {
	c.mu.Lock()
	if c.state == s {
		c.mu.Unlock()
		return
	}
	c.state = s
	listeners := append([]func(PipelineState){}, c.listeners...)
	c.mu.Unlock()

	c.metrics.SetPipelineState(int(s))
	for _, fn := range listeners {
		fn(s)
	}
}

func (c *ChangeCapture) token() bson.Raw {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resumeToken
}

func (c *ChangeCapture) saveToken(t bson.Raw) {
	if len(t) == 0 {
		return
	}
	c.mu.Lock()
	c.resumeToken = append(bson.Raw(nil), t...)
	c.mu.Unlock()
}

// forgetTokenIfLost drops a resume token the server no longer has, so the next attempt starts fresh.
func (c *ChangeCapture) forgetTokenIfLost(err error) {
	if !mongodb.IsHistoryLost(err) {
		return
	}
	c.mu.Lock()
	c.resumeToken = nil
	c.mu.Unlock()
	c.logger.Warn("resume token expired, changes since the last processed event are not audited")
}

var _ Worker = (*ChangeCapture)(nil)
