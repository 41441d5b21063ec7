package generator

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sitecraft-ai/sitecraft/internal/keypool"
	"github.com/sitecraft-ai/sitecraft/internal/llm"
	"github.com/sitecraft-ai/sitecraft/internal/model"
	"github.com/sitecraft-ai/sitecraft/internal/store"
	"github.com/sitecraft-ai/sitecraft/pkg/logger"
	"github.com/sitecraft-ai/sitecraft/pkg/metrics"
)

const usageEndpoint = "chat/completions"

// Request carries the inputs for one generation run.
type Request struct {
	Description  string
	ProjectType  string
	Requirements string
	UserID       int64
}

// Options configure the pipeline's model and retry behavior.
type Options struct {
	Model          string
	Temperature    float64
	TopP           float64
	MaxTokens      int
	RequestTimeout time.Duration
	MaxRetries     int
}

// Pipeline orchestrates description validation, prompt synthesis, the
// bounded-retry API call, extraction and enhancement.
type Pipeline struct {
	client llm.Client
	keys   *keypool.Rotator
	repo   store.Repository
	logger *logger.Logger
	opts   Options
}

// NewPipeline creates a generation pipeline.
func NewPipeline(client llm.Client, keys *keypool.Rotator, repo store.Repository, log *logger.Logger, opts Options) *Pipeline {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	return &Pipeline{
		client: client,
		keys:   keys,
		repo:   repo,
		logger: log,
		opts:   opts,
	}
}

// Generate runs the full pipeline and returns the enhanced artifact. Failures
// carry one of the package's taxonomy errors.
func (p *Pipeline) Generate(ctx context.Context, req Request) (*model.Artifact, error) {
	if err := ValidateDescription(req.Description); err != nil {
		return nil, err
	}

	system, user := BuildPrompts(req.Description, req.Requirements)
	completion := &llm.CompletionRequest{
		Model: p.opts.Model,
		Messages: []llm.ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   p.opts.MaxTokens,
		Temperature: p.opts.Temperature,
		TopP:        p.opts.TopP,
	}
	estimatedTokens := len(req.Description) / 4

	log := p.logger.WithUser(req.UserID)

	for attempt := 1; attempt <= p.opts.MaxRetries; attempt++ {
		key, ok := p.keys.Next()
		if !ok {
			// Pool exhaustion aborts the whole run, not just this attempt.
			return nil, ErrNoCredential
		}

		attemptCtx, cancel := context.WithTimeout(ctx, p.opts.RequestTimeout)
		start := time.Now()
		resp, err := p.client.Complete(attemptCtx, key, completion)
		cancel()
		elapsed := time.Since(start)

		if err != nil {
			if status, isAPI := llm.StatusCode(err); isAPI {
				// The endpoint answered with a non-success status: the
				// credential is suspect, rotate it out.
				log.Warn("generation attempt rejected",
					zap.Int("attempt", attempt),
					zap.Int("status", status),
					zap.String("key", keypool.Redact(key)),
				)
				p.keys.MarkFailed(key)
				p.logUsage(ctx, req.UserID, key, status, elapsed, estimatedTokens)
				metrics.RecordAttempt("api_error", elapsed.Seconds(), estimatedTokens)
				continue
			}

			// Timeout or transport failure: transient, keep the credential.
			if errors.Is(err, context.DeadlineExceeded) {
				log.Warn("generation attempt timed out", zap.Int("attempt", attempt))
			} else {
				log.Warn("generation attempt transport error", zap.Int("attempt", attempt), zap.Error(err))
			}
			metrics.RecordAttempt("transport_error", elapsed.Seconds(), estimatedTokens)
			continue
		}

		// Failed attempts never see a usage block, so the estimate covers
		// them; successful ones record what the endpoint reported.
		tokens := resp.TokensIn + resp.TokensOut
		if tokens == 0 {
			tokens = estimatedTokens
		}
		p.logUsage(ctx, req.UserID, key, 200, elapsed, tokens)
		metrics.RecordAttempt("success", elapsed.Seconds(), tokens)

		// A malformed model response is not assumed transient: extraction
		// failures propagate immediately instead of burning retries.
		artifact, err := Extract(resp.Content)
		if err != nil {
			return nil, err
		}

		Enhance(artifact)
		log.Info("project generated",
			zap.Int("attempt", attempt),
			zap.Duration("latency", elapsed),
			zap.String("model", resp.Model),
			zap.Int("tokens", tokens),
			zap.String("project_type", req.ProjectType),
		)
		return artifact, nil
	}

	return nil, ErrGenerationExhausted
}

func (p *Pipeline) logUsage(ctx context.Context, userID int64, key string, status int, elapsed time.Duration, tokens int) {
	entry := &store.UsageEntry{
		KeyPrefix:    keypool.Redact(key),
		UserID:       userID,
		Endpoint:     usageEndpoint,
		StatusCode:   status,
		ResponseTime: elapsed.Seconds(),
		TokensUsed:   tokens,
		CreatedAt:    time.Now(),
	}
	if err := p.repo.LogUsage(ctx, entry); err != nil {
		p.logger.Warn("failed to record usage entry", zap.Error(err))
	}
}
