package bot

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sitecraft-ai/sitecraft/internal/generator"
	"github.com/sitecraft-ai/sitecraft/internal/model"
	"github.com/sitecraft-ai/sitecraft/internal/ratelimit"
	"github.com/sitecraft-ai/sitecraft/internal/session"
	"github.com/sitecraft-ai/sitecraft/internal/store"
	"github.com/sitecraft-ai/sitecraft/pkg/logger"
	"github.com/sitecraft-ai/sitecraft/pkg/metrics"
)

// Controller interprets inbound chat events against the conversation state
// machine and dispatches generation runs. Event handlers return quickly; the
// generation pipeline runs on its own goroutine per user.
type Controller struct {
	sessions         *session.Store
	limiter          *ratelimit.Limiter
	pipeline         *generator.Pipeline
	repo             store.Repository
	transport        Transport
	logger           *logger.Logger
	progressInterval time.Duration

	mu      sync.Mutex
	running map[int64]*runHandle
	wg      sync.WaitGroup
}

// runHandle identifies one generation run so its owner can cancel it and
// cleanup cannot touch another run's registration.
type runHandle struct {
	cancel context.CancelFunc
}

// NewController creates a conversation controller.
func NewController(
	sessions *session.Store,
	limiter *ratelimit.Limiter,
	pipeline *generator.Pipeline,
	repo store.Repository,
	transport Transport,
	log *logger.Logger,
	progressInterval time.Duration,
) *Controller {
	if progressInterval <= 0 {
		progressInterval = 2 * time.Second
	}
	return &Controller{
		sessions:         sessions,
		limiter:          limiter,
		pipeline:         pipeline,
		repo:             repo,
		transport:        transport,
		logger:           log,
		progressInterval: progressInterval,
		running:          map[int64]*runHandle{},
	}
}

// HandleCommand processes a slash command. Both start and help present the
// main menu without touching any existing state.
func (c *Controller) HandleCommand(ctx context.Context, userID int64, name string) {
	metrics.ConversationEventsTotal.WithLabelValues("command").Inc()

	switch name {
	case "start", "help":
		c.send(ctx, userID, welcomeText, mainMenuKeyboard())
	default:
		c.logger.WithUser(userID).Debug("unknown command", zap.String("command", name))
	}
}

// HandleText processes a free-text message. Text is only meaningful while the
// user is being asked for a project description.
func (c *Controller) HandleText(ctx context.Context, userID int64, text string) {
	metrics.ConversationEventsTotal.WithLabelValues("text").Inc()
	log := c.logger.WithUser(userID)

	sess, ok := c.sessions.Get(userID)
	if !ok || sess.Stage != model.StageAwaitingDescription {
		log.Debug("text outside description stage, ignored")
		return
	}

	if err := generator.ValidateDescription(text); err != nil {
		// User-correctable: report and stay in the same stage.
		c.send(ctx, userID, failureText(err), nil)
		return
	}

	c.sessions.Set(userID, session.Patch{
		Stage:       model.StageAwaitingQuality,
		Description: text,
	})
	sess, _ = c.sessions.Get(userID)
	c.send(ctx, userID, descriptionAcceptedText(sess), qualityKeyboard())
}

// HandleCallback processes a button selection. The selection code carries a
// namespace prefix identifying which keyboard it came from.
func (c *Controller) HandleCallback(ctx context.Context, userID int64, messageID int, data string) {
	metrics.ConversationEventsTotal.WithLabelValues("callback").Inc()

	switch {
	case data == model.CallbackCreateWebsite:
		c.startFlow(ctx, userID)
	case strings.HasPrefix(data, model.CallbackTypePrefix):
		c.selectType(ctx, userID, messageID, strings.TrimPrefix(data, model.CallbackTypePrefix))
	case strings.HasPrefix(data, model.CallbackQualityPrefix):
		c.selectQuality(ctx, userID, messageID, strings.TrimPrefix(data, model.CallbackQualityPrefix))
	default:
		c.logger.WithUser(userID).Debug("unknown callback", zap.String("data", data))
	}
}

func (c *Controller) startFlow(ctx context.Context, userID int64) {
	if c.isRunning(userID) {
		c.send(ctx, userID, runInProgressText, nil)
		return
	}

	if !c.limiter.Admit(userID) {
		metrics.RateLimitRejectionsTotal.Inc()
		c.logger.WithUser(userID).Info("flow start rejected by rate limit")
		c.send(ctx, userID, rateLimitText, nil)
		return
	}

	// Starting over is an explicit reset of any half-finished flow.
	c.sessions.Clear(userID)
	c.sessions.Set(userID, session.Patch{
		Stage:           model.StageAwaitingType,
		ProjectCategory: "website",
	})
	c.send(ctx, userID, chooseTypeText, typeKeyboard())
}

func (c *Controller) selectType(ctx context.Context, userID int64, messageID int, code string) {
	sess, ok := c.sessions.Get(userID)
	if !ok || !model.CanTransition(sess.Stage, model.StageAwaitingDescription) {
		c.send(ctx, userID, sessionExpiredText, nil)
		return
	}

	c.sessions.Set(userID, session.Patch{
		Stage:       model.StageAwaitingDescription,
		ProjectType: code,
		TypeName:    model.SiteTypeName(code),
	})
	c.edit(ctx, userID, messageID, descriptionPromptText)
}

func (c *Controller) selectQuality(ctx context.Context, userID int64, messageID int, code string) {
	sess, ok := c.sessions.Get(userID)
	if !ok || sess.Stage != model.StageAwaitingQuality {
		c.send(ctx, userID, sessionExpiredText, nil)
		return
	}

	c.sessions.Set(userID, session.Patch{
		Quality:     code,
		QualityName: model.QualityTierName(code),
	})
	sess, _ = c.sessions.Get(userID)

	// The run gets its own cancellable context so it outlives the event
	// handler and can be stopped on shutdown. Registration doubles as the
	// single-run-per-user gate: concurrent quality callbacks race to it and
	// exactly one wins.
	runCtx, cancel := context.WithCancel(context.Background())
	handle := &runHandle{cancel: cancel}
	if !c.tryRegister(userID, handle) {
		cancel()
		c.send(ctx, userID, runInProgressText, nil)
		return
	}

	c.edit(ctx, userID, messageID, startingText)

	c.wg.Add(1)
	metrics.GenerationWorkersActive.Inc()
	go c.runGeneration(runCtx, handle, sess, messageID)
}

// tryRegister installs the run handle for the user unless one is already
// registered. Check and install are a single critical section.
func (c *Controller) tryRegister(userID int64, h *runHandle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.running[userID]; ok {
		return false
	}
	c.running[userID] = h
	return true
}

// release cancels and unregisters the run, but only if the registration still
// belongs to this handle.
func (c *Controller) release(userID int64, h *runHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.running[userID]; ok && cur == h {
		cur.cancel()
		delete(c.running, userID)
	}
}

// runGeneration executes one generation run to a terminal outcome. The user's
// state record is cleared on both success and failure so the conversation is
// never left mid-pipeline.
func (c *Controller) runGeneration(ctx context.Context, handle *runHandle, sess model.Session, messageID int) {
	userID := sess.UserID
	defer func() {
		c.sessions.Clear(userID)
		c.release(userID, handle)
		metrics.GenerationWorkersActive.Dec()
		c.wg.Done()
	}()

	done := make(chan struct{})
	go c.showProgress(ctx, userID, messageID, done)

	artifact, err := c.pipeline.Generate(ctx, generator.Request{
		Description:  sess.Description,
		ProjectType:  sess.ProjectType,
		Requirements: "Quality: " + sess.QualityName,
		UserID:       userID,
	})
	close(done)
	if err != nil {
		c.reportFailure(ctx, userID, messageID, err)
		return
	}

	score := generator.Score(artifact)
	c.persistProject(ctx, sess, artifact, score)
	c.deliver(ctx, sess, artifact, score)
	metrics.RecordCompletion(sess.ProjectType, score)

	c.logger.WithUser(userID).Info("project completed",
		zap.String("project_type", sess.ProjectType),
		zap.String("quality", sess.Quality),
		zap.Int("score", score),
	)
}

// showProgress emits fixed-interval progress notifications. They are pure
// user feedback and best-effort: edit failures are swallowed.
func (c *Controller) showProgress(ctx context.Context, userID int64, messageID int, done <-chan struct{}) {
	ticker := time.NewTicker(c.progressInterval)
	defer ticker.Stop()

	for step := 0; step < len(progressStages); step++ {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = c.transport.EditMessage(ctx, userID, messageID, progressText(step))
		}
	}
}

func (c *Controller) reportFailure(ctx context.Context, userID int64, messageID int, err error) {
	kind := generator.Kind(err)
	log := c.logger.WithUser(userID)
	log.Warn("generation run failed", zap.String("kind", kind), zap.Error(err))

	// Validation problems are expected user input issues and stay out of
	// the persistent error log.
	if !errors.Is(err, generator.ErrInvalidDescription) {
		logErr := c.repo.LogError(ctx, &store.ErrorEntry{
			UserID:    userID,
			Kind:      kind,
			Message:   err.Error(),
			CreatedAt: time.Now(),
		})
		if logErr != nil {
			log.Warn("failed to persist error entry", zap.Error(logErr))
		}
	}

	if editErr := c.transport.EditMessage(ctx, userID, messageID, failureText(err)); editErr != nil {
		c.send(ctx, userID, failureText(err), nil)
	}
}

func (c *Controller) persistProject(ctx context.Context, sess model.Session, artifact *model.Artifact, score int) {
	data, err := json.Marshal(artifact)
	if err != nil {
		c.logger.WithUser(sess.UserID).Error("failed to serialize artifact", zap.Error(err))
		return
	}

	now := time.Now()
	rec := &model.ProjectRecord{
		ID:           uuid.NewString(),
		UserID:       sess.UserID,
		ProjectType:  sess.ProjectType,
		Description:  sess.Description,
		ArtifactJSON: string(data),
		Status:       model.ProjectStatusCompleted,
		QualityScore: score,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := c.repo.SaveProject(ctx, rec); err != nil {
		// The user still gets their files; the record is operational data.
		c.logger.WithUser(sess.UserID).Warn("failed to persist project record", zap.Error(err))
	}
}

func (c *Controller) deliver(ctx context.Context, sess model.Session, artifact *model.Artifact, score int) {
	userID := sess.UserID
	docs := []Document{
		{Name: "index.html", Caption: "Main page", Content: []byte(artifact.HTML)},
		{Name: "style.css", Caption: "Styles", Content: []byte(artifact.CSS)},
		{Name: "script.js", Caption: "Interactive behavior", Content: []byte(artifact.JS)},
		{Name: "README.md", Caption: "Usage guide", Content: []byte(buildReadme(sess, artifact, score))},
	}

	log := c.logger.WithUser(userID)
	for _, doc := range docs {
		if err := c.transport.SendDocument(ctx, userID, doc); err != nil {
			log.Warn("failed to deliver file", zap.String("file", doc.Name), zap.Error(err))
		}
	}

	c.send(ctx, userID, successText(sess, score, len(docs)), nil)
}

// Shutdown cancels in-flight generation runs and waits for them to finish or
// for the context to expire.
func (c *Controller) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	for _, h := range c.running {
		h.cancel()
	}
	c.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) isRunning(userID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.running[userID]
	return ok
}

func (c *Controller) send(ctx context.Context, userID int64, text string, keyboard Keyboard) {
	if _, err := c.transport.SendMessage(ctx, userID, text, keyboard); err != nil {
		c.logger.WithUser(userID).Warn("failed to send message", zap.Error(err))
	}
}

func (c *Controller) edit(ctx context.Context, userID int64, messageID int, text string) {
	if err := c.transport.EditMessage(ctx, userID, messageID, text); err != nil {
		// Fall back to a fresh message so the user still sees the prompt.
		c.send(ctx, userID, text, nil)
	}
}
