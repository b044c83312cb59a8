package workflow

import (
	"context"
	"fmt"

	"github.com/gfranca/finbot/internal/classifier"
	"github.com/gfranca/finbot/internal/extractor"
	"github.com/gfranca/finbot/internal/storage"
	"go.uber.org/zap"
)

const (
	// DefaultContextTurns is how many past conversation turns feed the
	// responder's short-term memory.
	DefaultContextTurns = 3
	// DefaultReportLimit caps the transactions listed in a report reply.
	DefaultReportLimit = 5
)

// Workflow runs the fixed pipeline for one message:
// classify -> extract -> load context -> respond.
// No stage is skipped or reordered; branching on intent happens only
// inside the responder.
type Workflow struct {
	classifier   classifier.Classifier
	extractor    extractor.Extractor
	storage      storage.Storage
	logger       *zap.Logger
	contextTurns int
	reportLimit  int
}

func New(clf classifier.Classifier, ext extractor.Extractor, store storage.Storage, logger *zap.Logger) *Workflow {
	return &Workflow{
		classifier:   clf,
		extractor:    ext,
		storage:      store,
		logger:       logger,
		contextTurns: DefaultContextTurns,
		reportLimit:  DefaultReportLimit,
	}
}

// WithLimits overrides the context and report limits; zero values keep the
// defaults.
func (w *Workflow) WithLimits(contextTurns, reportLimit int) *Workflow {
	if contextTurns > 0 {
		w.contextTurns = contextTurns
	}
	if reportLimit > 0 {
		w.reportLimit = reportLimit
	}
	return w
}

// Run processes one message end to end and returns the reply text. Every
// fault is absorbed into the reply: the pipeline never returns an error to
// its caller.
func (w *Workflow) Run(ctx context.Context, userID, input string) string {
	state := State{UserID: userID, UserInput: input}

	state = w.classify(ctx, state)
	state = w.extract(ctx, state)
	state = w.loadContext(ctx, state)

	response, err := w.respond(ctx, state)
	if err != nil {
		w.logger.Error("Response stage failed",
			zap.Error(err),
			zap.String("user_id", state.UserID),
			zap.String("intent", state.Intent))
		response = fmt.Sprintf("Desculpe, ocorreu um erro ao processar sua mensagem: %v", err)
	}
	state.Response = response

	// The conversation turn is logged no matter how the reply was produced.
	if _, err := w.storage.SaveConversation(ctx, state.UserID, state.UserInput, state.Response, state.Intent); err != nil {
		w.logger.Error("Failed to save conversation turn",
			zap.Error(err),
			zap.String("user_id", state.UserID))
	}

	return state.Response
}

func (w *Workflow) classify(ctx context.Context, state State) State {
	state.Intent = w.classifier.ClassifyIntent(ctx, state.UserInput)
	return state
}

func (w *Workflow) extract(ctx context.Context, state State) State {
	record := w.extractor.ExtractTransaction(ctx, state.UserInput)
	state.TransactionData = &record
	return state
}

// loadContext pulls the most recent conversation turns and expands them
// chronologically, two lines per turn. Context is best effort: storage
// failures leave it empty.
func (w *Workflow) loadContext(ctx context.Context, state State) State {
	history, err := w.storage.GetUserConversationHistory(ctx, state.UserID, w.contextTurns)
	if err != nil {
		w.logger.Warn("Failed to load conversation context",
			zap.Error(err),
			zap.String("user_id", state.UserID))
		state.ConversationContext = nil
		return state
	}

	// Storage returns most recent first; the responder wants oldest first.
	lines := make([]string, 0, len(history)*2)
	for i := len(history) - 1; i >= 0; i-- {
		lines = append(lines, "Usuário: "+history[i].Message)
		lines = append(lines, "Bot: "+history[i].Response)
	}
	state.ConversationContext = lines
	return state
}
