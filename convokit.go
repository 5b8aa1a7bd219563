// Package convokit provides a high-level façade over the conversational
// intelligence pipeline: typo correction, intent and entity extraction,
// sentiment and emotion classification, tone adjustment, escalation
// detection and the bounded conversation context store. Most applications
// interact with this package by:
//  1. Creating a Pipeline via New() (optionally overriding default components)
//  2. Calling Analyze for each inbound user turn
//  3. Obtaining a reply (Respond, or an external model call of their own)
//  4. Calling Finalize to frame the reply, compute the escalation flag and
//     persist both turns
//
// The façade delegates the decision logic to the component packages while
// keeping setup and per-turn usage concise. All defaults are safe for local
// development; production deployments typically supply a configured store
// path, a structured logger and a completion provider.
package convokit

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/convokit/core"
	"github.com/hupe1980/convokit/logging"
	"github.com/hupe1980/convokit/model"
	"github.com/hupe1980/convokit/nlu"
	"github.com/hupe1980/convokit/sentiment"
	"github.com/hupe1980/convokit/session"
	"github.com/hupe1980/convokit/typo"
)

// DefaultStorePath is where the context store snapshot lives unless overridden.
const DefaultStorePath = "data/contexts.json"

// DefaultContextWindow is how many trailing turns are injected into the
// outbound prompt.
const DefaultContextWindow = 3

// Options configure the Pipeline.
type Options struct {
	// Corrector normalizes typos before analysis.
	Corrector *typo.Corrector
	// Extractor classifies intents and extracts entities.
	Extractor *nlu.Extractor
	// Analyzer computes sentiment scores.
	Analyzer *sentiment.Analyzer
	// Escalation decides on human handoff.
	Escalation *sentiment.Detector
	// ContextStore owns the per-session conversational memory. Defaults to a
	// FileStore at DefaultStorePath.
	ContextStore core.ContextStore
	// Provider is the external completion collaborator used by Respond.
	// Optional; callers can obtain replies elsewhere and still Finalize.
	Provider core.CompletionProvider
	// Mode selects the assistant persona for prompt assembly.
	Mode model.Mode
	// ContextWindow is the number of trailing turns injected into the prompt.
	ContextWindow int
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Pipeline is the high-level façade aggregating the pipeline components.
type Pipeline struct {
	corrector  *typo.Corrector
	extractor  *nlu.Extractor
	analyzer   *sentiment.Analyzer
	escalation *sentiment.Detector
	store      core.ContextStore
	provider   core.CompletionProvider
	mode       model.Mode
	window     int
	logger     logging.Logger
}

// New creates a Pipeline with optional overrides. Any unset component is
// initialized with its package default.
func New(optFns ...func(o *Options)) (*Pipeline, error) {
	opts := Options{
		Mode:          model.ModeAssistant,
		ContextWindow: DefaultContextWindow,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Corrector == nil {
		opts.Corrector = typo.NewCorrector()
	}
	if opts.Extractor == nil {
		opts.Extractor = nlu.NewExtractor()
	}
	if opts.Analyzer == nil {
		opts.Analyzer = sentiment.NewAnalyzer(func(o *sentiment.AnalyzerOptions) {
			o.Logger = opts.Logger
		})
	}
	if opts.Escalation == nil {
		opts.Escalation = sentiment.NewDetector()
	}
	if opts.ContextStore == nil {
		store, err := session.NewFileStore(DefaultStorePath, func(o *session.Options) {
			o.Logger = opts.Logger
		})
		if err != nil {
			return nil, fmt.Errorf("create default context store: %w", err)
		}
		opts.ContextStore = store
	}

	return &Pipeline{
		corrector:  opts.Corrector,
		extractor:  opts.Extractor,
		analyzer:   opts.Analyzer,
		escalation: opts.Escalation,
		store:      opts.ContextStore,
		provider:   opts.Provider,
		mode:       opts.Mode,
		window:     opts.ContextWindow,
		logger:     opts.Logger,
	}, nil
}

// Store exposes the context store for analytics and session management.
func (p *Pipeline) Store() core.ContextStore { return p.store }

// Analysis is the classification result of one inbound user turn.
type Analysis struct {
	SessionID     string
	OriginalText  string
	CorrectedText string
	TypoCorrected bool
	Intent        core.Intent
	Sentiment     core.SentimentScore
	// Context is the formatted recent-history block for prompt injection.
	Context string
}

// Analyze runs the inbound half of the pipeline: typo correction, intent and
// entity extraction, sentiment classification and context retrieval. Always
// produces a valid Analysis; the only possible error comes from the store.
func (p *Pipeline) Analyze(ctx context.Context, sessionID, text string) (*Analysis, error) {
	corrected := p.corrector.Correct(text)
	intent := p.extractor.ExtractIntent(corrected)
	score := p.analyzer.Analyze(ctx, corrected)

	contextBlock, err := p.store.RelevantContext(corrected, sessionID, p.window)
	if err != nil {
		return nil, fmt.Errorf("fetch relevant context: %w", err)
	}

	p.logger.Debug("turn analyzed",
		"session_id", sessionID,
		"intent", string(intent.Name),
		"intent_confidence", intent.Confidence,
		"emotion", string(score.Emotion),
		"polarity", score.Polarity,
	)

	return &Analysis{
		SessionID:     sessionID,
		OriginalText:  text,
		CorrectedText: corrected,
		TypoCorrected: corrected != text,
		Intent:        intent,
		Sentiment:     score,
		Context:       contextBlock,
	}, nil
}

// Respond obtains a reply from the configured completion provider using the
// mode persona, the emotional-context hint and the analysis context block.
func (p *Pipeline) Respond(ctx context.Context, analysis *Analysis, datasetContext string) (string, error) {
	if p.provider == nil {
		return "", fmt.Errorf("no completion provider configured")
	}

	system := model.SystemPrompt(p.mode, analysis.Sentiment.Emotion, func(o *model.PromptOptions) {
		o.DatasetContext = datasetContext
		o.ConversationContext = analysis.Context
	})

	start := time.Now()
	reply, err := p.provider.Complete(ctx, system, analysis.CorrectedText)
	if err != nil {
		p.logger.Error("model call failed", "session_id", analysis.SessionID, "duration", time.Since(start), "error", err)
		return "", fmt.Errorf("completion provider: %w", err)
	}
	p.logger.Info("model call completed", "session_id", analysis.SessionID, "duration", time.Since(start))
	return reply, nil
}

// Turn is the finalized outcome of one conversational exchange.
type Turn struct {
	// Reply is the tone-adjusted assistant reply.
	Reply string
	// ShouldEscalate flags the conversation for human takeover.
	ShouldEscalate bool
	// Analysis is the inbound classification the turn was built from.
	Analysis *Analysis
}

// Finalize completes the turn: it frames the reply for the user's emotional
// state, evaluates escalation over the history including this turn, then
// persists both messages. Persistence failures are logged, not returned; the
// in-memory store stays authoritative and the turn still succeeds.
func (p *Pipeline) Finalize(analysis *Analysis, reply string) (*Turn, error) {
	adjusted := sentiment.AdjustTone(reply, analysis.Sentiment)

	userMsg := core.NewUserMessage(analysis.OriginalText)
	userMsg.Sentiment = analysis.Sentiment.Label()

	escalate, err := p.shouldEscalate(analysis, userMsg)
	if err != nil {
		return nil, err
	}

	if err := p.store.Update(analysis.SessionID, userMsg, analysis.Intent.Name, analysis.Intent.Entities); err != nil {
		p.logger.Error("context update failed for user turn", "session_id", analysis.SessionID, "error", err)
	}
	assistantMsg := core.NewAssistantMessage(adjusted)
	if err := p.store.Update(analysis.SessionID, assistantMsg, "", nil); err != nil {
		p.logger.Error("context update failed for assistant turn", "session_id", analysis.SessionID, "error", err)
	}

	p.logger.Info("turn finalized",
		"session_id", analysis.SessionID,
		"intent", string(analysis.Intent.Name),
		"emotion", string(analysis.Sentiment.Emotion),
		"should_escalate", escalate,
	)

	return &Turn{Reply: adjusted, ShouldEscalate: escalate, Analysis: analysis}, nil
}

// shouldEscalate evaluates the detector over the persisted history with the
// in-flight user turn appended, so the current emotion participates in the
// streak before the store is touched.
func (p *Pipeline) shouldEscalate(analysis *Analysis, userMsg core.Message) (bool, error) {
	ctx, err := p.store.GetOrCreate(analysis.SessionID)
	if err != nil {
		return false, fmt.Errorf("load session context: %w", err)
	}
	candidate := userMsg
	candidate.Intent = analysis.Intent.Name
	candidate.Entities = analysis.Intent.Entities
	history := append(ctx.Messages, candidate)
	return p.escalation.ShouldEscalate(history), nil
}

// ProcessTurn is a synchronous helper running Analyze, Respond and Finalize
// in sequence.
func (p *Pipeline) ProcessTurn(ctx context.Context, sessionID, text, datasetContext string) (*Turn, error) {
	analysis, err := p.Analyze(ctx, sessionID, text)
	if err != nil {
		return nil, err
	}
	reply, err := p.Respond(ctx, analysis, datasetContext)
	if err != nil {
		return nil, err
	}
	return p.Finalize(analysis, reply)
}
