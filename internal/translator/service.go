package translator

import (
	"context"
	"time"

	"github.com/smallnest/lingo/internal/domain"
	"github.com/smallnest/lingo/internal/log"
)

// Service validates requests, delegates to the LLM layer and assembles
// responses. It holds no per-request state, so one instance serves all
// requests concurrently.
type Service struct {
	llm    *LLMService
	logger log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService builds the translation service on top of the LLM layer.
func NewService(llm *LLMService, opts ...Option) *Service {
	s := &Service{
		llm:    llm,
		logger: &log.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process handles one translation request end to end. Validation runs
// before anything touches the provider; provider failures come back as
// *TranslationError, validation failures as *domain.ValidationError.
// The response echoes the original text and target language exactly as
// received.
func (s *Service) Process(ctx context.Context, req domain.TranslationRequest) (*domain.TranslationResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("rejected request: %v", err)
		return nil, err
	}

	start := time.Now()
	translated, err := s.llm.Translate(ctx, req.Text, req.TargetLanguage)
	if err != nil {
		s.logger.Error("translation to %q failed after %s: %v", req.TargetLanguage, time.Since(start).Round(time.Millisecond), err)
		return nil, &TranslationError{Err: err}
	}

	s.logger.Info("translated %d characters to %q in %s", len(req.Text), req.TargetLanguage, time.Since(start).Round(time.Millisecond))

	return &domain.TranslationResponse{
		TranslatedText: translated,
		OriginalText:   req.Text,
		TargetLanguage: req.TargetLanguage,
		Timestamp:      domain.Timestamp(time.Now()),
	}, nil
}

// HealthCheck reports liveness. It answers immediately from local
// state and never calls the provider.
func (s *Service) HealthCheck() domain.HealthResponse {
	return domain.NewHealthResponse(domain.StatusHealthy)
}
