package llm

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// Manager manages LLM providers and their lifecycle. Calls are throttled
// with a shared rate limiter so the provider's API quota is respected.
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	limiter  *rate.Limiter
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	perMinute := cfg.Workers.RateLimit
	if perMinute <= 0 {
		perMinute = 60
	}

	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the LLM manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		// Allow the server to start without LLM features
		m.logger.Warn("LLM provider health check failed - AI features will be disabled", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// ParseResume extracts a structured resume from free-form text
func (m *Manager) ParseResume(ctx context.Context, text string) (*models.RawResumeDocument, error) {
	provider, err := m.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return provider.ParseResume(ctx, text)
}

// EnhanceResume rewrites resume text, optionally tailored to a job description
func (m *Manager) EnhanceResume(ctx context.Context, text, jobDescription string) (*models.RawResumeDocument, error) {
	provider, err := m.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return provider.EnhanceResume(ctx, text, jobDescription)
}

// ScoreResume evaluates a resume against a job description
func (m *Manager) ScoreResume(ctx context.Context, doc *models.ResumeDocument, jobDescription string) (*models.ATSAnalysis, error) {
	provider, err := m.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return provider.ScoreResume(ctx, doc, jobDescription)
}

// acquire checks provider availability and waits for rate limiter headroom.
func (m *Manager) acquire(ctx context.Context) (Provider, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return nil, fmt.Errorf("LLM manager not started or provider not available")
	}
	if !healthy {
		return nil, fmt.Errorf("LLM provider is not available - check API key configuration (set LLM_API_KEY environment variable)")
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	return provider, nil
}

// IsHealthy checks if the LLM manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the LLM provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
