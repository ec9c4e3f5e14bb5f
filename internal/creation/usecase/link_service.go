package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go-shortlink/internal/creation/domain"
	"go-shortlink/internal/shared/cache"
	"go-shortlink/internal/shared/dispatch"
	"go-shortlink/internal/shared/metrics"
	"go-shortlink/pkg/shortcode"

	"go.uber.org/zap"
)

const (
	maxAttempts  = 10
	maxURLLength = 2048
)

// LinkService creates and looks up short links. It is the only writer of
// the Record Store.
type LinkService struct {
	repo       LinkRepository
	cache      cache.Cache
	logger     *zap.Logger
	baseURL    string
	filter     *CodeFilter
	generate   shortcode.Generator
	cacheTTL   time.Duration
	metrics    metrics.Sink
	publisher  LinkPublisher
	dispatcher *dispatch.Dispatcher
}

// Option customizes a LinkService.
type Option func(*LinkService)

// WithCodeFilter lets the service skip the store round trip for codes the
// filter has never seen.
func WithCodeFilter(f *CodeFilter) Option {
	return func(s *LinkService) { s.filter = f }
}

func WithGenerator(g shortcode.Generator) Option {
	return func(s *LinkService) { s.generate = g }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(s *LinkService) { s.cacheTTL = ttl }
}

func WithMetrics(sink metrics.Sink) Option {
	return func(s *LinkService) { s.metrics = metrics.OrNop(sink) }
}

// WithPublisher announces created links in the background through d.
func WithPublisher(p LinkPublisher, d *dispatch.Dispatcher) Option {
	return func(s *LinkService) {
		s.publisher = p
		s.dispatcher = d
	}
}

// NewLinkService wires the service. c may be nil when no cache is shared
// with the redirect tier.
func NewLinkService(repo LinkRepository, c cache.Cache, logger *zap.Logger, baseURL string, opts ...Option) *LinkService {
	s := &LinkService{
		repo:     repo,
		cache:    c,
		logger:   logger,
		baseURL:  strings.TrimRight(baseURL, "/"),
		generate: shortcode.Generate,
		cacheTTL: cache.DefaultTTL,
		metrics:  metrics.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ShortURL is the public address of code.
func (s *LinkService) ShortURL(code string) string {
	return s.baseURL + "/" + code
}

// CreateShortLink returns the link for originalURL, minting a new code unless
// one already exists. created is false when an existing link was returned.
func (s *LinkService) CreateShortLink(ctx context.Context, originalURL string) (*domain.Link, bool, error) {
	s.metrics.IncCreateRequests()

	if err := s.validateURL(originalURL); err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}

	existing, err := s.repo.FindByOriginalURL(ctx, originalURL)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrLinkNotFound) {
		return nil, false, err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		code, err := s.generate()
		if err != nil {
			return nil, false, fmt.Errorf("failed to generate short code: %w", err)
		}

		taken, err := s.codeTaken(ctx, code)
		if err != nil {
			return nil, false, err
		}
		if taken {
			continue
		}

		link, err := s.repo.Save(ctx, code, originalURL)
		if errors.Is(err, domain.ErrShortCodeConflict) {
			// Lost a race with a concurrent writer.
			s.remember(code)
			continue
		}
		if err != nil {
			return nil, false, err
		}

		s.remember(code)
		s.warmCache(ctx, link)
		s.announce(link)
		return link, true, nil
	}

	s.logger.Error("short code keyspace exhausted",
		zap.Int("attempts", maxAttempts),
		zap.String("original_url", originalURL),
	)
	return nil, false, domain.ErrExhaustedKeyspace
}

// Lookup is a plain Record Store read.
func (s *LinkService) Lookup(ctx context.Context, code string) (*domain.Link, error) {
	if !shortcode.Valid(code) {
		return nil, domain.ErrInvalidCode
	}
	return s.repo.FindByShortCode(ctx, code)
}

func (s *LinkService) codeTaken(ctx context.Context, code string) (bool, error) {
	if s.filter != nil && !s.filter.MayContain(code) {
		return false, nil
	}
	exists, err := s.repo.Exists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("check short code: %w", err)
	}
	return exists, nil
}

func (s *LinkService) remember(code string) {
	if s.filter != nil {
		s.filter.Add(code)
	}
}

func (s *LinkService) warmCache(ctx context.Context, link *domain.Link) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, link.ShortCode, link.OriginalURL, s.cacheTTL); err != nil {
		s.logger.Warn("failed to warm resolution cache",
			zap.String("short_code", link.ShortCode),
			zap.Error(err),
		)
	}
}

func (s *LinkService) announce(link *domain.Link) {
	if s.publisher == nil || s.dispatcher == nil {
		return
	}
	l := *link
	s.dispatcher.Dispatch("link-created", func(ctx context.Context) error {
		return s.publisher.PublishLinkCreated(ctx, l)
	})
}

func (s *LinkService) validateURL(rawURL string) error {
	if len(rawURL) > maxURLLength {
		return fmt.Errorf("url exceeds maximum length of %d characters", maxURLLength)
	}

	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url format: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got: %s", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("url must have a host")
	}

	if s.baseURL != "" && strings.HasPrefix(strings.ToLower(rawURL), strings.ToLower(s.baseURL)) {
		return fmt.Errorf("url is already a short link")
	}

	return nil
}
