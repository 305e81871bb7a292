package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/palindrome-service/internal/domain"
	"github.com/spec-kit/palindrome-service/internal/observability"
	"github.com/spec-kit/palindrome-service/internal/requestlog"
)

// PalindromeService runs palindrome checks and keeps the request log and its
// metrics up to date.
type PalindromeService struct {
	log     *requestlog.Log
	metrics *observability.Metrics
	logger  *zap.Logger
}

// PalindromeDependencies bundles collaborators for the palindrome service.
type PalindromeDependencies struct {
	Log     *requestlog.Log
	Metrics *observability.Metrics
	Logger  *zap.Logger
}

// NewPalindromeService constructs the service. A nil log gets an unbounded one
// and a nil logger is replaced with a no-op logger.
func NewPalindromeService(deps PalindromeDependencies) *PalindromeService {
	if deps.Log == nil {
		deps.Log = requestlog.New()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &PalindromeService{log: deps.Log, metrics: deps.Metrics, logger: deps.Logger}
}

// CountedCheck records input, bumps the check counter and reports whether
// input is a palindrome. The counter moves whatever the result.
func (s *PalindromeService) CountedCheck(input string) bool {
	s.log.Append(input)
	s.metrics.IncCheckCounter()

	result := domain.IsPalindrome(input)
	s.logger.Debug("counted palindrome check", zap.Int("input_bytes", len(input)), zap.Bool("palindrome", result))
	return result
}

// TimedCheck records input and reports whether it is a palindrome. Only the
// check itself is timed.
func (s *PalindromeService) TimedCheck(input string) bool {
	s.log.Append(input)

	start := time.Now()
	result := domain.IsPalindrome(input)
	elapsed := time.Since(start)
	s.metrics.ObserveCheckDuration(elapsed)

	s.logger.Debug("timed palindrome check",
		zap.Int("input_bytes", len(input)),
		zap.Bool("palindrome", result),
		zap.Duration("elapsed", elapsed),
	)
	return result
}

// ClearLog empties the request log.
func (s *PalindromeService) ClearLog() {
	before := s.log.Size()
	s.log.Clear()
	s.logger.Info("request log cleared", zap.Int("entries", before))
}

// LogSize returns the current request log size.
func (s *PalindromeService) LogSize() int {
	return s.log.Size()
}
