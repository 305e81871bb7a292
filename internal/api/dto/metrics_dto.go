package dto

import "github.com/spec-kit/palindrome-service/internal/observability"

// TimerSummary describes the recorded check durations.
type TimerSummary struct {
	Count      uint64  `json:"count"`
	SumSeconds float64 `json:"sum_seconds"`
}

// PalindromeMetricsResponse reports the palindrome instruments under their
// logical names.
type PalindromeMetricsResponse struct {
	Counter  float64      `json:"palindrome.counter"`
	Timer    TimerSummary `json:"palindrome.timer"`
	ListSize float64      `json:"palindrome.list.size"`
}

// NewPalindromeMetricsResponse maps a metrics snapshot to its response shape.
func NewPalindromeMetricsResponse(snap observability.Snapshot) PalindromeMetricsResponse {
	return PalindromeMetricsResponse{
		Counter: snap.Counter,
		Timer: TimerSummary{
			Count:      snap.Timer.Count,
			SumSeconds: snap.Timer.SumSeconds,
		},
		ListSize: snap.ListSize,
	}
}
