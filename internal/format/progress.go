package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ProgressState tracks the fractional progress of several concurrent backend
// sweeps and aggregates them into a single average. It is safe for concurrent
// use.
type ProgressState struct {
	mu          sync.Mutex
	numBackends int
	progresses  []float64
}

// NewProgressState creates a ProgressState for the given number of backends.
func NewProgressState(numBackends int) *ProgressState {
	if numBackends < 0 {
		numBackends = 0
	}
	return &ProgressState{
		numBackends: numBackends,
		progresses:  make([]float64, numBackends),
	}
}

// Update records the progress of one backend. Values are clamped to [0, 1]
// and out-of-range indices are ignored.
func (ps *ProgressState) Update(index int, progress float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if index < 0 || index >= ps.numBackends {
		return
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	ps.progresses[index] = progress
}

// CalculateAverage returns the mean progress across all backends.
func (ps *ProgressState) CalculateAverage() float64 {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.numBackends == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numBackends)
}

// ProgressWithETA extends ProgressState with an estimated time to completion
// derived from the observed progress rate.
type ProgressWithETA struct {
	*ProgressState
	mu           sync.Mutex
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // fraction per second, smoothed
}

// maxETA caps the reported ETA; anything beyond this is noise from a rate
// estimate taken too early in the run.
const maxETA = 24 * time.Hour

// NewProgressWithETA creates a ProgressWithETA for the given number of
// backends, with the clock started now.
func NewProgressWithETA(numBackends int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numBackends),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records one backend's progress and returns the new average
// progress together with the current ETA estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, progress float64) (float64, time.Duration) {
	p.Update(index, progress)
	avg := p.CalculateAverage()

	p.mu.Lock()
	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	if elapsed > 0.1 && avg > p.lastProgress {
		rate := (avg - p.lastProgress) / elapsed
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			// Exponential smoothing keeps the ETA from jittering.
			p.progressRate = 0.7*p.progressRate + 0.3*rate
		}
		p.lastUpdate = now
		p.lastProgress = avg
	}
	p.mu.Unlock()

	return avg, p.GetETA()
}

// GetETA returns the estimated remaining time, or 0 when there is not enough
// data to estimate. The estimate is capped at maxETA.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	rate := p.progressRate
	p.mu.Unlock()

	if rate <= 0 {
		return 0
	}
	remaining := 1.0 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / rate * float64(time.Second))
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}

// FormatETA renders an ETA duration in compact human form ("2m30s", "1h15m").
// Non-positive durations render as "calculating...".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	eta = eta.Round(time.Second)
	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ProgressBar renders a fixed-width textual progress bar. Progress is clamped
// to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA combines a progress bar, a percentage, and an ETA
// into a single status line.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
