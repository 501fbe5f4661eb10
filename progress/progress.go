// Package progress tracks completion of unit-counted work: how much is
// done, how long it has been running, and how long the rest should take
// at the pace so far. It is a measuring instrument, not a renderer; the
// one-line String output is plain text for callers to place wherever
// they report status.
package progress

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/paceline/paceline/format"
)

// Progress counts work done against an expected total and derives
// percent complete, elapsed time, and a time-left estimate from it.
// A Progress is not safe for concurrent use; guard it externally if
// multiple goroutines report work.
type Progress struct {
	title     string
	totalWork int64
	workDone  int64
	startedAt time.Time

	now    func() time.Time
	logger *slog.Logger

	warned bool
}

// Option configures a Progress at construction.
type Option func(*Progress)

// WithStartTime backdates the tracker to t, so elapsed time covers work
// that began before the tracker was created. A zero t is ignored.
func WithStartTime(t time.Time) Option {
	return func(p *Progress) {
		if !t.IsZero() {
			p.startedAt = t
		}
	}
}

// WithClock replaces the tracker's time source. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(p *Progress) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger routes the tracker's warnings to l instead of the default
// logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Progress) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a tracker for totalWork units of work, started now unless
// WithStartTime says otherwise. A totalWork of zero means the total is
// unknown: percent stays 0 and the estimate stays unknown, though work
// may still be counted against it.
func New(title string, totalWork int64, opts ...Option) *Progress {
	p := &Progress{
		title:     title,
		totalWork: totalWork,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.startedAt.IsZero() {
		p.startedAt = p.now()
	}
	return p
}

// Inc records one more unit of completed work.
func (p *Progress) Inc() {
	p.Add(1)
}

// Add records n more units of completed work. n is expected to be
// non-negative; the tracker does not validate it.
func (p *Progress) Add(n int64) {
	p.workDone += n
	p.warnOverrun()
}

// Set overwrites the completed-work count, for callers that track it
// themselves or resume from a checkpoint. n is expected to be
// non-negative; the tracker does not validate it.
func (p *Progress) Set(n int64) {
	p.workDone = n
	p.warnOverrun()
}

// warnOverrun logs once if work done has passed the expected total.
// The tracker keeps counting; only the estimate clamps.
func (p *Progress) warnOverrun() {
	if p.warned || p.totalWork <= 0 || p.workDone <= p.totalWork {
		return
	}
	p.warned = true
	l := p.logger
	if l == nil {
		l = slog.Default()
	}
	l.Warn("work done exceeds total work",
		"title", p.title,
		"work_done", p.workDone,
		"total_work", p.totalWork)
}

// Title returns the name the tracker was created with.
func (p *Progress) Title() string {
	return p.title
}

// Done returns the units of work completed so far.
func (p *Progress) Done() int64 {
	return p.workDone
}

// Total returns the expected total units of work.
func (p *Progress) Total() int64 {
	return p.totalWork
}

// StartedAt returns when the tracked work began.
func (p *Progress) StartedAt() time.Time {
	return p.startedAt
}

// Elapsed returns how long the work has been running.
func (p *Progress) Elapsed() time.Duration {
	return p.now().Sub(p.startedAt)
}

// Percent returns work done as a percentage of the total. With no
// known total it returns 0; past the total it keeps going above 100.
func (p *Progress) Percent() float64 {
	if p.totalWork <= 0 {
		return 0
	}
	return float64(p.workDone) / float64(p.totalWork) * 100
}

// Rate returns completed units per second so far, 0 until time has
// passed.
func (p *Progress) Rate() float64 {
	elapsed := p.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(p.workDone) / elapsed
}

// Complete reports whether work done has reached a known total.
func (p *Progress) Complete() bool {
	return p.totalWork > 0 && p.workDone >= p.totalWork
}

// ETA estimates time remaining by extrapolating the pace so far across
// the work left. The estimate is unknown (ok false) when the total is
// unknown and until the first unit completes; once work done reaches
// the total it is 0. The math runs in float64 seconds and saturates at
// the largest Duration, so a projection past what a Duration can hold
// stays positive instead of wrapping negative.
func (p *Progress) ETA() (time.Duration, bool) {
	if p.totalWork <= 0 || p.workDone <= 0 {
		return 0, false
	}
	if p.workDone >= p.totalWork {
		return 0, true
	}
	seconds := p.Elapsed().Seconds() * float64(p.totalWork-p.workDone) / float64(p.workDone)
	if seconds <= 0 {
		return 0, true
	}
	if seconds >= float64(math.MaxInt64/time.Second) {
		return math.MaxInt64, true
	}
	return time.Duration(seconds * float64(time.Second)), true
}

// State is a point-in-time copy of everything the tracker can report,
// for callers that render their own status lines.
type State struct {
	Title    string
	Done     int64
	Total    int64
	Percent  float64
	Elapsed  time.Duration
	Rate     float64
	ETA      time.Duration
	ETAKnown bool
}

// State captures the tracker's current readings in one consistent
// snapshot.
func (p *Progress) State() State {
	eta, known := p.ETA()
	return State{
		Title:    p.title,
		Done:     p.workDone,
		Total:    p.totalWork,
		Percent:  p.Percent(),
		Elapsed:  p.Elapsed(),
		Rate:     p.Rate(),
		ETA:      eta,
		ETAKnown: known,
	}
}

// String renders a one-line status report, e.g.
//
//	backfill 2/100 - 2.0% started 1s ago, eta: 49s
//
// The estimate reads "unknown" before any work completes and "done"
// once the count reaches the total.
func (p *Progress) String() string {
	var eta string
	switch left, ok := p.ETA(); {
	case !ok:
		eta = "unknown"
	case p.workDone >= p.totalWork:
		eta = "done"
	default:
		eta = format.HumanDuration(left)
	}

	return fmt.Sprintf("%s %d/%d - %.1f%% started %s ago, eta: %s",
		p.title, p.workDone, p.totalWork, p.Percent(),
		format.HumanDuration(p.Elapsed()), eta)
}
