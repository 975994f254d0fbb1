package meter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aalemi-dev/meterkit/probe"
	"github.com/aalemi-dev/meterkit/units"
	"github.com/aalemi-dev/meterkit/wire"
)

// Marker identifies operation records on the wire.
const Marker byte = 'M'

// Wire property names for record fields.
const (
	propSession     = "s"
	propCategory    = "c"
	propName        = "n"
	propPosition    = "ep"
	propParent      = "p"
	propDescription = "d"
	propReject      = "r"
	propFail        = "f" // kind|message
	propCreatedAt   = "t0"
	propStartedAt   = "t1"
	propStoppedAt   = "t2"
	propIteration   = "i"
	propExpected    = "ei"
	propTimeLimit   = "tl"
	propContext     = "ctx"
)

// Outcome is the terminal result of an operation.
type Outcome int8

const (
	// Unset means no terminal transition has happened yet.
	Unset Outcome = iota
	// OK is a successful completion.
	OK
	// Rejected is an anticipated refusal, carrying a reason.
	Rejected
	// Failed is an unexpected failure, carrying a kind and message.
	Failed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Rejected:
		return "rejected"
	case Failed:
		return "failed"
	default:
		return "unset"
	}
}

// Record holds the measured data of one operation: identity, timestamps,
// iteration counts, outcome, caller context and an embedded resource
// snapshot. A record is mutated exclusively by its owning meter and becomes
// logically immutable once emitted at a terminal transition.
//
// Timestamps are monotonic nanoseconds; zero means unset.
type Record struct {
	SessionID string
	Category  string
	Name      string
	Position  int64

	// Parent is the full identity of the enclosing operation, when this
	// one was started under an active meter's context.
	Parent string

	Description string

	CreatedAt int64
	StartedAt int64
	StoppedAt int64

	Iteration          int64
	ExpectedIterations int64

	Outcome      Outcome
	RejectReason string
	FailKind     string
	FailMessage  string

	// TimeLimit is the slowness threshold; zero means none.
	TimeLimit time.Duration

	Context wire.Map

	Snapshot probe.Snapshot

	// Goroutine identities observed at start and stop. Differing values
	// reveal cross-goroutine use; they do not travel on the wire.
	StartGoroutine int64
	StopGoroutine  int64
}

// FullID returns the record's identity as "category[/name]#position".
func (r *Record) FullID() string {
	var sb strings.Builder
	sb.WriteString(r.Category)
	if r.Name != "" {
		sb.WriteByte('/')
		sb.WriteString(r.Name)
	}
	sb.WriteByte('#')
	sb.WriteString(strconv.FormatInt(r.Position, 10))
	return sb.String()
}

// ExecutionTime returns how long the operation has run: stop minus start
// once stopped, now minus start while running, zero before start.
func (r *Record) ExecutionTime() time.Duration {
	switch {
	case r.StoppedAt != 0:
		return time.Duration(r.StoppedAt - r.StartedAt)
	case r.StartedAt != 0:
		return time.Duration(now() - r.StartedAt)
	default:
		return 0
	}
}

// WaitingTime returns how long the operation sat between creation and
// start, or since creation while not yet started.
func (r *Record) WaitingTime() time.Duration {
	if r.StartedAt != 0 {
		return time.Duration(r.StartedAt - r.CreatedAt)
	}
	return time.Duration(now() - r.CreatedAt)
}

// IterationsPerSecond returns the mean iteration rate over the execution
// time so far, or zero when either figure is missing.
func (r *Record) IterationsPerSecond() float64 {
	et := r.ExecutionTime()
	if r.Iteration <= 0 || et <= 0 {
		return 0
	}
	return float64(r.Iteration) / et.Seconds()
}

// IsSlow reports whether the execution time exceeded the configured limit.
func (r *Record) IsSlow() bool {
	return r.TimeLimit > 0 && r.ExecutionTime() > r.TimeLimit
}

// WriteTo renders the record as one encoded line. Zero and empty fields
// are omitted.
func (r *Record) WriteTo() string {
	w := wire.NewWriter(Marker)
	if r.SessionID != "" {
		w.Property(propSession, r.SessionID)
	}
	if r.Category != "" {
		w.Property(propCategory, r.Category)
	}
	if r.Name != "" {
		w.Property(propName, r.Name)
	}
	if r.Position != 0 {
		w.PropertyInt(propPosition, r.Position)
	}
	if r.Parent != "" {
		w.Property(propParent, r.Parent)
	}
	if r.Description != "" {
		w.Property(propDescription, r.Description)
	}
	if r.Outcome == Rejected {
		w.Property(propReject, r.RejectReason)
	}
	if r.Outcome == Failed {
		w.Property(propFail, r.FailKind, r.FailMessage)
	}
	if r.CreatedAt != 0 {
		w.PropertyInt(propCreatedAt, r.CreatedAt)
	}
	if r.StartedAt != 0 {
		w.PropertyInt(propStartedAt, r.StartedAt)
	}
	if r.StoppedAt != 0 {
		w.PropertyInt(propStoppedAt, r.StoppedAt)
	}
	if r.Iteration != 0 {
		w.PropertyInt(propIteration, r.Iteration)
	}
	if r.ExpectedIterations != 0 {
		w.PropertyInt(propExpected, r.ExpectedIterations)
	}
	if r.TimeLimit != 0 {
		w.PropertyInt(propTimeLimit, int64(r.TimeLimit))
	}
	if len(r.Context) > 0 {
		w.PropertyMap(propContext, r.Context)
	}
	r.Snapshot.WriteProperties(w)
	return w.String()
}

// ReadRecord decodes an encoded line back into a record. The line may carry
// surrounding free text; only the bracketed message is parsed. An unknown
// property is a protocol error, not silently skipped.
//
// Decoding is opt-in tooling for consumers of the log stream; it is never
// called on the instrumentation path.
func ReadRecord(line string) (*Record, error) {
	payload, ok := wire.Extract(Marker, line)
	if !ok {
		return nil, fmt.Errorf("%w: no operation message in line", wire.ErrMalformedInput)
	}
	rec := &Record{}
	r := wire.NewReader(payload)
	for r.HasMore() {
		name, err := r.PropertyName()
		if err != nil {
			return nil, err
		}
		if err := rec.readProperty(r, name); err != nil {
			return nil, err
		}
	}
	if rec.StoppedAt != 0 && rec.Outcome == Unset {
		rec.Outcome = OK
	}
	return rec, nil
}

func (rec *Record) readProperty(r *wire.Reader, name string) error {
	var err error
	switch name {
	case propSession:
		rec.SessionID, err = r.String()
	case propCategory:
		rec.Category, err = r.String()
	case propName:
		rec.Name, err = r.String()
	case propPosition:
		rec.Position, err = r.Int64()
	case propParent:
		rec.Parent, err = r.String()
	case propDescription:
		rec.Description, err = r.String()
	case propReject:
		rec.Outcome = Rejected
		rec.RejectReason, err = r.String()
	case propFail:
		rec.Outcome = Failed
		if rec.FailKind, err = r.String(); err != nil {
			return err
		}
		rec.FailMessage, err = r.String()
	case propCreatedAt:
		rec.CreatedAt, err = r.Int64()
	case propStartedAt:
		rec.StartedAt, err = r.Int64()
	case propStoppedAt:
		rec.StoppedAt, err = r.Int64()
	case propIteration:
		rec.Iteration, err = r.Int64()
	case propExpected:
		rec.ExpectedIterations, err = r.Int64()
	case propTimeLimit:
		var tl int64
		tl, err = r.Int64()
		rec.TimeLimit = time.Duration(tl)
	case propContext:
		rec.Context, err = r.Map()
	default:
		handled, snapErr := rec.Snapshot.ReadProperty(r, name)
		if snapErr != nil {
			return snapErr
		}
		if !handled {
			return fmt.Errorf("%w: %q", wire.ErrUnknownProperty, name)
		}
	}
	return err
}

// Readable renders the record as a human-oriented line, e.g.
// "OK: db/query#3 refresh accounts; 100 in 1.5s (66/s)". The status prefix
// is supplied by the caller because it depends on the transition being
// reported, not only on the record.
func (r *Record) Readable(cfg Config, status string) string {
	var sb strings.Builder
	if cfg.PrintStatus && status != "" {
		sb.WriteString(status)
		sb.WriteString(": ")
	}
	if cfg.PrintCategory {
		sb.WriteString(r.Category)
		if r.Name != "" {
			sb.WriteByte('/')
			sb.WriteString(r.Name)
		}
		if cfg.PrintPosition {
			sb.WriteByte('#')
			sb.WriteString(strconv.FormatInt(r.Position, 10))
		}
		sb.WriteByte(' ')
	}
	if r.Description != "" {
		sb.WriteString(r.Description)
	}
	switch r.Outcome {
	case Rejected:
		if r.RejectReason != "" {
			sb.WriteString(" [")
			sb.WriteString(r.RejectReason)
			sb.WriteByte(']')
		}
	case Failed:
		sb.WriteString(" [")
		sb.WriteString(r.FailKind)
		if r.FailMessage != "" {
			sb.WriteString(": ")
			sb.WriteString(r.FailMessage)
		}
		sb.WriteByte(']')
	}
	if r.Iteration > 0 {
		sb.WriteString("; ")
		sb.WriteString(units.Iterations(r.Iteration))
		if r.ExpectedIterations > 0 {
			sb.WriteByte('/')
			sb.WriteString(units.Iterations(r.ExpectedIterations))
		}
	}
	if et := r.ExecutionTime(); et > 0 {
		sb.WriteString("; ")
		sb.WriteString(units.Duration(et))
		if rate := r.IterationsPerSecond(); rate > 0 {
			sb.WriteString(" (")
			sb.WriteString(units.Rate(rate))
			sb.WriteByte(')')
		}
	}
	if !r.Snapshot.IsZero() {
		sb.WriteString("; ")
		r.Snapshot.Readable(&sb)
	}
	return sb.String()
}
