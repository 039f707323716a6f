package solver

import (
	"fmt"
	"time"
)

// InvariantTag identifies which closed-form identity produced a result.
// Exactly one tag is attached per successful outcome; the empty string
// means no tag (a genuine non-match or the sentinel outcome).
type InvariantTag string

const (
	TagPolynomial         InvariantTag = "Polynomial"
	TagDiophantine        InvariantTag = "Diophantine"
	TagCombinatorial      InvariantTag = "Combinatorial"
	TagNumberTheory       InvariantTag = "NumberTheory"
	TagRootDynamics       InvariantTag = "RootDynamics"
	TagSequences          InvariantTag = "Sequences"
	TagFunctionalEquation InvariantTag = "FunctionalEquation"
	TagSpectralZeta       InvariantTag = "SpectralZeta"

	// TagQuantumFallback marks outcomes produced by the external reasoning
	// service rather than a deterministic plugin.
	TagQuantumFallback InvariantTag = "QuantumFallback"

	// TagLiveTranscription is reserved for outcomes derived from captured
	// audio. The deterministic core never emits it.
	TagLiveTranscription InvariantTag = "LiveTranscription"
)

// Severity classifies a log entry.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// LogEntry is one record in an outcome's append-only log trail.
type LogEntry struct {
	Time     time.Time `json:"time"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
}

// NewLogEntry builds a timestamped log entry. Shared by plugins and the
// dispatcher so entries have a uniform shape.
func NewLogEntry(sev Severity, format string, args ...any) LogEntry {
	return LogEntry{
		Time:     time.Now().UTC(),
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Citation references external material supporting a fallback answer.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Outcome is the result of one solve attempt. Created fresh per attempt,
// never mutated after the solver returns it, owned by the caller.
//
// Answer holds an exact integer in decimal form, a decimal string for
// heuristic plugins, a textual placeholder (e.g. "Infinity"), or the empty
// string when no answer was produced. Steps is the human-readable
// derivation trace and carries at least one entry on success.
type Outcome struct {
	Answer    string       `json:"answer"`
	Tag       InvariantTag `json:"invariant_tag,omitempty"`
	Steps     []string     `json:"steps"`
	Log       []LogEntry   `json:"log,omitempty"`
	Reasoning string       `json:"reasoning,omitempty"`
	Citations []Citation   `json:"citations,omitempty"`
}

// AddStep appends one derivation step.
func (o *Outcome) AddStep(format string, args ...any) {
	o.Steps = append(o.Steps, fmt.Sprintf(format, args...))
}

// AddLog appends one log entry.
func (o *Outcome) AddLog(sev Severity, format string, args ...any) {
	o.Log = append(o.Log, NewLogEntry(sev, format, args...))
}

// IsNoMatch reports whether the outcome is the legacy non-match sentinel:
// an answer of exactly "0" with no invariant tag. Some legacy plugins
// returned this instead of a nil outcome; the dispatcher keeps scanning
// when it sees one, and emits the same shape itself when every plugin
// misses. A legitimate zero answer always carries a tag, which keeps the
// two cases distinguishable.
func (o *Outcome) IsNoMatch() bool {
	return o == nil || (o.Answer == "0" && o.Tag == "")
}
