package cnf

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gconf"
)

// Stage identifies a step of the conversion pipeline.
type Stage int

// Stages of the conversion pipeline, in default order.
const (
	StageInput Stage = iota
	StageEpsilon
	StageUnit
	StageReachability
	StageProductivity
	StageTerm
	StageBin
)

func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageEpsilon:
		return "ε-elimination"
	case StageUnit:
		return "unit-elimination"
	case StageReachability:
		return "reachability"
	case StageProductivity:
		return "productivity"
	case StageTerm:
		return "TERM"
	case StageBin:
		return "BIN"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// ConditionKind is the type of an anomaly found during conversion.
type ConditionKind int

// Kinds of conditions reported by the pipeline stages.
const (
	InvalidStartSymbol         ConditionKind = iota // start symbol is not a declared non-terminal
	EmptyLanguageProductivity                       // start symbol pruned as non-productive
	EmptyLanguageReachability                       // start symbol left without productions after pruning
	MalformedSymbolReference                        // a body references an undeclared symbol
	NullableStartNotReinjected                      // informational: S ⇒* ε is not preserved
	NullableExplosion                               // too many nullable occurrences to expand a body
)

func (k ConditionKind) String() string {
	switch k {
	case InvalidStartSymbol:
		return "InvalidStartSymbol"
	case EmptyLanguageProductivity:
		return "EmptyLanguageProductivity"
	case EmptyLanguageReachability:
		return "EmptyLanguageReachability"
	case MalformedSymbolReference:
		return "MalformedSymbolReference"
	case NullableStartNotReinjected:
		return "NullableStartNotReinjected"
	case NullableExplosion:
		return "NullableExplosion"
	}
	return fmt.Sprintf("ConditionKind(%d)", int(k))
}

// Informational reports whether conditions of this kind are metadata only.
func (k ConditionKind) Informational() bool {
	return k == NullableStartNotReinjected
}

// Condition is an anomaly found by a stage. Conditions implement error, but
// stages never abort because of them.
type Condition struct {
	Kind   ConditionKind
	Stage  Stage
	Symbol string // symbol the condition refers to
	Count  int    // number of occurrences, if applicable
}

func (c Condition) Error() string {
	switch c.Kind {
	case InvalidStartSymbol:
		return fmt.Sprintf("%s: start symbol %q is not a declared non-terminal", c.Stage, c.Symbol)
	case EmptyLanguageProductivity:
		return fmt.Sprintf("%s: start symbol %q is not productive, grammar generates the empty language", c.Stage, c.Symbol)
	case EmptyLanguageReachability:
		return fmt.Sprintf("%s: start symbol %q has no productions left, grammar generates the empty language", c.Stage, c.Symbol)
	case MalformedSymbolReference:
		return fmt.Sprintf("%s: undeclared symbol %q referenced %d time(s)", c.Stage, c.Symbol, c.Count)
	case NullableStartNotReinjected:
		return fmt.Sprintf("%s: start symbol %q is nullable, S → ε is not re-introduced", c.Stage, c.Symbol)
	case NullableExplosion:
		return fmt.Sprintf("%s: body of %q has %d nullable occurrences, kept unexpanded", c.Stage, c.Symbol, c.Count)
	}
	return fmt.Sprintf("%s: %s %q", c.Stage, c.Kind, c.Symbol)
}

// --- Report ----------------------------------------------------------------

// Report collects the conditions found during a conversion. Conditions are
// deduplicated by kind and symbol: the first report wins.
// The zero value is not usable, create one with NewReport. A nil *Report is
// valid for stages and silently drops all conditions.
type Report struct {
	conditions []Condition
	seen       map[reportKey]struct{}
}

type reportKey struct {
	kind   ConditionKind
	symbol string
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{seen: make(map[reportKey]struct{})}
}

func (rep *Report) add(c Condition) {
	if rep == nil {
		return
	}
	k := reportKey{kind: c.Kind, symbol: c.Symbol}
	if _, dup := rep.seen[k]; dup {
		return
	}
	rep.seen[k] = struct{}{}
	rep.conditions = append(rep.conditions, c)
	if c.Kind.Informational() {
		tracer().Infof("%s", c.Error())
		return
	}
	tracer().Errorf("%s", c.Error())
	if gconf.GetBool("panic-on-grammar-anomaly") {
		panic(c)
	}
}

// Conditions returns all conditions in the order they have been reported.
func (rep *Report) Conditions() []Condition {
	if rep == nil {
		return nil
	}
	c := make([]Condition, len(rep.conditions))
	copy(c, rep.conditions)
	return c
}

// Has checks if a condition of kind k has been reported.
func (rep *Report) Has(k ConditionKind) bool {
	return rep.Count(k) > 0
}

// Count returns the number of conditions of kind k.
func (rep *Report) Count(k ConditionKind) int {
	if rep == nil {
		return 0
	}
	n := 0
	for _, c := range rep.conditions {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Warnings returns all non-informational conditions.
func (rep *Report) Warnings() []Condition {
	if rep == nil {
		return nil
	}
	var w []Condition
	for _, c := range rep.conditions {
		if !c.Kind.Informational() {
			w = append(w, c)
		}
	}
	return w
}

// Err returns an error comprising all non-informational conditions, or nil.
func (rep *Report) Err() error {
	w := rep.Warnings()
	if len(w) == 0 {
		return nil
	}
	return anomalies(w)
}

// emptyLanguage checks if any condition stating an empty language has been
// reported.
func (rep *Report) emptyLanguage() bool {
	return rep.Has(InvalidStartSymbol) || rep.Has(EmptyLanguageProductivity) ||
		rep.Has(EmptyLanguageReachability)
}

// anomalies is the error type returned by Report.Err.
type anomalies []Condition

func (a anomalies) Error() string {
	msgs := make([]string, len(a))
	for i, c := range a {
		msgs[i] = c.Error()
	}
	return fmt.Sprintf("%d grammar anomalies: %s", len(a), strings.Join(msgs, "; "))
}
