package cnf

import (
	"errors"

	"github.com/npillmayer/gocnf/grammar"
)

// Order selects the order of the pruning stages.
type Order int

// Orders of the pruning stages. Both orders produce equivalent grammars for
// inputs where both prunings reach the same fixpoint, but this does not hold
// in general.
const (
	ReachabilityFirst Order = iota // reachability, then productivity
	ProductivityFirst              // productivity, then reachability
)

func (o Order) String() string {
	if o == ProductivityFirst {
		return "productivity-first"
	}
	return "reachability-first"
}

// Pipeline holds the configuration of a CNF conversion. A Pipeline does not
// carry state between conversions and may be shared between goroutines.
type Pipeline struct {
	order     Order
	snapshots bool
	nullables int // limit of nullable occurrences per body, 0 for none
}

// Option configures a pipeline.
type Option func(p *Pipeline)

// WithOrder sets the order of the pruning stages.
func WithOrder(o Order) Option {
	return func(p *Pipeline) {
		p.order = o
	}
}

// KeepSnapshots tells the pipeline to record the grammar after every stage.
func KeepSnapshots(b bool) Option {
	return func(p *Pipeline) {
		p.snapshots = b
	}
}

// WithNullableLimit bounds the number of nullable occurrences in a body which
// ε-elimination expands into all 2^k variants. Bodies above the limit are kept
// unexpanded and reported as NullableExplosion, so the language of the result
// may shrink. Without this option every body is expanded.
func WithNullableLimit(n int) Option {
	return func(p *Pipeline) {
		p.nullables = n
	}
}

// NewPipeline creates a pipeline. Default is ReachabilityFirst without
// snapshots and without a limit for ε-elimination.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{order: ReachabilityFirst}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Order returns the order of the pruning stages.
func (p *Pipeline) Order() Order {
	return p.order
}

// Snapshot is the grammar after a stage of the pipeline.
type Snapshot struct {
	Stage       Stage
	Grammar     *grammar.Grammar
	Fingerprint string
}

// Result is the outcome of a conversion.
type Result struct {
	Grammar       *grammar.Grammar // grammar in CNF
	Report        *Report          // conditions found during conversion
	Snapshots     []Snapshot       // per stage, if requested
	NullableStart bool             // the start symbol of the input derives ε
	Generated     []string         // fresh non-terminals
}

// ErrNilGrammar is returned for a conversion of a nil grammar.
var ErrNilGrammar = errors.New("cnf: cannot convert nil grammar")

type stageFunc func(*grammar.Grammar) *grammar.Grammar

// Convert transforms g into Chomsky normal form. Anomalies of g are collected
// in the result's report and never abort the conversion. The only error
// returned is ErrNilGrammar.
func (p *Pipeline) Convert(g *grammar.Grammar) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrammar
	}
	rep := NewReport()
	alloc := AllocatorFor(g)
	result := &Result{Report: rep}
	tracer().Infof("converting grammar %q to CNF, %s", g.Name(), p.order)
	// conditions of the input are reported before any stage modifies bodies
	checkStart(g, rep, StageInput)
	reportUndeclared(g, rep, StageInput)
	result.NullableStart = NullableSet(g).Contains(g.Start())
	stages := []struct {
		stage Stage
		run   stageFunc
	}{
		{StageEpsilon, func(g *grammar.Grammar) *grammar.Grammar { return EliminateEpsilonLimited(g, rep, p.nullables) }},
		{StageUnit, func(g *grammar.Grammar) *grammar.Grammar { return EliminateUnits(g, rep) }},
		{StageReachability, func(g *grammar.Grammar) *grammar.Grammar { return Reachability(g, rep) }},
		{StageProductivity, func(g *grammar.Grammar) *grammar.Grammar { return Productivity(g, rep) }},
		{StageTerm, func(g *grammar.Grammar) *grammar.Grammar { return Term(g, alloc) }},
		{StageBin, func(g *grammar.Grammar) *grammar.Grammar { return Bin(g, alloc) }},
	}
	if p.order == ProductivityFirst {
		stages[2], stages[3] = stages[3], stages[2]
	}
	p.snapshot(result, StageInput, g)
	for _, s := range stages {
		g = s.run(g)
		tracer().Debugf("after %s: %d productions", s.stage, g.ProductionCount())
		p.snapshot(result, s.stage, g)
	}
	result.Grammar = g
	result.Generated = alloc.Generated()
	tracer().Infof("grammar %q converted: %d productions, %d fresh symbols, %d anomalies",
		g.Name(), g.ProductionCount(), len(result.Generated), len(rep.Warnings()))
	return result, nil
}

func (p *Pipeline) snapshot(result *Result, stage Stage, g *grammar.Grammar) {
	if !p.snapshots {
		return
	}
	fp := g.Fingerprint()
	if n := len(result.Snapshots); n > 0 && result.Snapshots[n-1].Fingerprint == fp {
		tracer().Debugf("stage %s left the grammar unchanged", stage)
	}
	result.Snapshots = append(result.Snapshots, Snapshot{
		Stage:       stage,
		Grammar:     g,
		Fingerprint: fp,
	})
}

// ConvertToCNF transforms g into Chomsky normal form, using a pipeline with
// default configuration.
func ConvertToCNF(g *grammar.Grammar) (*Result, error) {
	return NewPipeline().Convert(g)
}
