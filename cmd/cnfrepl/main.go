package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gocnf/cnf"
	"github.com/npillmayer/gocnf/grammar"
	"github.com/npillmayer/gocnf/notation"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

// main starts an interactive CLI, where users may load or type in grammars
// and follow their conversion to Chomsky normal form.
func main() {
	initDisplay()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	order := flag.String("order", "reach", "Order of pruning stages [reach|prod]")
	file := flag.String("f", "", "Grammar file to load")
	isEBNF := flag.Bool("ebnf", false, "Grammar file is in EBNF")
	start := flag.String("start", "", "Start symbol for EBNF grammars")
	batch := flag.Bool("batch", false, "Convert grammar file and exit")
	panicky := flag.Bool("panic", false, "Panic on grammar anomalies")
	flag.Parse()
	setupConfig(flagConfig{
		"panic-on-grammar-anomaly": fmt.Sprint(*panicky),
		"interactive":              fmt.Sprint(!*batch),
	}, *tlevel)
	tracer().Infof("Trace level is %s", *tlevel)
	intp := &Intp{
		ebnf:  *isEBNF,
		start: *start,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := intp.setOrder(*order); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if *file != "" {
		if err := intp.load(*file); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	if *batch {
		if intp.g == nil {
			pterm.Error.Println("batch mode needs a grammar file (flag -f)")
			os.Exit(2)
		}
		result, err := intp.convert(false)
		if err != nil || result.Report.Err() != nil {
			os.Exit(1)
		}
		return
	}
	repl, err := readline.New("cnf> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to the CNF REPL")
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	source []string         // notation text of the current grammar
	g      *grammar.Grammar // current grammar
	order  cnf.Order
	ebnf   bool   // load files as EBNF
	start  string // start symbol for EBNF files
	rnd    *rand.Rand
}

// maxDerivationSteps is the number of random steps for command 'generate'
// before derivations are steered towards a word.
const maxDerivationSteps = 20

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or adds a production, given on a line by itself.
func (intp *Intp) Eval(line string) (quit bool, err error) {
	if strings.Contains(line, "->") || strings.Contains(line, "→") {
		return false, intp.addProduction(line)
	}
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	cmd, args := args[0], args[1:]
	tracer().Debugf("command %q, args = %v", cmd, args)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		intp.help()
	case "load":
		if len(args) != 1 {
			return false, errors.New("usage: load <file>")
		}
		err = intp.load(args[0])
	case "clear":
		intp.source, intp.g = nil, nil
	case "order":
		if len(args) != 1 {
			pterm.Info.Println(intp.order.String())
			return false, nil
		}
		err = intp.setOrder(args[0])
	default:
		if intp.g == nil {
			return false, errors.Errorf("no grammar loaded, cannot execute %q", cmd)
		}
		err = intp.execute(cmd, args)
	}
	return false, err
}

// execute runs commands which need a grammar.
func (intp *Intp) execute(cmd string, args []string) error {
	switch cmd {
	case "show":
		return notation.Render(os.Stdout, intp.g)
	case "nullable":
		pterm.Info.Println("nullable: " + cnf.NullableSet(intp.g).String())
	case "cnf", "steps":
		_, err := intp.convert(cmd == "steps")
		return err
	case "classify":
		pterm.Info.Println(grammar.Classify(intp.g).String())
	case "generate":
		return intp.generate(args)
	case "check":
		if err := cnf.CheckCNF(intp.g); err != nil {
			pterm.Warning.Println(err.Error())
			return nil
		}
		pterm.Success.Println("grammar is in Chomsky normal form")
	case "dot":
		if len(args) != 1 {
			return errors.New("usage: dot <file>")
		}
		return intp.dot(args[0])
	default:
		return errors.Errorf("unknown command %q, try 'help'", cmd)
	}
	return nil
}

func (intp *Intp) help() {
	pterm.Println(`Commands:
  load <file>          load a grammar, replacing the current one
  show                 print the current grammar
  nullable             print the nullable non-terminals
  cnf                  convert to CNF and print result and conditions
  steps                convert and print the grammar after every stage
  order <reach|prod>   select the order of the pruning stages
  dot <file>           write the dependency graph of the grammar (GraphViz)
  check                check if the current grammar is in CNF
  classify             print the Chomsky type of the current grammar
  generate [n]         derive n random words (default 1)
  clear                forget the current grammar
  help                 print this list
  quit                 leave the REPL
Lines containing '->' are added to the current grammar as productions.`)
}

// generate prints random leftmost derivations.
func (intp *Intp) generate(args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
			return errors.New("usage: generate [n], n ≥ 1")
		}
	}
	for i := 0; i < n; i++ {
		d, err := grammar.Generate(intp.g, intp.rnd, maxDerivationSteps)
		if err != nil {
			return err
		}
		pterm.Println(d.String())
	}
	return nil
}

func (intp *Intp) setOrder(o string) error {
	switch o {
	case "reach", "reachability":
		intp.order = cnf.ReachabilityFirst
	case "prod", "productivity":
		intp.order = cnf.ProductivityFirst
	default:
		return errors.Errorf("unknown order %q, expected 'reach' or 'prod'", o)
	}
	tracer().Infof("order of pruning stages is %s", intp.order)
	return nil
}

// load reads a grammar file. EBNF grammars are kept in notation form, so
// productions may be added afterwards.
func (intp *Intp) load(filename string) error {
	var g *grammar.Grammar
	if intp.ebnf || filepath.Ext(filename) == ".ebnf" {
		f, err := os.Open(filename)
		if err != nil {
			return errors.Wrap(err, "cannot open grammar file")
		}
		defer f.Close()
		if g, err = notation.FromEBNF(filename, f, intp.start); err != nil {
			return err
		}
		intp.source = []string{notation.String(g)}
	} else {
		src, err := ioutil.ReadFile(filename)
		if err != nil {
			return errors.Wrap(err, "cannot read grammar file")
		}
		if g, err = notation.Parse(filename, string(src)); err != nil {
			return err
		}
		intp.source = []string{string(src)}
	}
	intp.g = g
	pterm.Info.Printf("loaded grammar %q with %d productions\n", g.Name(), g.ProductionCount())
	return nil
}

// addProduction appends line to the notation text of the current grammar and
// re-reads it. The grammar stays unchanged if the result does not parse.
func (intp *Intp) addProduction(line string) error {
	source := append(intp.source[:len(intp.source):len(intp.source)], line)
	g, err := notation.Parse("G", strings.Join(source, "\n"))
	if err != nil {
		return err
	}
	intp.source, intp.g = source, g
	tracer().Debugf("grammar has %d productions", g.ProductionCount())
	return nil
}

// convert runs the pipeline on the current grammar and prints the result and
// its conditions. With steps set, the grammar after every stage is printed as a tree.
func (intp *Intp) convert(steps bool) (*cnf.Result, error) {
	p := cnf.NewPipeline(cnf.WithOrder(intp.order), cnf.KeepSnapshots(steps))
	result, err := p.Convert(intp.g)
	if err != nil {
		return nil, err
	}
	if steps {
		stagesTree(result)
	} else if err = notation.Render(os.Stdout, result.Grammar); err != nil {
		return nil, err
	}
	for _, c := range result.Report.Conditions() {
		if c.Kind.Informational() {
			pterm.Info.Println(c.Error())
		} else {
			pterm.Warning.Println(c.Error())
		}
	}
	if len(result.Generated) > 0 {
		pterm.Info.Println("fresh non-terminals: " + strings.Join(result.Generated, " "))
	}
	return result, nil
}

// stagesTree prints the snapshots of a conversion as a tree, with stages
// on the first level and productions on the second.
func stagesTree(result *cnf.Result) {
	ll := pterm.LeveledList{}
	var prev string
	for _, snap := range result.Snapshots {
		text := fmt.Sprintf("%s (%d productions)", snap.Stage, snap.Grammar.ProductionCount())
		if snap.Fingerprint == prev {
			text = fmt.Sprintf("%s (unchanged)", snap.Stage)
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: text})
		if snap.Fingerprint != prev {
			ll = leveledProductions(snap.Grammar, ll, 1)
		}
		prev = snap.Fingerprint
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.Println(result.Grammar.Name())
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledProductions(g *grammar.Grammar, ll pterm.LeveledList, level int) pterm.LeveledList {
	var b strings.Builder
	if err := notation.RenderProductions(&b, g); err != nil {
		tracer().Errorf("%v", err)
		return ll
	}
	for _, line := range strings.Split(strings.TrimSpace(b.String()), "\n") {
		if line == "" {
			continue
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: line})
	}
	return ll
}

func (intp *Intp) dot(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "cannot create GraphViz file")
	}
	defer f.Close()
	if err = grammar.ToGraphViz(intp.g, f); err != nil {
		return err
	}
	pterm.Info.Println("wrote " + filename)
	return nil
}
