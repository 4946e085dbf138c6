package main

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/gocnf/cnf"
	"github.com/npillmayer/gocnf/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEvalProductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.repl")
	defer teardown()
	//
	intp := &Intp{}
	for _, line := range []string{"S -> a S b | A", "A -> a A | ε"} {
		if _, err := intp.Eval(line); err != nil {
			t.Fatalf("Expected production %q to be accepted, is: %v", line, err)
		}
	}
	if intp.g == nil || intp.g.ProductionCount() != 4 {
		t.Fatalf("Expected grammar with 4 productions, is %v", intp.g)
	}
	if intp.g.Start() != "S" {
		t.Errorf("Expected start symbol S, is %q", intp.g.Start())
	}
	result, err := intp.convert(false)
	if err != nil {
		t.Fatal(err)
	}
	if err = cnf.CheckCNF(result.Grammar); err != nil {
		t.Errorf("Expected converted grammar to be in CNF, is: %v", err)
	}
}

func TestEvalRejectsBrokenProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.repl")
	defer teardown()
	//
	intp := &Intp{}
	if _, err := intp.Eval("S -> a"); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Eval("-> b"); err == nil {
		t.Errorf("Expected error for production without left hand side")
	}
	if intp.g.ProductionCount() != 1 {
		t.Errorf("Expected grammar to be unchanged, is %d productions", intp.g.ProductionCount())
	}
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.repl")
	defer teardown()
	//
	intp := &Intp{}
	if _, err := intp.Eval("cnf"); err == nil {
		t.Errorf("Expected error for conversion without grammar")
	}
	if _, err := intp.Eval("order prod"); err != nil || intp.order != cnf.ProductivityFirst {
		t.Errorf("Expected productivity-first order, is %s (%v)", intp.order, err)
	}
	if _, err := intp.Eval("order sideways"); err == nil {
		t.Errorf("Expected error for unknown order")
	}
	if quit, _ := intp.Eval("quit"); !quit {
		t.Errorf("Expected 'quit' to end the REPL")
	}
	intp.Eval("S -> a")
	if _, err := intp.Eval("frobnicate"); err == nil {
		t.Errorf("Expected error for unknown command")
	}
}

func TestEvalClassifyAndGenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.repl")
	defer teardown()
	//
	intp := &Intp{rnd: rand.New(rand.NewSource(3))}
	intp.Eval("S -> a A | b")
	intp.Eval("A -> b S")
	if _, err := intp.Eval("classify"); err != nil {
		t.Errorf("Expected classification to succeed, is %v", err)
	}
	if ct := grammar.Classify(intp.g); ct != grammar.Regular {
		t.Errorf("Expected regular grammar, is %s", ct)
	}
	if _, err := intp.Eval("generate 3"); err != nil {
		t.Errorf("Expected words to be generated, is %v", err)
	}
	if _, err := intp.Eval("generate zero"); err == nil {
		t.Errorf("Expected usage error for 'generate zero'")
	}
	intp.Eval("clear")
	intp.Eval("S -> a S")
	if _, err := intp.Eval("generate"); err == nil {
		t.Errorf("Expected error for grammar without words")
	}
}
