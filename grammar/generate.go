package grammar

import (
	"fmt"
	"math/rand"
	"strings"
)

// Derivation is a leftmost derivation, a sequence of sentential forms
// starting with the start symbol.
type Derivation []RHS

// Word returns the last sentential form of the derivation.
func (d Derivation) Word() RHS {
	if len(d) == 0 {
		return nil
	}
	return d[len(d)-1].Copy()
}

func (d Derivation) String() string {
	forms := make([]string, len(d))
	for i, form := range d {
		forms[i] = form.String()
	}
	return strings.Join(forms, " ⇒ ")
}

// Generate derives a random word from the start symbol of g, always replacing
// the leftmost non-terminal by one of its right hand sides, chosen with rnd.
// If rnd is nil, the global source of math/rand is used.
//
// After maxSteps steps, Generate only picks right hand sides leading to a word
// in the fewest steps, so every derivation of a productive start symbol
// terminates. Generate fails if the start symbol is not declared, or if the
// derivation runs into a non-terminal which does not derive any word.
// Undeclared symbols without productions are treated as terminals.
func Generate(g *Grammar, rnd *rand.Rand, maxSteps int) (Derivation, error) {
	if !g.HasStart() {
		return nil, fmt.Errorf("grammar %q: cannot derive from undeclared start symbol %q",
			g.Name(), g.Start())
	}
	intn := rand.Intn
	if rnd != nil {
		intn = rnd.Intn
	}
	heights := derivationHeights(g)
	form := RHS{g.Start()}
	d := Derivation{form}
	for step := 0; ; step++ {
		i := leftmostExpandable(g, form)
		if i < 0 {
			return d, nil
		}
		A := form[i]
		bodies := g.RHS(A)
		if step >= maxSteps {
			bodies = lowest(g, bodies, heights)
		}
		if len(bodies) == 0 {
			return d, fmt.Errorf("grammar %q: non-terminal %q does not derive a word", g.Name(), A)
		}
		body := bodies[intn(len(bodies))]
		next := make(RHS, 0, len(form)-1+len(body))
		next = append(append(append(next, form[:i]...), body...), form[i+1:]...)
		tracer().Debugf("step %d: %s ⇒ %s", step+1, form, next)
		form = next
		d = append(d, form)
	}
}

func isExpandable(g *Grammar, sym string) bool {
	return g.IsNonTerminal(sym) || g.HasProductions(sym)
}

func leftmostExpandable(g *Grammar, form RHS) int {
	for i, sym := range form {
		if isExpandable(g, sym) {
			return i
		}
	}
	return -1
}

// derivationHeights computes for every non-terminal the height of its lowest
// derivation tree. Non-terminals which do not derive a word are missing from
// the result.
func derivationHeights(g *Grammar) map[string]int {
	heights := make(map[string]int)
	for changed := true; changed; {
		changed = false
		g.EachProduction(func(A string, rhs RHS) {
			if h, ok := bodyHeight(g, rhs, heights); ok {
				if old, known := heights[A]; !known || h < old {
					heights[A] = h
					changed = true
				}
			}
		})
	}
	return heights
}

// bodyHeight is 1 + the maximum height of the expandable symbols of rhs.
func bodyHeight(g *Grammar, rhs RHS, heights map[string]int) (int, bool) {
	h := 1
	for _, sym := range rhs {
		if !isExpandable(g, sym) {
			continue
		}
		hsym, ok := heights[sym]
		if !ok {
			return 0, false
		}
		if hsym+1 > h {
			h = hsym + 1
		}
	}
	return h, true
}

// lowest filters bodies for those of minimal height.
func lowest(g *Grammar, bodies []RHS, heights map[string]int) []RHS {
	var result []RHS
	min := -1
	for _, rhs := range bodies {
		h, ok := bodyHeight(g, rhs, heights)
		switch {
		case !ok:
		case min < 0 || h < min:
			min, result = h, []RHS{rhs}
		case h == min:
			result = append(result, rhs)
		}
	}
	return result
}
