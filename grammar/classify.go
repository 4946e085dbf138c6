package grammar

import "fmt"

// ChomskyType is a class of the Chomsky hierarchy. Higher types are more
// restricted.
type ChomskyType int

// Types of the Chomsky hierarchy.
const (
	Unrestricted     ChomskyType = iota // type 0
	ContextSensitive                    // type 1
	ContextFree                         // type 2
	Regular                             // type 3
)

func (ct ChomskyType) String() string {
	switch ct {
	case Unrestricted:
		return "Type 0: unrestricted"
	case ContextSensitive:
		return "Type 1: context-sensitive"
	case ContextFree:
		return "Type 2: context-free"
	case Regular:
		return "Type 3: regular"
	}
	return fmt.Sprintf("type(%d)", int(ct))
}

// Classify returns the most restricted type of the Chomsky hierarchy g belongs
// to. Grammars have a single non-terminal on every left hand side, so the
// result is either ContextFree or Regular.
//
// g is regular if it is right-linear (every body is ε, a or a B) or
// left-linear (every body is ε, a or B a), where a is a declared terminal and
// B a declared non-terminal. Bodies with undeclared symbols make g
// context-free.
func Classify(g *Grammar) ChomskyType {
	right, left := true, true
	g.EachProduction(func(A string, rhs RHS) {
		switch len(rhs) {
		case 0:
		case 1:
			if !g.IsTerminal(rhs[0]) {
				right, left = false, false
			}
		case 2:
			right = right && g.IsTerminal(rhs[0]) && g.IsNonTerminal(rhs[1])
			left = left && g.IsNonTerminal(rhs[0]) && g.IsTerminal(rhs[1])
		default:
			right, left = false, false
		}
	})
	tracer().Debugf("grammar %q: right-linear=%v, left-linear=%v", g.Name(), right, left)
	if right || left {
		return Regular
	}
	return ContextFree
}
