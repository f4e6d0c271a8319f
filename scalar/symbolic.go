package scalar

import (
	"math/big"
	"sort"
	"strings"
)

// Var is a named symbolic variable.
type Var struct {
	name string
}

// V returns the symbolic variable with the given name.
// An empty name is a programmer error and panics.
func V(name string) Var {
	if name == "" {
		panic("scalar: empty variable name")
	}

	return Var{name: name}
}

// Name returns the variable's name.
func (v Var) Name() string { return v.name }

// Add implements Scalar.
func (v Var) Add(other Scalar) Scalar { return newSum(v, other) }

// Mul implements Scalar.
func (v Var) Mul(other Scalar) Scalar { return newProd(v, other) }

// Neg implements Scalar.
func (v Var) Neg() Scalar { return newProd(FromInt(-1), v) }

// IsZero implements Scalar; a variable is never structurally zero.
func (v Var) IsZero() bool { return false }

// Equal implements Scalar; variables are equal iff their names match.
func (v Var) Equal(other Scalar) bool {
	o, ok := other.(Var)

	return ok && o.name == v.name
}

// String implements Scalar.
func (v Var) String() string { return v.name }

// exprOp enumerates symbolic expression node kinds.
type exprOp uint8

const (
	opSum exprOp = iota + 1
	opProd
	opQuot
	opSqrt
)

// Expr is a symbolic compound scalar: a sum, product, quotient or square
// root over other scalars.
//
// Exprs are built only through Scalar arithmetic (and Div/Sqrt) and carry a
// canonical internal form: nested sums/products are flattened, rational
// constants are folded (into the last position of a sum, the first of a
// product), ring identities are dropped, and remaining arguments are kept
// in a deterministic order. Like symbolic terms are NOT collected: x+x
// stays a two-term sum. Equal is structural.
type Expr struct {
	op   exprOp
	args []Scalar
}

// Add implements Scalar.
func (e Expr) Add(other Scalar) Scalar { return newSum(e, other) }

// Mul implements Scalar.
func (e Expr) Mul(other Scalar) Scalar { return newProd(e, other) }

// Neg implements Scalar.
func (e Expr) Neg() Scalar { return newProd(FromInt(-1), e) }

// IsZero implements Scalar. A constructed Expr is never structurally zero
// (zero results collapse to Rat during construction).
func (e Expr) IsZero() bool { return false }

// Equal implements Scalar: same node kind, same arguments, in order.
// Canonical construction makes this independent of the build order of
// commutative operations over identical arguments.
func (e Expr) Equal(other Scalar) bool {
	o, ok := other.(Expr)
	if !ok || o.op != e.op || len(o.args) != len(e.args) {
		return false
	}
	for i := range e.args {
		if !e.args[i].Equal(o.args[i]) {
			return false
		}
	}

	return true
}

// newSum builds the canonical sum of parts.
func newSum(parts ...Scalar) Scalar {
	flat := make([]Scalar, 0, len(parts))
	for _, p := range parts {
		if sub, ok := p.(Expr); ok && sub.op == opSum {
			flat = append(flat, sub.args...)
			continue
		}
		flat = append(flat, p)
	}

	konst := new(big.Rat)
	rest := make([]Scalar, 0, len(flat))
	for _, p := range flat {
		if r, ok := p.(Rat); ok {
			konst.Add(konst, r.val())
			continue
		}
		rest = append(rest, p)
	}
	sortArgs(rest)

	if len(rest) == 0 {
		return Rat{r: konst}
	}
	if konst.Sign() != 0 {
		rest = append(rest, Rat{r: konst}) // constant term last
	}
	if len(rest) == 1 {
		return rest[0]
	}

	return Expr{op: opSum, args: rest}
}

// newProd builds the canonical product of parts.
func newProd(parts ...Scalar) Scalar {
	flat := make([]Scalar, 0, len(parts))
	for _, p := range parts {
		if sub, ok := p.(Expr); ok && sub.op == opProd {
			flat = append(flat, sub.args...)
			continue
		}
		flat = append(flat, p)
	}

	konst := big.NewRat(1, 1)
	rest := make([]Scalar, 0, len(flat))
	for _, p := range flat {
		if r, ok := p.(Rat); ok {
			if r.IsZero() {
				return Zero()
			}
			konst.Mul(konst, r.val())
			continue
		}
		rest = append(rest, p)
	}
	sortArgs(rest)

	if len(rest) == 0 {
		return Rat{r: konst}
	}
	if konst.Cmp(big.NewRat(1, 1)) == 0 {
		if len(rest) == 1 {
			return rest[0]
		}

		return Expr{op: opProd, args: rest}
	}
	args := make([]Scalar, 0, len(rest)+1)
	args = append(args, Rat{r: konst}) // coefficient first
	args = append(args, rest...)

	return Expr{op: opProd, args: args}
}

// sortArgs orders symbolic arguments by their rendering, which is stable
// because Scalars are immutable.
func sortArgs(args []Scalar) {
	sort.SliceStable(args, func(i, j int) bool {
		return args[i].String() < args[j].String()
	})
}

// String implements Scalar.
func (e Expr) String() string {
	switch e.op {
	case opSum:
		var sb strings.Builder
		for i, a := range e.args {
			s := a.String()
			if i == 0 {
				sb.WriteString(s)
				continue
			}
			if strings.HasPrefix(s, "-") {
				sb.WriteString(" - ")
				sb.WriteString(s[1:])
				continue
			}
			sb.WriteString(" + ")
			sb.WriteString(s)
		}

		return sb.String()

	case opProd:
		pieces := make([]string, len(e.args))
		for i, a := range e.args {
			pieces[i] = wrapFactor(a)
		}

		return strings.Join(pieces, "*")

	case opQuot:
		return wrapOperand(e.args[0]) + "/" + wrapOperand(e.args[1])

	case opSqrt:
		return "sqrt(" + e.args[0].String() + ")"
	}

	return "" // unreachable: every Expr carries a valid op
}

// wrapFactor parenthesizes product factors that would otherwise rebind.
func wrapFactor(a Scalar) string {
	if sub, ok := a.(Expr); ok && (sub.op == opSum || sub.op == opQuot) {
		return "(" + sub.String() + ")"
	}

	return a.String()
}

// wrapOperand parenthesizes quotient operands containing lower-precedence
// structure.
func wrapOperand(a Scalar) string {
	s := a.String()
	if strings.ContainsAny(s, " */") {
		return "(" + s + ")"
	}

	return s
}
