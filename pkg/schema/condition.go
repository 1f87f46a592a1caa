package schema

// Operator names the comparison of a conditional-visibility rule.
type Operator string

const (
	OperatorStrictEqual Operator = "==="
	OperatorEqual       Operator = "equal"
	OperatorIn          Operator = "in"
	OperatorIsUndefined Operator = "isUndefined"
)

// Known reports whether the operator is one the visibility resolver
// evaluates. Unknown operators are preserved verbatim.
func (o Operator) Known() bool {
	switch o {
	case OperatorStrictEqual, OperatorEqual, OperatorIn, OperatorIsUndefined:
		return true
	default:
		return false
	}
}

// Condition is a [siblingProperty, operator, operand] rule attached to a
// property through requiredWhen or optionalWhen.
type Condition struct {
	Property string
	Operator Operator
	Operand  any
}
