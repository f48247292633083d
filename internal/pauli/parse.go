package pauli

import (
	"regexp"
	"strconv"
	"strings"
)

// opStringPattern validates the operator part of a compact term string:
// one of X/Y/Z followed by one or more digits, repeated.
var opStringPattern = regexp.MustCompile(`^(([XYZ])(\d+))+$`)

// opFactorPattern extracts the individual (operator, qubit) factors.
var opFactorPattern = regexp.MustCompile(`([XYZ])(\d+)`)

// splitOutsideParens splits s on sep, ignoring separators that appear
// inside parentheses, so coefficients like (0.5+0i) survive intact.
func splitOutsideParens(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// parseCoefficient parses a coefficient as a float, falling back to a
// complex literal. Both the Go "i" and the engineering "j" imaginary
// suffixes are accepted.
func parseCoefficient(s string) (Numeric, error) {
	s = strings.ReplaceAll(s, " ", "")
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Numeric(complex(f, 0)), nil
	}
	normalized := strings.ReplaceAll(s, "j", "i")
	normalized = strings.TrimPrefix(normalized, "(")
	normalized = strings.TrimSuffix(normalized, ")")
	if z, err := strconv.ParseComplex(normalized, 128); err == nil {
		return Numeric(z), nil
	}
	return 0, Errorf(ErrCodeParse, "could not parse the coefficient %q", s)
}

// TermFromCompactString parses the result of Term.CompactString:
// <coefficient>*<op><qubit>... with no separators between factors.
// "I" as the operator part denotes the scalar term. Qubit indices
// within a term must be distinct.
func TermFromCompactString(s string) (*Term, error) {
	pieces := splitOutsideParens(s, '*')
	if len(pieces) < 2 {
		return nil, Errorf(ErrCodeParse,
			"could not separate %q into coefficient and operator; it does not match <coefficient>*<operator>", s)
	}
	coeff, err := parseCoefficient(pieces[0])
	if err != nil {
		return nil, err
	}

	opStr := strings.Join(pieces[1:], "")
	if opStr == "I" {
		return New(I, nil, coeff)
	}
	if !opStringPattern.MatchString(opStr) {
		return nil, Errorf(ErrCodeParse,
			"could not parse operator string %q; it should match ^(([XYZ])(\\d+))+$", opStr)
	}

	var ops []QubitOp
	seen := map[Index]bool{}
	for _, m := range opFactorPattern.FindAllStringSubmatch(opStr, -1) {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, Errorf(ErrCodeParse, "could not parse qubit index %q", m[2])
		}
		q := Index(n)
		if seen[q] {
			return nil, Errorf(ErrCodeParse, "qubit %d appears more than once in %q", n, opStr)
		}
		seen[q] = true
		ops = append(ops, QubitOp{Op: Op(m[1]), Qubit: q})
	}
	return FromList(ops, coeff)
}

// SumFromCompactString parses the result of Sum.CompactString: terms
// joined by "+" outside parentheses. The parsed sum is simplified.
func SumFromCompactString(s string, opts ...Option) (*Sum, error) {
	var terms []*Term
	for _, piece := range splitOutsideParens(s, '+') {
		t, err := TermFromCompactString(strings.TrimSpace(piece))
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	sum, err := NewSum(terms)
	if err != nil {
		return nil, err
	}
	return sum.Simplify(opts...)
}
