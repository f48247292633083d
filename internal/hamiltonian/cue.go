package hamiltonian

import (
	"fmt"
	"os"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// LoadError reports a problem in a CUE Hamiltonian definition, with the
// file position when CUE can supply one.
type LoadError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LoadCUE reads a Hamiltonian definition from a CUE file. The file must
// contain a top-level "hamiltonian" struct:
//
//	hamiltonian: {
//		name: "transverse-ising"
//		terms: [
//			{operators: "Z0Z1", coefficient: -1.0},
//			{operators: "X0", coefficient: -0.5},
//		]
//	}
//
// Coefficients may be numbers or complex-literal strings ("1+2i").
func LoadCUE(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hamiltonian file: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return ParseCUE(v.LookupPath(cue.ParsePath("hamiltonian")))
}

// ParseCUE parses a CUE value holding the hamiltonian struct itself.
func ParseCUE(v cue.Value) (*Spec, error) {
	if !v.Exists() {
		return nil, &LoadError{Field: "hamiltonian", Message: "top-level hamiltonian struct is required"}
	}
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	spec := &Spec{}

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return nil, &LoadError{Field: "name", Message: "name is required", Pos: v.Pos()}
	}
	name, err := nameVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	spec.Name = name

	if descVal := v.LookupPath(cue.ParsePath("description")); descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		spec.Description = desc
	}

	termsVal := v.LookupPath(cue.ParsePath("terms"))
	if !termsVal.Exists() {
		return nil, &LoadError{Field: "terms", Message: "at least one term is required", Pos: v.Pos()}
	}
	iter, err := termsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		ts, err := parseTerm(iter.Value())
		if err != nil {
			return nil, err
		}
		spec.Terms = append(spec.Terms, ts)
	}
	if len(spec.Terms) == 0 {
		return nil, &LoadError{Field: "terms", Message: "at least one term is required", Pos: termsVal.Pos()}
	}
	return spec, nil
}

func parseTerm(v cue.Value) (TermSpec, error) {
	var ts TermSpec

	opsVal := v.LookupPath(cue.ParsePath("operators"))
	if !opsVal.Exists() {
		return ts, &LoadError{Field: "operators", Message: "operators is required", Pos: v.Pos()}
	}
	ops, err := opsVal.String()
	if err != nil {
		return ts, formatCUEError(err)
	}
	ts.Operators = ops

	coefVal := v.LookupPath(cue.ParsePath("coefficient"))
	if !coefVal.Exists() {
		ts.Coefficient = nil
		return ts, nil
	}
	if f, err := coefVal.Float64(); err == nil {
		ts.Coefficient = f
		return ts, nil
	}
	if s, err := coefVal.String(); err == nil {
		ts.Coefficient = s
		return ts, nil
	}
	return ts, &LoadError{
		Field:   "coefficient",
		Message: "coefficient must be a number or a complex-literal string, got " + strconv.Quote(fmt.Sprint(coefVal)),
		Pos:     coefVal.Pos(),
	}
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors.
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := cueerrors.Positions(firstErr)
	if len(positions) > 0 {
		return &LoadError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}
	return &LoadError{Field: "cue", Message: firstErr.Error()}
}
