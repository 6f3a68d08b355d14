// Package diag implements the three error categories of the core's error
// handling design: precondition violations abort the process, concrete
// runtime exceptions are never surfaced as errors (they are absorbed by the
// operator and only traced via internal/obslog), and "not implemented"
// gaps are a distinct, named category the driver can choose to tolerate.
//
// Shaped after internal/errors.SentraError from the language runtime this
// module grew out of: a closed category enum plus a struct error carrying
// enough context to point at the offending call, rendered by Error().
package diag

import (
	"fmt"
	"os"

	"github.com/sentra-lang/canalgo/internal/obslog"
)

// Category is the closed set of diagnostic kinds the core can raise.
type Category string

const (
	// Precondition marks a programming error: width mismatch, wrong
	// concrete domain subtype on an operand, an unsupported predicate.
	// Must never occur in a correct driver.
	Precondition Category = "PreconditionViolation"

	// Gap marks a legitimate missing operator implementation.
	Gap Category = "NotImplemented"
)

// Diagnostic is the only error type this core ever constructs. Concrete
// runtime exceptions (division by zero, overflow, invalid float op) are
// deliberately NOT represented here -- they never propagate as errors.
type Diagnostic struct {
	Category Category
	Op       string // operator name, e.g. "add", "icmp(SLT)"
	Domain   string // concrete domain type name, e.g. "Interval"
	Detail   string
}

func (d *Diagnostic) Error() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s.%s", d.Category, d.Domain, d.Op)
	}
	return fmt.Sprintf("%s: %s.%s: %s", d.Category, d.Domain, d.Op, d.Detail)
}

// NewPrecondition builds a precondition-violation diagnostic. Callers pass
// it to Abort; it must never be returned or swallowed silently.
func NewPrecondition(op, domainName, detail string) *Diagnostic {
	return &Diagnostic{Category: Precondition, Op: op, Domain: domainName, Detail: detail}
}

// NewGap builds a not-implemented diagnostic for a legitimate missing
// operator. Unlike Precondition, callers may choose to continue.
func NewGap(op, domainName string) *Diagnostic {
	return &Diagnostic{Category: Gap, Op: op, Domain: domainName}
}

// Abort reports d and terminates the process. Used exclusively for
// Precondition diagnostics raised deep inside an operator, where returning
// an error all the way up would pollute every operator signature with an
// error return the soundness discipline says should not exist.
func Abort(d *Diagnostic) {
	fmt.Fprintln(os.Stderr, d.Error())
	os.Exit(2)
}

// ReportGap logs a Gap diagnostic through obslog. If strict is true the
// caller should Abort instead; ReportGap itself never aborts.
func ReportGap(d *Diagnostic) {
	obslog.NotImplemented(d.Op, d.Domain)
}
