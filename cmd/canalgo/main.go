// Command canalgo is a thin demonstration driver over the abstract
// interpretation core: it is not an interpreter and does not read LLVM
// IR from disk. It exercises the core's constructors, operator
// interface, and widening manager against a few hardcoded scenarios so
// the library can be smoke-tested from the command line without a full
// interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/llir/llvm/ir/types"

	"github.com/sentra-lang/canalgo/internal/absenv"
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/bitfield"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/intset"
	"github.com/sentra-lang/canalgo/internal/interval"
	"github.com/sentra-lang/canalgo/internal/obslog"
	"github.com/sentra-lang/canalgo/internal/product"
	"github.com/sentra-lang/canalgo/internal/widening"
)

const version = "0.1.0"

var commandAliases = map[string]string{
	"v": "version",
	"d": "demo",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is main's body factored out so testscript's RunMain can invoke it as
// an in-process subcommand without forking a real process per test.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "-v", "version":
		fmt.Println("canalgo", version)
	case "demo":
		runDemo()
	default:
		fmt.Fprintf(os.Stderr, "canalgo: unknown command %q\n", args[0])
		showUsage()
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Println(`canalgo - abstract interpretation core demonstration driver

Usage:
  canalgo <command>

Commands:
  demo       run the constructors, operator, and widening demonstration
  version    print the version
  help       show this message`)
}

// runDemo exercises the constructors entry point, the polymorphic
// operator interface, and the widening manager's join hook against a
// tiny hand-built scenario, printing each step's canonical string
// serialization along the way.
func runDemo() {
	env := absenv.New(absenv.DefaultConfig(), 64, 0)

	i32 := &types.IntType{BitSize: 32}
	fresh, err := product.Construct(env, i32)
	if err != nil {
		obslog.NotImplemented("construct", "i32")
		os.Exit(2)
	}
	fmt.Println("fresh i32 product vector (bottom in every domain):")
	printVector(fresh)

	width := 32
	cur := product.New(
		interval.FromConstant(bignum.FromUint64(width, 0)),
		intset.FromValues(width, env.SetThreshold, []bignum.APInt{bignum.FromUint64(width, 0)}),
		bitfield.FromConstant(bignum.FromUint64(width, 0)),
	)
	fmt.Println("\nvalue at loop entry:")
	printVector(cur)

	m := widening.New(env.WideningThreshold)
	point := widening.NewPoint()
	for k := uint64(1); k <= 4; k++ {
		next := product.New(
			interval.FromRange(bignum.FromUint64(width, 0), bignum.FromUint64(width, k)),
			intset.FromValues(width, env.SetThreshold, []bignum.APInt{bignum.FromUint64(width, 0), bignum.FromUint64(width, k)}),
			bitfield.FromConstant(bignum.FromUint64(width, 0)),
		)
		cur = joinVectors(m, point, cur, next)
		fmt.Printf("\nafter join %d:\n", k)
		printVector(cur)
	}

	reduced := cur.Reduce()
	fmt.Println("\nafter one reduced-product pass:")
	printVector(reduced)

	if iv, ok := reduced.At(0).(interval.Interval); ok {
		fmt.Printf("\ninterval component memory usage: %s\n", iv.MemoryUsageString())
	}
}

// joinVectors joins a Vector's components one by one through the
// widening manager, giving each component index its own widening
// counter at point.
func joinVectors(m *widening.Manager, point widening.Point, cur, next product.Vector) product.Vector {
	n := cur.Len()
	out := make([]domain.Value, n)
	for i := 0; i < n; i++ {
		out[i] = m.Join(point, fmt.Sprintf("component-%d", i), cur.At(i), next.At(i))
	}
	return product.New(out...)
}

func printVector(v product.Vector) {
	for i := 0; i < v.Len(); i++ {
		fmt.Printf("  [%d] %s\n", i, v.At(i).String())
	}
}
