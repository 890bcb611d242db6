// Package aoc holds the shared helpers behind the per-year Advent of Code
// solvers: a union-find, grids, points, graphs, small containers, and a
// runner that checks each part against the sample in its doc comment before
// running it on the real input.
package aoc

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/exp/maps"
)

// sample is the expected answer of one part and the input it is computed
// from, both taken from the part's doc comment.
type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// parseSample reads a comment of the form
//
//	/*
//	want=42
//
//	input lines...
//	*/
//
// or just "// want=42".
func parseSample(comment string) (sample, bool) {
	var text string
	switch {
	case strings.HasPrefix(comment, "/*"):
		text = strings.TrimSuffix(comment[2:], "*/")
	default:
		text = strings.TrimPrefix(comment, "//")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: m[1], input: m[2]}, true
}

// extractSamples maps each documented func in src to its sample. A sample
// without input reuses the input of the previous one.
func extractSamples(src []byte) map[string]sample {
	f, err := parser.ParseFile(token.NewFileSet(), "main.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	samples := make(map[string]sample)
	var prev string
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		i := slices.IndexFunc(fd.Doc.List, func(c *ast.Comment) bool {
			_, ok := parseSample(c.Text)
			return ok
		})
		if i < 0 {
			continue
		}
		s, _ := parseSample(fd.Doc.List[i].Text)
		if s.input == "" {
			s.input = prev
		}
		prev = s.input
		samples[fd.Name.Name] = s
	}
	return samples
}

// Puzzle is embedded in solver structs. It gives each part access to its
// input, which is the sample input while the sample is being checked.
type Puzzle struct {
	Year, Day  int
	SampleMode bool

	part    part
	samples map[string]sample
	debug   io.Writer // nil unless --debug
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return FetchInput(p.Year, p.Day)
}

func (p *Puzzle) Lines() []string {
	return Lines(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input with its row number,
// starting at 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	for y, line := range p.Lines() {
		onLine(y, line)
	}
}

func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugf prints while checking the sample with --debug set.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.debug != nil && p.SampleMode {
		fmt.Fprintf(p.debug, format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.part.method]
	if !ok {
		log.Fatalf("no sample found for %v", p.part.method)
	}
	return s
}

// part is one solver method, D<day>p<num>.
type part struct {
	method string
	num    string
	fn     func() any
}

type puzzleDay struct {
	num   int
	parts []part // sorted by num
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// solverDays groups the D<day>p<part> methods of the struct x points to.
func solverDays(x any) map[int]puzzleDay {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	days := map[int]puzzleDay{}
	for i := 0; i < v.NumMethod(); i++ {
		name := v.Type().Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s has type %s; want func() any", name, v.Method(i).Type())
		}
		n := Int(m[1])
		d := days[n]
		d.num = n
		d.parts = append(d.parts, part{method: name, num: m[2], fn: fn})
		days[n] = d
	}
	for _, d := range days {
		slices.SortFunc(d.parts, func(a, b part) int { return strings.Compare(a.num, b.num) })
	}
	return days
}

type options struct {
	day        int
	part       string
	onlySample bool
	skipSample bool
	debug      bool
}

var flags options

func init() {
	pflag.IntVarP(&flags.day, "day", "d", -1, "day to run; all days if unset")
	pflag.StringVarP(&flags.part, "part", "p", "", "part to run")
	pflag.BoolVar(&flags.onlySample, "sample", false, "only run sample")
	pflag.BoolVar(&flags.skipSample, "skip-sample", false, "skip sample")
	pflag.BoolVar(&flags.debug, "debug", false, "print Debugf output while checking samples")
}

var parseFlags = sync.OnceFunc(pflag.Parse)

type runner struct {
	out     io.Writer
	opts    options
	year    int
	samples map[string]sample
}

// runDay runs every selected part of d on slvr. It stops at the first
// sample that does not match and reports false.
func (r *runner) runDay(slvr any, d puzzleDay) bool {
	p := &Puzzle{Year: r.year, Day: d.num, samples: r.samples}
	if r.opts.debug {
		p.debug = r.out
	}
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))

	fmt.Fprintln(r.out, "Running day", d.num)
	for _, pt := range d.parts {
		if r.opts.part != "" && pt.num != r.opts.part {
			continue
		}
		p.part = pt
		if !r.opts.skipSample {
			p.SampleMode = true
			got, took := timed(pt.fn)
			want := p.Sample().want
			if fmt.Sprint(got) != want {
				fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", pt.num, got, want)
				return false
			}
			fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v)\n", pt.num, got, took)
		}
		if !r.opts.onlySample {
			p.SampleMode = false
			p.Input() // fetch before the clock starts
			got, took := timed(pt.fn)
			fmt.Fprintf(r.out, "part %s: %v (took %v)\n", pt.num, got, took)
		}
	}
	return true
}

func timed(fn func() any) (any, time.Duration) {
	t0 := time.Now()
	v := fn()
	return v, time.Since(t0).Round(time.Microsecond)
}

// Run runs the solver methods of slvr, a pointer to a struct embedding
// *Puzzle. src is the solver's own source, used to find samples.
func Run(year int, src []byte, slvr any) {
	parseFlags()
	r := &runner{out: os.Stdout, opts: flags, year: year, samples: extractSamples(src)}
	days := solverDays(slvr)

	nums := maps.Keys(days)
	slices.Sort(nums)
	if r.opts.day != -1 {
		if _, ok := days[r.opts.day]; !ok {
			log.Fatalf("no day %d", r.opts.day)
		}
		nums = []int{r.opts.day}
	}
	for _, n := range nums {
		r.runDay(slvr, days[n])
		fmt.Fprintln(r.out)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel calls f on every element of in concurrently and returns the
// results in order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}
