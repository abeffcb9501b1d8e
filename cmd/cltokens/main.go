package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/cl-interop/errors"
	"github.com/wippyai/cl-interop/guestmem"
	"github.com/wippyai/cl-interop/marshal"
	"github.com/wippyai/cl-interop/release"
	"github.com/wippyai/cl-interop/resource"
	"github.com/wippyai/cl-interop/scratch"
	"github.com/wippyai/cl-interop/tokens"
)

type options struct {
	ext    string
	filter string
	demo   bool
	color  bool
}

func main() {
	var (
		ext         = flag.String("ext", "", "Space-separated extension list to parse")
		tableList   = flag.String("table", "", "Token tables to list (comma-separated, default all)")
		filter      = flag.String("filter", "", "Only list constants with this name prefix")
		verbose     = flag.Bool("v", false, "Debug logging")
		demo        = flag.Bool("demo", false, "Build a context tree and tear it down")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		scratch.SetLogger(logger)
		release.SetLogger(logger)
		guestmem.SetLogger(logger)
	}

	tables, err := selectTables(*tableList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(tables, *filter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := options{
		ext:    *ext,
		filter: *filter,
		demo:   *demo,
		color:  term.IsTerminal(int(os.Stdout.Fd())),
	}
	if err := run(os.Stdout, opts, tables); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// selectTables resolves a comma-separated list of built-in table names.
func selectTables(list string) ([]tokens.Table, error) {
	if strings.TrimSpace(list) == "" {
		return tokens.CL10, nil
	}
	var tables []tokens.Table
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t, ok := tokens.Lookup(name)
		if !ok {
			return nil, errors.NotFound(errors.PhaseScan, "table", name)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func run(w io.Writer, opts options, tables []tokens.Table) error {
	st := scratch.Acquire()
	defer scratch.Release(st)

	var encoded *scratch.ByteBuffer
	if opts.ext != "" {
		buf, err := printExtensions(w, st, opts)
		if err != nil {
			return err
		}
		encoded = buf
	} else {
		printTable(w, opts, tables)
	}

	if !opts.demo {
		return nil
	}
	if err := runDemo(w, opts); err != nil {
		return err
	}
	if encoded != nil {
		return stageExtensions(w, opts, encoded)
	}
	return nil
}

func printExtensions(w io.Writer, st *scratch.State, opts options) (*scratch.ByteBuffer, error) {
	set := tokens.ParseExtensions(opts.ext)
	names := set.Sorted()

	// Extension names go back to the driver as ASCII.
	m := marshal.New(st)
	buf, err := m.EncodeAllNT(names)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "%s (%d, %d bytes)\n", styled(opts, titleStyle, "Extensions"), set.Len(), buf.Remaining())
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", styled(opts, nameStyle, name))
	}
	return buf, nil
}

func printTable(w io.Writer, opts options, tables []tokens.Table) {
	var filter tokens.Filter
	if opts.filter != "" {
		filter = tokens.Prefix(opts.filter)
	}
	names := tokens.Collect(tables, filter)

	var tableNames []string
	for _, t := range tables {
		tableNames = append(tableNames, t.Name)
	}
	fmt.Fprintf(w, "%s %s (%d)\n", styled(opts, titleStyle, "Tokens"), strings.Join(tableNames, ","), len(names))

	for _, v := range tokens.Values(names) {
		name := styled(opts, nameStyle, names[v])
		if tokens.Ambiguous(names, v) {
			name = styled(opts, collisionStyle, names[v]+" (ambiguous)")
		}
		fmt.Fprintf(w, "  %11d  %-10s  %s\n", v, tokens.Hex(v), name)
	}
}

func styled(opts options, s lipgloss.Style, text string) string {
	if !opts.color {
		return text
	}
	return s.Render(text)
}

// demoObserver prints every child as it leaves its parent.
type demoObserver struct {
	w    io.Writer
	opts options
}

func (d *demoObserver) OnRegistryEvent(e resource.Event) {
	if e.Type != resource.EventUnregistered {
		return
	}
	fmt.Fprintf(d.w, "  released %s #%d\n", styled(d.opts, kindStyle, e.Kind.String()), e.Handle)
}

// runDemo builds a small context tree and releases it with the in-process
// object model.
func runDemo(w io.Writer, opts options) error {
	ctx := resource.New(resource.KindContext)
	obs := &demoObserver{w: w, opts: opts}
	for _, k := range release.ChildKinds(resource.KindContext) {
		ctx.Registry(k).Subscribe(obs)
	}

	queue, err := ctx.NewChild(resource.KindCommandQueue)
	if err != nil {
		return err
	}
	if _, err := queue.NewChild(resource.KindEvent); err != nil {
		return err
	}
	prog, err := ctx.NewChild(resource.KindProgram)
	if err != nil {
		return err
	}
	prog.Registry(resource.KindKernel).Subscribe(obs)
	for range 2 {
		if _, err := prog.NewChild(resource.KindKernel); err != nil {
			return err
		}
	}
	for _, k := range []resource.Kind{resource.KindMem, resource.KindMem, resource.KindSampler} {
		if _, err := ctx.NewChild(k); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%s\n", styled(opts, titleStyle, "Teardown"))
	r := release.New(release.ObjectDestructors())
	if err := r.ReleaseContext(ctx); err != nil {
		return err
	}
	return ctx.Release()
}
