package csamples

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goplus/mod/gopmod"
	"github.com/goplus/nativesamples"
	"github.com/goplus/nativesamples/internal/irgen"
	"github.com/goplus/nativesamples/internal/stubgen"
	"github.com/goplus/nativesamples/packages"
	"github.com/qiniu/x/errors"
	"github.com/qiniu/x/log"
)

const ShortUsage = `csamples [-v] <command> [arguments]

Commands:
    list                     print the C prototype of every exported sample
    call <func> [args...]    invoke a sample, e.g. call vector2f_add "{1,2}" "{3,4}"
    test [-ff] [dir]         run cases.json fixtures (default: <module root>/testdata)
    check                    verify Go signatures against the catalog
    stubgen [-o file]        generate the capi stub used without cgo
    genir [-cc clang] [-force] [dir]
                             compile native sources to LLVM IR (default: <module root>/samples/native)

`

var (
	ErrUsage = errors.New("usage error")
)

// Main runs the command line in args. Global flags are parsed by flag.
func Main(flag *flag.FlagSet, args []string) {
	var (
		verbose = flag.Bool("v", false, "print verbose information")
	)
	flag.Parse(args)
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		log.SetOutputLevel(log.Ldebug)
		irgen.SetDebug(irgen.DbgFlagAll)
		stubgen.SetDebug(stubgen.DbgFlagAll)
		packages.SetDebug(packages.DbgFlagAll)
	}
	cmd, cmdArgs := flag.Arg(0), flag.Args()[1:]
	log.Debug("==> csamples", cmd, cmdArgs)
	if err := Run(os.Stdout, cmd, cmdArgs, *verbose); err != nil {
		if err == ErrUsage {
			flag.Usage()
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// Run executes one command, writing its output to out.
func Run(out io.Writer, cmd string, args []string, verbose bool) error {
	switch cmd {
	case "list":
		return list(out)
	case "call":
		if len(args) == 0 {
			return ErrUsage
		}
		ret, err := nativesamples.Call(args[0], args[1:]...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ret)
		return nil
	case "test":
		return test(out, args, verbose)
	case "check":
		return checkSigs(out)
	case "stubgen":
		return genStub(out, args)
	case "genir":
		return genIR(out, args)
	}
	fmt.Fprintf(os.Stderr, "csamples: unknown command %q\n", cmd)
	return ErrUsage
}

// -----------------------------------------------------------------------------

func list(out io.Writer) error {
	for _, sample := range nativesamples.Samples() {
		fmt.Fprintf(out, "// %s\n", sample)
		for _, e := range nativesamples.Entries() {
			if e.Sample == sample {
				fmt.Fprintf(out, "%s;\n", e.Prototype())
			}
		}
	}
	return nil
}

// moduleRoot locates the directory holding this module's go.mod.
func moduleRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	mod, err := gopmod.Load(cwd)
	if err != nil {
		return "", errors.NewWith(err, `gopmod.Load(cwd)`, -2, "gopmod.Load", cwd)
	}
	return mod.Root(), nil
}

func test(out io.Writer, args []string, verbose bool) error {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	failfast := fs.Bool("ff", false, "fail fast (stop if a case fails)")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	var dir string
	switch fs.NArg() {
	case 0:
		root, err := moduleRoot()
		if err != nil {
			return err
		}
		dir = filepath.Join(root, "testdata")
	case 1:
		dir = fs.Arg(0)
	default:
		return ErrUsage
	}
	var flags int
	if *failfast {
		flags |= nativesamples.FlagFailFast
	}
	if verbose {
		flags |= nativesamples.FlagVerbose
	}
	old := nativesamples.Output
	nativesamples.Output = out
	defer func() { nativesamples.Output = old }()
	return nativesamples.Run(dir, flags)
}

func checkSigs(out io.Writer) error {
	imp := packages.NewImporter(nil)
	pkgs := make([]string, 0, 4)
	for _, e := range nativesamples.Entries() {
		if n := len(pkgs); n == 0 || pkgs[n-1] != e.Pkg {
			pkgs = append(pkgs, e.Pkg)
		}
	}
	log.Debug("==> check", strings.Join(pkgs, " "))
	if err := imp.Preload(pkgs...); err != nil {
		return err
	}
	if err := nativesamples.CheckSignatures(imp); err != nil {
		return err
	}
	fmt.Fprintf(out, "ok: %d signatures\n", len(nativesamples.Entries()))
	return nil
}

func genStub(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("stubgen", flag.ContinueOnError)
	output := fs.String("o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if *output == "" {
		return stubgen.WriteTo(out, nativesamples.Entries(), nil)
	}
	return stubgen.WriteFile(*output, nativesamples.Entries(), nil)
}

func genIR(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("genir", flag.ContinueOnError)
	cc := fs.String("cc", "", "compiler (default: from irgen.cfg, or clang)")
	force := fs.Bool("force", false, "ignore hashes.json and recompile every source")
	if err := fs.Parse(args); err != nil || fs.NArg() > 1 {
		return ErrUsage
	}
	var dir string
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	} else {
		root, err := moduleRoot()
		if err != nil {
			return err
		}
		dir = filepath.Join(root, "samples", "native")
	}
	conf, err := irgen.LoadConfig(dir)
	if err != nil {
		return err
	}
	if *cc != "" {
		conf.Compiler = *cc
	}
	conf.Force = *force
	processed, err := irgen.Generate(dir, conf)
	for _, name := range processed {
		fmt.Fprintln(out, "Processing", filepath.Join(dir, name))
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Done!")
	return nil
}

// -----------------------------------------------------------------------------
