package main

import (
	"flag"
	"fmt"
	"os"

	csamples "github.com/goplus/nativesamples/cmd/csamples/impl"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: "+csamples.ShortUsage)
		flag.PrintDefaults()
	}
	csamples.Main(flag.CommandLine, os.Args[1:])
}
