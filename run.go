/*
 * Copyright (c) 2024 The GoPlus Authors (goplus.org). All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package nativesamples

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/qiniu/x/errors"
)

const (
	FlagFailFast = 1 << iota
	FlagVerbose
)

const (
	// CasesFile is the fixture file looked up in every test directory.
	CasesFile = "cases.json"
)

var (
	ErrNoCases = errors.New("no " + CasesFile + " found")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Output receives the progress lines printed by Run.
var Output io.Writer = os.Stdout

// -----------------------------------------------------------------------------

// Case is a single literal input/output check of one function.
type Case struct {
	Func string   `json:"func"`
	Args []string `json:"args"`
	Want string   `json:"want"`
}

// Cases is the content of a fixture file.
type Cases struct {
	Sample string `json:"sample"`
	Cases  []Case `json:"cases"`
}

// LoadCases reads a fixture file.
func LoadCases(file string) (ret *Cases, err error) {
	b, err := os.ReadFile(file)
	if err != nil {
		err = errors.NewWith(err, `os.ReadFile(file)`, -2, "os.ReadFile", file)
		return
	}
	ret = new(Cases)
	if err = json.Unmarshal(b, ret); err != nil {
		err = errors.NewWith(err, `json.Unmarshal(b, ret)`, -2, "json.Unmarshal", file)
		return nil, err
	}
	return
}

// Check runs c and compares the observed result with c.Want.
func (c *Case) Check() error {
	e, ok := Lookup(c.Func)
	if !ok {
		return &CallError{Func: c.Func, Err: ErrUnknownFunc}
	}
	got, err := e.Call(c.Args...)
	if err != nil {
		return err
	}
	want, err := Normalize(e.Observed, c.Want)
	if err != nil {
		return &CallError{Func: c.Func, Err: err}
	}
	if got != want {
		return fmt.Errorf("%s(%s) = %s, expected %s", c.Func, strings.Join(c.Args, ", "), got, want)
	}
	return nil
}

// -----------------------------------------------------------------------------

// Run executes every fixture under dir. Directories whose name starts
// with '_' are skipped. Without FlagFailFast a failing directory is
// reported and the walk goes on; the last error is returned.
func Run(dir string, flags int) (last error) {
	n, last := execDirRecursively(dir, flags)
	if last == nil && n == 0 {
		last = errors.NewWith(ErrNoCases, `n == 0`, -2, "nativesamples.Run", dir)
	}
	return
}

func execDirRecursively(dir string, flags int) (n int, last error) {
	if strings.HasPrefix(filepath.Base(dir), "_") {
		return
	}
	fis, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.NewWith(err, `os.ReadDir(dir)`, -2, "os.ReadDir", dir)
	}
	for _, fi := range fis {
		if fi.IsDir() {
			sub, e := execDirRecursively(filepath.Join(dir, fi.Name()), flags)
			if e != nil {
				last = e
			}
			n += sub
			continue
		}
		if fi.Name() == CasesFile {
			fmt.Fprintf(Output, "==> Testing %s ...\n", dir)
			cnt, e := execDir(dir, flags)
			if e != nil {
				fmt.Fprintln(Output, e)
				last = e
			}
			n += cnt
		}
	}
	return
}

func execDir(dir string, flags int) (n int, err error) {
	if (flags & FlagFailFast) == 0 {
		defer func() {
			if e := recover(); e != nil {
				err = newError(e)
			}
		}()
	}
	cases, err := LoadCases(filepath.Join(dir, CasesFile))
	check(err)
	for i := range cases.Cases {
		c := &cases.Cases[i]
		if e, ok := Lookup(c.Func); ok && cases.Sample != "" && e.Sample != cases.Sample {
			fatalf("%s: %s belongs to %s, not %s\n", dir, c.Func, e.Sample, cases.Sample)
		}
		if (flags & FlagVerbose) != 0 {
			fmt.Fprintf(Output, "    %s(%s)\n", c.Func, strings.Join(c.Args, ", "))
		}
		check(c.Check())
		n++
	}
	return
}

// -----------------------------------------------------------------------------

func check(err error) {
	if err != nil {
		log.Panicln(err)
	}
}

func fatalf(format string, args ...interface{}) {
	log.Panicln(fmt.Sprintf(format, args...))
}

func newError(v interface{}) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(strings.TrimSuffix(e, "\n"))
	}
	return fmt.Errorf("%v", v)
}

// -----------------------------------------------------------------------------
