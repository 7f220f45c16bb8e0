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

// Package packages loads type information of compiled Go packages from
// their export data, as produced by `go list -export`.
package packages

import (
	"bytes"
	"go/token"
	"go/types"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/qiniu/x/errors"
	"golang.org/x/tools/go/gcexportdata"
)

const (
	DbgFlagGoList = 1 << iota
	DbgFlagAll    = DbgFlagGoList
)

var (
	debugGoList bool
)

func SetDebug(flags int) {
	debugGoList = (flags & DbgFlagGoList) != 0
}

// ----------------------------------------------------------------------------

// Importer satisfies types.Importer. Export files are located with one
// `go list` run per batch of packages and cached by import path.
type Importer struct {
	loaded  map[string]*types.Package
	exports map[string]string
	fset    *token.FileSet
	dir     string
}

// NewImporter creates an Importer that runs `go list` in workDir, or in
// the current directory when workDir is omitted.
func NewImporter(fset *token.FileSet, workDir ...string) *Importer {
	dir := ""
	if len(workDir) > 0 {
		dir = workDir[0]
	}
	if fset == nil {
		fset = token.NewFileSet()
	}
	loaded := make(map[string]*types.Package)
	loaded["unsafe"] = types.Unsafe
	return &Importer{loaded: loaded, exports: make(map[string]string), fset: fset, dir: dir}
}

func (p *Importer) Import(pkgPath string) (*types.Package, error) {
	return p.ImportFrom(pkgPath, p.dir, 0)
}

// ImportFrom returns the imported package for the given import path.
// The mode value must be 0.
func (p *Importer) ImportFrom(pkgPath, dir string, mode types.ImportMode) (*types.Package, error) {
	if ret, ok := p.loaded[pkgPath]; ok && ret.Complete() {
		return ret, nil
	}
	expfile, ok := p.exports[pkgPath]
	if !ok {
		if err := p.preload(dir, pkgPath); err != nil {
			return nil, err
		}
		if expfile, ok = p.exports[pkgPath]; !ok {
			return nil, errors.NewWith(ErrNoExport, `p.exports[pkgPath]`, -2, "(*packages.Importer).ImportFrom", pkgPath)
		}
	}
	return p.loadByExport(expfile, pkgPath)
}

// Preload locates the export files of several packages with a single
// `go list` run.
func (p *Importer) Preload(pkgPaths ...string) error {
	return p.preload(p.dir, pkgPaths...)
}

func (p *Importer) preload(dir string, pkgPaths ...string) error {
	data, err := golistExport(dir, pkgPaths)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		pos := strings.IndexByte(line, ' ')
		if pos <= 0 || pos == len(line)-1 {
			continue
		}
		p.exports[line[:pos]] = line[pos+1:]
	}
	return nil
}

func (p *Importer) loadByExport(expfile string, pkgPath string) (pkg *types.Package, err error) {
	f, err := os.Open(expfile)
	if err != nil {
		return
	}
	defer f.Close()

	r, err := gcexportdata.NewReader(f)
	if err == nil {
		pkg, err = gcexportdata.Read(r, p.fset, p.loaded, pkgPath)
	}
	return
}

// ----------------------------------------------------------------------------

var (
	ErrNoExport = errors.New("no export data")
)

func golistExport(dir string, pkgPaths []string) (ret []byte, err error) {
	var stdout, stderr bytes.Buffer
	args := append([]string{"list", "-export", "-f={{.ImportPath}} {{.Export}}"}, pkgPaths...)
	if debugGoList {
		log.Println("==> runCmd: go", args)
	}
	cmd := exec.Command("go", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Dir = dir
	err = cmd.Run()
	if err == nil {
		ret = stdout.Bytes()
	} else if stderr.Len() > 0 {
		err = errors.New(stderr.String())
	}
	return
}

// ----------------------------------------------------------------------------
