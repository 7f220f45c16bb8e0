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
	"go/types"

	"github.com/qiniu/x/errors"
)

// CheckSignatures verifies, against compiled package data, that every
// entry's Go function exists and has the parameter and result types the
// catalog declares. All mismatches are reported together.
func CheckSignatures(imp types.Importer) error {
	var errs errors.List
	pkgs := make(map[string]*types.Package)
	for _, e := range entries {
		pkg, ok := pkgs[e.Pkg]
		if !ok {
			var err error
			if pkg, err = imp.Import(e.Pkg); err != nil {
				errs.Add(errors.NewWith(err, `imp.Import(e.Pkg)`, -2, "types.Importer.Import", e.Pkg))
				continue
			}
			pkgs[e.Pkg] = pkg
		}
		if err := checkEntry(pkg, e); err != nil {
			errs.Add(err)
		}
	}
	return errs.ToError()
}

func qualifier(pkg *types.Package) string {
	return pkg.Name()
}

func checkEntry(pkg *types.Package, e *Entry) error {
	fn, ok := pkg.Scope().Lookup(e.Func).(*types.Func)
	if !ok {
		return fmt.Errorf("%s: %s.%s not found", e.Name, pkg.Name(), e.Func)
	}
	sig := fn.Type().(*types.Signature)
	params := sig.Params()
	if params.Len() != len(e.Params) {
		return fmt.Errorf("%s: %s takes %d parameters, expected %d", e.Name, e.Func, params.Len(), len(e.Params))
	}
	for i, p := range e.Params {
		if got := types.TypeString(params.At(i).Type(), qualifier); got != p.Type.GoType() {
			return fmt.Errorf("%s: parameter %s of %s is %s, expected %s", e.Name, p.Name, e.Func, got, p.Type.GoType())
		}
	}
	results := sig.Results()
	if e.Result.IsVoid() {
		if results.Len() != 0 {
			return fmt.Errorf("%s: %s returns a value, expected none", e.Name, e.Func)
		}
		return nil
	}
	if results.Len() != 1 {
		return fmt.Errorf("%s: %s returns %d values, expected 1", e.Name, e.Func, results.Len())
	}
	if got := types.TypeString(results.At(0).Type(), qualifier); got != e.Result.GoType() {
		return fmt.Errorf("%s: %s returns %s, expected %s", e.Name, e.Func, got, e.Result.GoType())
	}
	return nil
}
