// Package irgen compiles native sample sources to textual LLVM IR with
// clang. Outputs are cached by the CRC32 of each source and by the clang
// version, so only changed samples are recompiled.
package irgen

import (
	"bytes"
	"hash/crc32"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/qiniu/x/errors"
)

const (
	DbgFlagExecCmd = 1 << iota
	DbgFlagAll     = DbgFlagExecCmd
)

var (
	debugExecCmd bool
)

func SetDebug(flags int) {
	debugExecCmd = (flags & DbgFlagExecCmd) != 0
}

const (
	HashesFile = "hashes.json"
	ConfigFile = "irgen.cfg"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// -----------------------------------------------------------------------------

type Config struct {
	Compiler    string   `json:"cc"` // default: clang
	Flags       []string `json:"flags"`
	IncludeDirs []string `json:"include"`
	Defines     []string `json:"define"`

	// BaseDir resolves relative include directories. Defaults to the
	// directory being generated.
	BaseDir string `json:"-"`

	// Force ignores hashes.json and recompiles every source.
	Force bool `json:"-"`
}

// DefaultFlags precede Config.Flags on every compile. They keep value
// names and full debug info in the IR and silence warnings.
var DefaultFlags = []string{"-g", "-fno-discard-value-names", "-fstandalone-debug", "-w"}

func (p *Config) compiler() string {
	if p == nil || p.Compiler == "" {
		return "clang"
	}
	return p.Compiler
}

// LoadConfig reads dir/irgen.cfg. A missing file yields an empty Config.
func LoadConfig(dir string) (conf *Config, err error) {
	conf = new(Config)
	file := filepath.Join(dir, ConfigFile)
	b, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return nil, errors.NewWith(err, `os.ReadFile(file)`, -2, "os.ReadFile", file)
	}
	if err = json.Unmarshal(b, conf); err != nil {
		return nil, errors.NewWith(err, `json.Unmarshal(b, conf)`, -2, "json.Unmarshal", file)
	}
	return
}

func canonical(baseDir string, uri string) string {
	if filepath.IsAbs(uri) {
		return filepath.Clean(uri)
	}
	return filepath.Join(baseDir, uri)
}

// -----------------------------------------------------------------------------

// ClangVersion returns the trimmed output of `<compiler> --version`.
func ClangVersion(conf *Config) (string, error) {
	compiler := conf.compiler()
	out, err := exec.Command(compiler, "--version").Output()
	if err != nil {
		return "", errors.NewWith(err, `exec.Command(compiler, "--version").Output()`, -2, "exec.Command", compiler)
	}
	return strings.TrimSpace(string(out)), nil
}

// EmitIR compiles infile to textual IR at outfile and strips the target
// lines from the result.
func EmitIR(infile, outfile string, conf *Config) (err error) {
	if conf == nil {
		conf = new(Config)
	}
	base := conf.BaseDir
	if base == "" {
		base = filepath.Dir(infile)
	}
	args := make([]string, 0, len(DefaultFlags)+len(conf.Flags)+len(conf.Defines)+len(conf.IncludeDirs)+5)
	args = append(args, DefaultFlags...)
	args = append(args, conf.Flags...)
	args = append(args, "-S", "-emit-llvm", "-o", outfile)
	for _, def := range conf.Defines {
		args = append(args, "-D"+def)
	}
	for _, inc := range conf.IncludeDirs {
		args = append(args, "-I"+canonical(base, inc))
	}
	args = append(args, infile)
	compiler := conf.compiler()
	if debugExecCmd {
		log.Println("==> runCmd:", compiler, args)
	}
	var stderr bytes.Buffer
	cmd := exec.Command(compiler, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			err = errors.New(stderr.String())
		}
		return errors.NewWith(err, `cmd.Run()`, -2, "(*exec.Cmd).Run", compiler, infile)
	}
	if stderr.Len() > 0 {
		os.Stderr.Write(stderr.Bytes())
	}
	data, err := os.ReadFile(outfile)
	if err != nil {
		return errors.NewWith(err, `os.ReadFile(outfile)`, -2, "os.ReadFile", outfile)
	}
	return os.WriteFile(outfile, StripTarget(data, filepath.Base(infile)), 0666)
}

var targetPrefixes = [...]string{
	"; ModuleID = ",
	"source_filename = ",
	"target datalayout = ",
	"target triple = ",
}

// StripTarget drops the module id, datalayout and triple lines that clang
// writes at the top of a module and replaces them with a source_filename
// line naming only the base file name. Input not starting with those four
// lines is returned unchanged.
func StripTarget(data []byte, filename string) []byte {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) <= len(targetPrefixes) {
		return data
	}
	for i, prefix := range targetPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			return data
		}
	}
	lines[len(targetPrefixes)-1] = `source_filename = "` + filename + `"`
	return []byte(strings.Join(lines[len(targetPrefixes)-1:], "\n") + "\n")
}

// -----------------------------------------------------------------------------

// HashFile is the content of hashes.json.
type HashFile struct {
	ClangVersionInfo string
	Hashes           map[string]uint32
}

func loadHashes(file, version string) map[string]uint32 {
	b, err := os.ReadFile(file)
	if err != nil {
		return make(map[string]uint32)
	}
	var hf HashFile
	if err = json.Unmarshal(b, &hf); err != nil || hf.Hashes == nil || hf.ClangVersionInfo != version {
		return make(map[string]uint32)
	}
	return hf.Hashes
}

func isSource(name string) bool {
	switch filepath.Ext(name) {
	case ".c", ".cpp", ".cc":
		return true
	}
	return false
}

// IRFile returns the path of the IR file generated for src.
func IRFile(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".ll"
}

// Generate compiles every C/C++ source directly in dir whose content, IR
// file or compiler version changed since the last run, or every source
// when conf.Force is set. It returns the sources it compiled, relative
// to dir.
func Generate(dir string, conf *Config) (processed []string, err error) {
	if conf == nil {
		if conf, err = LoadConfig(dir); err != nil {
			return
		}
	}
	if conf.BaseDir == "" {
		c := *conf
		c.BaseDir = dir
		conf = &c
	}
	version, err := ClangVersion(conf)
	if err != nil {
		return
	}
	hashFile := filepath.Join(dir, HashesFile)
	hashes := make(map[string]uint32)
	if !conf.Force {
		hashes = loadHashes(hashFile, version)
	}
	for name := range hashes {
		if _, e := os.Stat(filepath.Join(dir, name)); e != nil {
			delete(hashes, name)
		}
	}

	fis, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewWith(err, `os.ReadDir(dir)`, -2, "os.ReadDir", dir)
	}
	var names []string
	for _, fi := range fis {
		if !fi.IsDir() && isSource(fi.Name()) {
			names = append(names, fi.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		src := filepath.Join(dir, name)
		b, e := os.ReadFile(src)
		if e != nil {
			return processed, errors.NewWith(e, `os.ReadFile(src)`, -2, "os.ReadFile", src)
		}
		hash := crc32.ChecksumIEEE(b)
		irFile := IRFile(src)
		if old, ok := hashes[name]; ok && old == hash {
			if _, e = os.Stat(irFile); e == nil {
				continue
			}
		}
		if debugExecCmd {
			log.Println("==> Processing", src)
		}
		if err = EmitIR(src, irFile, conf); err != nil {
			return
		}
		hashes[name] = hash
		processed = append(processed, name)
	}

	b, err := json.MarshalIndent(&HashFile{ClangVersionInfo: version, Hashes: hashes}, "", "  ")
	if err != nil {
		return
	}
	if err = os.WriteFile(hashFile, b, 0666); err != nil {
		err = errors.NewWith(err, `os.WriteFile(hashFile, b, 0666)`, -2, "os.WriteFile", hashFile)
	}
	return
}

// -----------------------------------------------------------------------------
