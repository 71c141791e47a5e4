// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config defines the go_fixedlayout configuration file.
//
// Configuration files are YAML, or TOML when the file name ends in ".toml".
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/module"
	yaml "gopkg.in/yaml.v2"
)

// Config is the configuration for a generate invocation. Any field may be
// overridden by the corresponding command line flag.
type Config struct {
	// Package is the package name for the generated file.
	Package string `yaml:"package" toml:"package"`

	// Output is the generated file.
	Output string `yaml:"output" toml:"output"`

	// OutputTest is the generated test file.
	OutputTest string `yaml:"output_test" toml:"output_test"`

	// DeclarationPackage is the import path of the package declaring the
	// types, for external generated tests.
	DeclarationPackage string `yaml:"declaration_package" toml:"declaration_package"`

	// Imports are extra packages to import in generated code.
	Imports []string `yaml:"imports" toml:"imports"`

	// Exclude is a list of regular expressions. Inputs matching any of
	// them are not processed.
	Exclude []string `yaml:"exclude" toml:"exclude"`

	// excludes is the compiled form of Exclude.
	excludes []*regexp.Regexp
}

// Merge merges other into c. Scalar values in other replace those in c when
// set; lists are appended.
func (c *Config) Merge(other *Config) {
	if other.Package != "" {
		c.Package = other.Package
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.OutputTest != "" {
		c.OutputTest = other.OutputTest
	}
	if other.DeclarationPackage != "" {
		c.DeclarationPackage = other.DeclarationPackage
	}
	c.Imports = append(c.Imports, other.Imports...)
	c.Exclude = append(c.Exclude, other.Exclude...)
}

// Compile validates the configuration and compiles all regular expressions.
// It must be called before ShouldProcess.
func (c *Config) Compile() error {
	c.excludes = c.excludes[:0]
	for _, e := range c.Exclude {
		r, err := regexp.Compile(e)
		if err != nil {
			return fmt.Errorf("exclude %q: %w", e, err)
		}
		c.excludes = append(c.excludes, r)
	}
	for _, i := range c.Imports {
		if err := module.CheckImportPath(i); err != nil {
			return fmt.Errorf("import %q: %w", i, err)
		}
	}
	if c.DeclarationPackage != "" {
		if err := module.CheckImportPath(c.DeclarationPackage); err != nil {
			return fmt.Errorf("declaration_package %q: %w", c.DeclarationPackage, err)
		}
	}
	return nil
}

// ShouldProcess returns true if the input file is not excluded.
func (c *Config) ShouldProcess(filename string) bool {
	for _, r := range c.excludes {
		if r.MatchString(filename) {
			return false
		}
	}
	return true
}

// Filter returns the inputs that should be processed, in order.
func (c *Config) Filter(inputs []string) []string {
	var out []string
	for _, i := range inputs {
		if c.ShouldProcess(i) {
			out = append(out, i)
		}
	}
	return out
}

// Load loads a single configuration file. Unknown keys are an error.
func Load(filename string) (*Config, error) {
	if filepath.Ext(filename) == ".toml" {
		return loadTOML(filename)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open config: %w", err)
	}
	defer f.Close()
	var c Config
	dec := yaml.NewDecoder(f)
	dec.SetStrict(true)
	// An empty file is an empty configuration.
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode %q: %w", filename, err)
	}
	return &c, nil
}

// LoadAll loads and merges configuration files in order, then compiles the
// result. With no files, the result is an empty, compiled configuration.
func LoadAll(filenames []string) (*Config, error) {
	c := &Config{}
	for _, filename := range filenames {
		next, err := Load(filename)
		if err != nil {
			return nil, err
		}
		c.Merge(next)
	}
	if err := c.Compile(); err != nil {
		return nil, fmt.Errorf("error compiling config: %w", err)
	}
	return c, nil
}

func loadTOML(filename string) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(filename, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %q: %w", filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unable to decode %q: unknown keys %s", filename, strings.Join(keys, ", "))
	}
	return &c, nil
}
