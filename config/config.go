/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"bytes"
	"io"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"

	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/httpx"
	"dirpx.dev/outcome/mapper"
	"dirpx.dev/outcome/problem"
)

// ErrInvalidConfig is wrapped by every validation and decoding error.
var ErrInvalidConfig = errors.New(errors.CodeInvalidConfig, "config: invalid configuration")

// Config is the decoded configuration file.
type Config struct {
	Problem Problem `yaml:"problem"`
	Status  Status  `yaml:"status"`
	Trace   Trace   `yaml:"trace"`
}

// Problem configures problem documents.
type Problem struct {
	BaseURI string `yaml:"base_uri"`
}

// Status configures the category status tables. Entries override the
// built-in mappings.
type Status struct {
	HTTP         map[string]int `yaml:"http"`
	GRPC         map[string]int `yaml:"grpc"`
	FallbackHTTP int            `yaml:"fallback_http"`
}

// Trace configures trace id extraction at the HTTP boundary.
type Trace struct {
	Header string `yaml:"header"`
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "config: read %s", path)
	}
	return Parse(data)
}

// Parse decodes a single YAML document and validates it. Unknown fields and
// multiple documents are rejected. Empty input yields the zero Config.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, invalid(err, "config: decode")
	}

	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, invalid(nil, "config: multiple YAML documents are not allowed")
	} else if !errors.Is(err, io.EOF) {
		return nil, invalid(err, "config: decode")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the base URI, the category names and every status.
func (c *Config) Validate() error {
	if s := strings.TrimSpace(c.Problem.BaseURI); s != "" {
		u, err := url.Parse(s)
		if err != nil || !u.IsAbs() {
			return invalid(err, "config: problem.base_uri must be an absolute URI")
		}
	}
	for name, v := range c.Status.HTTP {
		if _, err := category.Parse(name); err != nil {
			return invalid(err, "config: status.http: invalid category "+strconv.Quote(name))
		}
		if v < 100 || v > 599 {
			return invalid(nil, "config: status.http."+name+": status must be within 100..599")
		}
	}
	for name, v := range c.Status.GRPC {
		if _, err := category.Parse(name); err != nil {
			return invalid(err, "config: status.grpc: invalid category "+strconv.Quote(name))
		}
		if v < 0 || v > 16 {
			return invalid(nil, "config: status.grpc."+name+": code must be within 0..16")
		}
	}
	if v := c.Status.FallbackHTTP; v != 0 && (v < 100 || v > 599) {
		return invalid(nil, "config: status.fallback_http must be within 100..599")
	}
	return nil
}

// MapperOptions returns the mapper options described by the status
// section, in a deterministic order. It assumes c is valid.
func (c *Config) MapperOptions() []mapper.Option {
	var opts []mapper.Option
	for _, name := range sortedKeys(c.Status.HTTP) {
		opts = append(opts, mapper.WithHTTPOverride(category.MustParse(name), c.Status.HTTP[name]))
	}
	for _, name := range sortedKeys(c.Status.GRPC) {
		opts = append(opts, mapper.WithGRPCOverride(category.MustParse(name), c.Status.GRPC[name]))
	}
	if c.Status.FallbackHTTP != 0 {
		opts = append(opts, mapper.WithFallbackHTTP(c.Status.FallbackHTTP))
	}
	return opts
}

// BuilderOptions returns the problem builder options described by the
// problem section, bound to resolver.
func (c *Config) BuilderOptions(resolver *mapper.Resolver) []problem.Option {
	opts := []problem.Option{problem.WithResolver(resolver)}
	if s := strings.TrimSpace(c.Problem.BaseURI); s != "" {
		opts = append(opts, problem.WithBaseURI(s))
	}
	return opts
}

// TraceHeader returns the configured trace header, or
// httpx.DefaultTraceHeader.
func (c *Config) TraceHeader() string {
	if h := strings.TrimSpace(c.Trace.Header); h != "" {
		return h
	}
	return httpx.DefaultTraceHeader
}

// Handler validates c and assembles the HTTP boundary it describes.
// Options in opts are applied after the configured trace header.
func (c *Config) Handler(opts ...httpx.HandlerOption) (*httpx.Handler, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m, err := mapper.New(c.MapperOptions()...)
	if err != nil {
		return nil, invalid(err, "config: status tables")
	}
	r := mapper.NewResolver(m)
	d, err := httpx.NewDispatcher(problem.NewBuilder(c.BuilderOptions(r)...), r)
	if err != nil {
		return nil, err
	}
	opts = append([]httpx.HandlerOption{httpx.WithTraceHeader(c.TraceHeader())}, opts...)
	return httpx.NewHandler(d, opts...)
}

// invalid wraps cause (or ErrInvalidConfig itself) with msg. The result
// always matches ErrInvalidConfig.
func invalid(cause error, msg string) error {
	if cause == nil {
		return errors.Wrap(ErrInvalidConfig, errors.CodeInvalidConfig, msg)
	}
	return errors.Wrap(&chain{cause: cause}, errors.CodeInvalidConfig, msg)
}

// chain links a cause to ErrInvalidConfig so both match errors.Is.
type chain struct{ cause error }

func (c *chain) Error() string   { return c.cause.Error() }
func (c *chain) Unwrap() []error { return []error{c.cause, ErrInvalidConfig} }

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
