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

package mapper

import (
	"errors"
	"fmt"
	"io"
	"os"

	"dirpx.dev/apierr/code"
	"gopkg.in/yaml.v3"
)

// ErrConfigInvalid is returned for structurally invalid mapper configs.
var ErrConfigInvalid = errors.New("mapper: invalid config")

// Config is the YAML form of the mapper options:
//
//	fallback:
//	  http: 500
//	  grpc: 13
//	categories:
//	  availability: {http: 503, grpc: 14}
//	codes:
//	  - code: unauthorized_ip   # name or number
//	    http: 403
//	    grpc: 7
//	    override: true
//	prefixes:
//	  - code: 108
//	    reason: delivery_service
//	    http: 504
//
// Zero statuses mean "not set".
type Config struct {
	Fallback   *Statuses                  `yaml:"fallback"`
	Categories map[code.Category]Statuses `yaml:"categories"`
	Codes      []CodeRule                 `yaml:"codes"`
	Prefixes   []PrefixRule               `yaml:"prefixes"`
}

// Statuses is an HTTP/gRPC pair.
type Statuses struct {
	HTTP int `yaml:"http"`
	GRPC int `yaml:"grpc"`
}

// CodeRule changes the statuses of a single code. With Override set the
// rule also wins over prefix rules.
type CodeRule struct {
	Code     code.Code `yaml:"code"`
	HTTP     int       `yaml:"http"`
	GRPC     int       `yaml:"grpc"`
	Override bool      `yaml:"override"`
}

// PrefixRule maps a reason prefix of a code.
type PrefixRule struct {
	Code   code.Code `yaml:"code"`
	Reason string    `yaml:"reason"`
	HTTP   int       `yaml:"http"`
	GRPC   int       `yaml:"grpc"`
}

// ParseConfig decodes YAML into options for New.
func ParseConfig(data []byte) ([]Option, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return cfg.Options()
}

// LoadConfig reads YAML from r and decodes it into options for New.
func LoadConfig(r io.Reader) ([]Option, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mapper: read config: %w", err)
	}
	return ParseConfig(data)
}

// LoadConfigFile is LoadConfig for a file path.
func LoadConfigFile(path string) ([]Option, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapper: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Options converts the config into mapper options.
func (cfg Config) Options() ([]Option, error) {
	var opts []Option
	if cfg.Fallback != nil {
		opts = append(opts, WithFallback(cfg.Fallback.HTTP, cfg.Fallback.GRPC))
	}
	for cat, st := range cfg.Categories {
		if !knownCategory(cat) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrConfigInvalid, cat)
		}
		if st.HTTP != 0 {
			opts = append(opts, WithHTTPCategory(cat, st.HTTP))
		}
		if st.GRPC != 0 {
			opts = append(opts, WithGRPCCategory(cat, st.GRPC))
		}
	}
	for i, r := range cfg.Codes {
		if r.Code == code.Unclassified {
			return nil, fmt.Errorf("%w: codes[%d]: missing code", ErrConfigInvalid, i)
		}
		switch {
		case r.Override:
			if r.HTTP != 0 {
				opts = append(opts, WithHTTPOverride(r.Code, r.HTTP))
			}
			if r.GRPC != 0 {
				opts = append(opts, WithGRPCOverride(r.Code, r.GRPC))
			}
		default:
			if r.HTTP != 0 {
				opts = append(opts, WithHTTPDefault(r.Code, r.HTTP))
			}
			if r.GRPC != 0 {
				opts = append(opts, WithGRPCDefault(r.Code, r.GRPC))
			}
		}
	}
	for i, r := range cfg.Prefixes {
		if r.Code == code.Unclassified || r.Reason == "" {
			return nil, fmt.Errorf("%w: prefixes[%d]: code and reason are required", ErrConfigInvalid, i)
		}
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPPrefix(r.Code, r.Reason, r.HTTP))
		}
		if r.GRPC != 0 {
			opts = append(opts, WithGRPCPrefix(r.Code, r.Reason, r.GRPC))
		}
	}
	return opts, nil
}

func knownCategory(c code.Category) bool {
	for _, k := range code.Categories() {
		if k == c {
			return true
		}
	}
	return false
}
