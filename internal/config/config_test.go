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
	"errors"
	"testing"

	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/format"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{As: "array", Format: "none", ServerMessage: apis.DefaultServerMessage, LogLevel: "warn"}
	if *cfg != want {
		t.Fatalf("Load() = %+v, want %+v", *cfg, want)
	}
	if cfg.FormatOptions() != format.Defaults() {
		t.Fatalf("FormatOptions() = %+v", cfg.FormatOptions())
	}
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	t.Setenv("FIELDERRORS_AS", "string")
	t.Setenv("FIELDERRORS_FORMAT", "Sentence_Case")
	t.Setenv("FIELDERRORS_SERVER_MESSAGE", "Something went wrong")

	cfg, err := Load(map[string]string{KeyFormat: "lowercase", KeyLogLevel: "", KeyServerMessage: ""})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{As: "string", Format: "lowercase", ServerMessage: "Something went wrong", LogLevel: "warn"}
	if *cfg != want {
		t.Fatalf("Load() = %+v, want %+v", *cfg, want)
	}

	t.Setenv("FIELDERRORS_FORMAT", "sentence case")
	cfg, err = Load(nil)
	if err != nil || cfg.Format != "sentence-case" {
		t.Fatalf("Load() = %+v, %v", cfg, err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{"shape", map[string]string{KeyAs: "table"}},
		{"case", map[string]string{KeyFormat: "title"}},
		{"log level", map[string]string{KeyLogLevel: "loud"}},
		{"blank server message", map[string]string{KeyServerMessage: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.overrides); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Load(%v) error = %v, want ErrInvalid", tt.overrides, err)
			}
		})
	}
}
