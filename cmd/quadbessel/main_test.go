// Copyright 2025 go-quadmath Authors
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

package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestJ1Command(t *testing.T) {
	out, err := runCommand(t, "j1", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "0.44005058574493351595968220371891") {
		t.Errorf("j1 1 printed %q", out)
	}
}

func TestY1Command(t *testing.T) {
	out, err := runCommand(t, "y1", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "-0.7812128213002887165471500000479") {
		t.Errorf("y1 1 printed %q", out)
	}
}

func TestDigitsFlag(t *testing.T) {
	out, err := runCommand(t, "j1", "--digits", "8", "1")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "0.44005059" {
		t.Errorf("j1 --digits 8 printed %q", out)
	}
}

func TestBadArgument(t *testing.T) {
	if _, err := runCommand(t, "j1", "pretzel"); err == nil {
		t.Error("bad argument accepted")
	}
}
