package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/govalues/bigdecimal"
)

func execute(args ...string) (stdout, stderr string, err error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestCommands(t *testing.T) {
	operandFile := writeFile(t, "operands.txt", "1.5:2.25\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"add", "--plain", "1.5", "2.25"}, "3.75\n"},
		{"sub", []string{"sub", "--plain", "100", "1"}, "99\n"},
		{"mul", []string{"mul", "--plain", "123456789", "987654321"}, "121932631112635269\n"},
		{"div", []string{"div", "--plain", "-p", "10", "22", "7"}, "3.1428571428\n"},
		{"div default", []string{"div", "--plain", "1", "3"}, "0.3333333333\n"},
		{"mod", []string{"mod", "--plain", "--", "-22.5", "7"}, "-1.5\n"},
		{"pow", []string{"pow", "--plain", "1.5", "3"}, "3.375\n"},
		{"pow scale", []string{"pow", "--plain", "2", "10.00"}, "1024\n"},
		{"pow real", []string{"pow", "--plain", "--real", "-p", "10", "2", "0.5"}, "1.4142135623\n"},
		{"pow negative", []string{"pow", "--plain", "--real", "-p", "5", "--", "-2", "-2"}, "0.25\n"},
		{"exp", []string{"exp", "--plain", "--precision", "10", "1"}, "2.7182818284\n"},
		{"ln", []string{"ln", "--plain", "--precision", "10", "2"}, "0.6931471805\n"},
		{"file", []string{"add", "--plain", "--file", operandFile}, "3.75\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute(tt.args...)
			if err != nil {
				t.Fatalf("execute(%q) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("execute(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	operandFile := writeFile(t, "operands.txt", "1:2")
	badFile := writeFile(t, "bad.txt", "12345")

	tests := map[string]struct {
		args    []string
		wantErr error
	}{
		"division by zero": {[]string{"div", "1", "0"}, bigdecimal.ErrDivisionByZero},
		"modulo by zero":   {[]string{"mod", "1", "0"}, bigdecimal.ErrModuloByZero},
		"domain":           {[]string{"ln", "--", "-1"}, bigdecimal.ErrDomain},
		"literal":          {[]string{"add", "x", "1"}, bigdecimal.ErrInvalidDecimal},
		"precision":        {[]string{"exp", "--precision", "0", "1"}, bigdecimal.ErrPrecisionRange},
		"power domain":     {[]string{"pow", "--real", "--", "-2", "0.5"}, bigdecimal.ErrDomain},
		"fractional power": {[]string{"pow", "2", "0.5"}, nil},
		"negative power":   {[]string{"pow", "--", "2", "-1"}, nil},
		"missing operand":  {[]string{"add", "1"}, nil},
		"extra operand":    {[]string{"add", "1", "2", "3"}, nil},
		"file and args":    {[]string{"add", "--file", operandFile, "1", "2"}, nil},
		"unary file":       {[]string{"exp", "--file", operandFile, "1"}, nil},
		"bad file":         {[]string{"add", "--file", badFile}, nil},
		"missing config":   {[]string{"add", "--config", filepath.Join(t.TempDir(), "missing.toml"), "1", "2"}, nil},
	}

	for name, tt := range tests {
		_, _, err := execute(tt.args...)
		if err == nil {
			t.Errorf("%v: execute(%q) did not fail", name, tt.args)
			continue
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("%v: execute(%q) error = %v, want %v", name, tt.args, err, tt.wantErr)
		}
	}
}

func TestCommands_Config(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		args    []string
		want    string
	}{
		{
			name:    "toml precision",
			file:    "specter.toml",
			content: "[engine]\nprecision = 3\n\n[output]\nplain = true\n",
			args:    []string{"div", "1", "3"},
			want:    "0.333\n",
		},
		{
			name:    "flag overrides config",
			file:    "specter.toml",
			content: "[engine]\nprecision = 3\n\n[output]\nplain = true\n",
			args:    []string{"div", "-p", "5", "1", "3"},
			want:    "0.33333\n",
		},
		{
			name:    "yaml engine",
			file:    "specter.yaml",
			content: "engine:\n  precision: 4\n  karatsuba_cutoff: 4\noutput:\n  plain: true\n",
			args:    []string{"mul", "99999999", "99999999"},
			want:    "9999999800000001\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			got, _, err := execute(append([]string{"--config", path}, tt.args...)...)
			if err != nil {
				t.Fatalf("execute(%q) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("execute(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestCommands_Styled(t *testing.T) {
	got, _, err := execute("add", "1", "2")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("execute() printed %d lines, want 2: %q", len(lines), got)
	}
	if !strings.Contains(lines[0], "Result:") || !strings.HasSuffix(lines[0], " 3") {
		t.Errorf("result line = %q, want label and value", lines[0])
	}
	if !strings.Contains(lines[1], "Delay:") {
		t.Errorf("delay line = %q, want elapsed time", lines[1])
	}
}

func TestCommands_Verbose(t *testing.T) {
	_, stderr, err := execute("--verbose", "--plain", "add", "1", "2")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, want := range []string{"level=DEBUG", "msg=engine", "msg=computed", "operation=add"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr = %q, want it to contain %q", stderr, want)
		}
	}

	_, stderr, err = execute("--plain", "add", "1", "2")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want no debug records without --verbose", stderr)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, bigdecimal.ErrDivisionByZero)
	if got, want := buf.String(), "Error: division by zero\n"; got != want {
		t.Errorf("printError() wrote %q, want %q", got, want)
	}
}
