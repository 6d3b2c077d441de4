package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/sunfmin/mcp-go-divide/pkg/config"
)

// assertOutput fails with a unified diff when got differs from want
func assertOutput(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("Failed to diff output: %v", err)
	}
	t.Errorf("Unexpected output:\n%s", diff)
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns its stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetOut(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDemoOutput(t *testing.T) {
	var out bytes.Buffer
	if err := runDemo(&out, false, -1); err != nil {
		t.Fatalf("runDemo failed: %v", err)
	}

	want := `10 / 2 => success: 5
10 / 0 => failure: DIVISION_BY_ZERO: Cannot divide by zero (dividend=10, divisor=0)
-10 / 2 => success: -5
10 / 3 => success: 3.3333333333333335
`
	assertOutput(t, want, out.String())
}

func TestDemoCommandJSON(t *testing.T) {
	got, err := execute(t, "demo", "--json")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	want := `{"success":true,"data":5}
{"success":false,"error":{"code":"DIVISION_BY_ZERO","message":"Cannot divide by zero","details":{"dividend":10,"divisor":0}}}
{"success":true,"data":-5}
{"success":true,"data":3.3333333333333335}
`
	assertOutput(t, want, got)
}

func TestDemoCommandPrecision(t *testing.T) {
	got, err := execute(t, "demo", "--precision", "4")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	want := `10 / 2 => success: 5.0000
10 / 0 => failure: DIVISION_BY_ZERO: Cannot divide by zero (dividend=10.0000, divisor=0.0000)
-10 / 2 => success: -5.0000
10 / 3 => success: 3.3333
`
	assertOutput(t, want, got)
}

func TestDivideCommand(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		want       string
		wantFailed bool
	}{
		{"success", []string{"divide", "10", "2"}, "success: 5\n", false},
		{"negative", []string{"divide", "--", "-10", "2"}, "success: -5\n", false},
		{
			"by zero",
			[]string{"divide", "--json", "10", "0"},
			`{"success":false,"error":{"code":"DIVISION_BY_ZERO","message":"Cannot divide by zero","details":{"dividend":10,"divisor":0}}}` + "\n",
			true,
		},
		{
			"invalid input",
			[]string{"divide", "ten", "2"},
			"failure: INVALID_INPUT: invalid dividend \"ten\": not a number\n",
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := execute(t, tc.args...)
			if tc.wantFailed != errors.Is(err, errFailedOutcome) {
				t.Fatalf("error = %v, wantFailed %v", err, tc.wantFailed)
			}
			if !tc.wantFailed && err != nil {
				t.Fatalf("divide failed: %v", err)
			}
			assertOutput(t, tc.want, got)
		})
	}
}

func TestDivideCommandRequiresTwoArgs(t *testing.T) {
	if _, err := execute(t, "divide", "10"); err == nil {
		t.Errorf("divide with one argument succeeded")
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(got, "mcp-go-divide "+Version+"\n") {
		t.Errorf("Unexpected version output: %q", got)
	}
}
