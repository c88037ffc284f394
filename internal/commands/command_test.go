package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/tasksift/internal/filter"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add !Buy milk", TypeAdd},
		{"toggle 01HX", TypeToggle},
		{"done 01HX", TypeToggle},
		{"rm 01HX", TypeDelete},
		{"delete 01HX", TypeDelete},
		{"filter ?@milk", TypeFilter},
		{"mode structured", TypeMode},
		{"CLEAR", TypeClear},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseKeepsArgumentText(t *testing.T) {
	cmd, err := Parse("add *Fix  the bug")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Raw != "*Fix  the bug" {
		t.Fatalf("unexpected add text: %q", cmd.Add.Raw)
	}

	cmd, err = Parse("filter #Buy milk")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Filter.Expr != "#Buy milk" {
		t.Fatalf("unexpected filter expr: %q", cmd.Filter.Expr)
	}

	cmd, err = Parse("filter")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Filter.Expr != "" {
		t.Fatalf("expected empty filter expr, got %q", cmd.Filter.Expr)
	}

	cmd, err = Parse("mode SIGIL")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Mode.Mode != filter.ModeSigil {
		t.Fatalf("unexpected mode: %q", cmd.Mode.Mode)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"  /  ", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add   ", ErrCodeInvalidArgument},
		{"toggle", ErrCodeInvalidArgument},
		{"rm a b", ErrCodeInvalidArgument},
		{"mode fuzzy", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Raw != "write docs" {
				t.Fatalf("unexpected raw: %q", a.Raw)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	for _, in := range []string{"toggle x", "rm x", "filter @", "mode sigil", "clear"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		_, err = Execute(cmd, Handlers{})
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
			t.Fatalf("%q: expected missing handler error, got %v", in, err)
		}
	}
}
