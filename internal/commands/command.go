package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/tasksift/internal/filter"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeDelete Type = "rm"
	TypeFilter Type = "filter"
	TypeMode   Type = "mode"
	TypeClear  Type = "clear"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Raw string
}

type TargetArgs struct {
	ID string
}

type FilterArgs struct {
	Expr string
}

type ModeArgs struct {
	Mode filter.Mode
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Target *TargetArgs
	Filter *FilterArgs
	Mode   *ModeArgs
}

// Parse reads one palette line such as "add !Buy milk" or "filter ?@milk".
// A leading slash is optional. The argument text of add and filter is kept
// verbatim apart from the single separating space.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	switch Type(strings.ToLower(head)) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeToggle, "done":
		return parseTarget(input, TypeToggle, rest)
	case TypeDelete, "delete":
		return parseTarget(input, TypeDelete, rest)
	case TypeFilter:
		return Command{Type: TypeFilter, Raw: input, Filter: &FilterArgs{Expr: rest}}, nil
	case TypeMode:
		return parseMode(input, rest)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	if strings.TrimSpace(rest) == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a label"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Raw: rest}}, nil
}

func parseTarget(raw string, typ Type, rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one task id", typ)}
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{ID: fields[0]}}, nil
}

func parseMode(raw, rest string) (Command, error) {
	mode := filter.Mode(strings.ToLower(strings.TrimSpace(rest)))
	if !mode.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "mode must be structured or sigil"}
	}
	return Command{Type: TypeMode, Raw: raw, Mode: &ModeArgs{Mode: mode}}, nil
}
