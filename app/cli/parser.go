package cli

import (
	"fmt"
	"regexp"
	"strings"
)

// ArgDef defines the structure for an expected positional argument.
type ArgDef struct {
	Name        string // e.g., "command"
	Description string // Help text for the argument
	Required    bool   // Whether the argument is mandatory
}

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g., "search")
	ShortName   string // Short name (e.g., "s"), empty if none
	Description string // Help text for the flag
	HasValue    bool   // Whether the flag expects a value (true for --flag=v, false for --flag)
	Required    bool   // Whether the flag is mandatory
}

// CommandArgs holds structured information about one command invocation.
type CommandArgs struct {
	RawArgs     []string          // Positional args exactly as given
	CommandName string            // The command being run (e.g., "render")
	Variables   []string          // Positional arguments before "--"
	Extra       []string          // Arguments after "--", passed through verbatim
	Flags       map[string]string // Flags with values (e.g., --search=scan -> map["search"]="scan")
	BoolFlags   map[string]bool   // Boolean flags (e.g., --copy -> map["copy"]=true)
}

// Assignments is the result of ParseAssignments.
type Assignments struct {
	Values     map[string]string // name=value pairs
	Positional []string          // arguments that are not assignments
	Errors     []error           // malformed or repeated assignments
}

var paramName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// SplitDash separates args at the position reported by cobra's ArgsLenAtDash.
// A negative position means no "--" was given.
func SplitDash(args []string, dashAt int) (before, after []string) {
	before = make([]string, 0, len(args))
	after = make([]string, 0)
	if dashAt < 0 || dashAt > len(args) {
		return append(before, args...), after
	}
	before = append(before, args[:dashAt]...)
	after = append(after, args[dashAt:]...)
	return before, after
}

// ParseAssignments splits variables into name=value placeholder assignments
// and plain positional arguments. A word containing "=" whose left side is
// not a valid placeholder name is reported as an error, as is a name given
// more than once.
func ParseAssignments(variables []string) Assignments {
	parsed := Assignments{
		Values:     make(map[string]string),
		Positional: make([]string, 0),
		Errors:     make([]error, 0),
	}

	for _, arg := range variables {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			parsed.Positional = append(parsed.Positional, arg)
			continue
		}
		name = strings.TrimSpace(name)
		if !paramName.MatchString(name) {
			parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid parameter %q: expected name=value", arg))
			continue
		}
		if _, exists := parsed.Values[name]; exists {
			parsed.Errors = append(parsed.Errors, fmt.Errorf("parameter provided more than once: %s", name))
			continue
		}
		parsed.Values[name] = value
	}

	return parsed
}
