package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
)

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after
// fs.Parse(args[1:]) succeeds. Registering a name twice replaces the first.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered subcommand names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage writes one line per subcommand to w.
func (r *Registry) Usage(w io.Writer) {
	for _, name := range r.Names() {
		fmt.Fprintf(w, "  %-8s %s\n", name, r.cmds[name].Summary)
	}
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run()
}
