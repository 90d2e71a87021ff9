package main

import (
	"fmt"
	"sort"
	"text/tabwriter"
)

const (
	appName    = "luckydraw"
	confirmYes = "yes"
)

// Command interface that all devtool commands must implement
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// newRegistry registers every devtool command against e
func newRegistry(e *env) *Registry {
	r := NewRegistry()
	r.Register(&WaitForDBCommand{env: e})
	r.Register(&SetupCommand{env: e})
	r.Register(&ResetCommand{env: e})
	r.Register(&MigrateCommand{env: e})
	r.Register(&SeedCommand{env: e})
	r.Register(&ImportCommand{env: e})
	r.Register(&ExportCommand{env: e})
	r.Register(&DrawCommand{env: e})
	r.Register(&StatsCommand{env: e})
	return r
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered commands
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp() {
	fmt.Fprintln(out, "Usage: devtool <command> [args...]")
	fmt.Fprintln(out, "\nAvailable Commands:")

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, cmd := range r.List() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), cmd.Description())
	}
	tw.Flush()
}
