package cmdargs

// NewCommand creates and returns a new Command object. This function takes
// variadic ConfigureCommandFunc functions to customize the created command.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}
	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// Set is a helper config function that allows setting multiple configuration
// functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithName sets the name for the command. The name is used to identify the
// command and invoke it from the command line.
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithCommandAliases adds alternative names under which the command
// resolves. Aliases participate in prefix matching like names do.
func WithCommandAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Aliases = append(command.Aliases, aliases...)
	}
}

// WithCallback sets the callback function for the command. This function is
// run when the command gets executed.
func WithCallback(callback CommandFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.Callback = callback
	}
}

// WithCommandDescription sets the description for the command. This
// description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// SetCommandHidden removes the command from the visible command list. A
// hidden command still resolves and executes.
func SetCommandHidden(hidden bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.Hidden = hidden
	}
}

// WithSetup sets the function declaring the command's arguments on the
// parser built for it at dispatch time.
func WithSetup(setup func(p *Parser) error) ConfigureCommandFunc {
	return func(command *Command) {
		command.Setup = setup
	}
}

// WithSubcommands function takes a list of subcommands and associates them
// with a command.
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		command.Subcommands = append(command.Subcommands, subcommands...)
	}
}
