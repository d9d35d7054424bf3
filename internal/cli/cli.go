package cli

import (
	"fmt"
	"strconv"

	"gridnode.dev/launcher/internal/node"
)

// ExitError is a command line error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (exitError *ExitError) Error() string {
	return exitError.Message
}

// Assignment functions for every recognized option. Running the sequence
// in argument order gives the last occurrence of a repeated option.
var assignments = map[string]func(*node.Configuration, string) error{
	"--port": func(configuration *node.Configuration, value string) (err error) {
		configuration.Port, err = strconv.Atoi(value)
		return
	},
	"--name": func(configuration *node.Configuration, value string) error {
		configuration.Name = value
		return nil
	},
	"--processes": func(configuration *node.Configuration, value string) (err error) {
		configuration.Processes, err = strconv.Atoi(value)
		return
	},
	"--reset": func(configuration *node.Configuration, value string) (err error) {
		configuration.Reset, err = parseBool(value)
		return
	},
	"--local_db": func(configuration *node.Configuration, value string) (err error) {
		configuration.LocalDB, err = parseBool(value)
		return
	},
	"--node_type": func(configuration *node.Configuration, value string) error {
		configuration.NodeType = value
		return nil
	},
	"--node_side_type": func(configuration *node.Configuration, value string) error {
		configuration.SideType = value
		return nil
	},
}

// Parse reads the launcher command line and returns a fully populated node
// configuration, with defaults applied for every option the arguments omit.
// Any token found where an option name is expected that is not a recognized
// option fails with exit code 1 before anything is launched, as does a
// recognized option missing its value or carrying an unparsable one.
func Parse(args []string) (node.Configuration, error) {
	configuration := node.DefaultConfiguration()
	for index := 0; index < len(args); index += 2 {
		option := args[index]
		assign, recognized := assignments[option]
		if !recognized {
			return configuration, &ExitError{Code: 1, Message: fmt.Sprintf("Invalid option: %s", option)}
		}
		if index+1 >= len(args) {
			return configuration, &ExitError{Code: 1, Message: fmt.Sprintf("Missing value for option: %s", option)}
		}
		if err := assign(&configuration, args[index+1]); err != nil {
			return configuration, &ExitError{Code: 1, Message: fmt.Sprintf("Invalid value for option %s: %s", option, args[index+1])}
		}
	}
	return configuration, nil
}

// parseBool accepts the True/False spelling used by the server environment
// besides the usual Go forms.
func parseBool(value string) (bool, error) {
	switch value {
	case "True":
		return true, nil
	case "False":
		return false, nil
	}
	return strconv.ParseBool(value)
}
