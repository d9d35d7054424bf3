package launcher

import (
	"os"
	"os/exec"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gridnode.dev/launcher/internal/node"
	"gridnode.dev/launcher/pkg/eventemitter"
)

// StartedEvent is emitted once the server process has been spawned.
type StartedEvent struct {
	Pid int
}

// ExitedEvent is emitted once the server process has terminated.
type ExitedEvent struct {
	ExitCode int
}

// Launcher spawns the node server process. Factory and reload modes are
// always enabled on the invocation it builds; nothing in the launcher can
// turn them off.
type Launcher struct {
	serverCommand string
	serverApp     string

	// Event emitters
	StartedEventEmitter *eventemitter.EventEmitter
	ExitedEventEmitter  *eventemitter.EventEmitter
}

func NewLauncher(serverCommand string, serverApp string) (instance *Launcher) {
	instance = &Launcher{
		serverCommand:       serverCommand,
		serverApp:           serverApp,
		StartedEventEmitter: &eventemitter.EventEmitter{},
		ExitedEventEmitter:  &eventemitter.EventEmitter{},
	}
	return
}

// Command returns the argv of the server-start invocation for the given
// node configuration.
func (launcher *Launcher) Command(configuration node.Configuration) []string {
	return []string{
		launcher.serverCommand,
		launcher.serverApp,
		"--factory",
		"--reload",
		"--host", configuration.Host,
		"--port", strconv.Itoa(configuration.Port),
	}
}

// Environ returns the environment block for the server process: the node
// variables appended to the inherited environment, which stays visible to
// the child untouched.
func (launcher *Launcher) Environ(configuration node.Configuration) []string {
	return append(os.Environ(), configuration.Environ()...)
}

// Process is a spawned, not yet awaited server process.
type Process struct {
	command  *exec.Cmd
	launcher *Launcher
}

// Start spawns the server process in the foreground, wired to the launcher
// standard streams. It does not wait: callers record the returned process
// and call Wait to block until the server exits.
func (launcher *Launcher) Start(configuration node.Configuration) (process *Process, err error) {
	argv := launcher.Command(configuration)
	log.Infof("Starting node %s on %s:%d", configuration.Name, configuration.Host, configuration.Port)
	log.Debugf("Server invocation: %v", argv)

	command := exec.Command(argv[0], argv[1:]...)
	command.Env = launcher.Environ(configuration)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err = command.Start(); err != nil {
		return
	}
	process = &Process{
		command:  command,
		launcher: launcher,
	}
	launcher.StartedEventEmitter.Emit(StartedEvent{Pid: command.Process.Pid})
	return
}

func (process *Process) Pid() int {
	return process.command.Process.Pid
}

// Wait blocks until the server process exits and returns its exit code.
// A failed bind is not retried: the server's own error output has already
// reached stderr and its exit code is handed back as-is.
func (process *Process) Wait() int {
	exitCode := 0
	if err := process.command.Wait(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			exitCode = exitError.ExitCode()
		} else {
			log.Errorf("%+v", err)
			exitCode = 1
		}
	}
	process.launcher.ExitedEventEmitter.Emit(ExitedEvent{ExitCode: exitCode})
	return exitCode
}
