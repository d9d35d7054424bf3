package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"gridnode.dev/launcher/internal/cli"
	"gridnode.dev/launcher/internal/configloader"
	"gridnode.dev/launcher/internal/entity"
	"gridnode.dev/launcher/internal/launcher"
	"gridnode.dev/launcher/internal/registry"
	"gridnode.dev/launcher/internal/registry/delegate/sqlite"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "gridnode"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Loading launcher settings; the node flags come from the command line only
	settings, err := configloader.LoadConfiguration(APPLICATION_NAME, os.Getenv("LAUNCHER_CONFIG"))
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}

	// Set log level
	logrus.SetLevel(level)

	bi, ok := debug.ReadBuildInfo()
	if ok {
		logrus.Debug("Launching gridnode v.", bi.Main.Version)
	}

	configuration, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitError, ok := err.(*cli.ExitError); ok {
			return exitError.Code
		}
		return 1
	}

	launcherEngine := launcher.NewLauncher(settings.ServerCommand, settings.ServerApp)
	launcherEngine.StartedEventEmitter.Subscribe(func(event interface{}) {
		logrus.Infof("Node %s running with PID %d", configuration.Name, event.(launcher.StartedEvent).Pid)
	})
	launcherEngine.ExitedEventEmitter.Subscribe(func(event interface{}) {
		logrus.Infof("Node %s exited with code %d", configuration.Name, event.(launcher.ExitedEvent).ExitCode)
	})

	// The local registry is bookkeeping: its failures are logged, never fatal
	var nodeRegistry *registry.Registry
	if configuration.LocalDB {
		nodeRegistry = registry.NewRegistry(&sqlite.SQLiteDelegate{BasePath: settings.StoragePath})
		if err := nodeRegistry.Open(); err != nil {
			logrus.Errorf("%+v", err)
			nodeRegistry = nil
		} else {
			defer nodeRegistry.Close()
			if configuration.Reset {
				if err := nodeRegistry.Reset(); err != nil {
					logrus.Errorf("%+v", err)
				}
			}
		}
	}

	process, err := launcherEngine.Start(configuration)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}

	var record *entity.Node
	if nodeRegistry != nil {
		if record, err = nodeRegistry.RecordStart(configuration, process.Pid()); err != nil {
			logrus.Errorf("%+v", err)
		}
	}

	exitCode := process.Wait()

	if nodeRegistry != nil && record != nil {
		if err := nodeRegistry.RecordExit(record, exitCode); err != nil {
			logrus.Errorf("%+v", err)
		}
	}
	return exitCode
}
