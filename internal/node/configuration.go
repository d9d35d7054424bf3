package node

import "strconv"

// The listen host is fixed: launched nodes always bind every interface.
const Host = "0.0.0.0"

// Default node settings, applied for every flag the command line omits.
const (
	DefaultPort      = 9694
	DefaultName      = "testing-node"
	DefaultProcesses = 1
	DefaultReset     = false
	DefaultLocalDB   = true
	DefaultNodeType  = "domain"
	DefaultSideType  = "high"
)

// Configuration identifies the node to launch. It is built once from the
// command line, handed to the launcher as an argument and never stored in
// process-wide state.
type Configuration struct {
	Host      string
	Port      int
	Name      string
	Processes int
	Reset     bool
	LocalDB   bool
	NodeType  string
	SideType  string
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Host:      Host,
		Port:      DefaultPort,
		Name:      DefaultName,
		Processes: DefaultProcesses,
		Reset:     DefaultReset,
		LocalDB:   DefaultLocalDB,
		NodeType:  DefaultNodeType,
		SideType:  DefaultSideType,
	}
}

// Environ returns the variables the server process reads to assume the node
// identity, in KEY=value form ready to append to the inherited environment.
// Booleans are rendered True/False, the convention the server expects.
func (configuration Configuration) Environ() []string {
	return []string{
		"NODE_NAME=" + configuration.Name,
		"PROCESSES=" + strconv.Itoa(configuration.Processes),
		"RESET=" + formatBool(configuration.Reset),
		"LOCAL_DB=" + formatBool(configuration.LocalDB),
		"NODE_TYPE=" + configuration.NodeType,
		"NODE_SIDE_TYPE=" + configuration.SideType,
	}
}

func formatBool(value bool) string {
	if value {
		return "True"
	}
	return "False"
}
