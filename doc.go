/*
The gridnode launcher starts a grid node server from the command line.

It parses a fixed set of node flags, exports the node identity to the server
process environment and spawns the server bound to the configured host and
port, with factory and reload modes always enabled. The child exit code
becomes the launcher exit code.

The project has two main source folders:
`internal`: Private application and library code.
`pkg`: Library code that's ok to use by external applications

Apart from these folders the tests create a `test` folder next to the
packages that need filesystem fixtures.
*/
package main
