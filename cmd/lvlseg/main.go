// Command lvlseg segments weighted graphs and stores problems and runs.
package main

import "github.com/katalvlaran/lvlseg/cmd/lvlseg/commands"

func main() {
	commands.Execute()
}
