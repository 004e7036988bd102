// Command defargs generates default and named argument wrappers for Go
// functions and structs.
package main

import "github.com/mouse-blink/defargs/cmd"

func main() {
	cmd.Execute()
}
