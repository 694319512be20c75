// Command weave is the Weave language interpreter's entry point.
package main

import "github.com/weaveland/weave/cmd/weave/cmd"

func main() {
	cmd.Execute()
}
