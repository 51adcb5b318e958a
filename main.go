package main

import "github.com/ariatools/aria-chart-tools/cmd"

func main() {
	cmd.Execute()
}
