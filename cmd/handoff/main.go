package main

import "github.com/vanpelt/handoff/internal/cmd"

func main() {
	cmd.Execute()
}
