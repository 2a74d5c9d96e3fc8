package main

import "clubhub/cmd/clubhub-cli/cmd"

func main() {
	cmd.Execute()
}
