package main

import "github.com/creativeprojects/imapresp/cmd"

// set by goreleaser
var (
	version = "0.1.0-dev"
	commit  = ""
	date    = ""
	builtBy = ""
)

func main() {
	cmd.SetApp(version, commit, date, builtBy)
	cmd.Execute()
}
