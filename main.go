package main

import (
	"github.com/tomekjarosik/wordcount/pkg/cmd"
)

func main() {
	cmd.Execute(cmd.InitializeCommands())
}
