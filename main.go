// @title Klopp - a Public Tweeter
// @version 1.0
// @description Public message board: post a short tweet with a display name and read every tweet, newest first.
// @BasePath /

package main

import (
	"os"

	"klopp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
