package main

import "sdkmanager/internal/cli"

func main() {
	cli.Execute()
}
