package main

import "chipadmin/cmd/client/cmd"

func main() {
	cmd.Execute()
}
