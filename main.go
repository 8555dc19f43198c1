package main

import "sales-reconciler/cmd"

func main() {
	cmd.Execute()
}
