package main

import "github.com/jonandersen/stocksearch/cmd"

func main() {
	cmd.Execute()
}
