package main

import "github.com/theirongolddev/coopcost/cmd"

func main() {
	cmd.Execute()
}
