package main

import (
	"github/chapool/eth-payout/cmd"
)

func main() {
	cmd.Execute()
}
