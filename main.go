package main

import (
	"github.com/whoamihappyhacking/tgstat/cmd/tgstat"
)

func main() {
	tgstat.Execute()
}
