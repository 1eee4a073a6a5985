package main

import "github.com/RonaldoArSan/clinicflow25-sub001/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
