// Package main содержит точку входа CLI songfactory.
//
// Пакет только передаёт информацию о версии и дате сборки в CLI-слой.
package main

import "github.com/IvanChernomyrdin/go-songfactory/internal/cli"

var (
	// buildVersion задаётся при сборке через -ldflags. По умолчанию "dev".
	buildVersion = "dev"
	// buildDate — дата сборки. По умолчанию "unknown".
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
