package main

import (
	"github.com/kaansat/groundstation/pkg/cli/sh"
	"github.com/kaansat/groundstation/pkg/station"
)

//go-build: CGO_ENABLED=0

func init() {
	station.SetupFlags()
}

func main() {
	sh.Main()
}
