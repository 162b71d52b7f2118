package main

import (
	"embed"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/cmd"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

func main() {
	cmd.Execute(cmd.Build{
		Version:   version,
		Templates: templatesFiles,
		Static:    staticFiles,
	})
}
