package main

import (
	"os"

	"github.com/MKhiriev/go-miscord/internal/cli"
	"github.com/MKhiriev/go-miscord/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(cli.Run(os.Args[1:], models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
}
