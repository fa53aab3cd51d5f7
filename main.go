package main

import (
	"flag"

	"github.com/joshuarp/gnoss-api-wrapper/internal/app"
)

var defaultBin string

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: resources|thesaurus|notifications|massiveload (default: all)")
	flag.Parse()

	app.New(*bin, app.ModulesFor(*bin)...).Run()
}
