package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/dugun-dev/dugun/internal/config"
	"github.com/dugun-dev/dugun/internal/router"
	"github.com/dugun-dev/dugun/internal/setup"
)

func main() {
	log.SetFlags(log.Lshortfile)

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()
	cfg := config.MustLoad(configFolder)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = strconv.Itoa(cfg.Public.Server.Port)
	}

	log.Print("Server started on :" + httpPort)
	log.Fatal(http.ListenAndServe(":"+httpPort, r))
}
