// FILE: example/simple/main.go
package main

import (
	"github.com/fernlog/log"
)

func main() {
	// Package-level logger writes to stdout at info level
	log.Info("starting up")
	log.Debug("this is below the default threshold and is dropped")

	// A named logger with console and hourly rotating file output
	logger, err := log.NewBuilder().
		Name("app").
		LevelString("debug").
		FlushOn(log.LevelWarn).
		EnableFile(true).
		Directory("./logs").
		FileName("app.log").
		Build()
	if err != nil {
		panic(err)
	}

	logger.Debug("connected", "attempt", 1)
	logger.Infof("listening on %s", ":8080")
	logger.Warn("disk usage above 80%")

	logger.Flush()
}
