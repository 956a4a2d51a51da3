// FILE: cmd/rotate/main.go
// Small demo that writes a line every few seconds so the hourly sink can be
// watched rotating across a real boundary.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fernlog/log"
)

func main() {
	dir := "./logs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(err)
	}

	sink, err := log.NewHourlyFileSink(dir+"/rotate.log", log.WithForceFlush(true))
	if err != nil {
		panic(err)
	}
	defer sink.Close()

	logger := log.New("rotate", sink, log.StdoutSink())

	for i := 0; ; i++ {
		logger.Infof("tick %d writing to %s", i, sink.CurrentFileName())
		fmt.Println("current file:", sink.CurrentFileName())
		time.Sleep(5 * time.Second)
	}
}
