// FILE: example/gnet/main.go
package main

import (
	"github.com/fernlog/log"
	"github.com/fernlog/log/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := log.NewBuilder().
		Name("gnet").
		LevelString("debug").
		FlushOn(log.LevelError).
		EnableFile(true).
		Directory("/var/log/gnet").
		FileName("echo.log").
		Rotation("hourly").
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Flush()

	gnetAdapter := compat.NewGnetAdapter(logger)

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
