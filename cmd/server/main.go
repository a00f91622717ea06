package main

import (
	"fundgraph/internal/server"
	"fundgraph/internal/util"
	"fundgraph/pkg/logger"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)
	logger.Init(debug)

	server.Init()
}
