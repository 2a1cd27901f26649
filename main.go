package main

import (
	"slotbook/core/logger"
	"slotbook/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
