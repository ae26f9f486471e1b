package main

import (
	cmd "github.com/Evgeniy156/AI-Intelligroup-ZHKH/cmd/zhkh"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting AI-помощник ЖКХ")
	cmd.Execute()
}
