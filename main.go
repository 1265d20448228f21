/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/selfdiscover/cmd"
	"github.com/josephgoksu/selfdiscover/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
