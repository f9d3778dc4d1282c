// cmd/grnascan/main.go
package main

import (
	"grnascan/internal/app"
	"grnascan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
