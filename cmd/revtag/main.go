// cmd/revtag/main.go
package main

import (
	"github.com/clintval/revtag/internal/app"
	"github.com/clintval/revtag/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
