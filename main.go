package main

import (
	"github.com/mj1618/pass-autotype/cmd"

	// Platform backends register themselves with internal/platform.
	_ "github.com/mj1618/pass-autotype/internal/platform/darwin"
	_ "github.com/mj1618/pass-autotype/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
