package main

import (
	"log/slog"
	"os"

	"ringbmp/render"

	"github.com/alecthomas/kong"
)

type cli struct {
	Render render.RenderCmd `cmd:"" help:"Render concentric colored rings to a 24-bit bitmap file"`
	Info   render.InfoCmd   `cmd:"" help:"Show the dimensions and format of an image file"`
}

func main() {
	var cmds cli
	kctx := kong.Parse(&cmds,
		kong.Name("ringbmp"),
		kong.Description("Concentric-ring bitmap renderer"),
	)

	if err := kctx.Run(); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
