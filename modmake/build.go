package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	textscreenVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	for _, name := range []string{"obfuscate", "bacon"} {
		app := NewAppBuild(name, "cmd/"+name, textscreenVersion)
		app.Build(func(gb *GoBuild) {
			gb.
				StripDebugSymbols().
				SetVariable("main", "version", textscreenVersion).
				CgoEnabled(false)
		})
		app.Variant("windows", "amd64")
		app.Variant("linux", "amd64")
		app.Variant("linux", "arm64")
		app.Variant("darwin", "amd64")
		app.Variant("darwin", "arm64")
		b.ImportApp(app)
	}

	b.Execute()
}
