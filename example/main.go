// FILE: lixenwraith/appconfig/example/main.go

// Example program: remembers its window position between runs.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/lixenwraith/appconfig"
)

// Settings is the persisted application state.
type Settings struct {
	WindowPos [2]uint32 `toml:"window_pos"`
	Recent    []string  `toml:"recent_files"`
}

// Default implements appconfig.Defaulter.
func (Settings) Default() Settings {
	return Settings{WindowPos: [2]uint32{320, 280}}
}

func main() {
	x := flag.Uint("x", 0, "move the window to this x position")
	y := flag.Uint("y", 0, "move the window to this y position")
	open := flag.String("open", "", "record a recently opened file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	settings := appconfig.NewValue(Settings{}.Default())
	manager, err := appconfig.NewBuilder(settings, "myapp", "sumibi-yakitori").
		WithLogger(logger).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	// Saves whatever the program changed, even when nothing called Save
	defer manager.Close()

	if err := manager.Load(); err != nil {
		log.Fatal(err)
	}

	path, _ := manager.Path()
	current := settings.Get()
	logger.Info("settings loaded",
		zap.String("path", path),
		zap.Uint32s("window_pos", current.WindowPos[:]),
		zap.Strings("recent_files", current.Recent))

	settings.Update(func(s *Settings) {
		if *x != 0 || *y != 0 {
			s.WindowPos = [2]uint32{uint32(*x), uint32(*y)}
		}
		if *open != "" {
			s.Recent = append([]string{*open}, s.Recent...)
			if len(s.Recent) > 5 {
				s.Recent = s.Recent[:5]
			}
		}
	})
}
