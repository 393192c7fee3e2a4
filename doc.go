// File: lixenwraith/appconfig/doc.go

// Package appconfig persists an application settings value to a per-user
// configuration file and reloads it on startup.
//
// The file lives at:
//
//	<config root>/com.<organization>.<app>/app_config.toml
//
// where the config root follows platform conventions:
//
//	Linux   $XDG_CONFIG_HOME, or $HOME/.config
//	macOS   $HOME/Library/Application Support
//	Windows FOLDERID_LocalAppData (C:\Users\Alice\AppData\Local)
//
// Features:
//   - Any struct or map that TOML can represent, named by `toml` tags
//   - JSON and YAML formats driven by the same tags
//   - Shared settings handle: every holder sees what Load reads
//   - Auto-recovery: missing or broken files fall back to defaults
//   - Auto-saving: Close writes the current value
//   - Atomic file replacement on save
//   - Optional reload on external edits (Watch)
//
// Quick Start:
//
//	type Settings struct {
//	    WindowPos [2]uint32 `toml:"window_pos"`
//	}
//
//	func (Settings) Default() Settings {
//	    return Settings{WindowPos: [2]uint32{320, 280}}
//	}
//
//	settings := appconfig.NewValue(Settings{}.Default())
//	m, err := appconfig.Open(settings, "myapp", "sumibi-yakitori")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close() // saves on exit
//
//	settings.Update(func(s *Settings) { s.WindowPos = [2]uint32{640, 480} })
//
// Load policy:
// With auto-recovery enabled (the default), Load never fails because of the
// file itself: a missing, unreadable, or malformed file resets the value to
// its defaults. Only failures to resolve or create the config directory are
// returned. With auto-recovery disabled, Load returns ErrConfigNotFound, the
// I/O error, or ErrDecode and leaves the value unchanged.
//
// Defaults come from the function set with SetDefaults or WithDefaults, then
// from T's Default method when T implements Defaulter, then the zero value.
//
// Concurrency:
// The settings value is guarded by the Value handle. Multiple managers or
// processes writing the same file are not coordinated.
package appconfig
