package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/consoletris/consoletris/internal/engine"
)

func main() {
	debug := flag.Bool("debug", false, "write a debug log to the temp dir")
	seed := flag.Uint64("seed", 0, "seed for the piece sequence (0 picks one at random)")
	theme := flag.String("theme", "", "color theme")
	fps := flag.Int("fps", 0, "frames per second")
	sound := flag.Bool("sound", true, "play sound effects")
	music := flag.String("music", "", "mp3 file to loop while playing")
	envFile := flag.String("env", ".env", "dotenv file with CONSOLETRIS_* settings")
	flag.Parse()

	if *debug {
		closeLog, err := EnableDebugLogging(debugLogPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		} else {
			defer closeLog()
		}
	}

	config := loadSettings(*envFile)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			config.Theme = *theme
		case "fps":
			config.FPS = *fps
		case "sound":
			config.Sound = *sound
		case "music":
			config.MusicPath = *music
			config.Music = *music != ""
		}
	})
	config = config.normalize()
	debugLog.Info("consoletris start", "theme", config.Theme, "fps", config.FPS, "sound", config.Sound, "music", config.Music)

	var opts []engine.Option
	if *seed != 0 {
		opts = append(opts, engine.WithSeed(*seed))
	}
	sounds, player := setupAudio(config)
	model := NewModel(config, engine.New(opts...), sounds, player)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	player.Stop()
	if err != nil {
		debugLog.Error("program error", "err", err)
		fmt.Fprintf(os.Stderr, "consoletris: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(Model); ok {
		if s, over := m.Final(); over {
			fmt.Print(finalReport(s))
		}
	}
}

// loadSettings layers the config file, the .env file and CONSOLETRIS_*
// variables. Problems are logged and fall back to defaults.
func loadSettings(envFile string) Config {
	if err := loadEnvFile(envFile); err != nil {
		debugLog.Warn("env file ignored", "path", envFile, "err", err)
	}
	config := defaultConfig()
	path, err := configPath()
	if err != nil {
		debugLog.Warn("no config dir", "err", err)
	} else {
		loaded, exists, err := loadConfig(path)
		switch {
		case err != nil:
			debugLog.Warn("config ignored", "path", path, "err", err)
		case !exists:
			if err := saveConfig(path, loaded); err != nil {
				debugLog.Warn("write default config", "path", path, "err", err)
			}
		default:
			config = loaded
		}
	}
	config, invalid := applyEnv(config)
	for _, name := range invalid {
		debugLog.Warn("invalid env value ignored", "var", name)
	}
	return config
}

func setupAudio(config Config) (*SoundEngine, *MusicPlayer) {
	wantMusic := config.Music && config.MusicPath != ""
	if !config.Sound && !wantMusic {
		return nil, nil
	}
	ctx, err := initAudioContext()
	if err != nil {
		debugLog.Warn("audio unavailable", "err", err)
		return nil, nil
	}
	volume := volumeFromPercent(config.Volume)
	sounds := NewSoundEngine(ctx, audioSampleRate, config.Sound)
	sounds.SetVolume(volume)
	var player *MusicPlayer
	if wantMusic {
		player = NewMusicPlayer(ctx, config.MusicPath, volume)
	}
	return sounds, player
}
