package main

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	configureLogging()

	plain := flag.Bool("plain", false, "line-oriented interface without interactive prompts")
	fen := flag.String("fen", "", "start from this position instead of the standard setup")
	flag.Parse()

	if *plain || envBool("CHECKERS_PLAIN") {
		if err := cliLoop(os.Stdin, os.Stdout, *fen); err != nil {
			log.Fatal().Err(err).Msg("session failed")
		}
		return
	}
	if err := interactiveLoop(*fen); err != nil {
		log.Fatal().Err(err).Msg("session failed")
	}
}

// configureLogging routes the global logger through a console writer on
// stderr, keeping stdout clean for the board. CHECKERS_LOG_LEVEL picks the
// level; the default is info.
func configureLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if v := os.Getenv("CHECKERS_LOG_LEVEL"); v != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			log.Warn().Str("level", v).Msg("unknown CHECKERS_LOG_LEVEL, using info")
			return
		}
		zerolog.SetGlobalLevel(lvl)
	}
}

func envBool(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}
