package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

func main() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var flags cli
	ctx := kong.Parse(&flags,
		kong.Name("setcalc"),
		kong.Description("Evaluates set algebra over integer sets written as 1,2,3 or @name."),
		kong.UsageOnError(),
	)

	level := zerolog.InfoLevel
	if flags.Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()

	e, err := newEnv(flags.Globals, os.Stdout)
	if err == nil {
		log.Debug().Str("command", ctx.Command()).Bool("sorted", e.sorted).Msg("Run command")
		err = ctx.Run(e)
	}
	if err != nil {
		log.Fatal().Stack().Err(err).Str("command", ctx.Command()).Msg("setcalc")
	}
}
