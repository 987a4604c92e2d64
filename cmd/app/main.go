package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"dispatch/cmd"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/treatment"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	app := cmd.NewCompositionRoot(configs, os.Stdout, logger)
	if err := runManifest(context.Background(), app); err != nil {
		log.Fatalf("dispatch failed: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Error loading .env file: %v", err)
		}
		log.Warnf("No .env file found, using process environment")
	}

	return cmd.Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		NoColor:  parseNoColor(os.Getenv("NO_COLOR")),
	}
}

// parseNoColor treats an unset NO_COLOR as false and warns about values
// strconv.ParseBool cannot read.
func parseNoColor(value string) bool {
	if value == "" {
		return false
	}
	noColor, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("Invalid NO_COLOR value %q, colors stay enabled", value)
		return false
	}
	return noColor
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// runManifest sends the day's orders through the office.
func runManifest(ctx context.Context, app cmd.CompositionRoot) error {
	single := app.CreateProcessTreatmentCommandHandler()
	bundle := app.CreateProcessBundleCommandHandler()

	comarca, err := order.NewInternationalOrder("Comarca", 100)
	if err != nil {
		return err
	}
	mordor, err := order.NewInternationalOrder("Mordor", 100)
	if err != nil {
		return err
	}
	dagger, err := order.NewHazardousOrder("Cima de los vientos", "No urgarse en las uñas con este puñal")
	if err != nil {
		return err
	}
	ring, err := order.NewHazardousOrder("Monte del destino", treatment.ForbiddenInstruction)
	if err != nil {
		return err
	}

	var cmds []commands.ProcessTreatmentCommand
	for _, o := range []*order.InternationalOrder{comarca, mordor} {
		t, err := treatment.NewInternationalTreatment(o)
		if err != nil {
			return err
		}
		c, err := commands.NewProcessTreatmentCommand(t)
		if err != nil {
			return err
		}
		cmds = append(cmds, c)
	}
	for _, o := range []*order.HazardousOrder{dagger, ring} {
		t, err := treatment.NewHazardousTreatment(o)
		if err != nil {
			return err
		}
		c, err := commands.NewProcessTreatmentCommand(t)
		if err != nil {
			return err
		}
		cmds = append(cmds, c)
	}

	for _, c := range cmds {
		if _, err := single.Handle(ctx, c); err != nil {
			return err
		}
	}

	var nationals []order.Order
	for _, d := range []string{"Gondor", "Minas Tirith", "Rohan"} {
		o, err := order.NewNationalOrder(d, 10)
		if err != nil {
			return err
		}
		nationals = append(nationals, o)
	}
	mt, err := treatment.NewMultipleTreatment(nationals...)
	if err != nil {
		return err
	}
	bc, err := commands.NewProcessBundleCommand(mt)
	if err != nil {
		return err
	}
	_, err = bundle.Handle(ctx, bc)
	return err
}
