package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"kb-color/system/keyboard"
	"kb-color/system/persist"

	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Compile time injected variables
var (
	Version = "v0.0.0-dev"
)

const logFileName = "kb-color.log"

func usage(flags *pflag.FlagSet) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage:\n"+
			"  kb-color --color <color> [--brightness <0-100>]\n"+
			"  kb-color --brightness <0-100>\n"+
			"  kb-color --list\n"+
			"\nFlags:\n%s"+
			"\nColors: red, green, yellow, blue, orange, purple, white\n",
			flags.FlagUsages())
	}
}

func main() {

	flags := pflag.NewFlagSet("kb-color", pflag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	colorName := flags.StringP("color", "c", "", "target color name")
	brightness := flags.IntP("brightness", "b", -1, "brightness percentage (0-100)")
	version := flags.Bool("version", false, "print version and exit")
	flags.Usage = usage(flags)

	if len(os.Args) < 2 {
		flags.Usage()
		os.Exit(1)
	}

	// --list short-circuits everything else: no state, no device
	if os.Args[1] == "--list" {
		for _, name := range keyboard.ColorNames() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if *version {
		fmt.Printf("kb-color version: %s\n", Version)
		os.Exit(0)
	}

	// validate arguments before touching any hardware
	var targetColor keyboard.Color
	if flags.Changed("color") {
		c, err := keyboard.ColorFromName(*colorName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		targetColor = c
	}
	if flags.Changed("brightness") {
		if *brightness < keyboard.BrightnessMin || *brightness > keyboard.BrightnessMax {
			fmt.Fprintf(os.Stderr, "Brightness must be %d-%d\n", keyboard.BrightnessMin, keyboard.BrightnessMax)
			os.Exit(1)
		}
	}

	// diagnostics go to a rotating log file so stdout/stderr stay clean for
	// scripting; KB_COLOR_DEBUG routes them to stderr instead
	if os.Getenv("KB_COLOR_DEBUG") == "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   filepath.Join(persist.ConfigDir(), logFileName),
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     7,
		})
	}

	log.Printf("kb-color version: %s\n", Version)

	dryRun := os.Getenv("DRY_RUN") != ""
	if dryRun {
		log.Printf("[dry run] no hardware i/o will be performed")
	}

	kbCtrl, err := keyboard.NewControl(keyboard.Config{
		DryRun: dryRun,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var config persist.ConfigRegistry
	if dryRun {
		config, _ = persist.NewDryFileConfigHelper()
	} else {
		config, _ = persist.NewFileConfigHelper()
	}
	config.Register(kbCtrl)
	config.Load()

	// layer the requested changes over the persisted state
	if !flags.Changed("color") {
		targetColor = kbCtrl.Color()
	}
	targetBrightness := kbCtrl.Brightness()
	if flags.Changed("brightness") {
		targetBrightness = uint8(*brightness)
	}

	if err := kbCtrl.Set(targetColor, targetBrightness); err != nil {
		log.Printf("%s\n", err)
		fmt.Fprintln(os.Stderr, "Failed. Try running as root or check udev rules.")
		os.Exit(1)
	}

	// the hardware change already happened; a failed save only costs the
	// remembered default on the next run
	config.Save()

	fmt.Printf("OK: color=%s brightness=%d%%\n", targetColor, targetBrightness)
}
