package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/milk9111/gamepadview/theme"
)

// themecheck validates theme files and prints the resolved palette.
func main() {
	quiet := flag.Bool("q", false, "only report errors")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: themecheck [-q] theme.yaml...")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		th, err := theme.Load(path)
		if err != nil {
			log.Print(err)
			failed = true
			continue
		}
		if *quiet {
			continue
		}
		fmt.Printf("%s:\n", path)
		printColor("background", th.Background)
		printColor("neutral", th.Neutral)
		printColor("highlight", th.Highlight)
		printColor("pressure", th.Pressure)
		printColor("stick_ring", th.StickRing)
		printColor("ink", th.Ink)
		printColor("square", th.Square)
		printColor("triangle", th.Triangle)
		printColor("circle", th.Circle)
		printColor("cross", th.Cross)
		printColor("hud", th.HUD)
		printColor("hud_text", th.HUDText)
		printColor("hud_button", th.HUDButton)
		printColor("hud_button_hover", th.HUDHover)
	}

	if failed {
		os.Exit(1)
	}
}

func printColor(name string, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	fmt.Printf("  %-16s #%02x%02x%02x%02x\n", name, n.R, n.G, n.B, n.A)
}
