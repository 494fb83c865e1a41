package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/superanimalrun/save"
)

func main() {
	startLevel := flag.Int("level", 1, "level a new game starts on")
	seed := flag.Uint64("seed", 0, "level generation seed (0 = time based)")
	tuningPath := flag.String("tuning", "", "yaml file overriding the built-in tuning")
	watch := flag.Bool("watch", false, "reload the tuning file and difficulty script when they change")
	mute := flag.Bool("mute", false, "disable sound effects")
	appName := flag.String("app", "superanimalrun", "save data application name")
	flag.Parse()

	var store save.Store
	if gs, err := save.OpenGdata(*appName); err != nil {
		log.Printf("%v (progress will not persist)", err)
	} else {
		store = gs
	}

	app, err := NewApp(AppConfig{
		StartLevel: *startLevel,
		Seed:       *seed,
		TuningPath: *tuningPath,
		Watch:      *watch,
		Mute:       *mute,
		Store:      store,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(app.ScreenSize())
	ebiten.SetWindowTitle("Super Animal Run")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
