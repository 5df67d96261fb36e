package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"kidclock/internal/core/clock"
	"kidclock/internal/core/model"
	"kidclock/internal/core/timekeeper"
	"kidclock/internal/platform"
	"kidclock/internal/render"
	"kidclock/internal/speech"
	"kidclock/internal/storage"
	"kidclock/internal/ui/clockface"
	"kidclock/internal/words"
	"kidclock/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const appName = "kidclock"

var modeLabels = map[string]model.DisplayMode{
	"Simple clock":  model.ModeSimple,
	"Nice clock":    model.ModeNice,
	"Digital clock": model.ModeDigital,
}

func main() {
	lock, err := platform.LockApp(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = lock.Unlock()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	store := &prefs{settings: settings}

	fyneApp := app.NewWithID("org.kidclock.app")
	fyneApp.SetIcon(resources.Background())
	window := fyneApp.NewWindow("What Time Is It?")
	window.Resize(fyne.NewSize(640, 640))

	palette := model.DefaultPalette()
	keeper := timekeeper.New(clock.System{}, timekeeper.Config{TickInterval: time.Second})
	keeper.SetDisplayMode(settings.Mode)

	engine := render.NewEngine(palette)
	faceWidget := clockface.New(keeper, engine, resources.Background())

	writer := words.NewWriter()
	speaker := speech.NewSpeaker()
	inhibitor := platform.NewInhibitor()

	timeLine := container.NewHBox()
	timeLine.Hide()
	dateLine := container.NewHBox(dateObjects(time.Now(), palette)...)
	if !settings.WriteDate {
		dateLine.Hide()
	}

	saveSettings := func(snapshot model.Settings) {
		if err := storage.SaveSettings(appName, snapshot); err != nil {
			log.Printf("save settings: %v", err)
		}
	}

	// Writing and speaking happen off the tick path. The worker runs on
	// its own goroutine, so it consumes a snapshot of the toggles rather
	// than the live settings the UI thread mutates.
	writeAndSpeak := func(sayItAloud bool) {
		current := store.snapshot()
		if !current.WriteTime && !current.SpeakTime {
			return
		}
		go func() {
			moment := keeper.Time()
			segments := writer.TimeSegments(moment.Hour(), moment.Minute())
			fyne.Do(func() {
				timeLine.Objects = timeObjects(segments, palette)
				timeLine.Refresh()
			})
			if current.SpeakTime && sayItAloud {
				sentence := writer.WriteTime(moment.Hour(), moment.Minute())
				if err := speaker.Speak(context.Background(), sentence); err != nil &&
					!errors.Is(err, speech.ErrNoSynthesizer) {
					log.Printf("speak time: %v", err)
				}
			}
		}()
	}

	grabCheck := widget.NewCheck("Grab the hands", func(on bool) {
		keeper.SetGrabMode(on)
	})

	writeCheck := widget.NewCheck("Time in words", func(on bool) {
		updated := store.update(func(prefs *model.Settings) { prefs.WriteTime = on })
		if on {
			timeLine.Show()
			writeAndSpeak(false)
		} else {
			timeLine.Hide()
		}
		saveSettings(updated)
	})
	writeCheck.SetChecked(settings.WriteTime)

	dateCheck := widget.NewCheck("Weekday and date", func(on bool) {
		updated := store.update(func(prefs *model.Settings) { prefs.WriteDate = on })
		if on {
			dateLine.Show()
		} else {
			dateLine.Hide()
		}
		saveSettings(updated)
	})
	dateCheck.SetChecked(settings.WriteDate)

	speakCheck := widget.NewCheck("Talking clock", func(on bool) {
		updated := store.update(func(prefs *model.Settings) { prefs.SpeakTime = on })
		if on {
			writeAndSpeak(true)
		}
		saveSettings(updated)
	})
	speakCheck.SetChecked(settings.SpeakTime)

	modeGroup := widget.NewRadioGroup(
		[]string{"Simple clock", "Nice clock", "Digital clock"},
		func(selected string) {
			mode, ok := modeLabels[selected]
			if !ok {
				return
			}
			keeper.SetDisplayMode(mode)
			saveSettings(store.update(func(prefs *model.Settings) { prefs.Mode = mode }))
		})
	modeGroup.Horizontal = true
	modeGroup.SetSelected(labelForMode(settings.Mode))

	toolbar := container.NewVBox(
		modeGroup,
		container.NewHBox(grabCheck, writeCheck, dateCheck, speakCheck),
	)

	content := container.NewBorder(
		toolbar,
		container.NewVBox(timeLine, dateLine),
		nil, nil,
		faceWidget,
	)
	window.SetContent(content)

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			switch event.Type {
			case timekeeper.EventRedraw:
				fyne.Do(faceWidget.Refresh)
			case timekeeper.EventMinuteChange:
				writeAndSpeak(true)
				// The date can roll over at midnight.
				fyne.Do(func() {
					dateLine.Objects = dateObjects(keeper.Time(), palette)
					dateLine.Refresh()
				})
			case timekeeper.EventModeChange:
				fyne.Do(func() {
					if event.Mode == model.ModeDigital {
						grabCheck.SetChecked(false)
						grabCheck.Disable()
					} else {
						grabCheck.Enable()
					}
					faceWidget.Refresh()
				})
			}
		}
	}()
	if settings.Mode == model.ModeDigital {
		grabCheck.Disable()
	}

	window.SetCloseIntercept(func() {
		saveSettings(store.snapshot())
		keeper.Stop()
		if err := inhibitor.Allow(); err != nil && !errors.Is(err, platform.ErrInhibitUnsupported) {
			log.Printf("allow suspend: %v", err)
		}
		fyneApp.Quit()
	})

	// A visible clock must keep ticking; ask the power manager not to
	// suspend while we are on screen.
	if err := inhibitor.Inhibit(); err != nil && !errors.Is(err, platform.ErrInhibitUnsupported) {
		log.Printf("inhibit suspend: %v", err)
	}

	keeper.Start()
	keeper.SetActive(true)
	writeAndSpeak(false)

	window.ShowAndRun()
}

// prefs guards the persisted settings: checkbox callbacks mutate them
// on the UI thread while the minute-change worker reads them from the
// event goroutine.
type prefs struct {
	mu       sync.Mutex
	settings model.Settings
}

// update applies a change and returns the resulting settings.
func (store *prefs) update(change func(*model.Settings)) model.Settings {
	store.mu.Lock()
	defer store.mu.Unlock()
	change(&store.settings)
	return store.settings
}

// snapshot returns a copy safe to read off the UI thread.
func (store *prefs) snapshot() model.Settings {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.settings
}

func labelForMode(mode model.DisplayMode) string {
	for label, candidate := range modeLabels {
		if candidate == mode {
			return label
		}
	}
	return "Simple clock"
}

// timeObjects colors the sentence with the same code the face uses, so
// "ten past two" shows the minutes green and the hour blue.
func timeObjects(segments []words.Segment, palette model.Palette) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(segments))
	for _, segment := range segments {
		var fill color.NRGBA
		switch segment.Part {
		case words.PartHour:
			fill = palette.Hours
		case words.PartMinutes:
			fill = palette.Minutes
		default:
			fill = palette.Foreground
		}
		text := canvas.NewText(segment.Text, fill)
		text.TextSize = 20
		text.TextStyle = fyne.TextStyle{Bold: segment.Part != words.PartPlain}
		objects = append(objects, text)
	}
	return objects
}

func dateObjects(moment time.Time, palette model.Palette) []fyne.CanvasObject {
	parts := []struct {
		text string
		fill color.NRGBA
	}{
		{moment.Format("Monday"), palette.Days},
		{" " + moment.Format("January 2"), palette.Months},
		{fmt.Sprintf(", %d", moment.Year()), palette.Years},
	}
	objects := make([]fyne.CanvasObject, 0, len(parts))
	for _, part := range parts {
		text := canvas.NewText(part.text, part.fill)
		text.TextSize = 16
		text.TextStyle = fyne.TextStyle{Bold: true}
		objects = append(objects, text)
	}
	return objects
}
