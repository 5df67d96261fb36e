// Package speech says the time aloud. It builds a GStreamer espeak
// pipeline description and hands it to gst-launch; when that is not
// available it falls through a chain of command line synthesizers.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoSynthesizer is returned when no speech backend exists on the
// host. The caller keeps the talking clock toggle working; it simply
// stays silent.
var ErrNoSynthesizer = errors.New("speech: no synthesizer available")

// Voice parameters tuned for a clock that talks to children: a slow
// rate and a small gap between words.
const (
	DefaultVoice   = "en"
	DefaultPitch   = 50
	DefaultRate    = 140
	DefaultWordGap = 10
)

var markupTags = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes markup tags from a sentence so they are not read
// aloud. Quotes are dropped too, they have no business inside a
// pipeline description.
func StripMarkup(text string) string {
	text = markupTags.ReplaceAllString(text, "")
	return strings.ReplaceAll(text, `"`, "")
}

// Speaker voices sentences through whichever synthesizer the host
// offers.
type Speaker struct {
	Voice   string
	Pitch   int
	Rate    int
	WordGap int

	lookPath func(file string) (string, error)
	runner   func(ctx context.Context, name string, args ...string) error
}

// NewSpeaker creates a speaker with the default voice parameters.
func NewSpeaker() *Speaker {
	return &Speaker{
		Voice:    DefaultVoice,
		Pitch:    DefaultPitch,
		Rate:     DefaultRate,
		WordGap:  DefaultWordGap,
		lookPath: exec.LookPath,
		runner:   runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Pipeline returns the GStreamer description voicing the given
// sentence.
func (speaker *Speaker) Pipeline(text string) string {
	return fmt.Sprintf(
		`espeak text="%s" voice="%s" pitch="%d" rate="%d" gap="%d" ! autoaudiosink`,
		StripMarkup(text), speaker.Voice, speaker.Pitch, speaker.Rate, speaker.WordGap)
}

// Speak voices the sentence and blocks until playback ends. It tries
// gst-launch with the espeak pipeline first, then the standalone
// synthesizers. Callers run it off the tick path.
func (speaker *Speaker) Speak(ctx context.Context, text string) error {
	text = StripMarkup(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if _, err := speaker.lookPath("gst-launch-1.0"); err == nil {
		if err := speaker.runner(ctx, "gst-launch-1.0", speaker.Pipeline(text)); err == nil {
			return nil
		} else {
			log.Printf("speech: gst-launch failed, trying espeak: %v", err)
		}
	}

	for _, command := range []string{"espeak", "espeak-ng"} {
		if _, err := speaker.lookPath(command); err != nil {
			continue
		}
		return speaker.runner(ctx, command,
			"-v", speaker.Voice,
			"-p", strconv.Itoa(speaker.Pitch),
			"-s", strconv.Itoa(speaker.Rate),
			"-g", strconv.Itoa(speaker.WordGap),
			text)
	}

	if _, err := speaker.lookPath("spd-say"); err == nil {
		return speaker.runner(ctx, "spd-say", "--wait", text)
	}

	log.Printf("speech: no synthesizer found for %q", text)
	return ErrNoSynthesizer
}
