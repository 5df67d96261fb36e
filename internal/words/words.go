// Package words turns clock times into English sentences, the kind a
// child learning the clock would say aloud: "It is quarter past ten",
// "It is twenty to five". The output is segmented so callers can color
// the hour and minute words with the same code the clock face uses.
package words

import "strings"

// Part classifies a sentence segment so the caller can style it.
type Part int

const (
	PartPlain Part = iota
	PartHour
	PartMinutes
)

// Segment is one run of the sentence sharing a single part.
type Segment struct {
	Text string
	Part Part
}

// Writer renders times as sentences. It is stateless and safe for
// concurrent use.
type Writer struct{}

// NewWriter creates a time-to-words writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteTime returns the full sentence for the given 24-hour time.
func (writer *Writer) WriteTime(hour, minute int) string {
	var sentence strings.Builder
	for _, segment := range writer.TimeSegments(hour, minute) {
		sentence.WriteString(segment.Text)
	}
	return sentence.String()
}

// TimeSegments returns the sentence split into styleable runs. Minutes
// up to the half hour read "past" the current hour, later minutes read
// "to" the next one; the quarters and the half hour get their common
// names.
func (writer *Writer) TimeSegments(hour, minute int) []Segment {
	hour = ((hour % 24) + 24) % 24
	minute = ((minute % 60) + 60) % 60

	switch {
	case minute == 0:
		return []Segment{
			{Text: "It is ", Part: PartPlain},
			{Text: hourWord(hour), Part: PartHour},
			{Text: " o'clock", Part: PartPlain},
		}
	case minute == 15:
		return []Segment{
			{Text: "It is ", Part: PartPlain},
			{Text: "quarter", Part: PartMinutes},
			{Text: " past ", Part: PartPlain},
			{Text: hourWord(hour), Part: PartHour},
		}
	case minute == 30:
		return []Segment{
			{Text: "It is ", Part: PartPlain},
			{Text: "half", Part: PartMinutes},
			{Text: " past ", Part: PartPlain},
			{Text: hourWord(hour), Part: PartHour},
		}
	case minute == 45:
		return []Segment{
			{Text: "It is ", Part: PartPlain},
			{Text: "quarter", Part: PartMinutes},
			{Text: " to ", Part: PartPlain},
			{Text: hourWord(hour + 1), Part: PartHour},
		}
	case minute < 30:
		return []Segment{
			{Text: "It is ", Part: PartPlain},
			{Text: minuteWords(minute), Part: PartMinutes},
			{Text: " past ", Part: PartPlain},
			{Text: hourWord(hour), Part: PartHour},
		}
	default:
		return []Segment{
			{Text: "It is ", Part: PartPlain},
			{Text: minuteWords(60 - minute), Part: PartMinutes},
			{Text: " to ", Part: PartPlain},
			{Text: hourWord(hour + 1), Part: PartHour},
		}
	}
}

var smallNumbers = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

// hourWord names an hour on a twelve-hour dial; both midnight and noon
// read "twelve".
func hourWord(hour int) string {
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return smallNumbers[hour]
}

// minuteWords spells a minute count below the half hour. Multiples of
// five read bare ("twenty past"), other counts carry the unit ("eleven
// minutes past").
func minuteWords(count int) string {
	var word string
	if count > 20 {
		word = "twenty-" + smallNumbers[count-20]
	} else {
		word = smallNumbers[count]
	}
	if count%5 != 0 {
		if count == 1 {
			return word + " minute"
		}
		return word + " minutes"
	}
	return word
}
