// Package content holds the static text and data shown by the invitation.
package content

import "time"

// Invitation is everything the scenes display.
type Invitation struct {
	Title     string    `yaml:"title"`
	Couple    Couple    `yaml:"couple"`
	Envelope  Envelope  `yaml:"envelope"`
	Blessing  Blessing  `yaml:"blessing"`
	Date      Date      `yaml:"date"`
	Theme     Theme     `yaml:"theme"`
	Venue     Venue     `yaml:"venue"`
	Schedule  Schedule  `yaml:"schedule"`
	DressCode DressCode `yaml:"dress_code"`
	RSVP      RSVP      `yaml:"rsvp"`
	Scripture Scripture `yaml:"scripture"`
	ThankYou  ThankYou  `yaml:"thank_you"`
	Journey   Journey   `yaml:"journey"`
	Event     Event     `yaml:"event"`
}

type Couple struct {
	PartnerOne string   `yaml:"partner_one"`
	PartnerTwo string   `yaml:"partner_two"`
	Initials   []string `yaml:"initials"`
	Monogram   string   `yaml:"monogram"`
}

type Envelope struct {
	Prompt string `yaml:"prompt"`
	Opened string `yaml:"opened"`
}

type Blessing struct {
	Text        string `yaml:"text"`
	Greeting    string `yaml:"greeting"`
	Translation string `yaml:"translation"`
}

type Date struct {
	Tagline string `yaml:"tagline"`
	Weekday string `yaml:"weekday"`
	Day     string `yaml:"day"`
	Month   string `yaml:"month"`
	Year    string `yaml:"year"`
}

type Theme struct {
	Label    string   `yaml:"label"`
	Name     string   `yaml:"name"`
	Subtitle string   `yaml:"subtitle"`
	Colors   []string `yaml:"colors"`
}

type Venue struct {
	Heading   string `yaml:"heading"`
	Name      string `yaml:"name"`
	Region    string `yaml:"region"`
	Caption   string `yaml:"caption"`
	MapsQuery string `yaml:"maps_query"`
}

type Schedule struct {
	Heading string         `yaml:"heading"`
	Footer  string         `yaml:"footer"`
	Items   []ScheduleItem `yaml:"items"`
}

type ScheduleItem struct {
	Time    string `yaml:"time"`
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
	Icon    string `yaml:"icon"`
	Color   string `yaml:"color"`
}

type DressCode struct {
	Heading    string   `yaml:"heading"`
	ThemeLabel string   `yaml:"theme_label"`
	Theme      string   `yaml:"theme"`
	CodeLabel  string   `yaml:"code_label"`
	Code       string   `yaml:"code"`
	Caption    string   `yaml:"caption"`
	Swatches   []Swatch `yaml:"swatches"`
}

// Swatch is a named palette color.
type Swatch struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type RSVP struct {
	Heading        string    `yaml:"heading"`
	Prompt         string    `yaml:"prompt"`
	Deadline       time.Time `yaml:"deadline"`
	CallToAction   string    `yaml:"call_to_action"`
	Thanks         string    `yaml:"thanks"`
	ThanksSubtitle string    `yaml:"thanks_subtitle"`
	ThanksCaption  string    `yaml:"thanks_caption"`
	Recipient      string    `yaml:"recipient"`
}

type Scripture struct {
	Title       string     `yaml:"title"`
	Stanzas     [][]string `yaml:"stanzas"`
	Attribution []string   `yaml:"attribution"`
}

type ThankYou struct {
	Heading     string `yaml:"heading"`
	Signature   string `yaml:"signature"`
	Quote       string `yaml:"quote"`
	QuoteAuthor string `yaml:"quote_author"`
	ShareText   string `yaml:"share_text"`
	ShareLink   string `yaml:"share_link"`
	Footer      string `yaml:"footer"`
}

type Journey struct {
	Heading string  `yaml:"heading"`
	Photos  []Photo `yaml:"photos"`
}

// PhotoSize is the tile size of a journey photo.
type PhotoSize string

const (
	PhotoSmall  PhotoSize = "small"
	PhotoMedium PhotoSize = "medium"
	PhotoLarge  PhotoSize = "large"
)

type Photo struct {
	ID      string    `yaml:"id"`
	File    string    `yaml:"file"`
	Alt     string    `yaml:"alt"`
	Caption string    `yaml:"caption"`
	Size    PhotoSize `yaml:"size"`
}

// Event is the calendar entry for the wedding day.
type Event struct {
	Title       string    `yaml:"title"`
	Start       time.Time `yaml:"start"`
	End         time.Time `yaml:"end"`
	Location    string    `yaml:"location"`
	Description string    `yaml:"description"`
	FileName    string    `yaml:"file_name"`
}
