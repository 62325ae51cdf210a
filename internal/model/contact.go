// Package model defines the persisted data records shared across the
// store, engine, and wish composer.
package model

import "time"

// Contact is a stored person record with birthday and relationship metadata
// driving wish generation. JSON field names follow the export format of the
// original entry records.
type Contact struct {
	// ID is a stable unique identifier (ULID).
	ID string `json:"id"`

	// BirthDate is the calendar birth date in YYYY-MM-DD form. The year is
	// meaningful and used for age computation.
	BirthDate string `json:"birthDate"`

	// PersonName is the display name; Nickname, when set, takes precedence
	// in informal address.
	PersonName string `json:"personName"`
	Nickname   string `json:"nickname,omitempty"`

	// Relationship is an open-ended category string ("Mutter", "Chef", ...),
	// matched exactly against the phrase tables.
	Relationship string `json:"relationship"`

	// Salutation is "Herr", "Frau", or empty. Gender is "männlich",
	// "weiblich", or "divers".
	Salutation string `json:"salutation,omitempty"`
	Gender     string `json:"gender,omitempty"`

	// BondStrength is the closeness level: "sehr eng", "eng", "mittel",
	// or "locker".
	BondStrength string `json:"bondStrength"`

	// Description is free text; the signal extractor scans it for
	// personality keywords.
	Description string `json:"description"`

	// CommunicationStyle selects the greeting phrase family.
	CommunicationStyle string `json:"communicationStyle"`

	// EmojiPreference and WriterType are boolean-like "ja"/"nein" values.
	// WriterType "nein" marks a short writer.
	EmojiPreference string `json:"emojiPreference"`
	WriterType      string `json:"writerType"`

	// Optional contact channels, irrelevant to the composer itself.
	Email    string `json:"email,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
