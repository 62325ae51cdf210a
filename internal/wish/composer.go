// Package wish implements the deterministic, rule-based wish composer:
// a signal extractor over free-text descriptions, a stable-hash variant
// selector, and the line-by-line assembly of the congratulatory text.
//
// Everything in this package is a pure function over its inputs. The caller
// supplies "today"; the package never reads the wall clock. Given the same
// contact content and the same calendar day, the output is byte-identical
// on every call.
package wish

import (
	"fmt"
	"strings"
	"time"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/model"
)

// GeneratedWish is the assembled congratulatory text: the ordered non-empty
// lines and their newline-joined form. It is recomputed on every invocation
// and never persisted.
type GeneratedWish struct {
	Lines []string `json:"lines"`
	Text  string   `json:"text"`
}

// Compose builds the personalized wish for a contact on the given day.
//
// Lookups never fail: an unknown relationship category falls back to the
// closeness table, an unknown closeness level to the "mittel" bucket, an
// unknown communication style to the "kurz und direkt" family, and an
// unknown trait to no accent. The function is total over any syntactically
// valid contact.
func Compose(c model.Contact, today time.Time) GeneratedWish {
	displayName := c.PersonName
	if c.Nickname != "" {
		displayName = c.Nickname
	}

	hasFormalSalutation := c.Salutation == config.SalutationHerr || c.Salutation == config.SalutationFrau
	isFormal := hasFormalSalutation || c.CommunicationStyle == config.CommStyleFormal
	isShortWriter := c.WriterType == config.PrefNo

	signals := ExtractSignals(c.Description)

	// The seed changes only when the calendar day or the contact changes,
	// giving day-stable but contact-distinct output.
	seed := c.ID + config.SeedSeparator + c.BirthDate + config.SeedSeparator + today.Format(config.DateFormatDayKey)

	intro := introLine(c, displayName, isFormal, seed)
	core := PickVariant(coreRegister(isFormal), seed+config.SeedSuffixCore+signals.Vibe)
	relationship := relationshipLine(c, isFormal, seed)
	accent := styleAccent(signals, isFormal, isShortWriter, seed)

	lines := []string{ensurePeriod(intro), core}
	if isShortWriter {
		lines = append(lines, shortClosing(isFormal))
	} else {
		lines = append(lines, relationship)
		if accent != "" {
			lines = append(lines, accent)
		}
	}
	lines = append(lines, signOff(isFormal, c.EmojiPreference == config.PrefYes))

	return GeneratedWish{Lines: lines, Text: strings.Join(lines, "\n")}
}

// introLine selects the greeting. Formal contacts always use the formal
// phrase family with the salutation-plus-name addressee; informal contacts
// use their communication style's family, with a gender-appropriate address
// for the heartfelt style.
func introLine(c model.Contact, displayName string, isFormal bool, seed string) string {
	if isFormal {
		addressee := strings.TrimSpace(c.Salutation + " " + c.PersonName)
		if addressee == "" {
			addressee = displayName
		}
		tpl := PickVariant(introVariants[config.CommStyleFormal], seed+config.SeedSuffixIntroFormal)
		return fmt.Sprintf(tpl, addressee)
	}

	variants, ok := introVariants[c.CommunicationStyle]
	if !ok {
		variants = introVariants[config.CommStyleDirect]
	}
	tpl := PickVariant(variants, seed+config.SeedSuffixIntro)

	addressee := displayName
	if c.CommunicationStyle == config.CommStyleHeartfelt {
		address, ok := informalAddress[c.Gender]
		if !ok {
			address = informalAddress[config.GenderDiverse]
		}
		addressee = fmt.Sprintf(address, displayName)
	}
	return fmt.Sprintf(tpl, addressee)
}

// relationshipLine prefers a phrase specific to the exact relationship
// category; when the category is unknown it degrades to the closeness line,
// with "mittel" as the terminal bucket.
func relationshipLine(c model.Contact, isFormal bool, seed string) string {
	relTable, bondTable := relationshipLinesInformal, closenessLinesInformal
	if isFormal {
		relTable, bondTable = relationshipLinesFormal, closenessLinesFormal
	}

	if line := PickVariant(relTable[c.Relationship], seed+config.SeedSuffixRelationship); line != "" {
		return line
	}

	options, ok := bondTable[c.BondStrength]
	if !ok {
		options = bondTable[config.BondMedium]
	}
	return PickVariant(options, seed+config.SeedSuffixBond)
}

// styleAccent returns the optional personality accent line. Short writers
// and contacts without extracted traits get none; only the first trait of
// the signal counts.
func styleAccent(sig Signal, isFormal, isShortWriter bool, seed string) string {
	if isShortWriter || len(sig.Traits) == 0 {
		return ""
	}

	trait := sig.Traits[0]
	reg, ok := accentLines[trait]
	if !ok {
		return ""
	}

	options := reg.informal
	if isFormal {
		options = reg.formal
	}
	return PickVariant(options, seed+config.SeedSuffixAccent+trait)
}

func coreRegister(isFormal bool) []string {
	if isFormal {
		return coreWishes.formal
	}
	return coreWishes.informal
}

func shortClosing(isFormal bool) string {
	if isFormal {
		return shortClosingFormal
	}
	return shortClosingInformal
}

func signOff(isFormal, withEmoji bool) string {
	suffix := ""
	if withEmoji {
		suffix = config.EmojiSuffix
	}
	if isFormal {
		return fmt.Sprintf(signOffFormal, suffix)
	}
	return fmt.Sprintf(signOffInformal, suffix)
}

func ensurePeriod(line string) string {
	if strings.HasSuffix(line, ".") {
		return line
	}
	return line + "."
}
