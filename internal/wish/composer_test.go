package wish

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/model"
)

func day(value string) time.Time {
	t, err := time.Parse(config.DateFormatDayKey, value)
	if err != nil {
		panic(err)
	}
	return t
}

// miraContact is the informal reference case: casual style, very close bond,
// humor signal, emoji preference, long-form writer, unknown relationship
// category.
func miraContact() model.Contact {
	return model.Contact{
		ID:                 "c1",
		BirthDate:          "1990-05-03",
		PersonName:         "Mira",
		Relationship:       "Beste Freundin",
		Gender:             config.GenderFemale,
		BondStrength:       config.BondVeryClose,
		Description:        "sie ist sehr lustig",
		CommunicationStyle: config.CommStyleCasual,
		EmojiPreference:    config.PrefYes,
		WriterType:         config.PrefYes,
	}
}

func TestCompose_InformalFullStructure(t *testing.T) {
	w := Compose(miraContact(), day("2024-05-03"))

	require.Len(t, w.Lines, 5, "greeting, core wish, bond line, accent, sign-off")
	assert.Equal(t, strings.Join(w.Lines, "\n"), w.Text)

	// Greeting: casual family, addresses the person, terminated with a period.
	assert.Contains(t, w.Lines[0], "Mira")
	assert.True(t, strings.HasSuffix(w.Lines[0], "."), "greeting must end with a period")

	// Core wish comes from the informal (du) register.
	assert.Contains(t, w.Lines[1], "dir")

	// "Beste Freundin" is not a known category; the very-close bond line
	// takes its place.
	assert.Equal(t, "Du bist ein besonders wichtiger Mensch in meinem Leben.", w.Lines[2])

	// Humor signal produces the informal humor accent.
	assert.Equal(t, "Mit dir wird es einfach nie langweilig.", w.Lines[3])

	// Informal sign-off with the emoji suffix.
	assert.Equal(t, "Liebe Grüße 🎉🥳!", w.Lines[4])
}

func TestCompose_Deterministic(t *testing.T) {
	c := miraContact()
	d := day("2024-05-03")

	first := Compose(c, d)
	second := Compose(c, d)

	assert.Equal(t, first, second, "Same contact and day must yield identical output")
}

func TestCompose_NicknamePrecedence(t *testing.T) {
	c := miraContact()
	c.Nickname = "Miri"

	w := Compose(c, day("2024-05-03"))

	assert.Contains(t, w.Lines[0], "Miri")
	assert.NotContains(t, w.Lines[0], "Mira")
}

func TestCompose_FormalViaSalutation(t *testing.T) {
	c := model.Contact{
		ID:                 "c2",
		BirthDate:          "1960-02-11",
		PersonName:         "Weber",
		Salutation:         config.SalutationHerr,
		Relationship:       "Chef",
		Gender:             config.GenderMale,
		BondStrength:       config.BondLoose,
		CommunicationStyle: config.CommStyleHeartfelt,
		EmojiPreference:    config.PrefNo,
		WriterType:         config.PrefYes,
	}

	w := Compose(c, day("2026-02-11"))

	require.Len(t, w.Lines, 4, "greeting, core wish, relationship line, sign-off")

	// Salutation forces the Sie register regardless of the heartfelt style.
	assert.Contains(t, w.Lines[0], "Herr Weber")
	assert.Contains(t, w.Lines[1], "Ihnen")
	assert.Equal(t, "Vielen Dank für Ihr Vertrauen und die wertschätzende Zusammenarbeit.", w.Lines[2])
	assert.Equal(t, "Mit besten Grüßen!", w.Lines[3])
}

func TestCompose_FormalViaStyle(t *testing.T) {
	c := miraContact()
	c.Salutation = ""
	c.CommunicationStyle = config.CommStyleFormal
	c.EmojiPreference = config.PrefNo

	w := Compose(c, day("2024-05-03"))

	// No salutation stored; the display name is the formal addressee.
	assert.Contains(t, w.Lines[0], "Mira")
	assert.Contains(t, w.Lines[0], "Ihnen")
	assert.Equal(t, "Mit besten Grüßen!", w.Lines[len(w.Lines)-1])
}

func TestCompose_ShortWriter(t *testing.T) {
	c := miraContact()
	c.WriterType = config.PrefNo

	w := Compose(c, day("2024-05-03"))

	require.Len(t, w.Lines, 4, "short writers get a fixed closing instead of bond and accent lines")
	assert.Equal(t, "Genieß deinen Tag in vollen Zügen.", w.Lines[2])
	assert.NotContains(t, w.Text, "Mit dir wird es einfach nie langweilig.",
		"no accent line for short writers even when traits are present")
}

func TestCompose_ShortWriterFormal(t *testing.T) {
	c := miraContact()
	c.WriterType = config.PrefNo
	c.Salutation = config.SalutationFrau

	w := Compose(c, day("2024-05-03"))

	require.Len(t, w.Lines, 4)
	assert.Equal(t, "Genießen Sie Ihren besonderen Tag.", w.Lines[2])
}

func TestCompose_KnownRelationshipCategory(t *testing.T) {
	c := miraContact()
	c.Relationship = "Mutter"
	c.Description = ""

	w := Compose(c, day("2024-05-03"))

	assert.Equal(t, "Danke, dass du immer für mich da bist.", w.Lines[2])
}

func TestCompose_UnknownBondFallsBackToMedium(t *testing.T) {
	c := miraContact()
	c.Relationship = "Weggefährte"
	c.BondStrength = "unbekannt"
	c.Description = ""

	w := Compose(c, day("2024-05-03"))

	assert.Equal(t, "Ich schätze unsere Gespräche und die gemeinsame Zeit sehr.", w.Lines[2])
}

func TestCompose_UnknownStyleFallsBackToDirect(t *testing.T) {
	c := miraContact()
	c.CommunicationStyle = "irgendwas"

	w := Compose(c, day("2024-05-03"))

	assert.Contains(t, w.Lines[0], "Mira")
	direct := []string{"Mira, alles Gute zum Geburtstag.", "Happy Birthday, Mira."}
	assert.Contains(t, direct, w.Lines[0])
}

func TestCompose_HeartfeltGenderedAddress(t *testing.T) {
	for _, tt := range []struct {
		gender  string
		address string
	}{
		{config.GenderFemale, "Liebe Mira"},
		{config.GenderMale, "Lieber Mira"},
		{config.GenderDiverse, "Hallo Mira"},
		{"", "Hallo Mira"}, // unknown gender uses the neutral address
	} {
		c := miraContact()
		c.CommunicationStyle = config.CommStyleHeartfelt
		c.Gender = tt.gender

		w := Compose(c, day("2024-05-03"))
		assert.Contains(t, w.Lines[0], tt.address, "gender %q", tt.gender)
	}
}

func TestCompose_NoEmojiWithoutPreference(t *testing.T) {
	c := miraContact()
	c.EmojiPreference = config.PrefNo

	w := Compose(c, day("2024-05-03"))

	assert.Equal(t, "Liebe Grüße!", w.Lines[len(w.Lines)-1])
	assert.NotContains(t, w.Text, config.EmojiSuffix)
}

// TestCompose_DayStability verifies the variation model: fixed within one
// calendar day, independent of the exact time of day.
func TestCompose_DayStability(t *testing.T) {
	c := miraContact()

	morning := time.Date(2024, 5, 3, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 3, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, Compose(c, morning), Compose(c, evening),
		"Output must not change within a calendar day")
}

// TestCompose_VariesAcrossDays is the counterpart: the seed includes the day
// key, so over a month the greeting visits more than one variant.
func TestCompose_VariesAcrossDays(t *testing.T) {
	c := miraContact()

	greetings := make(map[string]struct{})
	start := day("2024-05-01")
	for i := 0; i < 30; i++ {
		w := Compose(c, start.AddDate(0, 0, i))
		greetings[w.Lines[0]] = struct{}{}
	}

	assert.GreaterOrEqual(t, len(greetings), 2,
		"30 consecutive days must select more than one greeting variant")
}

func TestCompose_VariesAcrossContacts(t *testing.T) {
	d := day("2024-05-03")

	greetings := make(map[string]struct{})
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5", "c6"} {
		c := miraContact()
		c.ID = id
		w := Compose(c, d)
		greetings[w.Lines[0]] = struct{}{}
	}

	assert.GreaterOrEqual(t, len(greetings), 2,
		"the contact id alone must be able to change the selected variant")
}
