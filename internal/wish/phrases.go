package wish

import "github.com/TeQuac/Gratulations/internal/config"

// Static phrase tables, loaded once and never mutated. All phrase content is
// process-wide read-only configuration data.

// register splits phrase variants by formality (du-form vs Sie-form).
type register struct {
	informal []string
	formal   []string
}

// introVariants is keyed by communication style. Each variant is a Sprintf
// template; the composer substitutes the style-appropriate addressee
// (gendered informal address, plain display name, or formal salutation).
var introVariants = map[string][]string{
	config.CommStyleHeartfelt: {
		"%s, heute ist ein besonderer Tag für dich",
		"%s, heute denke ich mit großer Freude an dich",
	},
	config.CommStyleCasual: {
		"Hey %s, heute gehört die Bühne ganz dir",
		"Hi %s, heute wird gefeiert – und zwar ordentlich",
	},
	config.CommStyleFormal: {
		"%s, zu Ihrem Geburtstag übermittle ich Ihnen meine herzlichen Glückwünsche",
		"%s, zu Ihrem heutigen Geburtstag wünsche ich Ihnen von Herzen alles Gute",
	},
	config.CommStyleDirect: {
		"%s, alles Gute zum Geburtstag",
		"Happy Birthday, %s",
	},
}

// informalAddress maps the gender category to the informal address template.
var informalAddress = map[string]string{
	config.GenderMale:    "Lieber %s",
	config.GenderFemale:  "Liebe %s",
	config.GenderDiverse: "Hallo %s",
}

var coreWishes = register{
	informal: []string{
		"Ich wünsche dir Gesundheit, Freude und viele schöne Momente im neuen Lebensjahr.",
		"Für dein neues Lebensjahr wünsche ich dir Glück, Energie und ganz viel Grund zum Lächeln.",
	},
	formal: []string{
		"Ich wünsche Ihnen Gesundheit, Freude und ein erfülltes neues Lebensjahr.",
		"Für Ihr neues Lebensjahr wünsche ich Ihnen Glück, Erfolg und viele schöne Augenblicke.",
	},
}

// relationshipLines is keyed by the exact relationship category string. The
// key set is open; unknown categories fall back to the closeness tables.
var relationshipLinesInformal = map[string][]string{
	"Mutter":                {"Danke, dass du immer für mich da bist."},
	"Vater":                 {"Danke für deinen Rat und deinen Rückhalt."},
	"Tochter":               {"Ich bin stolz auf dich und freue mich, dich auf deinem Weg zu begleiten."},
	"Sohn":                  {"Es ist schön zu sehen, wie du deinen Weg gehst."},
	"Schwester":             {"Es ist schön, dich als Schwester an meiner Seite zu haben."},
	"Bruder":                {"Es ist schön, dich als Bruder an meiner Seite zu haben."},
	"Oma":                   {"Deine warmherzige Art macht jeden Moment besonders."},
	"Opa":                   {"Deine Lebenserfahrung und Ruhe bedeuten mir viel."},
	"Tante":                 {"Du bringst immer gute Stimmung mit."},
	"Onkel":                 {"Deine Art macht gemeinsame Zeit besonders angenehm."},
	"Cousine":               {"Mit dir fühlt sich Familie immer vertraut und leicht an."},
	"Cousin":                {"Mit dir fühlt sich Familie immer vertraut und leicht an."},
	"Enkelin":               {"Dein Lachen macht jeden Tag heller."},
	"Enkel":                 {"Mit dir wird es nie langweilig."},
	"Nichte":                {"Es ist schön zu sehen, wie du die Welt entdeckst."},
	"Neffe":                 {"Es macht große Freude zu sehen, wie du deinen Weg gehst."},
	"Schwiegermutter":       {"Ich bin dankbar, dich als Teil unserer Familie zu haben."},
	"Schwiegervater":        {"Danke für deine offene und herzliche Art in unserer Familie."},
	"Entfernter Verwandter": {"Ich freue mich immer über unsere Begegnungen."},
	"Guter Freund":          {"Unsere Freundschaft ist mir sehr wichtig."},
	"Sehr guter Freund":     {"Auf unsere Freundschaft kann ich mich immer verlassen."},
	"Bester Freund":         {"Es ist großartig, dich als besten Freund zu haben."},
	"Entfernter Bekannter":  {"Ich wünsche dir von Herzen nur das Beste."},
	"Guter Bekannter":       {"Ich freue mich immer, von dir zu hören."},
	"Arbeitskollege":        {"Die Zusammenarbeit mit dir macht viel Freude."},
	"Chef":                  {"Danke für dein Vertrauen und die gute Zusammenarbeit."},
	"Sportsfreund":          {"Gemeinsame sportliche Momente mit dir sind immer ein Highlight."},
	"Nachbar":               {"Es ist schön, dich in der Nachbarschaft zu haben."},
	"Vereinskollege":        {"Unsere gemeinsame Zeit im Verein macht immer Spaß."},
}

var relationshipLinesFormal = map[string][]string{
	"Mutter":                {"Ich danke Ihnen für Ihre Fürsorge und Unterstützung."},
	"Vater":                 {"Ich danke Ihnen für Ihren Rat und Ihre Unterstützung."},
	"Tochter":               {"Ich wünsche Ihnen auf Ihrem Weg weiterhin viel Freude und Erfolg."},
	"Sohn":                  {"Ich wünsche Ihnen für Ihren Weg weiterhin alles Gute."},
	"Schwester":             {"Ich schätze unseren familiären Zusammenhalt sehr."},
	"Bruder":                {"Ich schätze unseren familiären Zusammenhalt sehr."},
	"Oma":                   {"Ihre warmherzige Art ist etwas ganz Besonderes."},
	"Opa":                   {"Ihre Erfahrung und ruhige Art schätze ich sehr."},
	"Tante":                 {"Ich wünsche Ihnen weiterhin viele schöne Momente."},
	"Onkel":                 {"Ich wünsche Ihnen weiterhin viele schöne Momente."},
	"Cousine":               {"Ich freue mich über unseren wertschätzenden Kontakt."},
	"Cousin":                {"Ich freue mich über unseren wertschätzenden Kontakt."},
	"Enkelin":               {"Ich wünsche Ihnen einen wundervollen Geburtstag."},
	"Enkel":                 {"Ich wünsche Ihnen einen wundervollen Geburtstag."},
	"Nichte":                {"Ich wünsche Ihnen für Ihren weiteren Weg alles Gute."},
	"Neffe":                 {"Ich wünsche Ihnen für Ihren weiteren Weg alles Gute."},
	"Schwiegermutter":       {"Ich schätze Ihre herzliche Art in unserer Familie sehr."},
	"Schwiegervater":        {"Ich schätze Ihre Unterstützung in unserer Familie sehr."},
	"Entfernter Verwandter": {"Ich freue mich über unseren Kontakt und wünsche Ihnen alles Gute."},
	"Guter Freund":          {"Unsere Verbundenheit ist mir wichtig."},
	"Sehr guter Freund":     {"Unsere langjährige Verbundenheit bedeutet mir viel."},
	"Bester Freund":         {"Ihre Freundschaft bedeutet mir sehr viel."},
	"Entfernter Bekannter":  {"Ich wünsche Ihnen für das neue Lebensjahr nur das Beste."},
	"Guter Bekannter":       {"Ich schätze den angenehmen Austausch mit Ihnen."},
	"Arbeitskollege":        {"Ich schätze die Zusammenarbeit mit Ihnen sehr."},
	"Chef":                  {"Vielen Dank für Ihr Vertrauen und die wertschätzende Zusammenarbeit."},
	"Sportsfreund":          {"Ich schätze die gemeinsamen sportlichen Aktivitäten mit Ihnen."},
	"Nachbar":               {"Ich wünsche Ihnen als geschätztem Nachbarn alles Gute."},
	"Vereinskollege":        {"Ich freue mich auf viele weitere gemeinsame Vereinsmomente."},
}

// closenessLines is keyed by closeness level; the BondMedium bucket is the
// fallback for unrecognized levels.
var closenessLinesInformal = map[string][]string{
	config.BondVeryClose: {"Du bist ein besonders wichtiger Mensch in meinem Leben."},
	config.BondClose:     {"Unsere Verbindung bedeutet mir sehr viel."},
	config.BondMedium:    {"Ich schätze unsere Gespräche und die gemeinsame Zeit sehr."},
	config.BondLoose:     {"Ich denke gerne an unsere Begegnungen zurück."},
}

var closenessLinesFormal = map[string][]string{
	config.BondVeryClose: {"Unsere enge Verbindung bedeutet mir sehr viel."},
	config.BondClose:     {"Unsere Verbindung schätze ich sehr."},
	config.BondMedium:    {"Ich schätze den Austausch mit Ihnen sehr."},
	config.BondLoose:     {"Ich wünsche Ihnen weiterhin alles Gute."},
}

// accentLines carries the optional personality accent per trait tag.
var accentLines = map[string]register{
	config.TraitHumorous: {
		informal: []string{"Mit dir wird es einfach nie langweilig."},
		formal:   []string{"Ihr Humor sorgt stets für eine angenehme Atmosphäre."},
	},
	config.TraitCreative: {
		informal: []string{"Deine Ideen bringen immer frischen Wind hinein."},
		formal:   []string{"Ihre Kreativität beeindruckt mich immer wieder."},
	},
	config.TraitReliable: {
		informal: []string{"Auf dich ist immer Verlass, und das ist etwas Besonderes."},
		formal:   []string{"Ihre verlässliche Art schätze ich sehr."},
	},
	config.TraitStrong: {
		informal: []string{"Deine Stärke motiviert mich immer wieder."},
		formal:   []string{"Ihre Stärke verdient großen Respekt."},
	},
	config.TraitCalm: {
		informal: []string{"Deine ruhige Art tut richtig gut."},
		formal:   []string{"Ihre ruhige Art wirkt sehr wohltuend."},
	},
	config.TraitWarm: {
		informal: []string{"Deine herzliche Art macht jeden Moment schöner."},
		formal:   []string{"Ihre herzliche Art macht den Austausch besonders angenehm."},
	},
}

// Fixed short-form closings (no randomization) and sign-off templates.
// The sign-off template takes the emoji suffix (or "") as argument.
const (
	shortClosingInformal = "Genieß deinen Tag in vollen Zügen."
	shortClosingFormal   = "Genießen Sie Ihren besonderen Tag."
	signOffInformal      = "Liebe Grüße%s!"
	signOffFormal        = "Mit besten Grüßen%s!"
)
