package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Gratulations/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Gratulations"
	AppID          = "com.github.tequac.gratulations"
	KeyringService = "com.github.tequac.gratulations"

	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"

	EnvDBPath     = "GRATULATIONS_DB"
	DefaultDBDir  = ".gratulations"
	DefaultDBFile = "contacts.db"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// FilePermDefault is used for exported calendar files.
	FilePermDefault fs.FileMode = 0644

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDB       = "db"
	FlagDebug    = "debug"
	FlagLang     = "lang"
	FlagFormat   = "format"
	FlagDate     = "date"
	FlagPort     = "port"
	FlagInterval = "interval"
	FlagReminder = "reminder"

	FlagDescDB       = "Database path (default: $GRATULATIONS_DB or ~/.gratulations/contacts.db)"
	FlagDescDebug    = "Enable debug logging"
	FlagDescLang     = "Output language (de or en)"
	FlagDescFormat   = "Output format: text or json"
	FlagDescDate     = "Override the current date (YYYY-MM-DD)"
	FlagDescPort     = "HTTP server port"
	FlagDescInterval = "Calendar refresh interval in minutes"
	FlagDescReminder = "ISO8601 reminder trigger for calendar alarms (e.g. -P1D)"

	FormatText = "text"
	FormatJSON = "json"
)

// -----------------------------------------------------------------------------
// Contact Attribute Vocabulary
// -----------------------------------------------------------------------------

// Communication styles select the greeting phrase family. Unknown values fall
// back to CommStyleDirect.
const (
	CommStyleHeartfelt = "herzlich und emotional"
	CommStyleCasual    = "locker und humorvoll"
	CommStyleFormal    = "respektvoll und formell"
	CommStyleDirect    = "kurz und direkt"
)

// Formal salutations. Presence of either switches the wish to the Sie register.
const (
	SalutationHerr = "Herr"
	SalutationFrau = "Frau"
)

const (
	GenderMale    = "männlich"
	GenderFemale  = "weiblich"
	GenderDiverse = "divers"
)

// Closeness levels, ordered "sehr eng" > "eng" > "mittel" > "locker".
// Unknown values fall back to the BondMedium bucket.
const (
	BondVeryClose = "sehr eng"
	BondClose     = "eng"
	BondMedium    = "mittel"
	BondLoose     = "locker"
)

// Boolean-like preference values as stored on the contact record.
const (
	PrefYes = "ja"
	PrefNo  = "nein"
)

// -----------------------------------------------------------------------------
// Wish Engine: Traits, Vibes & Seeds
// -----------------------------------------------------------------------------

// Trait tags derived from the free-text description.
const (
	TraitHumorous = "humorous"
	TraitCreative = "creative"
	TraitReliable = "reliable"
	TraitStrong   = "strong"
	TraitCalm     = "calm"
	TraitWarm     = "warm"
)

// Vibe tags. The vibe of the first matching keyword group perturbs the
// core-wish seed; it never selects content directly.
const (
	VibeCasual       = "casual"
	VibeVivid        = "vivid"
	VibeWarm         = "warm"
	VibeAppreciative = "appreciative"
	VibeCalm         = "calm"
	VibeClose        = "close"
	VibeNeutral      = "neutral"
)

// Seed construction. The variation seed is contactID-birthDate-dayKey; the
// per-line suffixes keep the greeting, core wish, bond line and accent
// independently varied while staying stable within one calendar day.
const (
	SeedSeparator          = "-"
	SeedSuffixIntro        = "-intro"
	SeedSuffixIntroFormal  = "-intro-formal"
	SeedSuffixCore         = "-core-"
	SeedSuffixBond         = "-bond"
	SeedSuffixRelationship = "-relationship"
	SeedSuffixAccent       = "-accent-"
)

// EmojiSuffix is appended to the sign-off when the contact prefers emojis.
const EmojiSuffix = " 🎉🥳"

// -----------------------------------------------------------------------------
// Preference Keys (prefs table)
// -----------------------------------------------------------------------------

const (
	PrefNotifyTime   = "notify_time"
	PrefLastNotified = "last_notified_day"
	PrefImportURL    = "import_url"
	PrefImportUser   = "import_user"
	PrefServerPort   = "server_port"
	PrefLanguage     = "language"
	PrefLastRun      = "last_run_version"
)

// SupportedLanguages defines the list of available output languages (ISO 639-1).
var SupportedLanguages = []string{"de", "en"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyEvtSummary      = "event_summary"       // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (For age 0)
	TKeyTodayNone       = "today_none"
	TKeyTodayEntry      = "today_entry"  // Requires Name, Age
	TKeyNotifyTitle     = "notify_title" // Requires Name
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort       = "18080"
	DefaultRefreshMin = 60
	DefaultLanguage   = "de"
	DefaultNotifyTime = "08:00"
	DefaultReminder   = "-P1D"
	DisabledInterval  = 0

	// Wish-attribute defaults applied to contacts created via vCard import,
	// where the source carries no relationship metadata.
	ImportDefaultRelationship = "Guter Bekannter"
	ImportDefaultGender       = GenderDiverse
	ImportDefaultBond         = BondMedium
	ImportDefaultStyle        = CommStyleDirect
	ImportDefaultEmoji        = PrefNo
	ImportDefaultWriter       = PrefNo

	// NotifyPreviewLength truncates wish text in notification log lines.
	NotifyPreviewLength = 120
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Gratulations//Engine//DE"
	ICalCalName   = "Geburtstage"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gratulations"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY  = "BDAY"
	VCardFN    = "FN"
	VCardN     = "N"
	VCardEmail = "EMAIL"
	VCardTel   = "TEL"

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatDayKey is the canonical same-day key (year-month-day, no time
	// component). It doubles as the storage format for birth dates.
	DateFormatDayKey = "2006-01-02"

	// Additional layouts tolerated when parsing vCard BDAY fields.
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// MonthDayFormat keys the "birthday falls on this day" lookup.
	MonthDayFormat = "01-02"

	// NotifyTimeFormat documents the expected wall-clock trigger format.
	NotifyTimeFormat = "15:04"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	FormatUID = "%s-%d@%s"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtICS   = ".ics"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	AddrSeparator       = ":"

	// Routes
	RouteCalendar    = "/calendar.ics"
	RouteAPI         = "/api"
	RouteContacts    = "/contacts"
	RouteContactWish = "/contacts/{id}/wish"
	RouteToday       = "/today"

	// Query & URL parameters
	ParamID   = "id"
	ParamDate = "date"

	// Share link construction
	SchemeMailto      = "mailto:"
	WhatsAppBase      = "https://wa.me/"
	FormatMailSubject = "Geburtstagsgrüße für %s"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty = "configuration error: vCard path is empty"
	ErrWebURLEmpty    = "configuration error: import URL is empty"
	ErrFetcherMissing = "internal error: network fetcher is not initialized"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrBirthDateParse = "invalid birth date"
	ErrContactMissing = "contact not found"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrStoreOpen      = "failed to open contact store"
	ErrCalendarEmpty  = "no calendar data available"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInternalErr  = "Internal Server Error"
	HTTPMsgNotFound     = "Not Found"
	HTTPMsgBadDate      = "Invalid date parameter"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary      = "Geburtstag: %s"
	FallbackSummaryAge   = "Geburtstag: %s (%d)"
	FallbackSummaryBirth = "Geburtstag: %s (Geburt)"
	FallbackName         = "Unbekannt"

	// StubVCalendar is the minimal valid iCalendar object used when no events
	// are found, so clients never see an invalid feed.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Calendar cache updated"
	MsgWorkerStart    = "Background worker started"
	MsgWorkerStop     = "Worker stopping due to context cancellation"
	MsgRefreshStarted = "Calendar refresh started"
	MsgRefreshFailed  = "Calendar refresh failed"
	MsgGenSuccess     = "Calendar generation successful"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgBdayToday      = "Birthday found today"
	MsgNotifySent     = "Daily birthday notifications issued"
	MsgNotifySkipped  = "Daily notifications not due yet"
	MsgContactSaved   = "Contact saved"
	MsgContactDeleted = "Contact deleted"
	MsgImportDone     = "vCard import finished"
	MsgExportDone     = "Calendar exported"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgPassFail       = "Password retrieval failed (might be empty)"
	MsgPassStored     = "Password stored in keyring"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyInterval  = "interval"
	LogKeyUser      = "user"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyToday     = "birthdays_today"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyDuration  = "duration_ms"
	LogKeyContactID = "contact_id"
	LogKeyDay       = "day"
	LogKeyTitle     = "title"
	LogKeyWish      = "wish_preview"
	LogKeyPath      = "path"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompCLI     = "cli"
	CompEngine  = "engine"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompStore   = "store"
	CompWorker  = "worker"
	CompMain    = "main"
	CompI18n    = "i18n"
)
