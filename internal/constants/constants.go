// Package constants defines shared constant values used throughout i18nhook.
// Centralizing these magic strings keeps the patch rules and the CLI in sync.
package constants

// Markers whose presence means an insertion has already been performed.
const (
	// ImportMarker guards the import insertion. Any occurrence counts,
	// including one inside a comment.
	ImportMarker = "useTranslation"

	// HookMarkerPattern guards the hook declaration. t or i18n must be the
	// first destructured name as a whole word, so `const { theme }` or
	// `const { tab }` do not count.
	HookMarkerPattern = `const \{\s*(?:t|i18n)\b`
)

// Inserted lines, without trailing newline.
const (
	ImportLine = "import { useTranslation } from 'react-i18next';"
	HookLine   = "  const { t } = useTranslation();"
)

// Anchor patterns. Matching is line-oriented: "." never crosses a newline,
// and the last match in the file wins. Both LF and CRLF endings anchor.
const (
	ImportAnchorPattern = `(import .+ from '.+';)\r?\n`
	HookAnchorPattern   = `(const .+ = use.+\(\);)\r?\n`
)

// Environment variables.
const (
	// EnvRoot overrides the configured Biosi checkout root.
	EnvRoot = "BIOSI_ROOT"

	// EnvNoColor disables styled output (https://no-color.org).
	EnvNoColor = "NO_COLOR"
)

// DefaultRoot is the Biosi checkout the batch was written against.
const DefaultRoot = "/home/teo/workspace/Biosi"

// DefaultConfigFile is looked up in the working directory when --config is not given.
const DefaultConfigFile = "i18nhook.toml"

// LocalesDir holds the translation key files, relative to the root.
const LocalesDir = "src/locales"

// DefaultScreenFiles is the batch of screen sources, in processing order.
var DefaultScreenFiles = []string{
	"src/screens/onboarding/ProfileSetupScreen.tsx",
	"src/screens/onboarding/WageInputScreen.tsx",
	"src/screens/onboarding/CurrencySelectionScreen.tsx",
	"src/screens/dashboard/DashboardScreen.tsx",
	"src/screens/item-check/ItemCheckModal.tsx",
	"src/screens/item-check/ResultScreen.tsx",
	"src/screens/history/TransactionHistoryScreen.tsx",
	"src/screens/history/TransactionDetailScreen.tsx",
	"src/screens/settings/SettingsScreen.tsx",
	"src/screens/settings/ProfileEditScreen.tsx",
	"src/screens/settings/ThemeSelectionScreen.tsx",
	"src/screens/settings/CurrencySettingsScreen.tsx",
}

// DefaultLocales are the languages Biosi ships translation keys for.
var DefaultLocales = []string{"en", "fr"}
