package settings

import (
	"time"

	"github.com/bloomify/sprig/internal/cache"
	"github.com/bloomify/sprig/internal/i18n"
	"github.com/bloomify/sprig/internal/session"
)

// Row accent colours.
const (
	colorBlue   = "#4a90e2"
	colorGreen  = "#5cb85c"
	colorOrange = "#f0ad4e"
	colorRed    = "#d9534f"
	colorPurple = "#8e6fd8"
	colorGray   = "#8a8f98"
)

// Context is everything Build needs to describe the screen.
type Context struct {
	Localizer i18n.Localizer
	Now       time.Time

	SignedIn      bool
	Verified      bool
	ProfileLoaded bool

	Token        *session.Info
	SessionCount int

	Theme         string
	Notifications bool

	CacheSize int64
	DeviceID  string
	Version   string
}

// Build returns the settings sections in display order.
func Build(c Context) []Section {
	t := c.Localizer.T
	return []Section{
		{
			Title: t("section.account"),
			Items: []Item{
				{
					Title:    t("item.edit_profile"),
					Subtitle: t("item.edit_profile.sub"),
					Icon:     "✎",
					Color:    colorBlue,
					Enabled:  c.SignedIn,
					Action:   ActionEditProfile,
				},
				{
					Title:    t("item.change_picture"),
					Subtitle: t("item.change_picture.sub"),
					Icon:     "◉",
					Color:    colorPurple,
					Enabled:  c.SignedIn && c.ProfileLoaded,
					Action:   ActionChangePicture,
				},
				verificationItem(c),
				{
					Title:    t("item.refresh_profile"),
					Subtitle: t("item.refresh_profile.sub"),
					Icon:     "↻",
					Color:    colorBlue,
					Enabled:  c.SignedIn,
					Action:   ActionRefreshProfile,
				},
				{
					Title:    t("item.sign_out"),
					Subtitle: t("item.sign_out.sub"),
					Icon:     "⏻",
					Color:    colorRed,
					Enabled:  c.SignedIn,
					Action:   ActionSignOut,
				},
			},
		},
		{
			Title: t("section.tokens"),
			Items: []Item{
				tokenItem(c),
				{
					Title:    t("item.refresh_token"),
					Subtitle: t("item.refresh_token.sub"),
					Icon:     "⟳",
					Color:    colorGreen,
					Enabled:  c.SignedIn,
					Action:   ActionRefreshToken,
				},
				{
					Title:    t("item.sessions"),
					Subtitle: t("item.sessions.sub", c.SessionCount),
					Icon:     "▤",
					Color:    colorBlue,
					Enabled:  c.SignedIn,
					Action:   ActionActiveSessions,
				},
			},
		},
		{
			Title: t("section.app"),
			Items: []Item{
				{
					Title:    t("item.theme"),
					Subtitle: t("item.theme.sub"),
					Icon:     "◐",
					Color:    colorPurple,
					Enabled:  true,
					Action:   ActionCycleTheme,
					Trailing: c.Theme,
				},
				{
					Title:    t("item.notifications"),
					Subtitle: t("item.notifications.sub"),
					Icon:     "♪",
					Color:    colorOrange,
					Enabled:  true,
					Action:   ActionToggleNotify,
					Trailing: toggleLabel(c.Localizer, c.Notifications),
				},
				{
					Title:    t("item.language"),
					Subtitle: t("item.language.sub"),
					Icon:     "⚑",
					Color:    colorGreen,
					Enabled:  true,
					Action:   ActionCycleLanguage,
					Trailing: c.Localizer.Name(),
				},
			},
		},
		{
			Title: t("section.data"),
			Items: []Item{
				{
					Title:    t("item.clear_cache"),
					Subtitle: t("item.clear_cache.sub", cache.FormatBytes(c.CacheSize)),
					Icon:     "⌫",
					Color:    colorOrange,
					Enabled:  c.CacheSize > 0,
					Action:   ActionClearCache,
				},
				{
					Title:    t("item.device"),
					Subtitle: c.DeviceID,
					Icon:     "#",
					Color:    colorGray,
				},
			},
		},
		{
			Title: t("section.support"),
			Items: []Item{
				{
					Title:    t("item.help"),
					Subtitle: t("item.help.sub"),
					Icon:     "?",
					Color:    colorBlue,
					Enabled:  true,
					Action:   ActionOpenHelp,
				},
				{
					Title:    t("item.privacy"),
					Subtitle: t("item.privacy.sub"),
					Icon:     "§",
					Color:    colorGreen,
					Enabled:  true,
					Action:   ActionOpenPrivacy,
				},
				{
					Title:    t("item.terms"),
					Subtitle: t("item.terms.sub"),
					Icon:     "¶",
					Color:    colorPurple,
					Enabled:  true,
					Action:   ActionOpenTerms,
				},
				{
					Title:    t("item.diagnostics"),
					Subtitle: t("item.diagnostics.sub"),
					Icon:     "≡",
					Color:    colorGray,
					Enabled:  true,
					Action:   ActionOpenDiagnostics,
				},
				{
					Title:    t("item.about"),
					Subtitle: t("item.about.sub", c.Version),
					Icon:     "i",
					Color:    colorGray,
				},
			},
		},
	}
}

func verificationItem(c Context) Item {
	item := Item{
		Title: c.Localizer.T("item.verification"),
		Icon:  "✓",
		Color: colorOrange,
	}
	if c.Verified {
		item.Subtitle = c.Localizer.T("item.verification.yes")
		item.Color = colorGreen
	} else {
		item.Subtitle = c.Localizer.T("item.verification.no")
	}
	return item
}

func tokenItem(c Context) Item {
	item := Item{
		Title: c.Localizer.T("item.token"),
		Icon:  "⚿",
		Color: colorGreen,
	}
	switch {
	case c.Token == nil:
		item.Subtitle = c.Localizer.T("item.token.none")
		item.Color = colorGray
	case c.Token.Expired(c.Now):
		item.Subtitle = c.Token.Label(c.Localizer, c.Now)
		item.Color = colorRed
	default:
		item.Subtitle = c.Token.Label(c.Localizer, c.Now)
	}
	return item
}

func toggleLabel(l i18n.Localizer, on bool) string {
	if on {
		return l.T("toggle.on")
	}
	return l.T("toggle.off")
}
