package i18n

var tables = map[string]map[string]string{
	"en": english,
	"sw": swahili,
}

var english = map[string]string{
	"settings.title": "Settings",

	"section.account": "Account",
	"section.tokens":  "Tokens & Sessions",
	"section.app":     "App",
	"section.data":    "Data",
	"section.support": "Support",

	"item.edit_profile":         "Edit profile",
	"item.edit_profile.sub":     "Name, username and contact details",
	"item.change_picture":       "Change profile picture",
	"item.change_picture.sub":   "JPEG or PNG, up to 5MB",
	"item.verification":         "Verification",
	"item.verification.yes":     "Your account is verified",
	"item.verification.no":      "Not verified yet",
	"item.sign_out":             "Sign out",
	"item.sign_out.sub":         "Remove tokens from this device",
	"item.token":                "Access token",
	"item.token.none":           "Not signed in",
	"token.no_expiry":           "no expiry",
	"token.expires_in":          "expires in %s",
	"token.expired_ago":         "expired %s ago",
	"item.refresh_token":        "Refresh token",
	"item.refresh_token.sub":    "Request a new access token",
	"item.sessions":             "Active sessions",
	"item.sessions.sub":         "%d signed-in devices",
	"item.theme":                "Theme",
	"item.theme.sub":            "Colour scheme for this console",
	"item.notifications":        "Notifications",
	"item.notifications.sub":    "Booking reminders and updates",
	"item.language":             "Language",
	"item.language.sub":         "Display language",
	"item.clear_cache":          "Clear cache",
	"item.clear_cache.sub":      "%s stored on this device",
	"item.device":               "Device ID",
	"item.help":                 "Help & FAQ",
	"item.help.sub":             "Answers to common questions",
	"item.privacy":              "Privacy policy",
	"item.privacy.sub":          "How we handle your data",
	"item.terms":                "Terms of service",
	"item.terms.sub":            "Rules for using Bloomify",
	"item.diagnostics":          "Diagnostics",
	"item.diagnostics.sub":      "Recent log lines",
	"item.about":                "About",
	"item.about.sub":            "sprig %s",
	"item.refresh_profile":      "Reload profile",
	"item.refresh_profile.sub":  "Fetch the latest account details",
	"toggle.on":                 "On",
	"toggle.off":                "Off",
	"profile.loading":           "Loading profile...",
	"profile.failed":            "Profile unavailable",
	"profile.verified":          "Verified",
	"toast.cache_cleared":       "Cache cleared (%s freed)",
	"toast.cache_failed":        "Could not clear cache: %s",
	"toast.token_refreshed":     "Access token refreshed",
	"toast.token_failed":        "Token refresh failed: %s",
	"toast.signed_out":          "Signed out",
	"toast.signout_failed":      "Sign out failed: %s",
	"toast.upload_ok":           "Profile picture updated",
	"toast.upload_failed":       "Upload failed: %s",
	"toast.session_revoked":     "Session revoked",
	"toast.session_failed":      "Could not revoke session: %s",
	"toast.prefs_failed":        "Could not save preferences: %s",
	"toast.throttled":           "Please wait a moment before trying again",
	"toast.edit_profile":        "Edit your profile in the Bloomify app",
	"search.placeholder":        "Search...",
	"search.no_results":         "No results for \"%s\"",
	"doc.privacy":               "Privacy Policy",
	"doc.terms":                 "Terms of Service",
	"doc.help":                  "Help & FAQ",
	"doc.diagnostics":           "Diagnostics",
	"sessions.title":            "Active Sessions",
	"sessions.current":          "This device",
	"sessions.empty":            "No active sessions",
	"sessions.loading":          "Loading sessions...",
	"picture.prompt":            "Path to image file",
}

var swahili = map[string]string{
	"settings.title": "Mipangilio",

	"section.account": "Akaunti",
	"section.tokens":  "Tokeni na Vipindi",
	"section.app":     "Programu",
	"section.data":    "Data",
	"section.support": "Msaada",

	"item.edit_profile":         "Hariri wasifu",
	"item.edit_profile.sub":     "Jina, jina la mtumiaji na mawasiliano",
	"item.change_picture":       "Badilisha picha ya wasifu",
	"item.change_picture.sub":   "JPEG au PNG, hadi 5MB",
	"item.verification":         "Uthibitisho",
	"item.verification.yes":     "Akaunti yako imethibitishwa",
	"item.verification.no":      "Bado haijathibitishwa",
	"item.sign_out":             "Toka",
	"item.sign_out.sub":         "Ondoa tokeni kwenye kifaa hiki",
	"item.token":                "Tokeni ya ufikiaji",
	"item.token.none":           "Hujaingia",
	"token.no_expiry":           "haiishi muda",
	"token.expires_in":          "inaisha baada ya %s",
	"token.expired_ago":         "iliisha %s zilizopita",
	"item.refresh_token":        "Onyesha upya tokeni",
	"item.refresh_token.sub":    "Omba tokeni mpya ya ufikiaji",
	"item.sessions":             "Vipindi hai",
	"item.sessions.sub":         "Vifaa %d vimeingia",
	"item.theme":                "Mandhari",
	"item.theme.sub":            "Rangi za dashibodi hii",
	"item.notifications":        "Arifa",
	"item.notifications.sub":    "Vikumbusho na taarifa za uhifadhi",
	"item.language":             "Lugha",
	"item.language.sub":         "Lugha ya kuonyesha",
	"item.clear_cache":          "Futa akiba",
	"item.clear_cache.sub":      "%s zimehifadhiwa kwenye kifaa hiki",
	"item.device":               "Kitambulisho cha kifaa",
	"item.help":                 "Msaada na Maswali",
	"item.help.sub":             "Majibu ya maswali ya kawaida",
	"item.privacy":              "Sera ya faragha",
	"item.privacy.sub":          "Jinsi tunavyoshughulikia data yako",
	"item.terms":                "Masharti ya huduma",
	"item.terms.sub":            "Kanuni za kutumia Bloomify",
	"item.diagnostics":          "Uchunguzi",
	"item.diagnostics.sub":      "Mistari ya hivi karibuni ya kumbukumbu",
	"item.about":                "Kuhusu",
	"item.about.sub":            "sprig %s",
	"item.refresh_profile":      "Pakia upya wasifu",
	"item.refresh_profile.sub":  "Pata maelezo mapya ya akaunti",
	"toggle.on":                 "Imewashwa",
	"toggle.off":                "Imezimwa",
	"profile.loading":           "Inapakia wasifu...",
	"profile.failed":            "Wasifu haupatikani",
	"profile.verified":          "Imethibitishwa",
	"toast.cache_cleared":       "Akiba imefutwa (%s)",
	"toast.cache_failed":        "Imeshindwa kufuta akiba: %s",
	"toast.token_refreshed":     "Tokeni imeonyeshwa upya",
	"toast.token_failed":        "Imeshindwa kuonyesha upya tokeni: %s",
	"toast.signed_out":          "Umetoka",
	"toast.signout_failed":      "Imeshindwa kutoka: %s",
	"toast.upload_ok":           "Picha ya wasifu imesasishwa",
	"toast.upload_failed":       "Upakiaji umeshindwa: %s",
	"toast.session_revoked":     "Kipindi kimefutwa",
	"toast.session_failed":      "Imeshindwa kufuta kipindi: %s",
	"toast.prefs_failed":        "Imeshindwa kuhifadhi mapendeleo: %s",
	"toast.throttled":           "Tafadhali subiri kidogo kabla ya kujaribu tena",
	"toast.edit_profile":        "Hariri wasifu wako kwenye programu ya Bloomify",
	"search.placeholder":        "Tafuta...",
	"search.no_results":         "Hakuna matokeo ya \"%s\"",
	"doc.privacy":               "Sera ya Faragha",
	"doc.terms":                 "Masharti ya Huduma",
	"doc.help":                  "Msaada na Maswali",
	"doc.diagnostics":           "Uchunguzi",
	"sessions.title":            "Vipindi Hai",
	"sessions.current":          "Kifaa hiki",
	"sessions.empty":            "Hakuna vipindi hai",
	"sessions.loading":          "Inapakia vipindi...",
	"picture.prompt":            "Njia ya faili la picha",
}
