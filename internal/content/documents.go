package content

// Document palette. Colors are hex strings consumed by lipgloss.
const (
	colorBlue   = "#4f8ef7"
	colorGreen  = "#3fb97a"
	colorAmber  = "#f2a93b"
	colorRed    = "#e5566c"
	colorPurple = "#9b6cf0"
	colorTeal   = "#2bb3b1"
	colorPink   = "#e86fb0"
	colorSlate  = "#7b8aa3"
)

// PrivacyPolicy returns the privacy policy clauses in display order.
func PrivacyPolicy() []Entry {
	return []Entry{
		{
			Title:       "Information We Collect",
			Description: "What we gather when you use Bloomify",
			Color:       colorBlue,
			Body:        "We collect the details you give us when you create an account, book a service or contact support, along with limited technical data from your device.",
			Bullets: []string{
				"Name, email address and phone number",
				"Location used to match nearby providers",
				"Booking history and reviews you leave",
				"Device model, operating system and app version",
			},
		},
		{
			Title:       "How We Use Your Information",
			Description: "Why we process your data",
			Color:       colorGreen,
			Body:        "Your information lets us match you with providers, process payments, send booking updates and keep the platform safe.",
			Bullets: []string{
				"Matching you with available providers",
				"Sending confirmations and reminders",
				"Detecting fraud and abuse",
				"Improving features based on aggregate usage",
			},
		},
		{
			Title:       "Sharing With Providers",
			Description: "What a provider sees about you",
			Color:       colorAmber,
			Body:        "When you book, the provider receives only what they need to deliver the service.",
			Bullets: []string{
				"Your first name and profile picture",
				"The service address for that booking",
				"Notes you attach to the booking",
			},
		},
		{
			Title:       "Third-Party Services",
			Description: "Partners that process data for us",
			Color:       colorPurple,
			Body:        "We rely on a small number of processors bound by contract to protect your data.",
			Bullets: []string{
				"Stripe for card payments",
				"Cloud hosting for storage and backups",
				"Push notification delivery services",
			},
		},
		{
			Title:       "Data Retention",
			Description: "How long we keep records",
			Color:       colorTeal,
			Body:        "Account data is kept while your account is active. Booking and payment records are retained for as long as tax and accounting law requires.",
			Bullets: []string{
				"Deleted accounts are purged within 30 days",
				"Backups roll off within 90 days",
			},
		},
		{
			Title:       "Security",
			Description: "How your data is protected",
			Color:       colorRed,
			Body:        "Data is encrypted in transit and at rest. Access tokens expire and can be revoked from the Active Sessions screen at any time.",
			Bullets: []string{
				"TLS for every API request",
				"Hashed passwords, never stored in plain text",
				"Session revocation from any signed-in device",
			},
		},
		{
			Title:       "Your Rights",
			Description: "Control over your personal data",
			Color:       colorPink,
			Body:        "You can access, correct, export or delete your personal data.",
			Bullets: []string{
				"Edit your profile from Account settings",
				"Request an export from Help & FAQ",
				"Delete your account from Account settings",
			},
		},
		{
			Title:       "Cookies and Local Storage",
			Description: "What is stored on your device",
			Color:       colorSlate,
			Body:        "The app caches images and recent results on your device to load faster. You can clear this cache from Data settings.",
			Bullets: []string{
				"Cached profile pictures and provider images",
				"Saved preferences such as theme and language",
			},
		},
		{
			Title:       "Children's Privacy",
			Description: "Age requirements",
			Color:       colorAmber,
			Body:        "Bloomify is not intended for anyone under 18 and we do not knowingly collect data from minors.",
		},
		{
			Title:       "Changes to This Policy",
			Description: "How we notify you of updates",
			Color:       colorBlue,
			Body:        "We will notify you in the app before material changes take effect. Continued use after that date means you accept the updated policy.",
		},
	}
}

// TermsOfService returns the terms grouped into chapters.
func TermsOfService() []Section {
	return []Section{
		{
			Title: "Getting Started",
			Color: colorBlue,
			Entries: []Entry{
				{
					Title:       "Eligibility",
					Description: "Who can use Bloomify",
					Color:       colorBlue,
					Body:        "You must be at least 18 years old and able to form a binding contract to use the platform.",
				},
				{
					Title:       "Your Account",
					Description: "Keeping your account secure",
					Color:       colorBlue,
					Body:        "You are responsible for the activity on your account and for keeping your credentials confidential.",
					Bullets: []string{
						"Use accurate registration details",
						"Sign out of devices you no longer use",
					},
				},
				{
					Title:       "Acceptance of Terms",
					Description: "Agreeing to these terms",
					Color:       colorBlue,
					Body:        "By creating an account or making a booking you agree to these terms and to the privacy policy.",
				},
			},
		},
		{
			Title: "Bookings",
			Color: colorGreen,
			Entries: []Entry{
				{
					Title:       "Making a Booking",
					Description: "How bookings are confirmed",
					Color:       colorGreen,
					Body:        "A booking is confirmed once the provider accepts it and payment is authorised.",
				},
				{
					Title:       "Cancellations",
					Description: "Changing your plans",
					Color:       colorGreen,
					Body:        "You may cancel from the booking screen. Cancelling within 24 hours of the start time may incur a fee set by the provider.",
					Bullets: []string{
						"Free cancellation more than 24 hours ahead",
						"Late cancellations may be charged",
					},
				},
				{
					Title:       "No-Shows",
					Description: "Missed appointments",
					Color:       colorGreen,
					Body:        "If you are not present at the agreed time the provider may mark the booking as a no-show.",
				},
			},
		},
		{
			Title: "Payments & Billing",
			Color: colorAmber,
			Entries: []Entry{
				{
					Title:       "Payment Methods",
					Description: "How you pay",
					Color:       colorAmber,
					Body:        "Card payments are processed by Stripe. Some providers also accept cash, shown on their profile.",
				},
				{
					Title:       "Charges and Fees",
					Description: "When you are charged",
					Color:       colorAmber,
					Body:        "You are charged when a booking is confirmed. Service fees are shown before you pay.",
					Bullets: []string{
						"Prices include applicable taxes",
						"Service fees are itemised at checkout",
					},
				},
				{
					Title:       "Refund Policy",
					Description: "Getting your money back",
					Color:       colorAmber,
					Body:        "Refunds are issued to the original payment method for provider no-shows or services not delivered as described, after review by our team.",
					Bullets: []string{
						"Report problems within 48 hours",
						"Approved refunds arrive in 5 to 10 business days",
					},
				},
			},
		},
		{
			Title: "Conduct",
			Color: colorRed,
			Entries: []Entry{
				{
					Title:       "Community Guidelines",
					Description: "Expected behaviour",
					Color:       colorRed,
					Body:        "Treat providers and other users with respect. Harassment and discrimination are not tolerated.",
				},
				{
					Title:       "Suspension",
					Description: "When we restrict accounts",
					Color:       colorRed,
					Body:        "We may suspend or close accounts that break these terms or put others at risk.",
				},
			},
		},
		{
			Title: "Legal",
			Color: colorSlate,
			Entries: []Entry{
				{
					Title:       "Limitation of Liability",
					Description: "Our role as a marketplace",
					Color:       colorSlate,
					Body:        "Providers are independent. Bloomify facilitates bookings and is not liable for the services they deliver, to the extent permitted by law.",
				},
				{
					Title:       "Disputes",
					Description: "Resolving disagreements",
					Color:       colorSlate,
					Body:        "Disputes must be reported within 48 hours after the service. We mediate between you and the provider before any other step.",
				},
				{
					Title:       "Changes to These Terms",
					Description: "Updates and notice",
					Color:       colorSlate,
					Body:        "We may update these terms and will give notice in the app before changes take effect.",
				},
			},
		},
	}
}

// FAQ returns the help centre questions.
func FAQ() []Entry {
	return []Entry{
		{
			Title:       "How do I change my profile picture?",
			Description: "Account",
			Color:       colorBlue,
			Body:        "Open Account settings and choose Change profile picture. Images must be 5MB or smaller.",
		},
		{
			Title:       "Why was I signed out?",
			Description: "Sessions",
			Color:       colorPurple,
			Body:        "Access tokens expire. Use Refresh token on the token card, or sign in again if the refresh token has also expired.",
		},
		{
			Title:       "How do I sign out other devices?",
			Description: "Sessions",
			Color:       colorPurple,
			Body:        "Open Active sessions, select a device and revoke it.",
		},
		{
			Title:       "What does clearing the cache do?",
			Description: "Data",
			Color:       colorTeal,
			Body:        "It removes cached images and responses stored on this device. Your account and bookings are not affected.",
		},
		{
			Title:       "How is my rating calculated?",
			Description: "Profile",
			Color:       colorAmber,
			Body:        "Your rating is the average of the scores providers give after completed bookings.",
		},
		{
			Title:       "How do I request a refund?",
			Description: "Payments",
			Color:       colorGreen,
			Body:        "Report the problem from the booking screen within 48 hours. Our team reviews every request.",
			Bullets: []string{
				"Attach photos if the service was incomplete",
				"Refunds go back to the original payment method",
			},
		},
		{
			Title:       "How do I get verified?",
			Description: "Account",
			Color:       colorBlue,
			Body:        "Verification is completed after your phone number and email are confirmed.",
		},
	}
}
