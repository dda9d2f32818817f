package learning

// DefaultLessonXP is awarded for completing a lesson.
const DefaultLessonXP = 10

// Difficulty levels.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// DefaultCatalog returns the built-in course content.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTracks(), defaultLessons(), defaultQuizzes(), defaultResources())
	if err == nil {
		c, err = c.WithPhishingEmails(defaultPhishingEmails())
	}
	if err != nil {
		panic("invalid built-in catalog: " + err.Error())
	}

	return c
}

func defaultTracks() []Track {
	return []Track{
		{ID: "basics", Title: "Cybersecurity Basics"},
		{ID: "web", Title: "Web Security"},
		{ID: "network", Title: "Network & Infra"},
		{ID: "red", Title: "Red Team / Hacking"},
	}
}

func defaultLessons() []Lesson {
	return []Lesson{
		{
			ID: "phishing-101", Title: "What is Phishing?",
			Summary:    "Phishing is a social engineering attack used to steal sensitive information.",
			Difficulty: DifficultyBeginner, Category: "Social Engineering", Track: "basics", XP: DefaultLessonXP,
			Bullets: []string{
				"Attackers impersonate trusted services",
				"Fake login portals harvest passwords",
				"Always inspect sender and domain",
			},
		},
		{
			ID: "passwords-101", Title: "Password Security",
			Summary:    "Why long unique passwords and password managers matter.",
			Difficulty: DifficultyBeginner, Category: "Authentication", Track: "basics", XP: DefaultLessonXP,
			Bullets:    []string{"Use long passphrases", "Never reuse passwords", "Enable MFA"},
		},
		{
			ID: "malware-101", Title: "Malware Overview",
			Summary:    "Types of malware and common delivery techniques.",
			Difficulty: DifficultyBeginner, Category: "Malware", Track: "basics", XP: DefaultLessonXP,
			Bullets: []string{
				"Viruses, worms, trojans, ransomware",
				"Phishing and malicious downloads",
				"Keep software patched",
			},
		},
		{
			ID: "xss-101", Title: "Cross-Site Scripting (XSS)",
			Summary:    "How XSS lets attackers run scripts in victim browsers.",
			Difficulty: DifficultyIntermediate, Category: "Web Security", Track: "web", XP: DefaultLessonXP,
			Bullets: []string{
				"Reflected vs stored XSS",
				"Sanitize output and use CSP",
				"Use secure templating frameworks",
			},
		},
		{
			ID: "sqli-101", Title: "SQL Injection (SQLi)",
			Summary:    "Manipulating database queries via unsanitized input.",
			Difficulty: DifficultyIntermediate, Category: "Web Security", Track: "web", XP: DefaultLessonXP,
			Bullets: []string{
				"Use prepared statements",
				"Classic payloads like ' OR '1'='1'",
				"Principle of least privilege for DB users",
			},
		},
		{
			ID: "network-basics", Title: "Network Security Basics",
			Summary:    "Firewalls, segmentation, VPNs and IDS/IPS.",
			Difficulty: DifficultyIntermediate, Category: "Networking", Track: "network", XP: DefaultLessonXP,
			Bullets:    []string{"Firewalls filter traffic", "Segment critical assets", "Monitor with IDS/IPS"},
		},
		{
			ID: "recon-101", Title: "Reconnaissance & OSINT",
			Summary:    "How attackers gather information before an attack.",
			Difficulty: DifficultyIntermediate, Category: "Red Team", Track: "red", XP: DefaultLessonXP,
			Bullets: []string{
				"Use public sources to map targets",
				"Passive vs active recon",
				"Respect legality and ethics",
			},
		},
		{
			ID: "cloud-iam", Title: "Cloud IAM Basics",
			Summary:    "Secure identity & access management for cloud resources.",
			Difficulty: DifficultyAdvanced, Category: "Cloud", Track: "network", XP: DefaultLessonXP,
			Bullets:    []string{"Principle of least privilege", "Avoid long-lived keys", "Use roles and MFA"},
		},
		{
			ID: "ransomware-101", Title: "Ransomware Explained",
			Summary:    "How ransomware operates and defense strategies.",
			Difficulty: DifficultyAdvanced, Category: "Malware", Track: "basics", XP: DefaultLessonXP,
			Bullets:    []string{"Backup strategies", "Network segmentation", "Incident response planning"},
		},
		{
			ID: "bugbounty-101", Title: "Bug Bounty Intro",
			Summary:    "Getting started with vulnerability research and responsible disclosure.",
			Difficulty: DifficultyBeginner, Category: "Hacking", Track: "red", XP: DefaultLessonXP,
			Bullets:    []string{"Read program policies", "Start with recon", "Write concise reports"},
		},
	}
}

func defaultQuizzes() []Quiz {
	return []Quiz{
		{
			ID: "quiz-phishing", Title: "Phishing Quiz",
			Questions: []Question{
				{
					ID: "q1", Text: "Which is a sign of phishing?",
					Options: []string{"Sender mismatch", "Perfect grammar", "Long emails", "AES encryption"},
					Answer:  0,
				},
				{
					ID: "q2", Text: "A link like https://accounts.verify-login.com is:",
					Options: []string{"Safe", "Suspicious", "Safe if HTTPS", "From Google"},
					Answer:  1,
				},
			},
		},
		{
			ID: "quiz-passwords", Title: "Password Quiz",
			Questions: []Question{
				{
					ID: "p1", Text: "Best way to store many passwords?",
					Options: []string{"Browser", "Password manager", "Paper", "Reuse one"},
					Answer:  1,
				},
				{
					ID: "p2", Text: "MFA stands for?",
					Options: []string{"Multi-Factor Auth", "Many Forms Auth", "My Fancy Auth", "Multi File Auth"},
					Answer:  0,
				},
			},
		},
		{
			ID: "quiz-malware", Title: "Malware Quiz",
			Questions: []Question{
				{
					ID: "m1", Text: "Which malware encrypts files?",
					Options: []string{"Worm", "Trojan", "Ransomware", "Adware"},
					Answer:  2,
				},
			},
		},
		{
			ID: "quiz-web", Title: "Web Security Quiz",
			Questions: []Question{
				{
					ID: "w1", Text: "XSS is caused by?",
					Options: []string{"Unsanitized input", "Strong passwords", "Open ports", "Slow server"},
					Answer:  0,
				},
				{
					ID: "w2", Text: "SQLi prevention uses?",
					Options: []string{"Prepared statements", "MFA", "Firewall only", "Cache"},
					Answer:  0,
				},
			},
		},
	}
}

func defaultResources() []Resource {
	return []Resource{
		{ID: "r1", Title: "OWASP Top 10", Type: "Guide", URL: "https://owasp.org/www-project-top-ten/"},
		{ID: "r2", Title: "Web Application Hacker's Handbook", Type: "Book", URL: "https://example.com/whh"},
		{ID: "r3", Title: "Intro to OSINT", Type: "Article", URL: "https://example.com/osint"},
	}
}
