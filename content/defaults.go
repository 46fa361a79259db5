// ABOUTME: Hard-coded fallback document for every section, used when the store has no value.
// ABOUTME: Factories return a fresh copy per call so callers can never mutate shared state.
package content

func strptr(s string) *string { return &s }

// DefaultHero returns the fallback hero document.
func DefaultHero() *Hero {
	return &Hero{
		Heading:          "Building Safe Bridges for",
		HeadingHighlight: "Growing Hearts",
		Subheading:       "Thoughtfully delivered Child Contact Services across Melbourne.",
		Badge1:           "Weekday & Weekend Availability",
		Badge2:           "Metropolitan Melbourne",
		ImageURL:         "/static/img/family-placeholder.svg",
		ImageAlt:         "Happy family spending quality time together",
		CTAButtonText:    "Get in Touch",
		CTAButtonHref:    "#contact",
	}
}

// DefaultFeatures returns the fallback features document.
func DefaultFeatures() *Features {
	return &Features{
		SectionTitle: "What We Offer",
		Features: []FeatureItem{
			{
				Icon:        "Shield",
				Title:       "Supported Contact (Supervised Visits)",
				Description: "A trained supervisor is present throughout visits to ensure they run smoothly while allowing natural interaction.",
			},
			{
				Icon:        "Users",
				Title:       "Structured Changeovers",
				Description: "Supervised handovers where direct contact isn't appropriate, managed calmly and efficiently.",
			},
			{
				Icon:        "Heart",
				Title:       "Virtual Support",
				Description: "Online supervision for families where in-person services aren't suitable.",
			},
			{
				Icon:        "FileText",
				Title:       "Observation & Documentation",
				Description: "Clear, factual observation records prepared after each service.",
			},
		},
		Highlights: []HighlightItem{
			{Icon: "CheckCircle", Text: "A calm, modern approach to supervision"},
			{Icon: "Users", Text: "Skilled supervisors who put people at ease"},
			{Icon: "MapPin", Text: "Flexible, mobile services across Melbourne"},
			{Icon: "CheckCircle", Text: "Clear communication and dependable follow-through"},
			{Icon: "Heart", Text: "A service that feels organised without feeling cold"},
		},
		BestPracticeHeading:    "Our Approach",
		BestPracticeParagraph1: "We take a considered, modern approach to Child Contact Services. That means thoughtful planning, clear communication, and supervisors who know how to read a room — not just follow a checklist.",
		BestPracticeParagraph2: "Our supervisors are highly trained, calm, and personable. They know how to support families without making children or parents feel uneasy. Supervision is present when needed, subtle when possible, and always focused on helping time together feel natural rather than staged. This balance is what sets our service apart.",
		CTAButtonText:          "View all of our Services",
		CTAButtonHref:          "/services",
	}
}

// DefaultProcess returns the fallback process document.
func DefaultProcess() *Process {
	return &Process{
		SectionTitle:    "How It Works",
		SectionSubtitle: "A clear, structured approach to delivering quality Child Contact Services",
		Steps: []ProcessStep{
			{
				Number:    "01",
				Title:     "Intake & Review",
				Timeframe: "Initial consultation",
				Subtitle:  "Understanding Your Situation",
				Content:   "We take time to understand the arrangements, court orders, and individual circumstances.",
			},
			{
				Number:    "02",
				Title:     "Planning & Setup",
				Timeframe: "Service preparation",
				Subtitle:  "Scheduling & Coordination",
				Content:   "Services are scheduled thoughtfully, with locations and supervision needs agreed in advance.",
			},
			{
				Number:    "03",
				Title:     "Service Delivery",
				Timeframe: "Supervised sessions",
				Subtitle:  "Professional Support",
				Content:   "Contact or changeovers take place with a trained supervisor present.",
			},
			{
				Number:    "04",
				Title:     "Ongoing Support & Reporting",
				Timeframe: "Documentation",
				Subtitle:  "Continuous Care",
				Content:   "Documentation is completed and services continue as required.",
			},
		},
	}
}

// DefaultPricing returns the fallback pricing document.
func DefaultPricing() *Pricing {
	return &Pricing{
		SectionTitle:    "Our Professional Fees",
		SectionSubtitle: "Industry best-practice assistance with simple fixed fee services for you and your child",
		Plans: []PricingPlan{
			{Title: "Intake Assessment", Price: "$250", Description: "Fixed fee per parent"},
			{Title: "Weekday Supervision", Price: "$250", Description: "Fixed fee per 120 minute session"},
			{Title: "Weekend Supervision", Price: "$250", Description: "Fixed fee per 120 minute session"},
			{Title: "Additional Supervision", Price: "$125", Description: "Fixed fee per hour of additional supervision"},
		},
		AdditionalInfoTitle: "Supervised Observation Reports",
		AdditionalInfoText:  "Available upon request ($75 per session) with a minimum of four session reports ($300 minimum fee) for family law proceedings.",
		CTAHeading:          "You and your children are in safe hands",
		CTAButtonText:       "Enquire Here",
		PriceSuffix:         "inc GST",
	}
}

// DefaultServiceAreas returns the fallback service-areas document.
func DefaultServiceAreas() *ServiceAreas {
	return &ServiceAreas{
		SectionTitle:    "Service Areas",
		SectionSubtitle: "Family Bond Australia operates across metropolitan Melbourne as a mobile service. We meet families in agreed public locations that suit the child and the arrangement — removing the need for centre-based visits and helping services feel more natural.",
		HelperText:      "View full list of Council service areas below:",
		Areas: []ServiceArea{
			{
				Region: "Metropolitan South",
				Councils: []Council{
					{Name: "City of Kingston", Example: strptr("e.g. Cheltenham")},
					{Name: "City of Greater Dandenong", Example: nil},
					{Name: "City of Frankston", Example: nil},
					{Name: "City of Casey", Example: strptr("e.g. Narre Warren")},
					{Name: "Shire of Mornington Peninsula", Example: strptr("e.g. Rosebud")},
				},
			},
			{
				Region: "Inner Metropolitan South East",
				Councils: []Council{
					{Name: "City of Bayside", Example: strptr("e.g. Sandringham")},
					{Name: "City of Boroondara", Example: strptr("e.g. Camberwell")},
					{Name: "City of Glen Eira", Example: strptr("e.g. Caulfield North")},
					{Name: "City of Melbourne", Example: nil},
					{Name: "City of Port Phillip", Example: strptr("e.g. St Kilda")},
					{Name: "City of Stonnington", Example: strptr("e.g. Malvern")},
					{Name: "City of Yarra", Example: strptr("e.g. Richmond")},
				},
			},
			{
				Region: "Metropolitan West",
				Councils: []Council{
					{Name: "City of Brimbank", Example: strptr("e.g. Sunshine")},
					{Name: "City of Hobsons Bay", Example: strptr("e.g. Altona")},
					{Name: "City of Melton", Example: nil},
					{Name: "City of Moonee Valley", Example: strptr("e.g. Moonee Ponds")},
					{Name: "City of Maribyrnong", Example: strptr("e.g. Footscray")},
					{Name: "City of Wyndham", Example: strptr("e.g. Werribee")},
				},
			},
			{
				Region: "Metropolitan North",
				Councils: []Council{
					{Name: "City of Banyule", Example: strptr("e.g. Greensborough")},
					{Name: "City of Darebin", Example: strptr("e.g. Preston")},
					{Name: "City of Hume", Example: strptr("e.g. Broadmeadows")},
					{Name: "City of Merri-bek", Example: strptr("e.g. Coburg")},
					{Name: "Shire of Nillumbik", Example: strptr("e.g. Eltham")},
					{Name: "City of Whittlesea", Example: strptr("e.g. South Morang")},
				},
			},
			{
				Region: "Metropolitan East",
				Councils: []Council{
					{Name: "City of Knox", Example: strptr("e.g. Wantirna South")},
					{Name: "City of Manningham", Example: strptr("e.g. Doncaster")},
					{Name: "City of Maroondah", Example: strptr("e.g. Ringwood")},
					{Name: "City of Monash", Example: strptr("e.g. Glen Waverley")},
					{Name: "City of Whitehorse", Example: strptr("e.g. Nunawading")},
					{Name: "Shire of Yarra Ranges", Example: strptr("e.g. Lilydale")},
				},
			},
		},
	}
}

// DefaultAbout returns the fallback about document.
func DefaultAbout() *About {
	return &About{
		SectionLabel: "About Us",
		Heading:      "Family Bond Australia exists to bring structure, ease, and reassurance to families navigating separation.",
		Paragraph1:   "We approach each matter with care and clarity, understanding how important it is for children to feel settled and for parents to feel confident in the process. Our work is guided by recognised industry principles and Attorney-General guidelines, and shaped by real-world experience working alongside families, children, and family law professionals. Every service is delivered with consistency, discretion, and attention to detail.",
		Paragraph2:   "We are Melbourne-based and operate as a fully mobile service, offering weekday and weekend availability across metropolitan areas. Our flexible model allows us to meet families in environments that feel familiar, appropriate, and comfortable for children.",
		Features: []string{
			"Guided by industry principles & Attorney-General guidelines",
			"Fully mobile service across Melbourne",
			"Weekday & weekend availability",
		},
		ImageURL: "/static/img/family-placeholder.svg",
		ImageAlt: "Family spending quality time together",
	}
}

// DefaultContact returns the fallback contact document.
func DefaultContact() *Contact {
	return &Contact{
		SectionTitle:    "Contact Us",
		SectionSubtitle: "If you're looking for a composed, capable Child Contact Service that does things thoughtfully, we're here to help. Get in touch to discuss next steps or begin the intake process.",
		EnquiryOptions: []EnquiryOption{
			{Value: "supervision", Label: "I want to proceed with Child Contact Services"},
			{Value: "availability", Label: "I want to learn about current availability"},
			{Value: "questions", Label: "I have some questions about your services"},
			{Value: "employment", Label: "I am interested in employment"},
			{Value: "solicitor", Label: "I am a family law solicitor"},
		},
		SuccessHeading: "Thank you for your enquiry!",
		SuccessMessage: "We will respond within 24 hours. If you have any urgent questions, please call us at",
		PhoneNumber:    "0493 429 730",
	}
}

// DefaultFooter returns the fallback footer document.
func DefaultFooter() *Footer {
	return &Footer{
		Tagline:         "Thoughtfully delivered Child Contact Services across Melbourne. Building safe bridges for growing hearts.",
		GetInTouchTitle: "Get In Touch",
		QuickLinksTitle: "Quick Links",
		ContactTitle:    "Contact",
		Phone:           "0493 429 730",
		Email:           "contact@familyfathers.com.au",
		CopyrightText:   "Family Bond Australia",
		NavLinks: []NavLink{
			{Href: "#about", Label: "About Us"},
			{Href: "/services", Label: "Our Services"},
			{Href: "#process", Label: "How It Works"},
			{Href: "#pricing", Label: "Fees"},
			{Href: "/resources", Label: "Resources"},
			{Href: "#contact", Label: "Contact Us"},
		},
	}
}

// DefaultNavigation returns the fallback navigation links, shared with the
// default footer.
func DefaultNavigation() *Navigation {
	nav := Navigation(DefaultFooter().NavLinks)
	return &nav
}

// DefaultSiteSettings returns the fallback site settings.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:        "Family Bond Australia",
		SiteDescription: "Thoughtfully delivered Child Contact Services across Melbourne",
		Phone:           "0493 429 730",
		Email:           "contact@familyfathers.com.au",
	}
}

// DefaultResources returns the fallback resources document with no uploads.
func DefaultResources() *Resources {
	return &Resources{
		SectionTitle:    "Resources",
		SectionSubtitle: "Important documents and policies for our services",
		Documents:       []ResourceDocument{},
	}
}

// DefaultServices returns the fallback services page document.
func DefaultServices() *Services {
	return &Services{
		PageTitle:    "What We Offer",
		PageSubtitle: "Thoughtfully delivered Child Contact Services across Melbourne",
		Services: []ServiceItem{
			{
				Title:            "Supported Contact (Supervised Visits)",
				ShortDescription: "A trained supervisor is present throughout visits to ensure they run smoothly while allowing natural interaction.",
				FullDescription:  "Supported contact involves a trained supervisor remaining present throughout a parent's time with their child. The role of the supervisor is to ensure the visit runs smoothly while allowing space for genuine interaction. Our supervisors are warm, approachable, and experienced in creating relaxed environments. Their presence is designed to provide reassurance - not interruption - so parents and children can focus on being together.",
			},
			{
				Title:            "Structured Changeovers",
				ShortDescription: "Supervised handovers where direct contact isn't appropriate, managed calmly and efficiently.",
				FullDescription:  "Structured changeovers are available where direct handovers are not appropriate. This service removes the need for parents to interact and ensures transitions are handled calmly and efficiently. The supervisor manages timing, communication, and the exchange itself, helping children move between parents in a predictable and supported way.",
			},
			{
				Title:            "Virtual Support",
				ShortDescription: "Online supervision for families where in-person services aren't suitable.",
				FullDescription:  "Virtual supervision offers an alternative where in-person services aren't suitable. Sessions are conducted online with oversight provided throughout, ensuring continuity of contact while maintaining independent supervision.",
			},
			{
				Title:            "Observation & Documentation",
				ShortDescription: "Clear, factual observation records prepared after each service.",
				FullDescription:  "Following each service, a clear and factual observation record is prepared. These summaries can be shared with legal representatives or used to support ongoing arrangements. Reports are objective, well-structured, and written with care.",
			},
		},
		FeeSectionTitle:    "Fees",
		FeeSectionSubtitle: "Transparent pricing for all our services",
		FeePlans: []ServiceFeePlan{
			{Title: "Supervised Contact (Supported Visits)", Price: "$250", Description: "per 2 hour session"},
			{Title: "Structured Changeovers", Price: "$125", Description: "per changeover"},
			{Title: "Virtual Supervision", Price: "$125", Description: "per session"},
			{Title: "Observation & Documentation", Price: "Included", Description: "with each service"},
		},
		TravelTitle:             "Travel",
		TravelText:              "Travel is charged separately based on location and distance and will be confirmed prior to service delivery.",
		AdditionalServicesTitle: "Additional Services",
		AdditionalServicesText:  "These services are quoted individually, based on the scope and time involved.",
		AdditionalServicesList: []string{
			"Home safety checks",
			"Affidavits",
			"Subpoena responses",
			"Court appearances",
		},
		PaymentTitle: "Payment & Invoicing",
		PaymentText:  "Invoices are issued in line with scheduled services and must be finalised prior to service delivery, unless otherwise agreed. We aim to keep payment processes straightforward and consistent. If you have questions about fees or would like a tailored estimate, we're happy to talk things through as part of the intake process.",
	}
}
