// ABOUTME: Typed schemas for every editable section of the site.
// ABOUTME: JSON tags match the persisted document shape; slices preserve display order.
package content

// Hero is the landing banner: heading, badges, image, and call to action.
type Hero struct {
	Heading          string `json:"heading"`
	HeadingHighlight string `json:"headingHighlight"`
	Subheading       string `json:"subheading"`
	Badge1           string `json:"badge1"`
	Badge2           string `json:"badge2"`
	ImageURL         string `json:"imageUrl"`
	ImageAlt         string `json:"imageAlt"`
	CTAButtonText    string `json:"ctaButtonText"`
	CTAButtonHref    string `json:"ctaButtonHref"`
}

// FeatureItem is one card in the features grid.
type FeatureItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HighlightItem is one bullet in the highlights list.
type HighlightItem struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Features holds the feature cards, highlights, and the approach copy.
type Features struct {
	SectionTitle           string          `json:"sectionTitle"`
	Features               []FeatureItem   `json:"features"`
	Highlights             []HighlightItem `json:"highlights"`
	BestPracticeHeading    string          `json:"bestPracticeHeading"`
	BestPracticeParagraph1 string          `json:"bestPracticeParagraph1"`
	BestPracticeParagraph2 string          `json:"bestPracticeParagraph2"`
	CTAButtonText          string          `json:"ctaButtonText"`
	CTAButtonHref          string          `json:"ctaButtonHref"`
}

// ProcessStep is one numbered step of the intake-to-reporting flow.
type ProcessStep struct {
	Number    string `json:"number"`
	Title     string `json:"title"`
	Timeframe string `json:"timeframe"`
	Subtitle  string `json:"subtitle"`
	Content   string `json:"content"`
}

// Process holds the "How It Works" steps.
type Process struct {
	SectionTitle    string        `json:"sectionTitle"`
	SectionSubtitle string        `json:"sectionSubtitle"`
	Steps           []ProcessStep `json:"steps"`
}

// PricingPlan is one fee card on the home page.
type PricingPlan struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Highlight   bool   `json:"highlight"`
}

// Pricing holds the home-page fee cards and surrounding copy.
type Pricing struct {
	SectionTitle        string        `json:"sectionTitle"`
	SectionSubtitle     string        `json:"sectionSubtitle"`
	Plans               []PricingPlan `json:"plans"`
	AdditionalInfoTitle string        `json:"additionalInfoTitle"`
	AdditionalInfoText  string        `json:"additionalInfoText"`
	CTAHeading          string        `json:"ctaHeading"`
	CTAButtonText       string        `json:"ctaButtonText"`
	PriceSuffix         string        `json:"priceSuffix"`
}

// Council is one local government area within a service region.
// Example is null when no suburb example is shown.
type Council struct {
	Name    string  `json:"name"`
	Example *string `json:"example"`
}

// ServiceArea groups councils under a metropolitan region.
type ServiceArea struct {
	Region   string    `json:"region"`
	Councils []Council `json:"councils"`
}

// ServiceAreas holds the coverage map of regions and councils.
type ServiceAreas struct {
	SectionTitle    string        `json:"sectionTitle"`
	SectionSubtitle string        `json:"sectionSubtitle"`
	HelperText      string        `json:"helperText"`
	Areas           []ServiceArea `json:"areas"`
}

// About holds the about-us copy, feature bullets, and image.
type About struct {
	SectionLabel string   `json:"sectionLabel"`
	Heading      string   `json:"heading"`
	Paragraph1   string   `json:"paragraph1"`
	Paragraph2   string   `json:"paragraph2"`
	Features     []string `json:"features"`
	ImageURL     string   `json:"imageUrl"`
	ImageAlt     string   `json:"imageAlt"`
}

// EnquiryOption is one choice in the contact form's enquiry dropdown.
type EnquiryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Contact holds the contact section copy and form options.
type Contact struct {
	SectionTitle    string          `json:"sectionTitle"`
	SectionSubtitle string          `json:"sectionSubtitle"`
	EnquiryOptions  []EnquiryOption `json:"enquiryOptions"`
	SuccessHeading  string          `json:"successHeading"`
	SuccessMessage  string          `json:"successMessage"`
	PhoneNumber     string          `json:"phoneNumber"`
}

// NavLink is one navigation entry (header or footer).
type NavLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Navigation is the standalone nav-links section.
type Navigation []NavLink

// Footer holds the footer columns, contact details, and nav links.
type Footer struct {
	Tagline         string    `json:"tagline"`
	GetInTouchTitle string    `json:"getInTouchTitle"`
	QuickLinksTitle string    `json:"quickLinksTitle"`
	ContactTitle    string    `json:"contactTitle"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	CopyrightText   string    `json:"copyrightText"`
	NavLinks        []NavLink `json:"navLinks"`
}

// SiteSettings holds site-wide metadata and contact details.
type SiteSettings struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
}

// ResourceDocument is an uploaded file's metadata. ID is caller-generated;
// UploadedAt is an RFC 3339 timestamp string.
type ResourceDocument struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt"`
}

// Resources holds the downloadable documents page content.
type Resources struct {
	SectionTitle    string             `json:"sectionTitle"`
	SectionSubtitle string             `json:"sectionSubtitle"`
	Documents       []ResourceDocument `json:"documents"`
}

// ServiceItem is one offering on the services page.
type ServiceItem struct {
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	FullDescription  string `json:"fullDescription"`
}

// ServiceFeePlan is one fee row on the services page.
type ServiceFeePlan struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Services holds the full services page: offerings, fees, travel,
// additional services, and payment terms.
type Services struct {
	PageTitle               string           `json:"pageTitle"`
	PageSubtitle            string           `json:"pageSubtitle"`
	Services                []ServiceItem    `json:"services"`
	FeeSectionTitle         string           `json:"feeSectionTitle"`
	FeeSectionSubtitle      string           `json:"feeSectionSubtitle"`
	FeePlans                []ServiceFeePlan `json:"feePlans"`
	TravelTitle             string           `json:"travelTitle"`
	TravelText              string           `json:"travelText"`
	AdditionalServicesTitle string           `json:"additionalServicesTitle"`
	AdditionalServicesText  string           `json:"additionalServicesText"`
	AdditionalServicesList  []string         `json:"additionalServicesList"`
	PaymentTitle            string           `json:"paymentTitle"`
	PaymentText             string           `json:"paymentText"`
}

// Home is the aggregate returned for the home page and the all-sections API
// response: the nine sections the landing page renders.
type Home struct {
	Hero         *Hero         `json:"hero"`
	Features     *Features     `json:"features"`
	Process      *Process      `json:"process"`
	Pricing      *Pricing      `json:"pricing"`
	ServiceAreas *ServiceAreas `json:"serviceAreas"`
	About        *About        `json:"about"`
	Contact      *Contact      `json:"contact"`
	Footer       *Footer       `json:"footer"`
	SiteSettings *SiteSettings `json:"siteSettings"`
}
