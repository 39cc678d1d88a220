package content

// SiteEmail is the public contact address.
const SiteEmail = "hello@fintrex.ai"

// NavLink is one entry of the primary navigation.
type NavLink struct {
	Label string
	Path  string
}

// Nav is the primary navigation in display order.
var Nav = []NavLink{
	{Label: "Home", Path: "/"},
	{Label: "About", Path: "/about"},
	{Label: "Features", Path: "/features"},
	{Label: "Pricing", Path: "/pricing"},
	{Label: "FAQ", Path: "/faq"},
	{Label: "Blog", Path: "/blog"},
	{Label: "Case Studies", Path: "/case-studies"},
}

// Quote is a short customer testimonial shown on the home page.
type Quote struct {
	Name  string
	Role  string
	Quote string
	Stats []string
}

var Testimonials = []Quote{
	{
		Name:  "CA Rajesh Kumar",
		Role:  "Practitioner, Mumbai",
		Quote: "Fintrex saved me 35 hours last month. I used to spend entire weekends on GST filing. Now I finish in 2 hours. My clients love the WhatsApp feature.",
		Stats: []string{"Revenue +168%", "35 Hrs Saved"},
	},
	{
		Name:  "CA Priya Sharma",
		Role:  "Individual CA, Delhi",
		Quote: "The OCR accuracy is incredible. I tested 100 invoices, only 3 needed corrections. The fuzzy vendor matching is a game-changer.",
		Stats: []string{"90% Faster Entry", "NPS 65"},
	},
	{
		Name:  "Mehta & Associates",
		Role:  "5-CA Firm, Ahmedabad",
		Quote: "We onboarded 120 new clients in 3 months without hiring anyone. Our juniors love that they don't have to manually type invoices anymore.",
		Stats: []string{"Clients +67%", "Saved ₹15L/yr"},
	},
}

// Plan is a pricing tier. Prices are monthly amounts in rupees.
type Plan struct {
	Name        string
	PriceMonth  int
	PriceAnnual int
	IdealFor    string
	Features    []string
	Popular     bool
}

// AnnualSaving returns the yearly saving of annual billing over monthly.
func (p Plan) AnnualSaving() int {
	return (p.PriceMonth - p.PriceAnnual) * 12
}

var PricingPlans = []Plan{
	{
		Name:        "Starter",
		PriceMonth:  1999,
		PriceAnnual: 1599,
		IdealFor:    "Individual CAs, new practitioners",
		Features: []string{
			"Up to 10 clients",
			"200 documents/month",
			"WhatsApp integration (1 number)",
			"Balance Sheet, P&L, GST Reports",
			"Email support",
		},
	},
	{
		Name:        "Professional",
		PriceMonth:  4999,
		PriceAnnual: 3999,
		IdealFor:    "Established CAs, small firms",
		Popular:     true,
		Features: []string{
			"Up to 50 clients",
			"1,000 documents/month",
			"WhatsApp integration (3 numbers)",
			"Custom KYC workflows",
			"Vendor master with fuzzy matching",
			"Priority email support",
		},
	},
	{
		Name:        "Enterprise",
		PriceMonth:  9999,
		PriceAnnual: 7999,
		IdealFor:    "Accounting firms, GST consultants",
		Features: []string{
			"Unlimited clients",
			"5,000 documents/month",
			"WhatsApp integration (10 numbers)",
			"Multi-user access (3 accountants)",
			"API access",
			"Dedicated account manager",
		},
	},
}

// QA is a single FAQ entry.
type QA struct {
	Q string
	A string
}

// FAQGroup is a titled group of questions on the FAQ page.
type FAQGroup struct {
	Category  string
	Questions []QA
}

// ShortFAQs appear on the home page.
var ShortFAQs = []QA{
	{Q: "Do my clients need to install an app?", A: "No! They send documents via regular WhatsApp."},
	{Q: "How accurate is the OCR?", A: "95%+ accuracy using our proprietary multi-model AI engine."},
	{Q: "Is my data secure?", A: "Yes. SOC 2 Type II compliant, India data residency, bank-grade encryption."},
}

var FAQs = []FAQGroup{
	{
		Category: "For Accountants",
		Questions: []QA{
			{Q: "How long does setup take?", A: "10 minutes. Just sign up, add your clients, and share your WhatsApp number."},
			{Q: "Can I export data to Tally/Zoho?", A: "Export to Excel/JSON is available now. Direct integration coming Q2 2025."},
			{Q: "What documents can it process?", A: "Invoices, receipts, PAN, Aadhaar, GSTIN, bank statements, utility bills."},
		},
	},
	{
		Category: "For Clients",
		Questions: []QA{
			{Q: "How do I send documents?", A: "Just send photos/PDFs via WhatsApp to your accountant's number."},
			{Q: "Can I see my financial reports?", A: "Yes, you get a view-only client portal for your balance sheets and P&L."},
		},
	},
}

// AllFAQs flattens FAQs in display order.
func AllFAQs() []QA {
	var out []QA
	for _, g := range FAQs {
		out = append(out, g.Questions...)
	}
	return out
}

// Feature is a product capability on the features page.
type Feature struct {
	Name        string
	Subtitle    string
	Description string
	Image       string
}

var Features = []Feature{
	{
		Name:        "WhatsApp-Native Onboarding",
		Subtitle:    "Zero Friction",
		Description: "Zero friction client onboarding through WhatsApp with automated document collection",
		Image:       "/features/whatsapp-integration.png",
	},
	{
		Name:        "Smart Document Extraction with Fin AI",
		Subtitle:    "Unmatched Accuracy",
		Description: "99.9% accurate AI-powered invoice and document extraction using advanced OCR",
		Image:       "/features/ai-extraction.png",
	},
	{
		Name:        "Automated Vendor Master",
		Subtitle:    "Smart Organization",
		Description: "Intelligent vendor database with fuzzy matching and global repository",
		Image:       "/features/vendor-management.png",
	},
	{
		Name:        "One-Click Financial Reports",
		Subtitle:    "Instant Reports",
		Description: "Instant Balance Sheets, P&L, and Cash Flow with auto-depreciation",
		Image:       "/features/financial-reports.png",
	},
	{
		Name:        "Automated GST Filing",
		Subtitle:    "Always Compliant",
		Description: "One-click GSTR filing with compliance validation",
		Image:       "/features/gst-filing.png",
	},
}

// Step is one stage of the document workflow.
type Step struct {
	Title string
	Desc  string
}

var Workflow = []Step{
	{Title: "Connect", Desc: "Add clients via WhatsApp"},
	{Title: "Capture", Desc: "Clients snap photos"},
	{Title: "Process", Desc: "AI extracts & validates"},
	{Title: "Review", Desc: "Quick side-by-side check"},
	{Title: "File", Desc: "1-Click GSTR filing"},
}
