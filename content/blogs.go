package content

var fintrexTeam = Author{
	Name:     "Fintrex Team",
	Role:     "Content Team",
	Avatar:   "/blog/authors/fintrex-team.png",
	LinkedIn: "https://linkedin.com/company/fintrex",
	Twitter:  "https://twitter.com/fintrexai",
}

var blogPosts = []BlogPost{
	{
		Entity: Entity{
			ID:          "ai-vs-manual-entry",
			Slug:        "ai-vs-manual-data-entry-accounting",
			Title:       "AI vs Manual Data Entry: The Future of Accounting",
			Excerpt:     "Discover how AI-powered data extraction is revolutionizing accounting practices, saving CAs up to 35 hours monthly while improving accuracy to 99.9%.",
			PublishedAt: mustDate("2024-12-01"),
			Category:    CategoryAIAutomation,
			Tags:        []string{"AI", "automation", "data entry", "efficiency", "OCR"},
			SEO: SEO{
				MetaTitle:       "AI vs Manual Data Entry: The Future of Accounting | Fintrex",
				MetaDescription: "Learn how AI-powered data extraction saves CAs 35+ hours monthly with 99.9% accuracy. Transform your accounting practice today.",
				Keywords:        []string{"AI accounting", "manual data entry", "accounting automation", "OCR", "invoice processing"},
			},
		},
		CoverImage: "/blog/covers/ai-vs-manual.jpg",
		Author:     fintrexTeam,
		ReadTime:   8,
		Featured:   true,
		Content: `
## Introduction

The accounting industry is at a crossroads. Traditional manual data entry methods that have served practitioners for decades are being challenged by sophisticated AI-powered solutions. For Chartered Accountants in India, this shift represents both a challenge and an unprecedented opportunity.

## The Problem with Manual Data Entry

### Time Consumption
A typical CA practice spends **60-70% of billable hours** on data entry tasks:
- Invoice processing
- Receipt categorization
- GST reconciliation
- Bank statement matching

### Error Rates
Manual entry introduces human errors:
- Typos in amounts (the notorious "missed zero")
- Wrong ledger categorization
- Duplicate entries
- Missing transactions

### Client Frustration
The traditional workflow creates friction:
- Delayed responses
- Lost documents
- Repeated follow-ups for missing information

## How AI Changes Everything

### Instant Processing
AI-powered OCR can process a document in **under 3 seconds**, extracting:
- Vendor details
- Invoice numbers
- Line items
- GST breakdowns
- Payment terms

### Accuracy That Improves
Unlike humans who get tired, AI maintains consistent accuracy. Our models achieve:
- **99.9% accuracy** on printed invoices
- **97%+ accuracy** on handwritten documents
- **Self-learning** from corrections

### Scale Without Limits
Process 1 document or 10,000 - the AI doesn't slow down.

## Real-World Impact

> "I used to spend entire weekends on GST filing. Now I finish in 2 hours."
> — CA Rajesh Kumar, Mumbai

### The Numbers
| Metric | Manual | AI-Powered |
|--------|--------|------------|
| Time per invoice | 3-5 min | 10 sec |
| Monthly capacity | 500 docs | 5,000+ docs |
| Error rate | 2-5% | <0.1% |
| Client response | 24-48 hrs | Instant |

## Getting Started

The transition doesn't have to be dramatic. Start with:

1. **Pilot Program**: Try AI on one client's invoices
2. **Compare Results**: Track time and accuracy
3. **Gradual Expansion**: Roll out to more clients
4. **Full Integration**: Make AI your default workflow

## Conclusion

The question isn't whether AI will transform accounting—it already is. The question is whether your practice will lead the change or scramble to catch up.

Ready to save 35+ hours monthly? [Try Fintrex free for 14 days](/pricing).
`,
	},
	{
		Entity: Entity{
			ID:          "future-ca-practice",
			Slug:        "future-of-ca-practice-india-2025",
			Title:       "The Future of CA Practice in India: 2025 and Beyond",
			Excerpt:     "Explore how technology, regulation changes, and client expectations are reshaping the landscape for Chartered Accountants in India.",
			PublishedAt: mustDate("2024-11-15"),
			Category:    CategoryIndustryInsights,
			Tags:        []string{"CA practice", "future", "trends", "advisory", "India"},
			SEO: SEO{
				MetaTitle:       "Future of CA Practice in India 2025 | Fintrex",
				MetaDescription: "Discover how technology and changing client expectations are reshaping CA practices in India. Prepare for 2025 and beyond.",
				Keywords:        []string{"CA practice India", "chartered accountant future", "accounting trends 2025", "CA technology"},
			},
		},
		CoverImage: "/blog/covers/future-ca-2025.jpg",
		Author:     fintrexTeam,
		ReadTime:   6,
		Content: `
## The Evolving Landscape

The role of Chartered Accountants in India is undergoing its most significant transformation since liberalization. Here's what's driving the change and how forward-thinking CAs are adapting.

## Key Trends Shaping 2025

### 1. Advisory Over Compliance
Clients increasingly expect their CAs to be strategic advisors, not just compliance experts.

**What clients want:**
- Business growth strategies
- Tax optimization (not just filing)
- Real-time financial insights
- Digital transformation guidance

### 2. Technology as Competitive Advantage
CAs who embrace technology are:
- Handling 3x more clients
- Commanding premium fees
- Attracting younger clients
- Retaining talent

### 3. Regulatory Modernization
- E-invoicing mandates expanding
- GST system stabilizing
- Digital document requirements
- Real-time reporting

## The New CA Skill Stack

| Traditional Skills | Modern Skills |
|-------------------|---------------|
| Manual calculation | Data analytics |
| Paper filing | Cloud systems |
| Reactive compliance | Proactive advisory |
| Single-client focus | Scalable service delivery |

## How Top CAs Are Adapting

### Case: CA Priya Sharma
*"I automated routine tasks and now focus entirely on advisory. My average client value tripled."*

### Case: Mehta & Associates
*"We onboarded 120 new clients in 3 months without hiring anyone."*

## Action Steps for 2025

1. **Audit your time** - Where do you spend hours on repetitive tasks?
2. **Identify automation candidates** - Which tasks can AI handle?
3. **Invest in advisory skills** - Clients will pay for strategic insight
4. **Build systems** - Create scalable, technology-driven workflows

## The Bottom Line

The CAs who thrive in 2025 will be those who embrace technology as a partner, not a threat. The opportunity is enormous—for those willing to evolve.
`,
	},
	{
		Entity: Entity{
			ID:          "whatsapp-accounting-guide",
			Slug:        "whatsapp-accounting-complete-guide",
			Title:       "WhatsApp for Accounting: The Complete Guide",
			Excerpt:     "How to use WhatsApp as a powerful document collection and client communication tool for your accounting practice.",
			PublishedAt: mustDate("2024-11-01"),
			Category:    CategoryTipsTutorials,
			Tags:        []string{"WhatsApp", "document collection", "workflow", "client communication"},
			SEO: SEO{
				MetaTitle:       "WhatsApp for Accounting: Complete Guide | Fintrex",
				MetaDescription: "Learn how to use WhatsApp for seamless document collection and client communication in your accounting practice.",
				Keywords:        []string{"WhatsApp accounting", "document collection", "CA workflow", "client communication"},
			},
		},
		CoverImage: "/blog/covers/whatsapp-accounting.jpg",
		Author:     fintrexTeam,
		ReadTime:   5,
		Content: `
## Why WhatsApp for Accounting?

With 500+ million users in India, WhatsApp is where your clients already are. Instead of forcing them to use portals or email, meet them where they're comfortable.

## The Traditional Pain Points

- Clients forget to send documents
- Emails get buried
- Portal logins are forgotten
- Follow-up calls waste time

## WhatsApp-First Workflow

### Step 1: Document Collection
Clients simply photograph invoices, receipts, or statements and send via WhatsApp.

**What works:**
- Photos (auto-enhanced by AI)
- PDF attachments
- Forwarded documents
- Voice notes for context

### Step 2: Instant Processing
AI processes documents immediately:
- OCR extraction
- Categorization
- Vendor matching
- GST validation

### Step 3: Smart Responses
Automated acknowledgments and queries:
- "Received invoice #INV-123 for ₹45,000"
- "Need GST number for vendor ABC Ltd"
- "Missing date on receipt - please confirm"

## Best Practices

### Do's
✅ Set clear expectations with clients
✅ Use quick replies for common queries
✅ Acknowledge every document received
✅ Send weekly summaries

### Don'ts
❌ Mix personal and business chats
❌ Ignore messages for more than 24 hours
❌ Send lengthy text responses
❌ Forget to backup conversations

## Security Considerations

- WhatsApp uses end-to-end encryption
- Don't share sensitive data in messages
- Use business accounts for separation
- Enable two-factor authentication

## Getting Started with Fintrex + WhatsApp

1. Connect your WhatsApp Business number
2. Add clients to your dashboard
3. Share your number with clients
4. Documents flow automatically into Fintrex

## Results from Early Adopters

> "My clients send documents at 11 PM, and everything is processed by morning. Zero effort from my side."
> — CA Vikram Patel, Bangalore
`,
	},
	{
		Entity: Entity{
			ID:          "gst-automation-best-practices",
			Slug:        "gst-filing-automation-best-practices",
			Title:       "GST Filing Automation: Best Practices for 2025",
			Excerpt:     "Master GST compliance with AI-powered automation. Learn best practices for error-free, timely GST filing.",
			PublishedAt: mustDate("2024-10-20"),
			Category:    CategoryTaxCompliance,
			Tags:        []string{"GST", "automation", "compliance", "tax filing", "best practices"},
			SEO: SEO{
				MetaTitle:       "GST Filing Automation Best Practices 2025 | Fintrex",
				MetaDescription: "Master GST compliance with AI automation. Learn best practices for error-free, timely GST filing in 2025.",
				Keywords:        []string{"GST automation", "GST filing", "tax compliance", "GSTR-1", "GSTR-3B"},
			},
		},
		CoverImage: "/blog/covers/gst-automation.jpg",
		Author:     fintrexTeam,
		ReadTime:   7,
		Content: `
## GST Filing in 2025: What's Changed

The GST landscape continues to evolve with new e-invoicing thresholds, improved GSTN systems, and stricter compliance requirements. Here's how automation helps you stay ahead.

## Common GST Filing Challenges

### Data Reconciliation
- Matching purchases with vendor GSTR-1
- ITC reconciliation nightmares
- HSN code mismatches
- Rate differences

### Deadline Pressure
Multiple return deadlines create:
- Last-minute rushes
- Error-prone bulk processing
- Client communication chaos

## Automation Solutions

### Continuous Reconciliation
Instead of month-end panic, AI performs:
- Daily vendor GSTIN validation
- Real-time rate verification
- Automatic mismatch flagging

### Smart Categorization
AI learns your patterns:
- Auto-categorizes common vendors
- Suggests HSN codes
- Applies correct rates

### Deadline Management
- Automated reminders
- Progress tracking
- Document checklist alerts

## Implementation Checklist

- [ ] Connect bank accounts for auto-categorization
- [ ] Upload vendor master with GST details
- [ ] Set up client deadline notifications
- [ ] Configure reconciliation rules
- [ ] Test with one month's data

## ROI Calculation

| Task | Manual Time | Automated Time | Savings |
|------|-------------|----------------|---------|
| GSTR-1 preparation | 4 hours | 30 min | 87% |
| GSTR-3B reconciliation | 3 hours | 20 min | 89% |
| ITC matching | 2 hours | 10 min | 92% |

## Expert Tips

1. **Start early in the month** - Don't wait for deadline pressure
2. **Use automation for heavy lifting** - Focus on exceptions
3. **Maintain vendor master** - Accurate data = accurate returns
4. **Document everything** - Audit trail matters

## Next Steps

Ready to automate your GST filing? [See how Fintrex handles GST](/features).
`,
	},
}
