package content

var caseStudies = []CaseStudy{
	{
		Entity: Entity{
			ID:          "scaling-100-clients",
			Slug:        "scaling-to-100-clients-solo-ca",
			Title:       "Scaling to 100 Clients as a Solo CA",
			Excerpt:     "Learn how a Mumbai-based CA scaled from 35 to 100+ clients in 8 months using AI automation, while working fewer hours.",
			PublishedAt: mustDate("2024-11-01"),
			Category:    ClientIndividualCA,
			Tags:        []string{"solo practitioner", "scaling", "GST automation", "WhatsApp"},
			SEO: SEO{
				MetaTitle:       "Scaling to 100 Clients as a Solo CA | Fintrex Case Study",
				MetaDescription: "How CA Rajesh Kumar grew from 35 to 100+ clients in 8 months using AI automation. Read the full success story.",
				Keywords:        []string{"CA scaling", "solo practitioner", "accounting automation case study", "GST automation"},
			},
		},
		Subtitle:   "How CA Rajesh Kumar grew his practice 3x without hiring",
		CoverImage: "/case-studies/covers/scaling-100-clients.jpg",
		ClientName: "CA Rajesh Kumar",
		Location:   "Mumbai, Maharashtra",
		Timeline:   "8 months",
		Featured:   true,
		Results: []Result{
			{Metric: "Clients", Value: "100+", Description: "From 35 to 100+ clients", Icon: "clients"},
			{Metric: "Time Saved", Value: "35 hrs/month", Description: "Reduced manual data entry", Icon: "time"},
			{Metric: "Revenue", Value: "+168%", Description: "Year-over-year growth", Icon: "money"},
			{Metric: "Work Hours", Value: "45 hrs/week", Description: "Down from 60+ hours", Icon: "time"},
		},
		Testimonial: Testimonial{
			Quote:  "Fintrex gave me my weekends back. I used to spend entire weekends on GST filing. Now I finish in 2 hours. My clients love the WhatsApp feature—they just send photos and everything is processed automatically.",
			Author: "CA Rajesh Kumar",
			Role:   "Practitioner, Mumbai",
			Avatar: "/case-studies/avatars/rajesh-kumar.jpg",
		},
		Challenge: `
CA Rajesh Kumar faced the classic solo practitioner dilemma: growing demand but limited capacity.

**The situation:**
- 35 active clients, mostly SMBs
- 60+ hours/week, including weekends
- Turning away new clients due to capacity
- Struggling with GST filing deadlines
- No work-life balance

**The breaking point:**
During tax season 2023, Rajesh missed a client's ITR deadline due to overwhelming workload. The client left, and Rajesh knew something had to change.
`,
		Solution: `
Rajesh discovered Fintrex through a colleague and decided to pilot it with his most demanding clients.

**Implementation approach:**
1. Started with 5 high-volume clients for the pilot
2. Set up WhatsApp integration for document collection
3. Trained the AI on his specific vendor categories
4. Gradually migrated all clients over 3 months

**Key features utilized:**
- WhatsApp document collection
- AI-powered invoice extraction
- Automated GST reconciliation
- One-click financial reports
`,
		Implementation: `
**Month 1: Pilot Phase**
- 5 clients migrated
- 200 documents processed
- Initial accuracy: 94%
- Team adaptation time: 1 week

**Month 2: Scaling**
- All 35 clients migrated
- Workflow optimizations
- Custom vendor mappings
- Accuracy improved to 98%

**Month 3-8: Growth Mode**
- Started accepting new clients
- 65 new clients onboarded
- Developed standardized workflows
- Hired 1 junior for client communication
`,
	},
	{
		Entity: Entity{
			ID:          "gst-filing-automation",
			Slug:        "gst-filing-automation-success-story",
			Title:       "GST Filing Automation Success Story",
			Excerpt:     "CA Priya Sharma eliminated GST filing errors and reduced processing time by 90% with AI-powered automation.",
			PublishedAt: mustDate("2024-10-15"),
			Category:    ClientIndividualCA,
			Tags:        []string{"GST filing", "OCR accuracy", "compliance", "automation"},
			SEO: SEO{
				MetaTitle:       "GST Filing Automation Success Story | Fintrex Case Study",
				MetaDescription: "How CA Priya Sharma achieved zero-error GST filing for 50+ clients with AI automation. 90% faster processing.",
				Keywords:        []string{"GST filing automation", "OCR accuracy", "tax compliance automation"},
			},
		},
		Subtitle:   "How a Delhi CA achieved zero-error GST filing for 50+ clients",
		CoverImage: "/case-studies/covers/gst-automation.jpg",
		ClientName: "CA Priya Sharma",
		Location:   "Delhi, NCR",
		Timeline:   "2 months",
		Featured:   true,
		Results: []Result{
			{Metric: "Processing Time", Value: "90% faster", Description: "Invoice to ledger", Icon: "time"},
			{Metric: "Accuracy", Value: "99.7%", Description: "OCR extraction accuracy", Icon: "accuracy"},
			{Metric: "Errors", Value: "Zero", Description: "GST filing errors in 6 months", Icon: "accuracy"},
			{Metric: "Client NPS", Value: "65", Description: "Up from 35", Icon: "growth"},
		},
		Testimonial: Testimonial{
			Quote:  "The OCR accuracy is incredible. I tested 100 invoices, only 3 needed corrections. The fuzzy vendor matching is a game-changer—it even recognizes vendors with slight name variations.",
			Author: "CA Priya Sharma",
			Role:   "Individual CA, Delhi",
			Avatar: "/case-studies/avatars/priya-sharma.jpg",
		},
		Challenge: `
GST compliance was consuming CA Priya Sharma's practice. With 50+ clients across different sectors, keeping track of varying rates, reconciling with vendors, and meeting deadlines was a nightmare.

**Key challenges:**
- Multiple GST rates across clients
- Vendor reconciliation mismatches
- ITC claim delays due to errors
- Late filing penalties affecting reputation
- Staff turnover due to monotonous work
`,
		Solution: `
After researching multiple solutions, Priya chose Fintrex for its OCR accuracy and automated reconciliation features.

**Solution components:**
- AI-powered invoice extraction with 99% accuracy
- Automated vendor GSTIN validation
- Real-time reconciliation with GSTR-2A/2B
- Deadline tracking and alerts
- One-click GSTR-1 and GSTR-3B preparation
`,
		Implementation: `
**Phase 1: Setup (Week 1-2)**
- Connected existing client database
- Uploaded vendor masters
- Configured GST rules per client sector

**Phase 2: Training (Week 3-4)**
- Processed historical invoices to train AI
- Fine-tuned categorization rules
- Set up reconciliation workflows

**Phase 3: Full Deployment (Month 2)**
- All clients migrated
- Staff trained on exception handling
- Continuous monitoring and optimization
`,
	},
	{
		Entity: Entity{
			ID:          "mehta-associates-growth",
			Slug:        "ca-firm-growth-without-hiring",
			Title:       "CA Firm Growth Without Hiring",
			Excerpt:     "A 5-CA firm in Ahmedabad scaled dramatically without expanding headcount, saving ₹15L annually.",
			PublishedAt: mustDate("2024-09-20"),
			Category:    ClientCAFirm,
			Tags:        []string{"CA firm", "scaling", "enterprise", "cost savings"},
			SEO: SEO{
				MetaTitle:       "CA Firm Growth Without Hiring | Fintrex Case Study",
				MetaDescription: "How Mehta & Associates onboarded 120 new clients without hiring, saving ₹15L annually. Enterprise automation case study.",
				Keywords:        []string{"CA firm scaling", "enterprise automation", "accounting firm growth"},
			},
		},
		Subtitle:   "How Mehta & Associates onboarded 120 clients in 3 months",
		CoverImage: "/case-studies/covers/mehta-associates.jpg",
		ClientName: "Mehta & Associates",
		Location:   "Ahmedabad, Gujarat",
		Industry:   "Multi-sector",
		Timeline:   "5 months",
		Featured:   true,
		Results: []Result{
			{Metric: "New Clients", Value: "120", Description: "In just 3 months", Icon: "clients"},
			{Metric: "Cost Savings", Value: "₹15L/year", Description: "Reduced hiring needs", Icon: "money"},
			{Metric: "Partner Time", Value: "+40%", Description: "More time for advisory", Icon: "time"},
			{Metric: "Firm Revenue", Value: "+67%", Description: "Year-over-year", Icon: "growth"},
		},
		Testimonial: Testimonial{
			Quote:  "We onboarded 120 new clients in 3 months without hiring anyone. Our juniors love that they don't have to manually type invoices anymore—they're now doing actual accounting work.",
			Author: "CA Hitesh Mehta",
			Role:   "Managing Partner, Mehta & Associates",
			Avatar: "/case-studies/avatars/hitesh-mehta.jpg",
		},
		Challenge: `
Mehta & Associates, a well-established 5-CA firm, was facing growth constraints. Their traditional processes couldn't scale without proportionally increasing staff—and good accountants were hard to find.

**Growth blockers:**
- Linear scaling: 1 new client = more staff hours
- Hiring challenges in competitive market
- Training costs eating into margins
- Quality inconsistency with scale
- Partner time consumed by operations
`,
		Solution: `
The firm adopted a "technology-first" growth strategy with Fintrex as the core platform.

**Strategic approach:**
- Standardize all document intake via WhatsApp
- Automate 80% of data entry with AI
- Redeploy junior staff to client advisory
- Partners focus on business development

**Technology stack:**
- Fintrex Enterprise plan
- WhatsApp Business integration
- Multi-user access for all 5 CAs
- API integration with existing systems
`,
		Implementation: `
**Phase 1: Process Redesign (Month 1)**
- Mapped existing workflows
- Identified automation opportunities
- Designed new client onboarding process
- Created SOP documentation

**Phase 2: Technology Deployment (Month 2)**
- Fintrex Enterprise setup
- Staff training (3 days)
- Client communication templates
- Parallel run with old system

**Phase 3: Scale (Month 3-5)**
- Aggressive client acquisition
- 120 new clients onboarded
- Old processes phased out
- Continuous optimization
`,
	},
	{
		Entity: Entity{
			ID:          "zero-touch-tax-season",
			Slug:        "zero-touch-tax-season-automation",
			Title:       "Zero-Touch Tax Season",
			Excerpt:     "A Bangalore CA firm processed 500+ ITRs with minimal manual intervention using AI-powered automation.",
			PublishedAt: mustDate("2024-08-15"),
			Category:    ClientCAFirm,
			Tags:        []string{"tax season", "ITR filing", "automation", "work-life balance"},
			SEO: SEO{
				MetaTitle:       "Zero-Touch Tax Season Automation | Fintrex Case Study",
				MetaDescription: "How Sharma & Co. processed 500+ ITRs with zero overtime using AI automation. Stress-free tax season is possible.",
				Keywords:        []string{"ITR filing automation", "tax season automation", "CA firm efficiency"},
			},
		},
		Subtitle:   "How automation made tax season stress-free",
		CoverImage: "/case-studies/covers/zero-touch-tax.jpg",
		ClientName: "Sharma & Co.",
		Location:   "Bangalore, Karnataka",
		Timeline:   "1 tax season",
		Results: []Result{
			{Metric: "ITRs Processed", Value: "500+", Description: "In tax season 2024", Icon: "clients"},
			{Metric: "Manual Work", Value: "-70%", Description: "Compared to previous year", Icon: "time"},
			{Metric: "Staff Overtime", Value: "Zero", Description: "First time in firm history", Icon: "time"},
			{Metric: "Client Satisfaction", Value: "94%", Description: "Post-season survey", Icon: "growth"},
		},
		Testimonial: Testimonial{
			Quote:  "For the first time in 15 years, my team went home at 6 PM during tax season. The AI handled the heavy lifting—we just reviewed and filed.",
			Author: "CA Arun Sharma",
			Role:   "Senior Partner, Sharma & Co.",
			Avatar: "/case-studies/avatars/arun-sharma.jpg",
		},
		Challenge: `
Tax season was always chaos at Sharma & Co. Despite being a well-organized firm, the sheer volume of ITRs to process meant long hours, stressed staff, and occasional errors.

**Tax season nightmares:**
- 500+ ITRs in 3-month window
- Document collection delays
- Last-minute client responses
- Staff burnout and overtime
- Error-prone rush processing
`,
		Solution: `
The firm implemented a proactive, technology-driven approach to tax season.

**The strategy:**
- Year-round document collection via WhatsApp
- AI pre-processing of financial documents
- Automated income/deduction categorization
- Self-service client data verification
- Batch processing for similar returns
`,
		Implementation: `
**Pre-Season (Jan-Mar):**
- Client communication campaigns
- Document collection automation
- AI processing of incoming documents

**Tax Season (Apr-Jul):**
- 80% of data already processed
- Focus on complex cases only
- Automated deadline reminders
- Batch filing workflows

**Post-Season:**
- Process analysis and optimization
- Client feedback collection
- System improvements
`,
	},
}
