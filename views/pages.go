package views

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/fintrexai/fintrex/content"
)

// Home renders the landing page.
func Home(p Page, d HomeData) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<section class="hero"><h1>Meet <span class="text-brand">Fin</span>, your AI accounting assistant</h1>`)
		o.raw(`<p>Automate 70% of your accounting work. Zero manual data entry, instant GST filing, 99.9% accuracy.</p>`)
		o.render(WaitlistForm(p.CSRFToken))
		o.raw(`</section>`)

		o.raw(`<section class="testimonials"><h2>Trusted by CAs across India</h2>`)
		for _, t := range content.Testimonials {
			o.raw("<figure><blockquote>")
			o.text(t.Quote)
			o.raw("</blockquote><figcaption>")
			o.text(t.Name)
			o.raw(", ")
			o.text(t.Role)
			o.raw("</figcaption><ul>")
			for _, s := range t.Stats {
				o.raw("<li>")
				o.text(s)
				o.raw("</li>")
			}
			o.raw("</ul></figure>")
		}
		o.raw("</section>")

		if len(d.Studies) > 0 {
			o.raw(`<section><h2>Success stories</h2>`)
			for _, cs := range d.Studies {
				o.render(caseStudyCard(cs))
			}
			o.raw(`<a href="/case-studies">All case studies</a></section>`)
		}
		if len(d.Posts) > 0 {
			o.raw(`<section><h2>From the blog</h2>`)
			for _, post := range d.Posts {
				o.render(postCard(post))
			}
			o.raw(`<a href="/blog">All articles</a></section>`)
		}

		o.raw(`<section class="faq-short"><h2>Questions</h2><dl>`)
		for _, qa := range content.ShortFAQs {
			o.render(qaItem(qa))
		}
		o.raw(`</dl><a href="/faq">More answers</a></section>`)
	}))
}

// About renders the company page with the contact form.
func About(p Page) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<section><h1>Our <span class="text-brand">Vision</span></h1>`)
		o.raw(`<p>Fintrex.ai is building the complete automation ecosystem for CA firms and MSMEs. `)
		o.raw(`We connect businesses' financial operations directly with CA workflows, enabling smarter decisions, `)
		o.raw(`faster reporting, and real-time financial clarity.</p></section>`)
		o.raw(`<section class="mission"><div><h3>For CA Firms</h3><ul>`)
		o.raw(`<li>Internal accounting automation &amp; revenue tracking</li><li>Multi-client &amp; multi-team management</li>`)
		o.raw(`<li>Advisory &amp; value-added services</li><li>Compliance &amp; risk management</li></ul></div>`)
		o.raw(`<div><h3>For MSMEs</h3><ul><li>Full ledger automation &amp; real-time reports</li>`)
		o.raw(`<li>Compliance coordination (GST, TDS, ITC)</li><li>Advanced business insights &amp; advisory dashboards</li></ul></div></section>`)
		o.render(ContactForm(p.CSRFToken))
	}))
}

// ContactForm renders the contact form posting to /contact.
func ContactForm(csrf string) templ.Component {
	return component(func(o *out) {
		o.raw(`<section id="contact"><h2>Get in touch</h2><form method="post" action="/contact">`)
		o.raw(`<input type="hidden" name="_csrf"`)
		o.attr("value", csrf)
		o.raw(`><label>Name <input type="text" name="name" required maxlength="120"></label>`)
		o.raw(`<label>Email <input type="email" name="email" required></label>`)
		o.raw(`<label>Subject <input type="text" name="subject" maxlength="200"></label>`)
		o.raw(`<label>Message <textarea name="message" required maxlength="5000"></textarea></label>`)
		o.raw(`<button type="submit">Send message</button></form></section>`)
	})
}

// Features renders the product capabilities.
func Features(p Page) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<h1>Everything Fin does for your practice</h1><section class="features">`)
		for _, f := range content.Features {
			o.raw("<article><img")
			o.url("src", f.Image)
			o.attr("alt", f.Name)
			o.raw(` loading="lazy"><p class="eyebrow">`)
			o.text(f.Subtitle)
			o.raw("</p><h2>")
			o.text(f.Name)
			o.raw("</h2><p>")
			o.text(f.Description)
			o.raw("</p></article>")
		}
		o.raw(`</section><section class="workflow"><h2>How it works</h2><ol>`)
		for _, s := range content.Workflow {
			o.raw("<li><strong>")
			o.text(s.Title)
			o.raw("</strong> ")
			o.text(s.Desc)
			o.raw("</li>")
		}
		o.raw("</ol></section>")
	}))
}

// Pricing renders the plan table.
func Pricing(p Page) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<h1>Simple, transparent pricing</h1><p>Lock in early access rates forever. No hidden fees.</p><section class="plans">`)
		for _, plan := range content.PricingPlans {
			class := "plan"
			if plan.Popular {
				class += " plan-popular"
			}
			o.raw("<article")
			o.attr("class", class)
			o.raw("><h2>")
			o.text(plan.Name)
			o.raw("</h2>")
			if plan.Popular {
				o.raw(`<p class="badge">Most popular</p>`)
			}
			o.raw(`<p class="price">`)
			o.text(FormatRupees(plan.PriceAnnual))
			o.raw(`<span>/month, billed annually</span></p><p class="price-monthly">`)
			o.textf("%s/month billed monthly. Save %s a year.", FormatRupees(plan.PriceMonth), FormatRupees(plan.AnnualSaving()))
			o.raw(`</p><p class="ideal">`)
			o.text(plan.IdealFor)
			o.raw("</p><ul>")
			for _, f := range plan.Features {
				o.raw("<li>")
				o.text(f)
				o.raw("</li>")
			}
			o.raw("</ul>")
			o.render(WaitlistForm(p.CSRFToken))
			o.raw("</article>")
		}
		o.raw("</section>")
	}))
}

// FAQ renders every question grouped by audience.
func FAQ(p Page) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<h1>Frequently asked questions</h1>`)
		for i, g := range content.FAQs {
			o.raw("<section")
			o.attr("id", fmt.Sprintf("faq-%d", i+1))
			o.raw("><h2>")
			o.text(g.Category)
			o.raw("</h2><dl>")
			for _, qa := range g.Questions {
				o.render(qaItem(qa))
			}
			o.raw("</dl></section>")
		}
	}))
}

func qaItem(qa content.QA) templ.Component {
	return component(func(o *out) {
		o.raw("<dt>")
		o.text(qa.Q)
		o.raw("</dt><dd>")
		o.text(qa.A)
		o.raw("</dd>")
	})
}

// NotFound renders the 404 page.
func NotFound(p Page) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<section class="error"><h1>404</h1><p>This page does not exist.</p><a href="/">Back to home</a></section>`)
	}))
}

// ServerError renders the 500 page.
func ServerError(p Page) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<section class="error"><h1>Something went wrong</h1><p>Please try again in a moment.</p><a href="/">Back to home</a></section>`)
	}))
}
