package patterns

func builtinDefaults() []string {
	return []string{"button", "card", "input"}
}

func builtinPatterns() []Pattern {
	return []Pattern{
		{
			Name:       "hero",
			Keywords:   []string{"hero", "above the fold", "headline", "banner", "call to action", "cta"},
			Components: []string{"button", "animated-gradient-text", "shimmer-button", "badge"},
			Priority:   10,
		},
		{
			Name:       "navigation",
			Keywords:   []string{"navigation", "navbar", "nav bar", "menu", "header", "breadcrumb"},
			Components: []string{"navigation-menu", "sheet", "dropdown-menu", "breadcrumb"},
			Priority:   9,
		},
		{
			Name:       "pricing",
			Keywords:   []string{"pricing", "price", "subscription", "per month", "/mo", "plans"},
			Components: []string{"card", "badge", "button", "switch", "separator"},
			Priority:   8,
		},
		{
			Name:       "form",
			Keywords:   []string{"form", "sign up", "signup", "login", "log in", "contact", "newsletter", "subscribe", "input"},
			Components: []string{"form", "input", "label", "textarea", "checkbox", "select", "button"},
			Priority:   8,
		},
		{
			Name:       "features",
			Keywords:   []string{"feature", "benefit", "bento", "grid"},
			Components: []string{"bento-grid", "card"},
			Priority:   7,
		},
		{
			Name:       "data",
			Keywords:   []string{"dashboard", "analytics", "table", "chart", "metric", "stats", "statistics"},
			Components: []string{"data-table", "table", "chart", "number-ticker", "progress"},
			Priority:   7,
		},
		{
			Name:       "chat",
			Keywords:   []string{"chatbot", "chat", "assistant", "prompt", "llm", "copilot"},
			Components: []string{"ai-chat", "placeholders-and-vanish-input", "animated-list"},
			Priority:   7,
		},
		{
			Name:       "testimonials",
			Keywords:   []string{"testimonial", "review", "quote", "customer", "trusted by", "logos"},
			Components: []string{"marquee", "avatar", "card"},
			Priority:   6,
		},
		{
			Name:       "faq",
			Keywords:   []string{"faq", "frequently asked", "questions", "accordion"},
			Components: []string{"accordion"},
			Priority:   6,
		},
		{
			Name:       "gallery",
			Keywords:   []string{"gallery", "carousel", "slider", "slideshow", "portfolio", "showcase"},
			Components: []string{"carousel", "tabs"},
			Priority:   5,
		},
		{
			Name:       "modal",
			Keywords:   []string{"modal", "dialog", "popup", "pop-up", "lightbox", "overlay"},
			Components: []string{"dialog", "sheet"},
			Priority:   5,
		},
		{
			Name:       "notifications",
			Keywords:   []string{"notification", "toast", "alert", "snackbar"},
			Components: []string{"sonner", "alert"},
			Priority:   4,
		},
		{
			Name:       "footer",
			Keywords:   []string{"footer", "copyright", "sitemap", "social links"},
			Components: []string{"separator", "button"},
			Priority:   3,
		},
	}
}
