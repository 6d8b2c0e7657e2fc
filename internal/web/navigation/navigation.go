// Package navigation builds the link lists rendered by the page templates.
package navigation

// Item represents a single navigation link.
type Item struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation state for a rendered page.
type Context struct {
	ActivePage string
	PageTitle  string
	Items      []Item
}

// NewContext creates a navigation context for the given page.
func NewContext(pageTitle, activePage string) *Context {
	return &Context{
		PageTitle:  pageTitle,
		ActivePage: activePage,
		Items:      make([]Item, 0),
	}
}

// Add appends a navigation link, marking it active when it matches the
// current page.
func (c *Context) Add(title, url, page string) *Context {
	c.Items = append(c.Items, Item{
		Title:  title,
		URL:    url,
		Active: c.IsActive(page),
	})

	return c
}

// IsActive checks if the given page matches the current context.
func (c *Context) IsActive(page string) bool {
	return c.ActivePage == page
}

// Landing builds the section navigation of the public landing page.
func Landing(siteTitle string) *Context {
	return NewContext(siteTitle, "home").
		Add("Portfolio", "#portfolio", "portfolio").
		Add("Skills", "#skills", "skills").
		Add("Technologies", "#technologies", "technologies").
		Add("Contact", "#contact", "contact")
}

// Admin builds the navigation of the admin dashboard.
func Admin(siteTitle, activePage string) *Context {
	return NewContext(siteTitle, activePage).
		Add("Site", "/", "home").
		Add("Dashboard", "/admin", "dashboard")
}
