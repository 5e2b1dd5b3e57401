// Package navigation provides utilities for managing the active dashboard tab.
package navigation

// Tab represents a single dashboard section tab.
type Tab struct {
	Title  string
	ID     string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle string
	ActiveTab string
	Tabs      []Tab
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeTab string) *Context {
	return &Context{
		PageTitle: pageTitle,
		ActiveTab: activeTab,
		Tabs:      make([]Tab, 0),
	}
}

// AddTab adds a tab to the context.
func (c *Context) AddTab(title, id string) *Context {
	c.Tabs = append(c.Tabs, Tab{
		Title:  title,
		ID:     id,
		Active: id == c.ActiveTab,
	})

	return c
}

// IsActive checks if the given tab is the active one.
func (c *Context) IsActive(id string) bool {
	return c.ActiveTab == id
}
