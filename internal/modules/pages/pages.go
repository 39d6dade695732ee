// Package pages defines the static pages served by the site and the routes
// they are mounted on.
package pages

import (
	"errors"
	"fmt"
)

// ErrUnknownRoute is returned when a page links to a path no page is mounted on.
var ErrUnknownRoute = errors.New("link target does not match a registered route")

// Link is a navigation link rendered on a page
type Link struct {
	Href  string
	Label string
}

// Page is a static page mounted on a single route
type Page struct {
	Path     string // Route the page is served on
	Title    string // Heading and document title
	Template string // Content template file under the template root
	Link     Link
}

// Home is mounted on the site root and links to About.
var Home = Page{
	Path:     "/",
	Title:    "Welcome to My Next.js 13 App Router App",
	Template: "home.html",
	Link:     Link{Href: "/about", Label: "Go to About Page"},
}

// About links back to Home.
var About = Page{
	Path:     "/about",
	Title:    "About Page",
	Template: "about.html",
	Link:     Link{Href: "/", Label: "Back to Home"},
}

// All returns every page in route order.
func All() []Page {
	return []Page{Home, About}
}

// Lookup finds the page mounted on path.
func Lookup(path string) (Page, bool) {
	for _, p := range All() {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}

// Validate checks that routes are unique and every link resolves to one of them.
func Validate(pages []Page) error {
	routes := make(map[string]bool, len(pages))
	for _, p := range pages {
		if routes[p.Path] {
			return fmt.Errorf("duplicate route %q", p.Path)
		}
		routes[p.Path] = true
	}

	for _, p := range pages {
		if !routes[p.Link.Href] {
			return fmt.Errorf("page %q links to %q: %w", p.Path, p.Link.Href, ErrUnknownRoute)
		}
	}
	return nil
}
