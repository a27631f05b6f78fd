package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ActiveUser describes the signed-in user shown in the header.
type ActiveUser struct {
	ID   string
	Name string
	Role string
}

type HeaderData struct {
	User  *ActiveUser
	Title string
}

type SidebarLink struct {
	Label    string
	Href     string
	Icon     string
	IsActive bool
}

type SidebarData struct {
	Links []SidebarLink
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps page content with the shared document shell, header and
// sidebar. Content-only fragments skip it entirely for HTMX swaps.
func Layout(title string, header HeaderData, sidebar SidebarData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="en" data-theme="light"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>%s</title>`, esc(title))
		io.WriteString(w, `<link rel="stylesheet" href="/static/css/app.css"/><script src="/static/js/htmx.min.js"></script><script src="/static/js/app.js" defer></script></head><body class="min-h-screen bg-base-200">`)

		io.WriteString(w, `<header class="navbar bg-base-100 shadow-sm px-4"><div class="flex-1"><a href="/" class="text-xl font-semibold">DesignDesk</a></div>`)
		if header.User != nil {
			fmt.Fprintf(w, `<div class="flex-none flex items-center gap-2"><span class="text-sm">%s</span><span class="badge badge-ghost">%s</span></div>`, esc(header.User.Name), esc(header.User.Role))
		}
		io.WriteString(w, `</header>`)

		io.WriteString(w, `<div class="drawer lg:drawer-open"><input id="nav-drawer" type="checkbox" class="drawer-toggle"/><div class="drawer-content p-4" id="main-content">`)
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `</div><div class="drawer-side"><label for="nav-drawer" class="drawer-overlay"></label><ul class="menu bg-base-100 w-56 min-h-full p-2">`)
		for _, link := range sidebar.Links {
			active := ""
			if link.IsActive {
				active = ` class="active"`
			}
			fmt.Fprintf(w, `<li><a href="%s"%s hx-get="%s" hx-target="#main-content" hx-push-url="true">%s</a></li>`, esc(link.Href), active, esc(link.Href), esc(link.Label))
		}
		io.WriteString(w, `</ul></div></div>`)

		io.WriteString(w, `<div id="toast-container" class="toast toast-end"></div></body></html>`)
		return nil
	})
}

// DefaultSidebar builds the owner navigation with the given path marked active.
func DefaultSidebar(activePath string) SidebarData {
	links := []SidebarLink{
		{Label: "Clients", Href: "/clients"},
		{Label: "Quotations", Href: "/quotations"},
		{Label: "Workers", Href: "/workers"},
		{Label: "Leads", Href: "/leads"},
		{Label: "Vendors", Href: "/vendors"},
		{Label: "Raw Materials", Href: "/raw-materials"},
		{Label: "Purchase Orders", Href: "/purchase-orders"},
		{Label: "Gallery", Href: "/gallery"},
		{Label: "Settings", Href: "/settings/room-types"},
	}
	for i := range links {
		links[i].IsActive = links[i].Href == activePath
	}
	return SidebarData{Links: links}
}

// WorkerSidebar is the reduced navigation for the worker role.
func WorkerSidebar(activePath string) SidebarData {
	links := []SidebarLink{
		{Label: "My Work", Href: "/dashboard"},
		{Label: "Gallery", Href: "/gallery"},
	}
	for i := range links {
		links[i].IsActive = links[i].Href == activePath
	}
	return SidebarData{Links: links}
}
