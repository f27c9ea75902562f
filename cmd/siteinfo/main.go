package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"sitekit/sites"
	"sitekit/state"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	statePath := os.Args[2]

	snap, err := state.Load(statePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load state snapshot: %v\n", err)
		os.Exit(1)
	}

	materializer := sites.New(siteAttributes, jetpackAttributes)

	switch command {
	case "sites":
		if !showAllSites(materializer, snap) {
			os.Exit(1)
		}
	case "site":
		if len(os.Args) < 4 {
			fmt.Fprintln(os.Stderr, "Error: site command requires an ID or slug")
			printUsage()
			os.Exit(1)
		}
		if !showSite(materializer, snap, os.Args[3]) {
			os.Exit(1)
		}
	case "selected":
		if !showSelectedSite(materializer, snap) {
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: siteinfo <command> <state-file> [args]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  sites    <state-file>               List all computed sites")
	fmt.Fprintln(os.Stderr, "  site     <state-file> <id-or-slug>  Show one computed site")
	fmt.Fprintln(os.Stderr, "  selected <state-file>               Show the selected site")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "State files are JSON or YAML snapshot fixtures.")
}

func showAllSites(m *sites.Materializer, snap *state.Snapshot) bool {
	var computed []*sites.ComputedSite
	for _, raw := range snap.Sites() {
		if site := m.GetSiteByID(snap, raw.ID); site != nil {
			computed = append(computed, site)
		}
	}
	return printJSON(computed)
}

func showSite(m *sites.Materializer, snap *state.Snapshot, idOrSlug string) bool {
	site := m.GetSite(snap, idOrSlug)
	if site == nil {
		fmt.Fprintf(os.Stderr, "No site matches %q\n", idOrSlug)
		return false
	}
	return printJSON(site)
}

func showSelectedSite(m *sites.Materializer, snap *state.Snapshot) bool {
	site := m.SelectedSite(snap)
	if site == nil {
		fmt.Fprintln(os.Stderr, "No site is selected")
		return false
	}
	return printJSON(site)
}

func printJSON(v any) bool {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to encode output: %v\n", err)
		return false
	}
	fmt.Println(string(data))
	return true
}

// siteAttributes is the example site-computed attribute provider: a title
// falling back from name to slug, and the domain of the site URL.
func siteAttributes(snap *state.Snapshot, siteID int64) map[string]any {
	raw := snap.SiteByID(siteID)
	if raw == nil {
		return nil
	}

	attrs := make(map[string]any, 2)

	title, _ := raw.Attrs[sites.AttrName].(string)
	if title == "" {
		title = raw.Slug
	}
	if title != "" {
		attrs[sites.AttrTitle] = title
	}

	if rawURL, _ := raw.Attrs[sites.AttrURL].(string); rawURL != "" {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			attrs["domain"] = u.Host
		}
	}

	return attrs
}

// jetpackAttributes is the example Jetpack-computed attribute provider:
// it only contributes attributes for sites flagged as Jetpack-connected.
func jetpackAttributes(snap *state.Snapshot, siteID int64) map[string]any {
	raw := snap.SiteByID(siteID)
	if raw == nil {
		return nil
	}

	jetpack, _ := raw.Attrs["jetpack"].(bool)
	if !jetpack {
		return nil
	}

	return map[string]any{
		"jetpack":    true,
		"connection": "jetpack",
	}
}
