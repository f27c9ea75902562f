package media

import (
	"net/url"
	"strconv"

	"sitekit/internal/logging"
	"sitekit/internal/metrics"
)

// Options selects how a media item's display URL is derived. Zero values
// mean the option is unset.
type Options struct {
	// Size names a pre-generated thumbnail on the item (e.g., "thumbnail",
	// "medium", "large"). Takes precedence over every other option.
	Size string

	// MaxWidth requests a width-constrained resize of the raw URL.
	MaxWidth int

	// Resize requests a named resize of the raw URL (e.g., "200,200").
	// Ignored when MaxWidth is set.
	Resize string
}

// URL derives the display URL for a media item. Precedence: named
// thumbnail size, then max-width resize, then named resize, then the raw
// URL. Returns "" when the item is nil or carries no usable URL; absence
// is a normal outcome, not an error.
func URL(item *Item, opts Options) string {
	if item == nil {
		metrics.MediaURLResolutions.WithLabelValues("none").Inc()
		return ""
	}

	if opts.Size != "" {
		if thumb := item.Thumbnails[opts.Size]; thumb != "" {
			metrics.MediaURLResolutions.WithLabelValues("thumbnail").Inc()
			return thumb
		}
	}

	if item.URL == "" {
		metrics.MediaURLResolutions.WithLabelValues("none").Inc()
		return ""
	}

	if opts.MaxWidth > 0 {
		metrics.MediaURLResolutions.WithLabelValues("max_width").Inc()
		return withQueryParam(item.URL, "w", strconv.Itoa(opts.MaxWidth))
	}

	if opts.Resize != "" {
		metrics.MediaURLResolutions.WithLabelValues("resize").Inc()
		return withQueryParam(item.URL, "resize", opts.Resize)
	}

	metrics.MediaURLResolutions.WithLabelValues("raw").Inc()
	return item.URL
}

// withQueryParam returns raw with the given query parameter set, replacing
// any existing value. An unparseable URL is returned unchanged.
func withQueryParam(raw, key, value string) string {
	u, err := url.Parse(raw)
	if err != nil {
		logging.Debug("media: cannot parse URL %q: %v", raw, err)
		return raw
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
