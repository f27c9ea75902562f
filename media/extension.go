package media

import (
	"net/url"
	"path/filepath"
	"strings"
)

// PathExtension derives a lowercase file extension, including the leading
// dot, from a path or URI. Query strings and fragments are ignored.
// Returns "" when no extension can be determined.
func PathExtension(raw string) string {
	if raw == "" {
		return ""
	}
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		raw = u.Path
	}
	return strings.ToLower(filepath.Ext(raw))
}

// ItemExtension derives the extension for a media item: the explicit
// Extension field wins, then the file name, then the URL. Returns "" when
// the item is nil or nothing yields an extension.
func ItemExtension(item *Item) string {
	if item == nil {
		return ""
	}
	if item.Extension != "" {
		return normalizeExtension(item.Extension)
	}
	if ext := PathExtension(item.File); ext != "" {
		return ext
	}
	return PathExtension(item.URL)
}

// ItemMimeType derives the MIME type for a media item: an explicit
// MimeType field wins, otherwise the type is looked up from the item's
// extension. Returns "" when indeterminate.
func ItemMimeType(item *Item) string {
	if item == nil {
		return ""
	}
	if item.MimeType != "" {
		return item.MimeType
	}
	return MimeTypeFromExtension(ItemExtension(item))
}

// ItemFileType categorizes a media item by its extension.
func ItemFileType(item *Item) FileType {
	return GetFileType(ItemExtension(item))
}

// IsItemImage reports whether the item's MIME type has an image/ prefix.
func IsItemImage(item *Item) bool {
	return strings.HasPrefix(ItemMimeType(item), "image/")
}

// IsItemVideo reports whether the item's MIME type has a video/ prefix.
func IsItemVideo(item *Item) bool {
	return strings.HasPrefix(ItemMimeType(item), "video/")
}

// FilterByMimePrefix returns the items whose derived MIME type starts with
// the given prefix (e.g., "image/" or "video/"). Items with no derivable
// MIME type never match.
func FilterByMimePrefix(items []*Item, prefix string) []*Item {
	var out []*Item
	for _, item := range items {
		mime := ItemMimeType(item)
		if mime == "" {
			continue
		}
		if strings.HasPrefix(mime, prefix) {
			out = append(out, item)
		}
	}
	return out
}

// normalizeExtension lowercases an extension and ensures the leading dot.
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
