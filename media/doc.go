// Package media provides helper functions for deriving display information
// from media items: display URL resolution, file extension and MIME type
// inference, media classification, and local preview generation.
//
// # Media Items
//
// An Item is the library's view of a media object: its raw URL, optional
// file name, explicit extension or MIME type, and any pre-generated named
// thumbnails.
//
// # URL Resolution
//
// URL derives the display URL for an item from resolution options, applying
// a fixed precedence:
//
//  1. A named thumbnail size (Options.Size) present on the item
//  2. A max-width resize (Options.MaxWidth), appended as a w query parameter
//  3. A named resize (Options.Resize), appended as a resize query parameter
//  4. The item's raw URL
//
// The empty string means no URL could be derived. Absence is never an error.
//
// # Extension Detection
//
// PathExtension derives a lowercase extension (with leading dot) from a
// path or URI, ignoring query strings and fragments:
//
//	ext := media.PathExtension("https://example.com/photo.JPG?w=200") // ".jpg"
//
// ItemExtension applies the same derivation to an Item, preferring its
// explicit Extension field, then its file name, then its URL.
//
// # MIME Types
//
// Known extensions map to MIME types via a static lookup table:
//
//	mime := media.MimeTypeFromExtension(".jpg") // "image/jpeg"
//
// MimeTypeFromExtension returns "" for unknown extensions; callers that
// need a concrete type for HTTP responses use MimeTypeOrDefault, which
// falls back to application/octet-stream.
//
// # Classification
//
// GetFileType categorizes an extension as image, video, audio, document,
// or other, and FilterByMimePrefix selects items whose MIME type matches a
// prefix such as "image/".
//
// # Previews
//
// Preview decodes an image stream, fits it within the given bounds, and
// encodes a JPEG preview. PreviewFile does the same for a file on disk and
// uses libvips for decode-time shrinking when InitVips has been called.
package media
