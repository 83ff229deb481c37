// Package link renders embeddable references to uploaded assets.
package link

import "fmt"

// Snippet renders a markdown image reference for an uploaded asset. The
// display name appears as the alt text.
func Snippet(url, displayName string) string {
	return fmt.Sprintf("![%s](%s)", displayName, url)
}
