//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// GalleryPage provides helper methods for interacting with the button gallery.
type GalleryPage struct {
	Page playwright.Page
	t    *testing.T
}

// OpenGalleryPage navigates to the gallery index and waits until the matrix is rendered.
func OpenGalleryPage(t *testing.T, page playwright.Page, galleryURL string) *GalleryPage {
	t.Helper()

	_, err := page.Goto(galleryURL)
	require.NoError(t, err)

	err = page.Locator("main section").First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	})
	require.NoError(t, err, "gallery sections did not render")

	return &GalleryPage{Page: page, t: t}
}

// SectionCount returns the number of gallery sections.
func (gp *GalleryPage) SectionCount() int {
	gp.t.Helper()
	return gp.count("main section")
}

// NativeButtonCount returns the number of previews rendered as button elements.
func (gp *GalleryPage) NativeButtonCount() int {
	gp.t.Helper()
	return gp.count("main section button")
}

// ComposedLinkCount returns the number of previews rendered as styled links.
func (gp *GalleryPage) ComposedLinkCount() int {
	gp.t.Helper()
	return gp.count("main section a[href='#']")
}

// SourceLinkCount returns the number of links to preview sources.
func (gp *GalleryPage) SourceLinkCount() int {
	gp.t.Helper()
	return gp.count("main section a:has-text('Source')")
}

// OpenFirstSource follows the first source link and waits for the highlighted code.
func (gp *GalleryPage) OpenFirstSource() {
	gp.t.Helper()

	err := gp.Page.Locator("main section a:has-text('Source')").First().Click()
	require.NoError(gp.t, err, "failed to click source link")

	err = gp.Page.Locator(".chroma").First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	})
	require.NoError(gp.t, err, "highlighted source did not render")
}

func (gp *GalleryPage) count(selector string) int {
	gp.t.Helper()

	n, err := gp.Page.Locator(selector).Count()
	require.NoError(gp.t, err)
	return n
}
