//go:build acceptance
// +build acceptance

package acceptance

import (
	"os"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// BrowserFixture owns a Playwright driver and one Chromium instance.
type BrowserFixture struct {
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// NewBrowserFixture starts Chromium and stops it when the test ends.
// Set HEADLESS=false to watch the browser while debugging.
func NewBrowserFixture(t *testing.T) *BrowserFixture {
	t.Helper()

	pw, err := playwright.Run()
	require.NoError(t, err, "failed to start playwright")

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(os.Getenv("HEADLESS") != "false"),
	})
	require.NoError(t, err, "failed to launch browser")

	f := &BrowserFixture{PW: pw, Browser: browser}
	t.Cleanup(f.Close)
	return f
}

// NewPage opens a page in a fresh browser context.
func (f *BrowserFixture) NewPage(t *testing.T) playwright.Page {
	t.Helper()

	ctx, err := f.Browser.NewContext()
	require.NoError(t, err, "failed to create browser context")
	t.Cleanup(func() { ctx.Close() })

	page, err := ctx.NewPage()
	require.NoError(t, err, "failed to open page")
	return page
}

func (f *BrowserFixture) Close() {
	f.Browser.Close()
	f.PW.Stop()
}
