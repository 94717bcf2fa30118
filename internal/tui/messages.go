package tui

import (
	"github.com/MKhiriev/go-news-kiosk/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in [RootModel].
const (
	pageMenu       = "menu"
	pageLogin      = "login"
	pageRegister   = "register"
	pageFeed       = "feed"
	pageDetail     = "detail"
	pageCollection = "collection"
	pageLuckyDraw  = "lucky"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page right after its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Account models.Account
	Err     error
}

// RegisterResult is produced by the registration command.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is delivered to the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

// StatusNotice carries a one-off status line for the page it is sent to.
type StatusNotice struct {
	Text string
}

type accountLoadedMsg struct {
	account models.Account
	err     error
}

type feedLoadedMsg struct {
	page models.Page[models.Article]
	err  error
}

type feedRefreshedMsg struct {
	err error
}

type articleSelectedMsg struct {
	err error
}

type detailLoadedMsg struct {
	article models.Article
	account models.Account
	err     error
	// accountErr is kept apart so a guest can still read the detail page.
	accountErr error
}

type purchaseResultMsg struct {
	account models.Account
	granted bool
	err     error
}

type ownedLoadedMsg struct {
	items []models.Article
	err   error
}

type redeemResultMsg struct {
	account models.Account
	label   string
	err     error
}

type logoutResultMsg struct {
	err error
}

type clearStatusMsg struct{}
