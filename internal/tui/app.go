package tui

import (
	"github.com/MKhiriev/go-news-kiosk/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel owns the registered pages and routes messages to the active one.
// It handles ctrl+c, the about overlay on the menu and [NavigateTo] itself.
type RootModel struct {
	pages  map[string]tea.Model
	active string

	width int

	buildInfo  models.AppBuildInfo
	showAbout  bool
	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		active:    startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if page := r.current(); page != nil {
		return page.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		return r, r.broadcast(msg)
	case NavigateTo:
		return r.open(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showAbout {
			if msg.Type == tea.KeyEsc || msg.String() == "v" {
				r.showAbout = false
			}
			return r, nil
		}
		if msg.String() == "v" && r.active == pageMenu {
			r.showAbout = true
			return r, nil
		}
	}

	page := r.current()
	if page == nil {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.active] = updated
	return r, cmd
}

// open switches to nav.Page and runs its Init. The payload is delivered
// after Init so that pages can reset state first.
func (r RootModel) open(nav NavigateTo) (tea.Model, tea.Cmd) {
	page, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.active = nav.Page
	r.showAbout = false

	initCmd := page.Init()
	if nav.Payload == nil {
		return r, initCmd
	}

	payload := nav.Payload
	return r, tea.Sequence(initCmd, func() tea.Msg { return payload })
}

// broadcast hands msg to every page, including inactive ones.
func (r RootModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r RootModel) current() tea.Model {
	return r.pages[r.active]
}

func (r RootModel) View() string {
	style := appStyle
	if r.width > 0 {
		style = style.MaxWidth(r.width)
	}

	if r.showAbout {
		return style.Render(renderBuildInfoWindow(r.buildInfo))
	}

	page := r.current()
	if page == nil {
		return style.Render(renderPage("NEWS KIOSK", "", ""))
	}
	return style.Render(page.View())
}
