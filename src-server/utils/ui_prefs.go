package utils

import "sync"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UIState is what the client needs to draw the shell.
type UIState struct {
	Theme       Theme `json:"theme"`
	SidebarOpen bool  `json:"sidebarOpen"`
}

// UIPrefs is set up once from config and only changes through the toggles.
type UIPrefs struct {
	mu    sync.Mutex
	state UIState
}

func NewUIPrefs(theme Theme) *UIPrefs {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return &UIPrefs{state: UIState{Theme: theme, SidebarOpen: true}}
}

func (p *UIPrefs) State() UIState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *UIPrefs) ToggleTheme() UIState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Theme == ThemeDark {
		p.state.Theme = ThemeLight
	} else {
		p.state.Theme = ThemeDark
	}
	return p.state
}

func (p *UIPrefs) ToggleSidebar() UIState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.SidebarOpen = !p.state.SidebarOpen
	return p.state
}
