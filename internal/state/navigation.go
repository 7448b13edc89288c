package state

const (
	keyNavFolder   = "navigation.folder"
	keyNavSelected = "navigation.selected"
)

// NavigationState is the file browser position.
type NavigationState struct {
	Folder   string // absolute path of the listed folder
	Selected string // absolute path of the entry under the cursor
}

// SaveNavigation remembers the browser position. Scrolling through a
// folder saves on every move; the debounce turns that into one write.
func (s *Store) SaveNavigation(nav NavigationState) {
	s.set(map[string]string{
		keyNavFolder:   nav.Folder,
		keyNavSelected: nav.Selected,
	})
}

// GetNavigation returns the saved position, or nil before the first save.
func (s *Store) GetNavigation() (*NavigationState, error) {
	folder, ok, err := getValue(s.db, keyNavFolder)
	if err != nil || !ok {
		return nil, err
	}
	selected, _, err := getValue(s.db, keyNavSelected)
	if err != nil {
		return nil, err
	}
	return &NavigationState{Folder: folder, Selected: selected}, nil
}
