package state

// Interface is the part of Store the application uses.
type Interface interface {
	SaveNavigation(nav NavigationState)
	GetNavigation() (*NavigationState, error)
	SaveLocation(text string)
	LastLocation() string
	Close() error
}

var _ Interface = (*Store)(nil)
