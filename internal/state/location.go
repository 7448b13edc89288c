package state

const keyLocation = "prompt.location"

// SaveLocation remembers the text last submitted in the location prompt.
func (s *Store) SaveLocation(text string) {
	s.set(map[string]string{keyLocation: text})
}

// LastLocation returns the text last submitted in the location prompt, or
// "" when there is none or it cannot be read.
func (s *Store) LastLocation() string {
	text, _, err := getValue(s.db, keyLocation)
	if err != nil {
		s.log.Warn("read last location", "err", err)
		return ""
	}
	return text
}
