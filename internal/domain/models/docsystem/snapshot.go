package docsystem

// Snapshot is a read-only view of everything one user owns, loaded in a
// single read transaction. Slices keep the store's order (created_at, id);
// the first profile is significant for legacy projects without a profile.
type Snapshot struct {
	Profiles  []Profile
	Projects  []Project
	Folders   []Folder
	Documents []Document
}

// FindProfile returns the profile with the given ID, or nil.
func (s *Snapshot) FindProfile(id string) *Profile {
	for i := range s.Profiles {
		if s.Profiles[i].ID == id {
			return &s.Profiles[i]
		}
	}
	return nil
}

// FirstProfileID returns the ID of the first profile, or "" if there is none.
func (s *Snapshot) FirstProfileID() string {
	if len(s.Profiles) == 0 {
		return ""
	}
	return s.Profiles[0].ID
}
