package domain

// AppState is the aggregate root for everything the app persists: one
// document, loaded wholesale and saved wholesale after every mutation.
type AppState struct {
	Profiles []TaskProfile
	Rewards  []RewardRule
	Scores   ScoreSnapshot
	Sessions []SessionRecord
}

// NewAppState returns an empty, default-initialized state.
func NewAppState() *AppState {
	return &AppState{
		Profiles: []TaskProfile{},
		Rewards:  []RewardRule{},
		Sessions: []SessionRecord{},
	}
}

// FindProfile returns the profile with the given ID, or nil.
func (s *AppState) FindProfile(id string) *TaskProfile {
	for i := range s.Profiles {
		if s.Profiles[i].ID == id {
			return &s.Profiles[i]
		}
	}
	return nil
}

// FindProfileByTitle returns the first profile with the given title, or nil.
// Titles are assumed unique; on duplicates the first in list order wins.
func (s *AppState) FindProfileByTitle(title string) *TaskProfile {
	for i := range s.Profiles {
		if s.Profiles[i].Title == title {
			return &s.Profiles[i]
		}
	}
	return nil
}

// UpsertProfile replaces the profile with a matching ID, or appends.
func (s *AppState) UpsertProfile(profile TaskProfile) {
	for i := range s.Profiles {
		if s.Profiles[i].ID == profile.ID {
			s.Profiles[i] = profile
			return
		}
	}
	s.Profiles = append(s.Profiles, profile)
}

// AppendSession adds a session record to the history.
func (s *AppState) AppendSession(record SessionRecord) {
	s.Sessions = append(s.Sessions, record)
}
