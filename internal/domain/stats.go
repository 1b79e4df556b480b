package domain

// UserStats is the gamification state of the single user.
type UserStats struct {
	XP             int    `json:"xp"`
	Level          int    `json:"level"`
	Streak         int    `json:"streak"`
	LastActiveDate string `json:"lastActiveDate"`
}

// NewUserStats returns the starting state: level 1 with no XP or streak.
func NewUserStats() UserStats {
	return UserStats{Level: 1}
}

// NextLevelXP is the XP threshold that triggers the next level up.
func (s UserStats) NextLevelXP() int {
	return s.Level * 100
}

// XPPerCompletion is awarded for completing a schedule item and taken back on undo.
const XPPerCompletion = 10

// AddXP applies delta with a floor of zero. When the new total reaches the
// current level threshold the level increases by exactly one; a jump worth
// several levels is caught up on later updates.
func (s UserStats) AddXP(delta int) (UserStats, bool) {
	s.XP += delta
	if s.XP < 0 {
		s.XP = 0
	}
	if s.Level < 1 {
		s.Level = 1
	}
	leveledUp := false
	if s.XP >= s.NextLevelXP() {
		s.Level++
		leveledUp = true
	}
	return s, leveledUp
}

// TouchStreak records activity on today. yesterday must be the date key of the
// day before today. A repeat on the same day leaves the streak alone, activity
// on consecutive days extends it, and anything else restarts it at 1.
func (s UserStats) TouchStreak(today, yesterday string) UserStats {
	switch s.LastActiveDate {
	case today:
		return s
	case yesterday:
		s.Streak++
	default:
		s.Streak = 1
	}
	s.LastActiveDate = today
	return s
}
