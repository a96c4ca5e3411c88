package goalkeeper

import "github.com/vovakirdan/goalkeeper/internal/config"

// Scoreboard tracks score, goals and the pause/game-over flags.
type Scoreboard struct {
	Score    int
	Goals    int
	Paused   bool
	GameOver bool

	pendingPenalty bool
	bannerTimer    float64

	saveBonus   int
	missPenalty int
	bannerTime  float64
}

func newScoreboard(cfg config.ScoringConfig, timers config.TimerConfig) Scoreboard {
	return Scoreboard{
		saveBonus:   cfg.Save,
		missPenalty: cfg.MissPenalty,
		bannerTime:  timers.PenaltyBanner,
	}
}

// Save credits a keeper deflection.
func (s *Scoreboard) Save() {
	s.Score += s.saveBonus
}

// Goal counts a ball entering the net.
func (s *Scoreboard) Goal() {
	s.Goals++
}

// Miss flags a deduction for the next update and shows the penalty banner.
func (s *Scoreboard) Miss() {
	s.pendingPenalty = true
	s.bannerTimer = s.bannerTime
}

// ApplyPending deducts a flagged miss. Returns true if a deduction happened.
func (s *Scoreboard) ApplyPending() bool {
	if !s.pendingPenalty {
		return false
	}
	s.pendingPenalty = false
	s.Score -= s.missPenalty
	return true
}

// Tick counts down the penalty banner.
func (s *Scoreboard) Tick(dt float64) {
	if s.bannerTimer > 0 {
		s.bannerTimer -= dt
		if s.bannerTimer < 0 {
			s.bannerTimer = 0
		}
	}
}

// CheckGameOver declares game over once the score is negative.
// Returns true only on the frame the flag is first raised.
func (s *Scoreboard) CheckGameOver() bool {
	if s.GameOver || s.Score >= 0 {
		return false
	}
	s.GameOver = true
	return true
}

// ShowPenalty reports whether the penalty banner is visible.
func (s *Scoreboard) ShowPenalty() bool {
	return s.bannerTimer > 0
}

// BannerTimer returns the seconds left on the penalty banner.
func (s *Scoreboard) BannerTimer() float64 {
	return s.bannerTimer
}

// PenaltyPending reports whether a miss is waiting to be deducted.
func (s *Scoreboard) PenaltyPending() bool {
	return s.pendingPenalty
}

// MissPenalty returns the points a miss costs.
func (s *Scoreboard) MissPenalty() int {
	return s.missPenalty
}

// Reset clears everything except the configured point values.
func (s *Scoreboard) Reset() {
	s.Score = 0
	s.Goals = 0
	s.Paused = false
	s.GameOver = false
	s.pendingPenalty = false
	s.bannerTimer = 0
}
