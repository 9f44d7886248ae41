package domain

import (
	"math"
	"time"
)

// TrackStatus is the lifecycle state of a numbered track on a release.
type TrackStatus string

const (
	TrackNotStarted TrackStatus = "not-started"
	TrackInProgress TrackStatus = "in-progress"
	TrackComplete   TrackStatus = "complete"
)

// Valid reports whether s is one of the known track statuses.
func (s TrackStatus) Valid() bool {
	switch s {
	case TrackNotStarted, TrackInProgress, TrackComplete:
		return true
	}
	return false
}

// Touchpoint is a single checklist item. Items with InScope=false are shown
// greyed out in the portal and excluded from progress math.
type Touchpoint struct {
	Name       string `json:"name" bson:"name"`
	InScope    bool   `json:"inScope" bson:"inScope"`
	IsComplete bool   `json:"isComplete" bson:"isComplete"`
}

// Track is a numbered deliverable on the production phase.
type Track struct {
	TrackNumber int         `json:"trackNumber" bson:"trackNumber"`
	InScope     bool        `json:"inScope" bson:"inScope"`
	Status      TrackStatus `json:"status" bson:"status"`
}

// Scope holds the three top-level phase toggles. A disabled phase is hidden
// from the client and excluded from overall progress.
type Scope struct {
	Production bool `json:"html" bson:"html"`
	Visual     bool `json:"css" bson:"css"`
	Release    bool `json:"js" bson:"js"`
}

// ProductionPhase covers the audio work itself. Section keys are a fixed set;
// clients cannot add their own.
type ProductionPhase struct {
	ProjectFoundation    []Touchpoint `json:"projectFoundation" bson:"projectFoundation"`
	InstrumentalProgress []Touchpoint `json:"instrumentalProgress" bson:"instrumentalProgress"`
	VocalProduction      []Touchpoint `json:"vocalProduction" bson:"vocalProduction"`
	MixAndMaster         []Touchpoint `json:"mixAndMaster" bson:"mixAndMaster"`
	Documentation        []Touchpoint `json:"documentation" bson:"documentation"`
	Tracks               []Track      `json:"tracks" bson:"tracks"`
}

// VisualPhase covers artwork and brand assets.
type VisualPhase struct {
	VisualIdentity       []Touchpoint `json:"visualIdentity" bson:"visualIdentity"`
	AlbumArtwork         []Touchpoint `json:"albumArtwork" bson:"albumArtwork"`
	PromotionalMaterials []Touchpoint `json:"promotionalMaterials" bson:"promotionalMaterials"`
	VisualConsistency    []Touchpoint `json:"visualConsistency" bson:"visualConsistency"`
}

// ReleasePhase covers distribution and marketing work.
type ReleasePhase struct {
	MarketStrategy      []Touchpoint `json:"marketStrategy" bson:"marketStrategy"`
	DistributionSetup   []Touchpoint `json:"distributionSetup" bson:"distributionSetup"`
	SocialMedia         []Touchpoint `json:"socialMedia" bson:"socialMedia"`
	PerformanceTracking []Touchpoint `json:"performanceTracking" bson:"performanceTracking"`
	Monetization        []Touchpoint `json:"monetization" bson:"monetization"`
}

// Project is the per-client checklist document. Updates replace whole
// top-level sections (shallow overlay); Version is bumped on every save and
// can be compare-and-swapped by callers that care about concurrent edits.
//
// The wire keys "html", "css" and "js" are kept for compatibility with the
// original portal frontend.
type Project struct {
	ID         string          `json:"_id" bson:"_id"`
	Name       string          `json:"name" bson:"name"`
	Active     bool            `json:"active" bson:"active"`
	Version    int64           `json:"version" bson:"version"`
	Scope      Scope           `json:"scope" bson:"scope"`
	Production ProductionPhase `json:"html" bson:"html"`
	Visual     VisualPhase     `json:"css" bson:"css"`
	Release    ReleasePhase    `json:"js" bson:"js"`
	CreatedAt  time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Progress is the derived percent-complete view of a project.
type Progress struct {
	Production int `json:"html"`
	Visual     int `json:"css"`
	Release    int `json:"js"`
	Overall    int `json:"overall"`
}

func tallyTouchpoints(sections ...[]Touchpoint) (inScope, complete int) {
	for _, section := range sections {
		for _, tp := range section {
			if !tp.InScope {
				continue
			}
			inScope++
			if tp.IsComplete {
				complete++
			}
		}
	}
	return inScope, complete
}

func tallyTracks(tracks []Track) (inScope, complete int) {
	for _, tr := range tracks {
		if !tr.InScope {
			continue
		}
		inScope++
		if tr.Status == TrackComplete {
			complete++
		}
	}
	return inScope, complete
}

// percent guards the zero-in-scope case: an empty phase reports 0%, never a
// division error.
func percent(inScope, complete int) int {
	if inScope == 0 {
		return 0
	}
	return int(math.Round(float64(complete) / float64(inScope) * 100))
}

func (p ProductionPhase) tally() (inScope, complete int) {
	inScope, complete = tallyTouchpoints(
		p.ProjectFoundation,
		p.InstrumentalProgress,
		p.VocalProduction,
		p.MixAndMaster,
		p.Documentation,
	)
	trackScope, trackDone := tallyTracks(p.Tracks)
	return inScope + trackScope, complete + trackDone
}

func (p VisualPhase) tally() (inScope, complete int) {
	return tallyTouchpoints(
		p.VisualIdentity,
		p.AlbumArtwork,
		p.PromotionalMaterials,
		p.VisualConsistency,
	)
}

func (p ReleasePhase) tally() (inScope, complete int) {
	return tallyTouchpoints(
		p.MarketStrategy,
		p.DistributionSetup,
		p.SocialMedia,
		p.PerformanceTracking,
		p.Monetization,
	)
}

// Progress computes percent-complete per phase and overall. Overall counts
// items, not phase averages, and only across phases whose scope flag is on.
func (p *Project) Progress() Progress {
	prodScope, prodDone := p.Production.tally()
	visScope, visDone := p.Visual.tally()
	relScope, relDone := p.Release.tally()

	var totalScope, totalDone int
	if p.Scope.Production {
		totalScope += prodScope
		totalDone += prodDone
	}
	if p.Scope.Visual {
		totalScope += visScope
		totalDone += visDone
	}
	if p.Scope.Release {
		totalScope += relScope
		totalDone += relDone
	}

	return Progress{
		Production: percent(prodScope, prodDone),
		Visual:     percent(visScope, visDone),
		Release:    percent(relScope, relDone),
		Overall:    percent(totalScope, totalDone),
	}
}

// ValidateTracks rejects unknown track statuses before a save.
func ValidateTracks(tracks []Track) error {
	for _, tr := range tracks {
		if !tr.Status.Valid() {
			return ErrInvalidTrackStatus
		}
	}
	return nil
}
