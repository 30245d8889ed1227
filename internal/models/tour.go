package models

import (
	"strconv"
	"strings"
	"time"
)

// TourStatus describes how a tour request ended.
type TourStatus string

const (
	TourStatusSolved TourStatus = "solved"
	TourStatusFailed TourStatus = "failed"
)

// DepotMode selects whether the depot takes part in the optimized tour.
type DepotMode string

const (
	// DepotInclude keeps the depot as node 0; the tour starts and ends there.
	DepotInclude DepotMode = "include"
	// DepotExclude drops the depot from the matrix; the first delivery point becomes start and end.
	DepotExclude DepotMode = "exclude"
)

// TourResult is the presented outcome of a solve.
type TourResult struct {
	Status    TourStatus `json:"status"`
	DepotMode DepotMode  `json:"depot_mode"`
	// Sequence holds location IDs in visiting order, closing stop included.
	Sequence            []int         `json:"sequence"`
	Stops               []Location    `json:"stops"`
	TotalDistanceMeters int64         `json:"total_distance_meters"`
	SolveDuration       time.Duration `json:"solve_duration_ns"`
}

// OpenSequence returns the visiting order without the closing return to the start.
func (r *TourResult) OpenSequence() []int {
	if len(r.Sequence) < 2 {
		return r.Sequence
	}
	return r.Sequence[:len(r.Sequence)-1]
}

// SequenceText formats the visiting order as "0 -> 4 -> 2 -> 0".
func (r *TourResult) SequenceText() string {
	parts := make([]string, len(r.Sequence))
	for i, id := range r.Sequence {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " -> ")
}
