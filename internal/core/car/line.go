package car

// Status is the production state of a car.
type Status string

// StatusInProgress is the only state a car can be in.
const StatusInProgress Status = "IN_PROGRESS"

// Placement is the part of a car that decides which line shows it.
type Placement struct {
	LineID string
	Status Status
}

// LatestOnLine returns the index of the most recently created placement that
// belongs to lineID and is in progress. Placements must be in creation order.
// Returns -1 when the line has no car.
func LatestOnLine(placements []Placement, lineID string) int {
	for i := len(placements) - 1; i >= 0; i-- {
		p := placements[i]
		if p.LineID == lineID && p.Status == StatusInProgress {
			return i
		}
	}
	return -1
}

// NextID generates the id that follows the current maximum.
func NextID(currentMax int) int {
	return currentMax + 1
}
