package domain

import "math"

// Availability is the install state of an on-device engine for one request.
type Availability string

const (
	Availability_Unavailable  Availability = "unavailable"
	Availability_Downloadable Availability = "downloadable"
	Availability_Downloading  Availability = "downloading"
	Availability_Available    Availability = "available"
)

// RequiresDownload reports whether acquiring a session has to wait for a model download.
func (a Availability) RequiresDownload() bool {
	return a == Availability_Downloadable || a == Availability_Downloading
}

// DownloadProgress is a loaded/total report emitted while an engine model downloads.
type DownloadProgress struct {
	Loaded float64
	Total  float64
}

// Percent returns the integer download percentage, floored and clamped to 0..100.
// A zero Total is read as Loaded being a fraction of one.
func (p DownloadProgress) Percent() int {
	ratio := p.Loaded
	if p.Total > 0 {
		ratio = p.Loaded / p.Total
	}
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0
	}
	if ratio >= 1 {
		return 100
	}
	return int(math.Floor(ratio * 100))
}

// ProgressFunc receives download progress updates.
type ProgressFunc func(DownloadProgress)
