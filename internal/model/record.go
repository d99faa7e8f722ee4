package model

// Record is the domain model for a todo entry fetched from the remote list.
// JSON tags follow the remote wire names.
type Record struct {
	OwnerID   int    `json:"userId" yaml:"userId"`
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Candidate carries the user-editable fields of a Record.
// The ID is assigned by the store, never by the caller.
type Candidate struct {
	OwnerID   int
	Title     string
	Completed bool
}

// Candidate returns the editable part of r.
func (r Record) Candidate() Candidate {
	return Candidate{OwnerID: r.OwnerID, Title: r.Title, Completed: r.Completed}
}

// YesNo renders a completed flag the way the table shows it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Stats counts completed and pending records.
func Stats(recs []Record) (done, pending int) {
	for _, r := range recs {
		if r.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
