package pitch

// Highlight points at one notable pitch type of a pitcher.
type Highlight struct {
	PitchType string   `json:"pitch_type"`
	Value     *float64 `json:"value"`
}

// Highlights summarizes a pitcher's arsenal for display.
type Highlights struct {
	MostUsed    *Highlight `json:"most_used"`
	Hardest     *Highlight `json:"hardest"`
	SoftContact *Highlight `json:"soft_contact"`
}

// HighlightsOf computes the most used pitch (highest usage, missing usage as 0),
// the hardest pitch (highest non-null average speed) and the soft contact
// pitch (lowest non-null average exit speed). The first row wins ties. It
// returns false when rows is empty.
func HighlightsOf(rows []PitchTypeRow) (Highlights, bool) {
	if len(rows) == 0 {
		return Highlights{}, false
	}

	mostUsed := rows[0]
	for _, r := range rows[1:] {
		if r.UsageFraction() > mostUsed.UsageFraction() {
			mostUsed = r
		}
	}

	var h Highlights
	h.MostUsed = &Highlight{PitchType: mostUsed.PitchType, Value: mostUsed.UsagePct}

	var hardest, soft *PitchTypeRow
	for i := range rows {
		r := &rows[i]
		if r.AvgSpeed != nil && (hardest == nil || *r.AvgSpeed > *hardest.AvgSpeed) {
			hardest = r
		}
		if r.AvgHitExitSpeed != nil && (soft == nil || *r.AvgHitExitSpeed < *soft.AvgHitExitSpeed) {
			soft = r
		}
	}
	if hardest != nil {
		h.Hardest = &Highlight{PitchType: hardest.PitchType, Value: hardest.AvgSpeed}
	}
	if soft != nil {
		h.SoftContact = &Highlight{PitchType: soft.PitchType, Value: soft.AvgHitExitSpeed}
	}
	return h, true
}
