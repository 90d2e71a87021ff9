package lottery

import "github.com/osse101/LuckyDraw_Go/internal/domain"

// Assignment pairs a winner with the prize label it received
type Assignment struct {
	Participant domain.Participant
	PrizeName   string
}

// AssignPrizes labels winners by position: winner i receives
// labels[i % len(labels)]. Labels repeat when there are fewer labels than
// winners and trailing labels go unused when there are more. Winner order is
// preserved. An empty label list yields no assignments.
func AssignPrizes(winners []domain.Participant, labels []string) []Assignment {
	if len(labels) == 0 {
		return nil
	}

	out := make([]Assignment, len(winners))
	for i, w := range winners {
		out[i] = Assignment{
			Participant: w,
			PrizeName:   labels[i%len(labels)],
		}
	}
	return out
}
