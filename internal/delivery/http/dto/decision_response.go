package dto

// DecisionResponse carries the outcome of one swipe: Liked, Disliked,
// Matched or Watch again.
type DecisionResponse struct {
	Result string `json:"result"`
}
