package model

// Quiz mirrors one entry of the trivia API response.
type Quiz struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// APIResponse is the trivia API envelope. ResponseCode 0 means success;
// anything else is an API-level failure even on HTTP 200.
type APIResponse struct {
	ResponseCode int    `json:"response_code"`
	Results      []Quiz `json:"results"`
}

// LeaderboardEntry is one row of the global high-score board.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
