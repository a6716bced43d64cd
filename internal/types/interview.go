package types

// InterviewQuestion is one suggested question with a hint about what the
// answer should focus on.
type InterviewQuestion struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// InterviewPrep is a tailored interview preparation guide for one job
// posting. Like TailoredContent, it always exists: when the generative
// service is unavailable the guide comes from a deterministic template and
// SynthesisMode says so.
type InterviewPrep struct {
	Tips                 []string            `json:"tips"`
	TechnicalQuestions   []InterviewQuestion `json:"technical_questions"`
	BehavioralQuestions  []InterviewQuestion `json:"behavioral_questions"`
	SituationalQuestions []InterviewQuestion `json:"situational_questions"`
	WinningStrategy      string              `json:"winning_strategy"`
	SynthesisMode        SynthesisMode       `json:"synthesis_mode"`
}
